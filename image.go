package mandel

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// GrayImage wraps a row-major grayscale buffer as an image without copying.
// It panics if len(pixels) does not match bounds.
func GrayImage(pixels []byte, bounds image.Point) *image.Gray {
	if bounds.X <= 0 || bounds.Y <= 0 || len(pixels) != bounds.X*bounds.Y {
		panic(fmt.Sprintf("gray image: %d bytes for %dx%d", len(pixels), bounds.X, bounds.Y))
	}
	return &image.Gray{
		Pix:    pixels,
		Stride: bounds.X,
		Rect:   image.Rect(0, 0, bounds.X, bounds.Y),
	}
}

// WritePNG encodes the buffer as an 8-bit grayscale PNG.
func WritePNG(w io.Writer, pixels []byte, bounds image.Point) error {
	if err := png.Encode(w, GrayImage(pixels, bounds)); err != nil {
		return fmt.Errorf("png.Encode: %w", err)
	}
	return nil
}

// --- zstd payloads ---

var zstdEncPool = sync.Pool{
	New: func() any {
		enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
		return enc
	},
}

var zstdDecPool = sync.Pool{
	New: func() any {
		dec, _ := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
		return dec
	},
}

func compressZstd(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	enc := zstdEncPool.Get().(*zstd.Encoder)
	defer zstdEncPool.Put(enc)
	enc.Reset(&buf)

	if _, err := enc.Write(data); err != nil {
		_ = enc.Close()
		return nil, fmt.Errorf("zstd encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("zstd encode: %w", err)
	}
	return buf.Bytes(), nil
}

// decompressZstd inflates data, refusing output longer than limit bytes.
func decompressZstd(data []byte, limit int) ([]byte, error) {
	dec := zstdDecPool.Get().(*zstd.Decoder)
	defer zstdDecPool.Put(dec)
	if err := dec.Reset(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("zstd decode: %w", err)
	}

	var out bytes.Buffer
	if _, err := out.ReadFrom(io.LimitReader(dec, int64(limit)+1)); err != nil {
		return nil, fmt.Errorf("zstd decode: %w", err)
	}
	if out.Len() > limit {
		return nil, fmt.Errorf("zstd decode: output exceeds %d bytes", limit)
	}
	return out.Bytes(), nil
}
