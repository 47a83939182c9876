package mandel

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
)

// ErrBadImage is returned when a field image does not decode to the bounds it announces.
var ErrBadImage = errors.New("bad field image")

// Encoding of a field image payload.
type Encoding uint8

const (
	EncodingPNG  Encoding = 1 // grayscale PNG
	EncodingZstd Encoding = 2 // raw row-major gray bytes, zstd compressed
)

func (e Encoding) String() string {
	switch e {
	case EncodingPNG:
		return "png"
	case EncodingZstd:
		return "zstd"
	}
	return fmt.Sprintf("Encoding(%d)", uint8(e))
}

// MaxPayload bounds the encoded size of a field image.
const MaxPayload = 256 << 20

// MaxFieldPixels bounds width*height of a field image a client will decode.
const MaxFieldPixels = 1 << 28

// FieldImage is one rendered field as it travels between server and clients.
type FieldImage struct {
	Row, Col int

	// corners of the field in the complex plane
	ULRe, ULIm float64
	LRRe, LRIm float64

	Width, Height int

	Encoding Encoding
	Payload  []byte
}

// NewFieldImage encodes a rendered buffer. The buffer is not retained.
func NewFieldImage(f Field, pixels []byte, bounds image.Point, enc Encoding) (FieldImage, error) {
	var (
		payload []byte
		err     error
	)
	switch enc {
	case EncodingPNG:
		var buf bytes.Buffer
		err = WritePNG(&buf, pixels, bounds)
		payload = buf.Bytes()
	case EncodingZstd:
		if len(pixels) != bounds.X*bounds.Y {
			return FieldImage{}, fmt.Errorf("field image: %d bytes for %dx%d", len(pixels), bounds.X, bounds.Y)
		}
		payload, err = compressZstd(pixels)
	default:
		return FieldImage{}, fmt.Errorf("field image: unknown encoding %s", enc)
	}
	if err != nil {
		return FieldImage{}, fmt.Errorf("field image %d_%d: %w", f.Row, f.Col, err)
	}
	if len(payload) > MaxPayload {
		return FieldImage{}, fmt.Errorf("field image %d_%d: payload of %d bytes", f.Row, f.Col, len(payload))
	}

	return FieldImage{
		Row:      f.Row,
		Col:      f.Col,
		ULRe:     real(f.Region.UpperLeft),
		ULIm:     imag(f.Region.UpperLeft),
		LRRe:     real(f.Region.LowerRight),
		LRIm:     imag(f.Region.LowerRight),
		Width:    bounds.X,
		Height:   bounds.Y,
		Encoding: enc,
		Payload:  payload,
	}, nil
}

// Field returns the grid cell the image was rendered for.
func (fi FieldImage) Field() Field {
	return Field{
		Row: fi.Row,
		Col: fi.Col,
		Region: Region{
			UpperLeft:  complex(fi.ULRe, fi.ULIm),
			LowerRight: complex(fi.LRRe, fi.LRIm),
		},
	}
}

// Bounds is the pixel width and height of the image.
func (fi FieldImage) Bounds() image.Point {
	return image.Pt(fi.Width, fi.Height)
}

func (fi FieldImage) checkBounds() error {
	if fi.Width <= 0 || fi.Height <= 0 || int64(fi.Width)*int64(fi.Height) > MaxFieldPixels {
		return fmt.Errorf("%w: bounds %dx%d", ErrBadImage, fi.Width, fi.Height)
	}
	return nil
}

// Gray decodes the payload back into a grayscale image. The decoded image
// must match the announced bounds.
func (fi FieldImage) Gray() (*image.Gray, error) {
	if err := fi.checkBounds(); err != nil {
		return nil, err
	}

	switch fi.Encoding {
	case EncodingPNG:
		cfg, err := png.DecodeConfig(bytes.NewReader(fi.Payload))
		if err != nil {
			return nil, fmt.Errorf("png.DecodeConfig: %w", err)
		}
		if cfg.Width != fi.Width || cfg.Height != fi.Height {
			return nil, fmt.Errorf("%w: png of %dx%d for %dx%d", ErrBadImage, cfg.Width, cfg.Height, fi.Width, fi.Height)
		}
		if cfg.ColorModel != color.GrayModel {
			return nil, fmt.Errorf("%w: png payload is not 8-bit grayscale", ErrBadImage)
		}
		img, err := png.Decode(bytes.NewReader(fi.Payload))
		if err != nil {
			return nil, fmt.Errorf("png.Decode: %w", err)
		}
		gray, ok := img.(*image.Gray)
		if !ok || gray.Rect.Size() != fi.Bounds() {
			return nil, fmt.Errorf("%w: png payload decoded to %T", ErrBadImage, img)
		}
		return gray, nil
	case EncodingZstd:
		size := fi.Width * fi.Height
		pixels, err := decompressZstd(fi.Payload, size)
		if err != nil {
			return nil, err
		}
		if len(pixels) != size {
			return nil, fmt.Errorf("%w: %d pixels for %dx%d", ErrBadImage, len(pixels), fi.Width, fi.Height)
		}
		return GrayImage(pixels, fi.Bounds()), nil
	}
	return nil, fmt.Errorf("%w: unknown encoding %s", ErrBadImage, fi.Encoding)
}

// PNG returns the image as PNG bytes, re-encoding when needed.
func (fi FieldImage) PNG() ([]byte, error) {
	img, err := fi.Gray()
	if err != nil {
		return nil, err
	}
	if fi.Encoding == EncodingPNG {
		return fi.Payload, nil
	}
	var buf bytes.Buffer
	if err := WritePNG(&buf, img.Pix, fi.Bounds()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
