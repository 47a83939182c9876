package render

import (
	"fmt"
	"image"
)

// Shade turns an escape result into a gray level.
type Shade func(iter uint32, escaped bool) uint8

// Cyclic maps the escape iteration modulo 256, so deep zooms band
// repeatedly instead of saturating. Points in the set are black.
func Cyclic(iter uint32, escaped bool) uint8 {
	if !escaped {
		return 0
	}
	return uint8(iter % 256)
}

// Inverted is a monotonic ramp: fast escapes are bright, slow ones dark,
// anything past 255 iterations and points in the set are black.
func Inverted(iter uint32, escaped bool) uint8 {
	if !escaped || iter >= 255 {
		return 0
	}
	return uint8(255 - iter)
}

// Render fills pixels, a row-major grayscale buffer of bounds.X*bounds.Y
// bytes, with the region upperLeft..lowerRight using DefaultLimit and Cyclic.
// It panics before writing anything if the buffer does not match bounds.
func Render(pixels []byte, bounds image.Point, upperLeft, lowerRight complex128) {
	checkBuffer(pixels, bounds)
	renderBand(pixels, bounds, upperLeft, lowerRight, DefaultLimit, Cyclic)
}

func checkBuffer(pixels []byte, bounds image.Point) {
	if bounds.X <= 0 || bounds.Y <= 0 {
		panic(fmt.Sprintf("render: non positive bounds %dx%d", bounds.X, bounds.Y))
	}
	if len(pixels) != bounds.X*bounds.Y {
		panic(fmt.Sprintf("render: buffer of %d bytes for %dx%d image", len(pixels), bounds.X, bounds.Y))
	}
}

func renderBand(pixels []byte, bounds image.Point, upperLeft, lowerRight complex128, limit uint32, shade Shade) {
	for row := 0; row < bounds.Y; row++ {
		for col := 0; col < bounds.X; col++ {
			point := PixelToPoint(bounds, image.Pt(col, row), upperLeft, lowerRight)
			pixels[row*bounds.X+col] = shade(EscapeTime(point, limit))
		}
	}
}
