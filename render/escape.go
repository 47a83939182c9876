// Package render computes grayscale escape-time rasters of the Mandelbrot set.
package render

import "image"

// DefaultLimit is the iteration limit used by Render.
const DefaultLimit = 255

// EscapeTime iterates z = z*z + c from z = 0 at most limit times.
//
// If the orbit leaves the circle of radius two it returns the zero based
// iteration at which that happened and true. If the limit is reached first
// c is assumed to be in the set and EscapeTime returns 0, false.
func EscapeTime(c complex128, limit uint32) (uint32, bool) {
	z := complex(0, 0)
	for i := uint32(0); i < limit; i++ {
		z = z*z + c
		if real(z)*real(z)+imag(z)*imag(z) > 4 {
			return i, true
		}
	}
	return 0, false
}

// PixelToPoint returns the point of the complex plane that pixel maps to in
// an image of the given bounds covering upperLeft..lowerRight.
// pixel.X is the column, pixel.Y the row.
func PixelToPoint(bounds, pixel image.Point, upperLeft, lowerRight complex128) complex128 {
	width := real(lowerRight) - real(upperLeft)
	height := imag(upperLeft) - imag(lowerRight)
	return complex(
		real(upperLeft)+float64(pixel.X)*width/float64(bounds.X),
		// rows grow downwards, the imaginary axis upwards
		imag(upperLeft)-float64(pixel.Y)*height/float64(bounds.Y),
	)
}
