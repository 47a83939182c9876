package mandel

import (
	"errors"
	"fmt"
	"math/cmplx"
	"sort"
	"strconv"
	"strings"
)

// ErrDegenerateRegion is returned for regions whose corners do not span a
// positive area with the upper left corner above and left of the lower right one.
var ErrDegenerateRegion = errors.New("degenerate region")

// Region of the complex plane covered by an image.
// UpperLeft maps to pixel (0, 0), LowerRight to pixel (width, height).
type Region struct {
	UpperLeft  complex128
	LowerRight complex128
}

// rect builds a Region from axis bounds.
func rect(xmin, xmax, ymin, ymax float64) Region {
	return Region{
		UpperLeft:  complex(xmin, ymax),
		LowerRight: complex(xmax, ymin),
	}
}

// Classic regions / landmarks in the Mandelbrot set
var (
	// Whole set, slightly padded
	WholeSet = rect(-2.2, 0.8, -1.2, 1.2)

	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = rect(-0.8, -0.7, 0.05, 0.15)

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = rect(-1.85, -1.75, -0.10, -0.02)

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = rect(-0.7435, -0.7420, 0.1310, 0.1325)

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = rect(-0.7480, -0.7450, 0.0950, 0.0980)

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = rect(-0.7400, -0.7350, 0.1800, 0.1850)

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = rect(-1.7390, -1.7375, -0.0235, -0.0220)

	// Antenna field rendered by the batch tool by default
	AntennaField = Region{
		UpperLeft:  complex(-1.16, 0.29),
		LowerRight: complex(-1.14, 0.275),
	}
)

// Landmarks maps flag friendly names to the predefined regions.
var Landmarks = map[string]Region{
	"whole":      WholeSet,
	"seahorse":   SeahorseValley,
	"elephant":   ElephantValley,
	"spiral":     SpiralMinibrot,
	"triple":     TripleSpiral,
	"dragon":     ValleyOfTheDragon,
	"minispiral": MinibrotInMiniSpiral,
	"antenna":    AntennaField,
}

// Landmark looks up a predefined region by name.
func Landmark(name string) (Region, error) {
	r, ok := Landmarks[strings.ToLower(name)]
	if !ok {
		names := make([]string, 0, len(Landmarks))
		for n := range Landmarks {
			names = append(names, n)
		}
		sort.Strings(names)
		return Region{}, fmt.Errorf("unknown landmark %q (known: %s)", name, strings.Join(names, ", "))
	}
	return r, nil
}

// Width of the region along the real axis.
func (r Region) Width() float64 { return real(r.LowerRight) - real(r.UpperLeft) }

// Height of the region along the imaginary axis.
func (r Region) Height() float64 { return imag(r.UpperLeft) - imag(r.LowerRight) }

// Center of the region.
func (r Region) Center() complex128 { return (r.UpperLeft + r.LowerRight) / 2 }

// Validate reports ErrDegenerateRegion when the corners are not finite or
// do not satisfy UpperLeft.re < LowerRight.re and UpperLeft.im > LowerRight.im.
func (r Region) Validate() error {
	if !finite(r.UpperLeft) || !finite(r.LowerRight) {
		return fmt.Errorf("%w: non finite corner in %s", ErrDegenerateRegion, r)
	}
	if !(real(r.UpperLeft) < real(r.LowerRight)) || !(imag(r.UpperLeft) > imag(r.LowerRight)) {
		return fmt.Errorf("%w: %s", ErrDegenerateRegion, r)
	}
	return nil
}

func finite(c complex128) bool {
	return !cmplx.IsNaN(c) && !cmplx.IsInf(c)
}

// Pan moves the region by the given fractions of its width and height.
// Positive dx moves right, positive dy moves up.
func (r Region) Pan(dx, dy float64) Region {
	d := complex(dx*r.Width(), dy*r.Height())
	return Region{UpperLeft: r.UpperLeft + d, LowerRight: r.LowerRight + d}
}

// Zoom scales the region around its center. factor > 1 zooms in.
func (r Region) Zoom(factor float64) Region {
	c := r.Center()
	hw, hh := r.Width()/2/factor, r.Height()/2/factor
	return Region{
		UpperLeft:  c + complex(-hw, hh),
		LowerRight: c + complex(hw, -hh),
	}
}

// String formats the region the way ParseRegion reads it.
func (r Region) String() string {
	return formatComplex(r.UpperLeft) + ":" + formatComplex(r.LowerRight)
}

func formatComplex(c complex128) string {
	return strconv.FormatComplex(c, 'g', -1, 128)
}

// ParseRegion parses "UL:LR" where both corners are complex literals,
// e.g. "-1.16+0.29i:-1.14+0.275i". Parentheses are optional.
func ParseRegion(s string) (Region, error) {
	ul, lr, ok := strings.Cut(s, ":")
	if !ok {
		return Region{}, fmt.Errorf("region %q: expected UL:LR", s)
	}
	upperLeft, err := strconv.ParseComplex(strings.TrimSpace(ul), 128)
	if err != nil {
		return Region{}, fmt.Errorf("region upper left: %w", err)
	}
	lowerRight, err := strconv.ParseComplex(strings.TrimSpace(lr), 128)
	if err != nil {
		return Region{}, fmt.Errorf("region lower right: %w", err)
	}
	r := Region{UpperLeft: upperLeft, LowerRight: lowerRight}
	if err := r.Validate(); err != nil {
		return Region{}, err
	}
	return r, nil
}

// Set implements flag.Value. Landmark names are accepted as well.
func (r *Region) Set(s string) error {
	if lm, err := Landmark(s); err == nil {
		*r = lm
		return nil
	}
	parsed, err := ParseRegion(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Field is one cell of an n×n split of a region.
type Field struct {
	Row, Col int
	Region   Region
}

// Fields splits r into n×n equally sized fields in row-major order.
func (r Region) Fields(n int) []Field {
	if n < 1 {
		panic("field count must be positive")
	}

	dre := r.Width() / float64(n)
	dim := r.Height() / float64(n)

	fields := make([]Field, 0, n*n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			ul := r.UpperLeft + complex(float64(col)*dre, -float64(row)*dim)
			lr := r.UpperLeft + complex(float64(col+1)*dre, -float64(row+1)*dim)
			// snap outer edges so the grid covers r exactly
			if col == n-1 {
				lr = complex(real(r.LowerRight), imag(lr))
			}
			if row == n-1 {
				lr = complex(real(lr), imag(r.LowerRight))
			}
			fields = append(fields, Field{
				Row:    row,
				Col:    col,
				Region: Region{UpperLeft: ul, LowerRight: lr},
			})
		}
	}
	return fields
}

// FieldFilename is the file name a rendered field is stored under.
func FieldFilename(row, col int) string {
	return fmt.Sprintf("field_%03d_%03d_0.png", row, col)
}
