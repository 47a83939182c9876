package render

import (
	"context"
	"fmt"
	"image"
	"runtime"

	mandel "github.com/thekr1s/mandelbrot"
	"golang.org/x/sync/errgroup"
)

// Renderer renders regions in parallel, one pixel row per task.
// The zero value renders with DefaultLimit, Cyclic shading and
// GOMAXPROCS workers.
type Renderer struct {
	Limit   uint32 // iteration limit, DefaultLimit when 0
	Workers int    // worker goroutines, GOMAXPROCS when <= 0
	Shade   Shade  // Cyclic when nil
}

func (r *Renderer) limit() uint32 {
	if r.Limit == 0 {
		return DefaultLimit
	}
	return r.Limit
}

func (r *Renderer) workers() int {
	if r.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return r.Workers
}

func (r *Renderer) shade() Shade {
	if r.Shade == nil {
		return Cyclic
	}
	return r.Shade
}

// band is one pixel row of the image and the buffer slice it owns.
type band struct {
	row    int
	pixels []byte
}

// splitBands cuts pixels into non overlapping rows of width bytes.
func splitBands(pixels []byte, width int) []band {
	bands := make([]band, 0, len(pixels)/width)
	for row := 0; len(pixels) > 0; row++ {
		bands = append(bands, band{row: row, pixels: pixels[:width:width]})
		pixels = pixels[width:]
	}
	return bands
}

// Render fills pixels with region. It panics if the buffer does not match
// bounds and returns mandel.ErrDegenerateRegion for an invalid region.
//
// The result does not depend on Workers. If ctx is done before all rows are
// rendered ctx.Err() is returned and the buffer content is undefined.
func (r *Renderer) Render(ctx context.Context, pixels []byte, bounds image.Point, region mandel.Region) error {
	checkBuffer(pixels, bounds)
	if err := region.Validate(); err != nil {
		return err
	}

	limit, shade := r.limit(), r.shade()
	ul, lr := region.UpperLeft, region.LowerRight
	bandBounds := image.Pt(bounds.X, 1)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers())

	for _, b := range splitBands(pixels, bounds.X) {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			bandUL := PixelToPoint(bounds, image.Pt(0, b.row), ul, lr)
			bandLR := PixelToPoint(bounds, image.Pt(bounds.X, b.row+1), ul, lr)
			renderBand(b.pixels, bandBounds, bandUL, bandLR, limit, shade)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	// cancellation can land after the last task was started
	return ctx.Err()
}

// RenderFields splits region into n×n fields and renders them one after
// another into a single reused buffer of bounds. fn is called with every
// rendered field in row-major order; it must not keep pixels after it returns.
func (r *Renderer) RenderFields(ctx context.Context, region mandel.Region, n int, bounds image.Point, fn func(f mandel.Field, pixels []byte) error) error {
	if err := region.Validate(); err != nil {
		return err
	}
	if n < 1 {
		return fmt.Errorf("render fields: field count %d", n)
	}
	if bounds.X <= 0 || bounds.Y <= 0 {
		return fmt.Errorf("render fields: bounds %dx%d", bounds.X, bounds.Y)
	}

	pixels := make([]byte, bounds.X*bounds.Y)
	for _, f := range region.Fields(n) {
		if err := r.Render(ctx, pixels, bounds, f.Region); err != nil {
			return fmt.Errorf("field %d_%d: %w", f.Row, f.Col, err)
		}
		if err := fn(f, pixels); err != nil {
			return fmt.Errorf("field %d_%d: %w", f.Row, f.Col, err)
		}
	}
	return nil
}
