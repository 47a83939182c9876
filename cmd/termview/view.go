package main

import (
	"context"
	"fmt"
	"image"

	"github.com/gdamore/tcell/v2"
	mandel "github.com/thekr1s/mandelbrot"
	"github.com/thekr1s/mandelbrot/render"
)

const (
	panStep  = 0.1
	zoomStep = 2
	maxLimit = 1 << 20
)

// viewer draws a region onto a terminal, two pixels per cell stacked with
// the upper half block: the foreground is the top pixel, the background the bottom one.
type viewer struct {
	screen   tcell.Screen
	renderer *render.Renderer
	home     mandel.Region
	region   mandel.Region
	inverted bool

	pixels []byte // reused while the terminal size does not change
	bounds image.Point
}

func newViewer(s tcell.Screen, r *render.Renderer, region mandel.Region) *viewer {
	if r.Limit == 0 {
		r.Limit = render.DefaultLimit
	}
	r.Limit = min(r.Limit, maxLimit)
	return &viewer{screen: s, renderer: r, home: region, region: region}
}

// draw renders the current region at terminal resolution and shows it.
func (v *viewer) draw(ctx context.Context) error {
	w, h := v.screen.Size()
	rows := h - 1 // status line
	if w <= 0 || rows <= 0 {
		return nil
	}

	bounds := image.Pt(w, 2*rows)
	if bounds != v.bounds {
		v.bounds = bounds
		v.pixels = make([]byte, bounds.X*bounds.Y)
	}

	v.renderer.Shade = render.Cyclic
	if v.inverted {
		v.renderer.Shade = render.Inverted
	}
	if err := v.renderer.Render(ctx, v.pixels, bounds, v.region); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	for y := 0; y < rows; y++ {
		top := v.pixels[2*y*w : (2*y+1)*w]
		bottom := v.pixels[(2*y+1)*w : (2*y+2)*w]
		for x := 0; x < w; x++ {
			style := tcell.StyleDefault.Foreground(gray(top[x])).Background(gray(bottom[x]))
			v.screen.SetContent(x, y, '▀', nil, style)
		}
	}
	v.drawStatus(rows, w)
	v.screen.Show()
	return nil
}

func (v *viewer) drawStatus(y, w int) {
	shading := "cyclic"
	if v.inverted {
		shading = "inverted"
	}
	status := fmt.Sprintf(" %s  limit %d  %s  arrows +/- [/] i r q", v.region, v.renderer.Limit, shading)
	style := tcell.StyleDefault.Reverse(true)
	x := 0
	for _, r := range status {
		if x >= w {
			break
		}
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < w; x++ {
		v.screen.SetContent(x, y, ' ', nil, style)
	}
}

func gray(level byte) tcell.Color {
	return tcell.NewRGBColor(int32(level), int32(level), int32(level))
}

// handle applies an event to the view. It reports whether the view needs
// a redraw and whether the user asked to quit.
func (v *viewer) handle(ev tcell.Event) (redraw, quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
		return true, false
	case *tcell.EventKey:
		next := v.region
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false, true
		case tcell.KeyLeft:
			next = next.Pan(-panStep, 0)
		case tcell.KeyRight:
			next = next.Pan(panStep, 0)
		case tcell.KeyUp:
			next = next.Pan(0, panStep)
		case tcell.KeyDown:
			next = next.Pan(0, -panStep)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false, true
			case '+', '=':
				next = next.Zoom(zoomStep)
			case '-':
				next = next.Zoom(1.0 / zoomStep)
			case '[':
				v.renderer.Limit = max(v.renderer.Limit/2, 1)
			case ']':
				if v.renderer.Limit < maxLimit {
					v.renderer.Limit = min(v.renderer.Limit*2, maxLimit)
				}
			case 'i':
				v.inverted = !v.inverted
			case 'r':
				next = v.home
			default:
				return false, false
			}
		default:
			return false, false
		}
		// past double precision the corners collapse, stay where we are
		if next.Validate() == nil {
			v.region = next
		}
		return true, false
	}
	return false, false
}
