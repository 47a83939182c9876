package main

import (
	"context"
	"image"
	"math"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	mandel "github.com/thekr1s/mandelbrot"
	"github.com/thekr1s/mandelbrot/render"
)

func newTestViewer(t *testing.T, w, h int) (*viewer, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(w, h)
	return newViewer(s, &render.Renderer{Workers: 2}, mandel.WholeSet), s
}

func TestViewerDraw(t *testing.T) {
	v, s := newTestViewer(t, 24, 9)
	if err := v.draw(context.Background()); err != nil {
		t.Fatal(err)
	}
	if v.bounds != image.Pt(24, 16) {
		t.Fatalf("render bounds = %v, want 24x16", v.bounds)
	}

	cells, w, h := s.GetContents()
	if w != 24 || h != 9 {
		t.Fatalf("screen %dx%d", w, h)
	}

	for y := 0; y < 8; y++ {
		for x := 0; x < w; x++ {
			c := cells[y*w+x]
			if len(c.Runes) == 0 || c.Runes[0] != '▀' {
				t.Fatalf("cell (%d,%d) = %q", x, y, c.Runes)
			}
			fg, bg, _ := c.Style.Decompose()
			if fg != gray(v.pixels[2*y*w+x]) || bg != gray(v.pixels[(2*y+1)*w+x]) {
				t.Fatalf("cell (%d,%d) colors do not match the rendered pixels", x, y)
			}
		}
	}

	var status strings.Builder
	for x := 0; x < w; x++ {
		if r := cells[8*w+x].Runes; len(r) > 0 {
			status.WriteRune(r[0])
		}
	}
	if !strings.Contains(status.String(), "(-2.2") {
		t.Errorf("status line = %q", status.String())
	}
}

func TestViewerReusesBuffer(t *testing.T) {
	v, s := newTestViewer(t, 10, 5)
	if err := v.draw(context.Background()); err != nil {
		t.Fatal(err)
	}
	first := &v.pixels[0]
	if err := v.draw(context.Background()); err != nil {
		t.Fatal(err)
	}
	if &v.pixels[0] != first {
		t.Error("buffer reallocated without a resize")
	}

	s.SetSize(12, 5)
	if err := v.draw(context.Background()); err != nil {
		t.Fatal(err)
	}
	if v.bounds != image.Pt(12, 8) {
		t.Errorf("bounds after resize = %v", v.bounds)
	}
}

func TestViewerHandle(t *testing.T) {
	v, _ := newTestViewer(t, 10, 5)
	home := v.region

	key := func(k tcell.Key, r rune) (bool, bool) {
		return v.handle(tcell.NewEventKey(k, r, tcell.ModNone))
	}

	if redraw, quit := key(tcell.KeyRight, 0); !redraw || quit {
		t.Errorf("right = %t, %t", redraw, quit)
	}
	if want := home.Pan(panStep, 0); v.region != want {
		t.Errorf("after right region = %s, want %s", v.region, want)
	}

	key(tcell.KeyRune, 'r')
	if v.region != home {
		t.Errorf("reset region = %s, want %s", v.region, home)
	}

	key(tcell.KeyRune, '+')
	if got, want := v.region.Width(), home.Width()/zoomStep; math.Abs(got-want) > 1e-12 {
		t.Errorf("zoomed width = %g, want %g", got, want)
	}

	key(tcell.KeyRune, ']')
	if v.renderer.Limit != 2*render.DefaultLimit {
		t.Errorf("limit = %d", v.renderer.Limit)
	}
	for i := 0; i < 20; i++ {
		key(tcell.KeyRune, '[')
	}
	if v.renderer.Limit != 1 {
		t.Errorf("limit after halving = %d, want 1", v.renderer.Limit)
	}
	for i := 0; i < 40; i++ {
		key(tcell.KeyRune, ']')
	}
	if v.renderer.Limit != maxLimit {
		t.Errorf("limit after doubling = %d, want %d", v.renderer.Limit, maxLimit)
	}

	key(tcell.KeyRune, 'i')
	if !v.inverted {
		t.Error("i did not toggle shading")
	}

	if redraw, _ := key(tcell.KeyRune, 'z'); redraw {
		t.Error("unbound key asked for a redraw")
	}
	if _, quit := key(tcell.KeyRune, 'q'); !quit {
		t.Error("q did not quit")
	}
	if _, quit := key(tcell.KeyEscape, 0); !quit {
		t.Error("escape did not quit")
	}
}

func TestViewerLimitAboveMax(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	defer s.Fini()

	v := newViewer(s, &render.Renderer{Limit: 3 << 20}, mandel.WholeSet)
	if v.renderer.Limit != maxLimit {
		t.Errorf("limit = %d, want it clamped to %d", v.renderer.Limit, maxLimit)
	}
	v.handle(tcell.NewEventKey(tcell.KeyRune, ']', tcell.ModNone))
	if v.renderer.Limit != maxLimit {
		t.Errorf("doubling at the maximum changed the limit to %d", v.renderer.Limit)
	}

	// a limit set after construction is never lowered by doubling
	v.renderer.Limit = maxLimit + 5
	v.handle(tcell.NewEventKey(tcell.KeyRune, ']', tcell.ModNone))
	if v.renderer.Limit != maxLimit+5 {
		t.Errorf("doubling lowered the limit to %d", v.renderer.Limit)
	}
	v.handle(tcell.NewEventKey(tcell.KeyRune, '[', tcell.ModNone))
	if v.renderer.Limit != (maxLimit+5)/2 {
		t.Errorf("halving gave %d", v.renderer.Limit)
	}
}

func TestViewerZoomLimit(t *testing.T) {
	v, _ := newTestViewer(t, 10, 5)
	for i := 0; i < 2000; i++ {
		v.handle(tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone))
	}
	if err := v.region.Validate(); err != nil {
		t.Fatalf("zooming produced a degenerate region: %v", err)
	}
	if err := v.draw(context.Background()); err != nil {
		t.Fatal(err)
	}
}
