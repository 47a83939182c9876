package cli

import (
	"flag"
	"image"
	"testing"

	mandel "github.com/thekr1s/mandelbrot"
	"github.com/thekr1s/mandelbrot/render"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		in   string
		want image.Point
		ok   bool
	}{
		{"640x480", image.Pt(640, 480), true},
		{"6400X6400", image.Pt(6400, 6400), true},
		{"1x1", image.Pt(1, 1), true},
		{"640", image.Point{}, false},
		{"0x10", image.Point{}, false},
		{"-3x10", image.Point{}, false},
		{"axb", image.Point{}, false},
	}
	for _, tt := range tests {
		got, err := ParseSize(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseSize(%q) err = %v, want ok %t", tt.in, err, tt.ok)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSize(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseShading(t *testing.T) {
	for _, name := range []string{"cyclic", "Inverted", ""} {
		if _, err := ParseShading(name); err != nil {
			t.Errorf("ParseShading(%q) = %v", name, err)
		}
	}
	if _, err := ParseShading("rainbow"); err == nil {
		t.Error("ParseShading(rainbow) succeeded")
	}
	s, _ := ParseShading("inverted")
	if s(0, true) != render.Inverted(0, true) {
		t.Error("inverted maps to the wrong policy")
	}
}

func TestRenderFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	o := RegisterRenderFlags(fs, mandel.WholeSet, 256, 3)
	err := fs.Parse([]string{"-region", "elephant", "-size", "320x200", "-limit", "1000", "-workers", "2", "-shading", "inverted"})
	if err != nil {
		t.Fatal(err)
	}

	bounds, r, err := o.Build()
	if err != nil {
		t.Fatal(err)
	}
	if bounds != image.Pt(320, 200) {
		t.Errorf("bounds = %v", bounds)
	}
	if o.Region != mandel.ElephantValley || o.Fields != 3 {
		t.Errorf("region %s fields %d", o.Region, o.Fields)
	}
	if r.Limit != 1000 || r.Workers != 2 || r.Shade == nil {
		t.Errorf("renderer = %+v", r)
	}
}

func TestRenderFlagsDefaults(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	o := RegisterRenderFlags(fs, mandel.AntennaField, 64, 10)
	if err := fs.Parse(nil); err != nil {
		t.Fatal(err)
	}
	bounds, r, err := o.Build()
	if err != nil {
		t.Fatal(err)
	}
	if bounds != image.Pt(64, 64) || o.Fields != 10 || o.Region != mandel.AntennaField {
		t.Errorf("defaults: %v %d %s", bounds, o.Fields, o.Region)
	}
	if r.Limit != render.DefaultLimit {
		t.Errorf("limit = %d", r.Limit)
	}
}

func TestRenderFlagsInvalid(t *testing.T) {
	tests := [][]string{
		{"-fields", "0"},
		{"-limit", "0"},
		{"-size", "10"},
		{"-shading", "hsv"},
	}
	for _, args := range tests {
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		o := RegisterRenderFlags(fs, mandel.WholeSet, 16, 1)
		if err := fs.Parse(args); err != nil {
			t.Fatal(err)
		}
		if _, _, err := o.Build(); err == nil {
			t.Errorf("Build with %v succeeded", args)
		}
	}
}
