// Package cli holds the render flags shared by the commands.
package cli

import (
	"flag"
	"fmt"
	"image"
	"strconv"
	"strings"

	mandel "github.com/thekr1s/mandelbrot"
	"github.com/thekr1s/mandelbrot/render"
)

// RenderOptions are filled in by the flags RegisterRenderFlags defines.
type RenderOptions struct {
	Region  mandel.Region
	Size    string
	Fields  int
	Limit   uint
	Workers int
	Shading string
}

// RegisterRenderFlags defines -region, -size, -fields, -limit, -workers and
// -shading on fs with the given defaults.
func RegisterRenderFlags(fs *flag.FlagSet, region mandel.Region, size, fields int) *RenderOptions {
	o := &RenderOptions{Region: region}
	fs.Var(&o.Region, "region", "plane rectangle UL:LR (e.g. -2+1.2i:0.8-1.2i) or a landmark name")
	fs.StringVar(&o.Size, "size", fmt.Sprintf("%dx%d", size, size), "size of one field in pixels, WxH")
	fs.IntVar(&o.Fields, "fields", fields, "fields per side of the grid")
	fs.UintVar(&o.Limit, "limit", render.DefaultLimit, "iteration limit")
	fs.IntVar(&o.Workers, "workers", 0, "render goroutines, 0 for GOMAXPROCS")
	fs.StringVar(&o.Shading, "shading", "cyclic", "gray mapping: cyclic or inverted")
	return o
}

// Build validates the options and returns the field bounds and a renderer.
func (o *RenderOptions) Build() (image.Point, *render.Renderer, error) {
	bounds, err := ParseSize(o.Size)
	if err != nil {
		return image.Point{}, nil, err
	}
	if err := o.Region.Validate(); err != nil {
		return image.Point{}, nil, err
	}
	if o.Fields < 1 {
		return image.Point{}, nil, fmt.Errorf("fields must be positive, got %d", o.Fields)
	}
	if o.Limit < 1 || o.Limit > 1<<31 {
		return image.Point{}, nil, fmt.Errorf("limit out of range: %d", o.Limit)
	}
	shade, err := ParseShading(o.Shading)
	if err != nil {
		return image.Point{}, nil, err
	}
	return bounds, &render.Renderer{Limit: uint32(o.Limit), Workers: o.Workers, Shade: shade}, nil
}

// ParseSize parses "WxH".
func ParseSize(s string) (image.Point, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return image.Point{}, fmt.Errorf("size %q: expected WxH", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return image.Point{}, fmt.Errorf("size width: %w", err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return image.Point{}, fmt.Errorf("size height: %w", err)
	}
	if w <= 0 || h <= 0 {
		return image.Point{}, fmt.Errorf("size %q: width and height must be positive", s)
	}
	return image.Pt(w, h), nil
}

// ParseShading maps a shading name to its policy.
func ParseShading(name string) (render.Shade, error) {
	switch strings.ToLower(name) {
	case "cyclic", "":
		return render.Cyclic, nil
	case "inverted":
		return render.Inverted, nil
	}
	return nil, fmt.Errorf("unknown shading %q", name)
}
