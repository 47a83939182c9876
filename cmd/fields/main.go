// fields renders an N×N grid of fields of the Mandelbrot set straight to PNG files.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	mandel "github.com/thekr1s/mandelbrot"
	"github.com/thekr1s/mandelbrot/internal/cli"
	"github.com/thekr1s/mandelbrot/render"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	outDir := flag.String("out", ".", "directory the fields are written to")
	opts := cli.RegisterRenderFlags(flag.CommandLine, mandel.AntennaField, 6400, 10)
	flag.Parse()

	bounds, renderer, err := opts.Build()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("output dir: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	if err := renderGrid(ctx, renderer, opts.Region, opts.Fields, bounds, *outDir); err != nil {
		return err
	}
	log.Printf("%d fields took %s", opts.Fields*opts.Fields, time.Since(start))
	return nil
}

// renderGrid renders the grid one field at a time into a single buffer
// and writes every field before the next one overwrites it.
func renderGrid(ctx context.Context, r *render.Renderer, region mandel.Region, n int, bounds image.Point, dir string) error {
	started := time.Now()
	return r.RenderFields(ctx, region, n, bounds, func(f mandel.Field, pixels []byte) error {
		log.Printf("generate %d_%d %s took %s", f.Row, f.Col, f.Region, time.Since(started))

		name := filepath.Join(dir, mandel.FieldFilename(f.Row, f.Col))
		if err := writePNG(name, pixels, bounds); err != nil {
			return err
		}
		log.Printf("write %s done", name)
		started = time.Now()
		return nil
	})
}

func writePNG(name string, pixels []byte, bounds image.Point) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return mandel.WritePNG(f, pixels, bounds)
}
