// termview explores the Mandelbrot set in the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/gdamore/tcell/v2"
	mandel "github.com/thekr1s/mandelbrot"
	"github.com/thekr1s/mandelbrot/internal/cli"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	// size and fields have no meaning here, the terminal decides the resolution
	opts := cli.RegisterRenderFlags(flag.CommandLine, mandel.WholeSet, 1, 1)
	flag.Parse()

	_, renderer, err := opts.Build()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcell.NewScreen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen.Init: %w", err)
	}
	defer screen.Fini()

	v := newViewer(screen, renderer, opts.Region)
	v.inverted = strings.EqualFold(opts.Shading, "inverted")
	return v.loop(context.Background())
}

// loop draws and handles events until the user quits.
func (v *viewer) loop(ctx context.Context) error {
	if err := v.draw(ctx); err != nil {
		return err
	}
	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			return nil // screen finalized
		}
		redraw, quit := v.handle(ev)
		if quit {
			return nil
		}
		if redraw {
			if err := v.draw(ctx); err != nil {
				return err
			}
		}
	}
}
