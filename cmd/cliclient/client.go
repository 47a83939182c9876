package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/coder/websocket"
	mandel "github.com/thekr1s/mandelbrot"
	"golang.org/x/sync/errgroup"
)

// dial connects to the field server over websocket when wsURL is set, plain tcp otherwise.
func dial(ctx context.Context, tcpAddr, wsURL string) (net.Conn, error) {
	if wsURL == "" {
		var d net.Dialer
		conn, err := d.DialContext(ctx, "tcp", tcpAddr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to server: %w", err)
		}
		return conn, nil
	}

	c, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("websocket.Dial: %w", err)
	}
	// a whole field image may arrive in one message
	c.SetReadLimit(mandel.MaxPayload + 4096)
	return websocket.NetConn(ctx, c, websocket.MessageBinary), nil
}

// download fetches every field of p's grid, at most parallel at a time, and
// stores each one as png in dir. It returns the number of fields saved.
func download(ctx context.Context, p mandel.FieldProvider, dir string, parallel int) (int, error) {
	n, err := p.GridSize()
	if err != nil {
		return 0, fmt.Errorf("client.GridSize: %w", err)
	}
	if n < 1 {
		return 0, fmt.Errorf("server reports a %dx%d grid", n, n)
	}
	total := n * n

	var saved atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(parallel, 1))

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			g.Go(func() error {
				f, err := p.Field(gctx, row, col)
				if err != nil {
					return fmt.Errorf("client.Field(%d, %d): %w", row, col, err)
				}
				if f.Row != row || f.Col != col {
					return fmt.Errorf("asked for field %d_%d, got %d_%d", row, col, f.Row, f.Col)
				}

				data, err := f.PNG()
				if err != nil {
					return fmt.Errorf("field %d_%d: %w", row, col, err)
				}
				name := filepath.Join(dir, mandel.FieldFilename(row, col))
				if err := os.WriteFile(name, data, 0o644); err != nil {
					return fmt.Errorf("failed to write field: %w", err)
				}
				log.Printf("Saved %q (%d/%d) %s", name, saved.Add(1), total, f.Field().Region)
				return nil
			})
		}
	}

	err = g.Wait()
	return int(saved.Load()), err
}
