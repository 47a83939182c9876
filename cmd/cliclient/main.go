// cliclient is a CLI client for the Mandelbrot field server.
// It connects to the server, requests every rendered field, and saves each one as a PNG file.

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/marben/irpc"
	mandel "github.com/thekr1s/mandelbrot"
)

// main is the entry point for the CLI client.
// It runs the client logic and logs any fatal errors.
// Note: All rendering is performed by the server; the client only downloads fields.
func main() {
	log.Printf("Starting CLI client...")
	if err := run(); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

// run connects to the field server, downloads all fields and saves them as PNG files.
// Returns an error if any step fails.
func run() error {
	var (
		addr     = flag.String("addr", ":8081", "tcp address of the field server")
		wsURL    = flag.String("ws", "", "websocket url of the field server, e.g. ws://localhost:8080/ws (overrides -addr)")
		outDir   = flag.String("out", ".", "directory the fields are saved to")
		timeout  = flag.Duration("timeout", 0, "give up after this long, 0 waits forever")
		parallel = flag.Int("parallel", irpc.DefaultParallelClientCalls, "fields requested at the same time")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	// Step 1: Prepare output directory
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	// Step 2: Connect to the field server
	log.Printf("Connecting to Mandelbrot server...")
	conn, err := dial(ctx, *addr, *wsURL)
	if err != nil {
		return err
	}
	ep := irpc.NewEndpoint(conn)
	defer ep.Close()
	// GridSize takes no context, closing the endpoint unblocks it
	context.AfterFunc(ctx, func() { ep.Close() })

	// Step 3: Create a client for the FieldProvider interface
	log.Printf("Creating FieldProvider client...")
	client, err := mandel.NewFieldProviderIrpcClient(ep)
	if err != nil {
		return fmt.Errorf("failed to create FieldProvider client: %w", err)
	}

	// Step 4: Request and save all fields
	log.Printf("Requesting fields from %s...", conn.RemoteAddr())
	n, err := download(ctx, client, *outDir, *parallel)
	if err != nil {
		return err
	}

	log.Printf("All %d fields saved to %q", n, *outDir)
	return nil
}
