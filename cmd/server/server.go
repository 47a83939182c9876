package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/marben/irpc"
	mandel "github.com/thekr1s/mandelbrot"
	"github.com/thekr1s/mandelbrot/internal/cli"
)

// main is the entry point for the Mandelbrot field server.
// The server renders the field grid itself; connected clients fetch finished fields over irpc.
func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	var (
		tcpAddr  = flag.String("tcp", ":8081", "tcp listen address for field clients")
		httpAddr = flag.String("http", ":8080", "http listen address (websocket on /ws)")
		useZstd  = flag.Bool("zstd", false, "send fields as raw zstd compressed pixels instead of png")
		outDir   = flag.String("out", "", "also write every field as png into this directory")
	)
	opts := cli.RegisterRenderFlags(flag.CommandLine, mandel.SeahorseValley, 1024, 4)
	flag.Parse()

	bounds, renderer, err := opts.Build()
	if err != nil {
		return err
	}

	enc := mandel.EncodingPNG
	if *useZstd {
		enc = mandel.EncodingZstd
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fs := newFieldScheduler(opts.Region, opts.Fields, bounds, enc, renderer)
	fs.outDir = *outDir
	log.Printf("rendering %dx%d fields of %s, %s", opts.Fields, opts.Fields, opts.Region, fmtBounds(bounds))

	irpcServer := newIrpcServer(fs)

	// TCP
	log.Printf("tcp listening on %s", *tcpAddr)
	tcpListener, err := net.Listen("tcp", *tcpAddr)
	if err != nil {
		return fmt.Errorf("net.Listen: %w", err)
	}

	// WEBSOCKET
	websocketListener, httpServer := webServer(ctx, *httpAddr, fs)

	errc := make(chan error, 4)

	// httpServer provides progress and field endpoints along with the websocket endpoint
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- fmt.Errorf("httpServer: %w", err)
		}
	}()

	// irpcServer can serve multiple listeners. In this case both tcp and websocket
	go func() {
		if err := irpcServer.Serve(tcpListener); err != nil && !errors.Is(err, irpc.ErrServerClosed) {
			errc <- fmt.Errorf("server.Serve tcp: %w", err)
		}
	}()
	go func() {
		if err := irpcServer.Serve(websocketListener); err != nil && !errors.Is(err, irpc.ErrServerClosed) {
			errc <- fmt.Errorf("server.Serve ws: %w", err)
		}
	}()

	go func() {
		if err := fs.run(ctx); err != nil {
			if ctx.Err() == nil {
				errc <- err
			}
			return
		}
		log.Printf("all %d fields rendered, waiting for tcp and websocket connections", fs.total)
	}()

	var runErr error
	select {
	case runErr = <-errc:
	case <-ctx.Done():
		log.Printf("shutting down")
	}

	// closes both listeners and every connected endpoint
	if err := irpcServer.Close(); err != nil {
		log.Printf("irpcServer.Close: %v", err)
	}
	if err := httpServer.Shutdown(context.Background()); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

// newIrpcServer provides fs as mandel.FieldProvider to every connecting client.
func newIrpcServer(fs *fieldScheduler) *irpc.Server {
	// irpc server with onConnect hook to keep track of connected clients
	irpcServer := irpc.NewServer(irpc.WithOnConnect(func(ep *irpc.Endpoint) {
		go func() {
			log.Printf("got connection from: %s", ep.RemoteAddr())
			fs.incClients()
			defer fs.decClients()

			<-ep.Context().Done()
			log.Printf("%s disconnected: %v", ep.RemoteAddr(), context.Cause(ep.Context()))
		}()
	}))

	// fieldProviderIrpcService provides mandel.FieldProvider interface over network
	// The scheduler implements it, so every client waits on the same rendering
	irpcServer.AddService(mandel.NewFieldProviderIrpcService(fs))
	return irpcServer
}

func fmtBounds(b image.Point) string {
	return fmt.Sprintf("%dx%d px each", b.X, b.Y)
}
