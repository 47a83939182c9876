package main

import (
	"context"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"sync"

	mandel "github.com/thekr1s/mandelbrot"
	"github.com/thekr1s/mandelbrot/render"
)

var _ mandel.FieldProvider = &fieldScheduler{}

type fieldScheduler struct {
	region   mandel.Region
	fields   int // fields per side
	bounds   image.Point
	encoding mandel.Encoding
	outDir   string
	renderer *render.Renderer

	total int

	m       sync.Mutex
	clients int
	byField map[image.Point]mandel.FieldImage // keyed by (col, row)
	changed chan struct{}                     // closed and replaced on every new field
	done    chan struct{}                     // closed when run returns
	runErr  error
}

func newFieldScheduler(region mandel.Region, fields int, bounds image.Point, enc mandel.Encoding, r *render.Renderer) *fieldScheduler {
	total := fields * fields
	return &fieldScheduler{
		region:   region,
		fields:   fields,
		bounds:   bounds,
		encoding: enc,
		renderer: r,
		total:    total,
		byField:  make(map[image.Point]mandel.FieldImage, total),
		changed:  make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// run renders every field and publishes it. It returns once the whole grid
// is rendered or ctx is done. run must be called only once.
func (fs *fieldScheduler) run(ctx context.Context) (err error) {
	defer func() {
		fs.m.Lock()
		fs.runErr = err
		fs.m.Unlock()
		close(fs.done)
	}()

	if fs.outDir != "" {
		if err := os.MkdirAll(fs.outDir, 0o755); err != nil {
			return fmt.Errorf("output dir: %w", err)
		}
	}

	err = fs.renderer.RenderFields(ctx, fs.region, fs.fields, fs.bounds, func(f mandel.Field, pixels []byte) error {
		log.Printf("rendered field %d_%d %s", f.Row, f.Col, f.Region)
		img, err := mandel.NewFieldImage(f, pixels, fs.bounds, fs.encoding)
		if err != nil {
			return err
		}
		if fs.outDir != "" {
			if err := writeFieldPNG(fs.outDir, f, pixels, fs.bounds); err != nil {
				return err
			}
		}
		fs.fieldFinished(img)
		return nil
	})
	if err != nil {
		return fmt.Errorf("render grid: %w", err)
	}
	return nil
}

func writeFieldPNG(dir string, f mandel.Field, pixels []byte, bounds image.Point) (err error) {
	name := filepath.Join(dir, mandel.FieldFilename(f.Row, f.Col))
	out, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	return mandel.WritePNG(out, pixels, bounds)
}

func (fs *fieldScheduler) fieldFinished(img mandel.FieldImage) {
	defer log.Printf("finished: %f", fs.progress())

	fs.m.Lock()
	defer fs.m.Unlock()

	fs.byField[image.Pt(img.Col, img.Row)] = img

	close(fs.changed)
	fs.changed = make(chan struct{})
}

func (fs *fieldScheduler) progress() float32 {
	fs.m.Lock()
	defer fs.m.Unlock()
	return float32(len(fs.byField)) / float32(fs.total)
}

// finishedField returns a field if it is already rendered, along with a
// channel that is closed when the next field finishes.
func (fs *fieldScheduler) finishedField(row, col int) (mandel.FieldImage, bool, <-chan struct{}) {
	fs.m.Lock()
	defer fs.m.Unlock()
	img, ok := fs.byField[image.Pt(col, row)]
	return img, ok, fs.changed
}

// GridSize implements mandel.FieldProvider.
func (fs *fieldScheduler) GridSize() (int, error) {
	return fs.fields, nil
}

// Field implements mandel.FieldProvider. It blocks until the field is
// rendered, rendering gave up or ctx is done.
func (fs *fieldScheduler) Field(ctx context.Context, row, col int) (mandel.FieldImage, error) {
	if row < 0 || row >= fs.fields || col < 0 || col >= fs.fields {
		return mandel.FieldImage{}, fmt.Errorf("field %d_%d is outside of the %dx%d grid", row, col, fs.fields, fs.fields)
	}

	for {
		img, ok, changed := fs.finishedField(row, col)
		if ok {
			return img, nil
		}

		select {
		case <-changed:
		case <-fs.done:
			// the field may have been published right before run returned
			if img, ok, _ := fs.finishedField(row, col); ok {
				return img, nil
			}
			fs.m.Lock()
			err := fs.runErr
			fs.m.Unlock()
			if err != nil {
				return mandel.FieldImage{}, fmt.Errorf("field %d_%d: %w", row, col, err)
			}
			return mandel.FieldImage{}, fmt.Errorf("field %d_%d was not rendered", row, col)
		case <-ctx.Done():
			return mandel.FieldImage{}, context.Cause(ctx)
		}
	}
}

type progressReport struct {
	Finished int  `json:"finished"`
	Total    int  `json:"total"`
	Clients  int  `json:"clients"`
	Done     bool `json:"done"`
}

func (fs *fieldScheduler) report() progressReport {
	done := false
	select {
	case <-fs.done:
		done = true
	default:
	}

	fs.m.Lock()
	defer fs.m.Unlock()
	return progressReport{Finished: len(fs.byField), Total: fs.total, Clients: fs.clients, Done: done}
}

func (fs *fieldScheduler) incClients() {
	fs.m.Lock()
	fs.clients++
	c := fs.clients
	fs.m.Unlock()

	log.Printf("clients: %d", c)
}

func (fs *fieldScheduler) decClients() {
	fs.m.Lock()
	fs.clients--
	c := fs.clients
	fs.m.Unlock()

	log.Printf("clients: %d", c)
}
