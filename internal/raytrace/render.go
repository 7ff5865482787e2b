package raytrace

import (
	gomath "math"
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/spheretrace/internal/canvas"
	"github.com/Faultbox/spheretrace/internal/scene"
	"github.com/Faultbox/spheretrace/pkg/math"
	"github.com/Faultbox/spheretrace/pkg/rgb"
)

// Options controls a render.
type Options struct {
	Viewport   Viewport
	Background rgb.Color

	// TMin is the near clipping distance. Hits at or before it are ignored.
	TMin float64

	// Workers is the number of goroutines. 0 means runtime.NumCPU().
	Workers int

	Logger *zap.Logger
}

// DefaultOptions returns single-threaded options with a white background.
func DefaultOptions() Options {
	return Options{
		Viewport:   DefaultViewport,
		Background: rgb.White,
		TMin:       1,
		Workers:    1,
	}
}

// Stats summarizes a finished render.
type Stats struct {
	Pixels  int
	Hits    int
	Workers int
	Elapsed time.Duration
}

// band is a half-open range of centered y coordinates.
type band struct {
	minY, maxY int
}

// Render traces every pixel of c against s. The canvas rows are split into
// disjoint bands, one per worker, so no locking is needed; the result does
// not depend on the worker count.
func Render(c *canvas.Canvas, s *scene.Scene, opts Options) Stats {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > c.Height() {
		workers = c.Height()
	}

	log.Info("render started",
		zap.Int("width", c.Width()),
		zap.Int("height", c.Height()),
		zap.Int("objects", len(s.Objects)),
		zap.Int("lights", len(s.Lights)),
		zap.Int("workers", workers),
	)
	start := time.Now()

	minX, maxX, minY, maxY := c.Bounds()
	bands := splitBands(minY, maxY, workers)
	hits := make([]int, len(bands))

	var wg sync.WaitGroup
	for i, b := range bands {
		wg.Add(1)
		go func(i int, b band) {
			defer wg.Done()
			hits[i] = renderBand(c, s, opts, minX, maxX, b)
			log.Debug("band done", zap.Int("band", i), zap.Int("min_y", b.minY), zap.Int("max_y", b.maxY))
		}(i, b)
	}
	wg.Wait()

	stats := Stats{
		Pixels:  c.Width() * c.Height(),
		Workers: workers,
		Elapsed: time.Since(start),
	}
	for _, h := range hits {
		stats.Hits += h
	}

	log.Info("render finished",
		zap.Int("pixels", stats.Pixels),
		zap.Int("hits", stats.Hits),
		zap.Duration("elapsed", stats.Elapsed),
	)
	return stats
}

func renderBand(c *canvas.Canvas, s *scene.Scene, opts Options, minX, maxX int, b band) int {
	var origin math.Vec3
	hits := 0
	for x := minX; x < maxX; x++ {
		for y := b.minY; y < b.maxY; y++ {
			direction := CanvasToViewport(x, y, c, opts.Viewport)
			col, hit := traceRay(s, origin, direction, opts.TMin, gomath.Inf(1), opts.Background)
			if hit {
				hits++
			}
			c.PutPixel(x, y, col)
		}
	}
	return hits
}

// splitBands divides [minY, maxY) into n contiguous, nearly equal bands.
func splitBands(minY, maxY, n int) []band {
	total := maxY - minY
	bands := make([]band, 0, n)
	lo := minY
	for i := 0; i < n; i++ {
		size := total / n
		if i < total%n {
			size++
		}
		bands = append(bands, band{minY: lo, maxY: lo + size})
		lo += size
	}
	return bands
}
