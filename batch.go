package texblend

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gogpu/texblend/internal/parallel"
)

// Named is one output of a batch: a blended bitmap tagged with its name and
// the direction that produced it.
type Named struct {
	Name      string
	Direction Direction
	Bitmap    *Bitmap
}

// Pool runs batch jobs. Create one with NewPool to share goroutines across
// many GenerateSet calls; the caller owns it and must Close it.
type Pool struct {
	wp *parallel.WorkerPool
}

// NewPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	return &Pool{wp: parallel.NewWorkerPool(workers)}
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.wp.Workers()
}

// Close stops the pool's workers. It is safe to call more than once.
func (p *Pool) Close() {
	p.wp.Close()
}

// BatchOption configures GenerateSet.
//
// Example:
//
//	// One worker per CPU, private pool
//	set, err := texblend.GenerateSet(a, b, "grass", texblend.FullCatalog, texblend.Dither, 40)
//
//	// Shared pool
//	pool := texblend.NewPool(4)
//	defer pool.Close()
//	set, err := texblend.GenerateSet(a, b, "grass", texblend.FullCatalog, texblend.Dither, 40,
//	    texblend.WithPool(pool))
type BatchOption func(*batchOptions)

type batchOptions struct {
	workers int
	pool    *Pool
}

// WithWorkers sets the size of the private pool GenerateSet creates.
// Ignored when WithPool is given.
func WithWorkers(n int) BatchOption {
	return func(o *batchOptions) {
		o.workers = n
	}
}

// WithPool runs the batch on a caller-owned pool. GenerateSet never closes
// it.
func WithPool(p *Pool) BatchOption {
	return func(o *batchOptions) {
		o.pool = p
	}
}

// GenerateSet blends a and b once per direction of the catalog, holding
// mode and width constant. Each result is named base + "-" + label, and
// results are returned in catalog order regardless of completion order.
func GenerateSet(a, b *Bitmap, base string, catalog Catalog, mode Mode, width float64, opts ...BatchOption) ([]Named, error) {
	if base == "" {
		return nil, ErrEmptyName
	}
	dirs, err := catalog.Directions()
	if err != nil {
		return nil, err
	}
	// Validate once up front with any direction; per-job validation then
	// cannot fail on shared inputs.
	if err := validateInputs(a, b, Params{Direction: dirs[0], Mode: mode, Width: width}); err != nil {
		return nil, err
	}

	o := batchOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	pool := o.pool
	if pool == nil {
		pool = NewPool(o.workers)
		defer pool.Close()
	}

	log := Logger()
	start := time.Now()

	results := make([]Named, len(dirs))
	jobs := make([]parallel.Job, len(dirs))
	for i, d := range dirs {
		jobs[i] = func() error {
			out := &Bitmap{size: a.size, data: make([]uint8, len(a.data))}
			blend(out, a, b, Params{Direction: d, Mode: mode, Width: width})
			results[i] = Named{
				Name:      base + "-" + d.Label(),
				Direction: d,
				Bitmap:    out,
			}
			log.Debug("texblend: batch job done", slog.String("name", results[i].Name))
			return nil
		}
	}

	if err := pool.wp.Run(jobs); err != nil {
		return nil, fmt.Errorf("texblend: batch %q: %w", base, err)
	}

	log.Info("texblend: batch complete",
		slog.String("base", base),
		slog.String("catalog", catalog.String()),
		slog.String("mode", mode.String()),
		slog.Int("count", len(results)),
		slog.Duration("elapsed", time.Since(start)))
	return results, nil
}
