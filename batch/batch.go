// Package batch runs vector operations over many vectors concurrently.
//
// Work is spread over a bounded errgroup. A fault raised by one item (for
// example normalizing a zero vector) is recovered with vecmath.Catch and
// reported as an *ItemError; the remaining items still run. Cancelling the
// context stops scheduling new items.
package batch

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/vecmath"
)

// ItemError reports the failure of a single batch item.
type ItemError struct {
	Index int
	Err   error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("batch item %d: %v", e.Index, e.Err)
}

func (e *ItemError) Unwrap() error { return e.Err }

// Options configures a batch run.
type Options struct {
	// Concurrency bounds the number of items processed at once.
	// Defaults to GOMAXPROCS.
	Concurrency int
	// Logger receives the batch summary. Defaults to vecmath.DefaultLogger().
	Logger *vecmath.Logger
	// Metrics receives per-item and per-batch measurements.
	Metrics MetricsCollector
}

// Option configures Options.
type Option func(*Options)

// WithConcurrency bounds the number of concurrently processed items.
func WithConcurrency(n int) Option {
	return func(o *Options) {
		o.Concurrency = n
	}
}

// WithLogger sets the logger used for batch summaries.
func WithLogger(l *vecmath.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(m MetricsCollector) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}

func applyOptions(opts []Option) Options {
	o := Options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.Concurrency <= 0 {
		o.Concurrency = runtime.GOMAXPROCS(0)
	}
	if o.Logger == nil {
		o.Logger = vecmath.DefaultLogger()
	}
	if o.Metrics == nil {
		o.Metrics = NoopMetricsCollector{}
	}
	return o
}

// Map applies fn to every element of in and returns the results in order.
//
// Faults raised by fn are collected as *ItemError values joined into the
// returned error; the corresponding results hold the zero value. If ctx is
// cancelled, Map returns the context error and the results computed so far.
func Map[In, Out any](ctx context.Context, op string, in []In, fn func(In) Out, opts ...Option) ([]Out, error) {
	o := applyOptions(opts)
	start := time.Now()

	out := make([]Out, len(in))
	errs := make([]error, len(in))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Concurrency)

	for i, x := range in {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			itemStart := time.Now()
			err := vecmath.Catch(func() { out[i] = fn(x) })
			o.Metrics.RecordItem(op, time.Since(itemStart), err)
			if err != nil {
				errs[i] = &ItemError{Index: i, Err: err}
			}
			return nil
		})
	}

	waitErr := g.Wait()
	if waitErr == nil {
		waitErr = ctx.Err()
	}

	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
		}
	}

	o.Metrics.RecordBatch(op, len(in), failed, time.Since(start))
	o.Logger.LogBatch(ctx, op, len(in), failed, waitErr)

	if waitErr != nil {
		return out, fmt.Errorf("batch %s: %w", op, waitErr)
	}
	return out, errors.Join(errs...)
}

// Apply calls fn on every vector, typically to mutate it in place.
func Apply[T vecmath.Scalar, V vecmath.Vec[T, V]](ctx context.Context, op string, vs []V, fn func(V), opts ...Option) error {
	_, err := Map(ctx, op, vs, func(v V) struct{} {
		fn(v)
		return struct{}{}
	}, opts...)
	return err
}

// Normalize returns unit-length copies of vs. Zero vectors fail with
// vecmath.ErrDivisionByZero and yield nil entries.
func Normalize[T vecmath.Scalar, V vecmath.Vec[T, V]](ctx context.Context, vs []V, opts ...Option) ([]V, error) {
	return Map(ctx, "normalize", vs, vecmath.Normalized[T, V], opts...)
}

// Magnitudes returns the Euclidean norm of every vector.
func Magnitudes[T vecmath.Scalar](ctx context.Context, vs []vecmath.View[T], opts ...Option) ([]float64, error) {
	return Map(ctx, "magnitude", vs, vecmath.Magnitude[T], opts...)
}

// Pairwise applies fn to a[i], b[i] for every i. a and b must have the same
// length.
func Pairwise[T vecmath.Scalar, V vecmath.Vec[T, V], R any](ctx context.Context, op string, a, b []V, fn func(a, b V) R, opts ...Option) ([]R, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("batch %s: %w: %d != %d", op, vecmath.ErrSizeMismatch, len(a), len(b))
	}
	idx := make([]int, len(a))
	for i := range idx {
		idx[i] = i
	}
	return Map(ctx, op, idx, func(i int) R { return fn(a[i], b[i]) }, opts...)
}

// Distances returns fn(query, v) for every v.
func Distances[T vecmath.Scalar](ctx context.Context, fn func(a, b vecmath.View[T]) float64, query vecmath.View[T], vs []vecmath.View[T], opts ...Option) ([]float64, error) {
	return Map(ctx, "distance", vs, func(v vecmath.View[T]) float64 { return fn(query, v) }, opts...)
}
