package batch

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/hupe1980/vecmath"
	"github.com/hupe1980/vecmath/distance"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func quiet() Option {
	return WithLogger(vecmath.NoopLogger())
}

func TestMap(t *testing.T) {
	in := make([]int, 100)
	for i := range in {
		in[i] = i
	}

	var active, peak atomic.Int32
	out, err := Map(context.Background(), "square", in, func(x int) int {
		n := active.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		defer active.Add(-1)
		return x * x
	}, WithConcurrency(4), quiet())

	require.NoError(t, err)
	for i, v := range out {
		assert.Equal(t, i*i, v)
	}
	assert.LessOrEqual(t, peak.Load(), int32(4))
}

func TestNormalizeCollectsFaults(t *testing.T) {
	vs := []*vecmath.Vector[float64]{
		vecmath.VectorOf(3.0, 4),
		vecmath.VectorOf(0.0, 0),
		vecmath.VectorOf(0.0, 2),
	}
	m := &BasicMetricsCollector{}

	out, err := Normalize[float64](context.Background(), vs, WithMetrics(m), quiet())
	require.Error(t, err)
	assert.ErrorIs(t, err, vecmath.ErrDivisionByZero)

	var ie *ItemError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, 1, ie.Index)
	assert.Contains(t, ie.Error(), "batch item 1")

	assert.InDeltaSlice(t, []float64{0.6, 0.8}, out[0].Slice(), 1e-12)
	assert.Nil(t, out[1])
	assert.Equal(t, []float64{0, 1}, out[2].Slice())
	assert.Equal(t, []float64{3, 4}, vs[0].Slice(), "inputs are not modified")

	stats := m.GetStats()
	assert.Equal(t, int64(3), stats.ItemCount)
	assert.Equal(t, int64(1), stats.ItemErrors)
	assert.Equal(t, int64(1), stats.BatchCount)
	assert.Equal(t, int64(3), stats.BatchItems)
	assert.Equal(t, int64(1), stats.BatchFailed)
}

func TestApply(t *testing.T) {
	vs := []*vecmath.Vec3[int]{
		vecmath.Vec3Of(1, 2, 3),
		vecmath.Vec3Of(4, 5, 6),
	}
	err := Apply[int](context.Background(), "scale", vs, func(v *vecmath.Vec3[int]) { v.Scale(2) }, quiet())
	require.NoError(t, err)
	assert.Equal(t, [3]int{2, 4, 6}, vs[0].Array())
	assert.Equal(t, [3]int{8, 10, 12}, vs[1].Array())
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	_, err := Map(ctx, "noop", []int{1, 2, 3}, func(x int) int {
		calls.Add(1)
		return x
	}, quiet())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls.Load())
}

func TestPairwise(t *testing.T) {
	a := []*vecmath.Vector[float64]{vecmath.VectorOf(1.0, 0, 0), vecmath.VectorOf(1.0, 2)}
	b := []*vecmath.Vector[float64]{vecmath.VectorOf(0.0, 1, 0), vecmath.VectorOf(1.0)}

	got, err := Pairwise[float64](context.Background(), "inner product", a, b, func(x, y *vecmath.Vector[float64]) float64 {
		return vecmath.InnerProduct[float64](x, y)
	}, quiet())
	assert.ErrorIs(t, err, vecmath.ErrSizeMismatch)
	assert.Equal(t, []float64{0, 0}, got)

	_, err = Pairwise[float64](context.Background(), "inner product", a, b[:1], func(x, y *vecmath.Vector[float64]) float64 {
		return 0
	}, quiet())
	assert.ErrorIs(t, err, vecmath.ErrSizeMismatch)
}

func TestDistancesAndMagnitudes(t *testing.T) {
	query := vecmath.Vec2Of(0.0, 0)
	vs := []vecmath.View[float64]{vecmath.Vec2Of(3.0, 4), vecmath.VectorOf(0.0, 1)}

	d, err := Distances[float64](context.Background(), distance.Euclidean[float64], query, vs, quiet())
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{5, 1}, d, 1e-12)

	m, err := Magnitudes[float64](context.Background(), vs, quiet())
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{5, 1}, m, 1e-12)
}

func TestBatchSummaryLogged(t *testing.T) {
	var buf bytes.Buffer
	l := vecmath.NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, _ = Normalize[float64](context.Background(), []*vecmath.Vector[float64]{vecmath.VectorOf(0.0)}, WithLogger(l))
	assert.Contains(t, buf.String(), "batch completed with failures")
	assert.Contains(t, buf.String(), "op=normalize")
}

func TestNoopMetrics(t *testing.T) {
	var m MetricsCollector = NoopMetricsCollector{}
	m.RecordItem("x", 0, nil)
	m.RecordBatch("x", 1, 0, 0)
	assert.Equal(t, BasicMetricsStats{}, (&BasicMetricsCollector{}).GetStats())
}
