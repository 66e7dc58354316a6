package vecmath

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newBufferLogger(level slog.Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})), &buf
}

func TestUnsignedHazardWarnsOnce(t *testing.T) {
	l, buf := newBufferLogger(slog.LevelWarn)
	SetLogger(l)
	defer SetLogger(nil)

	v := VectorOf[uint16](5, 6)
	v.Sub(VectorOf[uint16](1, 1))
	v.SubScalar(1)
	v.Scale(2)
	Minus(v, v)

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "op=subtract"))
	assert.Equal(t, 1, strings.Count(out, "op=multiply"))
	assert.Contains(t, out, "kind=uint16")
	assert.Equal(t, []uint16{6, 8}, v.Slice())

	buf.Reset()
	VectorOf(1, 2).Sub(VectorOf(1, 1))
	assert.Empty(t, buf.String(), "signed kinds never warn")
}

func TestLogFault(t *testing.T) {
	l, buf := newBufferLogger(slog.LevelDebug)
	SetLogger(l)
	defer SetLogger(nil)

	_ = Catch(func() { Cross(VectorOf(1), VectorOf(2)) })
	assert.Contains(t, buf.String(), "vector fault")
	assert.Contains(t, buf.String(), "op=\"cross product\"")
}

func TestLogBatch(t *testing.T) {
	l, buf := newBufferLogger(slog.LevelDebug)
	ctx := context.Background()

	l.LogBatch(ctx, "normalize", 10, 0, nil)
	assert.Contains(t, buf.String(), "batch completed")

	buf.Reset()
	l.LogBatch(ctx, "normalize", 10, 2, nil)
	assert.Contains(t, buf.String(), "failed=2")
	assert.Contains(t, buf.String(), "success=8")

	buf.Reset()
	l.LogBatch(ctx, "normalize", 10, 0, errors.New("canceled"))
	assert.Contains(t, buf.String(), "level=ERROR")
}

func TestLoggerDefaults(t *testing.T) {
	SetLogger(nil)
	assert.NotNil(t, DefaultLogger())

	l := NoopLogger().WithOp("cross")
	l.LogUnsignedHazard("cross", KindUint8)
	assert.NotNil(t, NewJSONLogger(slog.LevelInfo))
	assert.NotNil(t, NewTextLogger(slog.LevelInfo))
}
