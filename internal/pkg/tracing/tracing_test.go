package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_Disabled(t *testing.T) {
	cleanup, err := Init("networkfault", "", 1)
	require.NoError(t, err)
	require.NotNil(t, cleanup)
	cleanup()

	ctx, span := StartSpan(context.Background(), "noop")
	defer span.End()
	assert.Empty(t, TraceIDFromContext(ctx))
}

func TestSampler(t *testing.T) {
	assert.Equal(t, "AlwaysOnSampler", Sampler(1).Description())
	assert.Equal(t, "AlwaysOffSampler", Sampler(0).Description())
	assert.Contains(t, Sampler(0.5).Description(), "TraceIDRatioBased")
}

func TestIsGRPC(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_PROTOCOL", "")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_PROTOCOL", "")
	assert.True(t, isGRPC("collector:4317"))
	assert.False(t, isGRPC("collector:4318"))

	t.Setenv("OTEL_EXPORTER_OTLP_PROTOCOL", "grpc")
	assert.True(t, isGRPC("collector:4318"))
}

func TestRecordError_NilIsNoop(t *testing.T) {
	_, span := StartSpan(context.Background(), "noop")
	defer span.End()
	RecordError(span, nil)
	RecordError(span, assert.AnError)
}
