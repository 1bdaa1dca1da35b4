package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/Kargones/lclog/internal/pkg/logging"
)

// ВАЖНО: NewTracerProvider с Enabled=true меняет глобальный provider.
// Тесты ниже его не включают, t.Parallel() не используется.

// TestNewTracerProvider_Disabled проверяет nop shutdown.
func TestNewTracerProvider_Disabled(t *testing.T) {
	shutdown, err := NewTracerProvider(DefaultConfig(), logging.NewNopLogger())
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		assert.NoError(t, shutdown(context.Background()))
	}
}

// TestNewTracerProvider_InvalidConfig проверяет возврат ошибки валидации.
func TestNewTracerProvider_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = true

	shutdown, err := NewTracerProvider(cfg, logging.NewNopLogger())
	assert.ErrorIs(t, err, ErrTracingEndpointRequired)
	assert.Nil(t, shutdown)
}

// TestContextWithOTelTraceID проверяет что span наследует trace id.
func TestContextWithOTelTraceID(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	id := GenerateTraceID()
	ctx := ContextWithOTelTraceID(context.Background(), id)
	_, span := tp.Tracer("test").Start(ctx, "op")
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, id, spans[0].SpanContext().TraceID().String())
}

// TestContextWithOTelTraceID_Invalid проверяет что невалидный id игнорируется.
func TestContextWithOTelTraceID_Invalid(t *testing.T) {
	ctx := ContextWithOTelTraceID(context.Background(), "not-hex")
	assert.False(t, trace.SpanContextFromContext(ctx).IsValid())
}

// TestNewSampler проверяет крайние значения доли сэмплирования.
func TestNewSampler(t *testing.T) {
	for _, tc := range []struct {
		rate    float64
		sampled bool
	}{{1.0, true}, {0.0, false}} {
		recorder := tracetest.NewSpanRecorder()
		tp := sdktrace.NewTracerProvider(
			sdktrace.WithSpanProcessor(recorder),
			sdktrace.WithSampler(newSampler(tc.rate)),
		)
		ctx := ContextWithOTelTraceID(context.Background(), GenerateTraceID())
		_, span := tp.Tracer("test").Start(ctx, "op")
		assert.Equal(t, tc.sampled, span.SpanContext().IsSampled(), "rate=%g", tc.rate)
		span.End()
		_ = tp.Shutdown(context.Background())
	}
}
