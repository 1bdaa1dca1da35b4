package tracing

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Kargones/lclog/pkg/lifecycle"
)

// Атрибуты событий lifecycle в span.
const (
	attrPlace   = attribute.Key("lifecycle.place")
	attrRole    = attribute.Key("lifecycle.role")
	attrType    = attribute.Key("lifecycle.type")
	attrCounter = attribute.Key("lifecycle.counter")
	attrMessage = attribute.Key("lifecycle.message")
)

// Observer добавляет события lifecycle в span из контекста вызова
// (ConstructContext, LogContext и т.д.). Без записываемого span — no-op.
type Observer struct{}

// NewObserver создаёт Observer.
func NewObserver() *Observer {
	return &Observer{}
}

// Observe реализует lifecycle.Observer.
func (o *Observer) Observe(ctx context.Context, e lifecycle.Event) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	attrs := []attribute.KeyValue{
		attrPlace.String(e.Place.Name),
		attrRole.String(e.Place.Role.Keyword),
	}
	if e.Place.Type != "" {
		attrs = append(attrs, attrType.String(e.Place.Type))
	}
	if e.Counter > 0 {
		attrs = append(attrs, attrCounter.Int64(e.Counter))
	}
	if e.Message != "" {
		attrs = append(attrs, attrMessage.String(e.Message))
	}

	span.AddEvent("lifecycle."+string(e.Kind),
		trace.WithTimestamp(e.Time),
		trace.WithAttributes(attrs...),
	)
}
