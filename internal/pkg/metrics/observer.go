package metrics

import (
	"context"

	"github.com/Kargones/lclog/pkg/lifecycle"
)

// unknownRole — значение label role для нераспознанных мест.
const unknownRole = "unknown"

// observer переводит события lifecycle в вызовы Collector.
type observer struct {
	collector Collector
}

// NewObserver возвращает lifecycle.Observer, который пишет события в collector.
func NewObserver(collector Collector) lifecycle.Observer {
	return &observer{collector: collector}
}

// Observe реализует lifecycle.Observer.
func (o *observer) Observe(_ context.Context, e lifecycle.Event) {
	role := e.Place.Role.Keyword
	if role == "" {
		role = unknownRole
	}

	switch e.Kind {
	case lifecycle.KindConstruct:
		o.collector.RecordConstruct(role, e.Place.Name)
	case lifecycle.KindDestruct:
		o.collector.RecordDestruct(role, e.Place.Name)
	default:
		o.collector.RecordMessage(string(e.Kind))
	}
}
