package metrics

import "context"

// NopCollector ничего не считает.
type NopCollector struct{}

// NewNopCollector создаёт NopCollector.
func NewNopCollector() *NopCollector {
	return &NopCollector{}
}

func (c *NopCollector) RecordConstruct(role, place string) {}
func (c *NopCollector) RecordDestruct(role, place string)  {}
func (c *NopCollector) RecordMessage(kind string)          {}

// Push всегда возвращает nil.
func (c *NopCollector) Push(ctx context.Context) error {
	return nil
}
