// Package metrics считает события жизненного цикла в Prometheus и отправляет
// их в Pushgateway.
//
//   - Collector — интерфейс, PrometheusCollector и NopCollector — реализации
//   - NewCollector выбирает реализацию по Config.Enabled
//   - NewObserver подключает Collector к lifecycle.Logger
package metrics

import "context"

// Collector собирает метрики событий lifecycle.
type Collector interface {
	// RecordConstruct учитывает создание объекта роли role в месте place.
	RecordConstruct(role, place string)

	// RecordDestruct учитывает уничтожение объекта.
	RecordDestruct(role, place string)

	// RecordMessage учитывает событие log или error.
	RecordMessage(kind string)

	// Push отправляет метрики в Pushgateway.
	// Ошибки логируются внутри, реализации всегда возвращают nil:
	// отладочные метрики не должны ронять приложение.
	Push(ctx context.Context) error
}
