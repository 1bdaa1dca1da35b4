// Package di собирает зависимости lclog через Wire.
//
// Провайдеры — providers.go, граф — wire.go, сгенерированный код — wire_gen.go.
package di

import (
	"context"

	"github.com/Kargones/lclog/internal/config"
	"github.com/Kargones/lclog/internal/pkg/logging"
	"github.com/Kargones/lclog/internal/pkg/metrics"
	"github.com/Kargones/lclog/pkg/lifecycle"
)

// App содержит инициализированные зависимости приложения.
// Создаётся через InitializeApp.
//
// При добавлении зависимости: поле в App, провайдер в providers.go,
// провайдер в ProviderSet, затем go generate ./internal/di/...
type App struct {
	// Config передаётся извне в InitializeApp.
	Config *config.Config

	// Logger — служебный лог, не строки жизненного цикла.
	Logger logging.Logger

	// Lifecycle печатает INIT/DEINIT/log. Один экземпляр на приложение.
	Lifecycle *lifecycle.Logger

	// MetricsCollector — NopCollector, если метрики выключены.
	MetricsCollector metrics.Collector

	// TracerShutdown завершает OTel TracerProvider; nop при выключенном трейсинге.
	TracerShutdown func(context.Context) error

	// TraceID коррелирует служебный лог и span-ы одного запуска.
	TraceID string
}
