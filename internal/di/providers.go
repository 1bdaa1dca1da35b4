package di

import (
	"context"
	"log/slog"

	"github.com/Kargones/lclog/internal/config"
	"github.com/Kargones/lclog/internal/pkg/logging"
	"github.com/Kargones/lclog/internal/pkg/metrics"
	"github.com/Kargones/lclog/internal/pkg/tracing"
	"github.com/Kargones/lclog/pkg/lifecycle"
)

// ProvideLogger создаёт служебный Logger по Config.Logging.
// При nil Config используются logging.DefaultConfig().
func ProvideLogger(cfg *config.Config) logging.Logger {
	if cfg == nil {
		return logging.NewLogger(logging.DefaultConfig())
	}
	return logging.NewLogger(cfg.Logging.ToLogging())
}

// ProvideTraceID генерирует trace_id запуска (32 hex-символа).
func ProvideTraceID() string {
	return tracing.GenerateTraceID()
}

// ProvideMetricsCollector создаёт Collector по Config.Metrics.
// При ошибке создания возвращает NopCollector и пишет ошибку в лог.
func ProvideMetricsCollector(cfg *config.Config, logger logging.Logger) metrics.Collector {
	if cfg == nil {
		return metrics.NewNopCollector()
	}

	collector, err := metrics.NewCollector(cfg.Metrics.ToMetrics(), logger)
	if err != nil {
		logger.Error("ошибка создания MetricsCollector, используется NopCollector",
			slog.String("error", err.Error()),
		)
		return metrics.NewNopCollector()
	}
	return collector
}

// ProvideTracerProvider инициализирует OTel TracerProvider и возвращает shutdown.
// При ошибке — nop shutdown и запись в лог.
func ProvideTracerProvider(cfg *config.Config, logger logging.Logger) func(context.Context) error {
	if cfg == nil {
		return tracing.NewNopTracerProvider()
	}

	shutdown, err := tracing.NewTracerProvider(cfg.Tracing.ToTracing(), logger)
	if err != nil {
		logger.Error("ошибка инициализации tracing, используется nop provider",
			slog.String("error", err.Error()),
		)
		return tracing.NewNopTracerProvider()
	}
	return shutdown
}

// ProvideLifecycleLogger создаёт lifecycle.Logger по Config.Trace и подписывает
// на события метрики и span-события. Предупреждения вывода уходят в служебный лог.
func ProvideLifecycleLogger(cfg *config.Config, logger logging.Logger, collector metrics.Collector) *lifecycle.Logger {
	lcfg := lifecycle.DefaultConfig()
	if cfg != nil {
		lcfg = cfg.Trace.LifecycleConfig()
	}

	return lifecycle.New(lcfg,
		lifecycle.WithDiagnostics(logger.With(slog.String("subsystem", "lifecycle"))),
		lifecycle.WithObserver(metrics.NewObserver(collector)),
		lifecycle.WithObserver(tracing.NewObserver()),
	)
}
