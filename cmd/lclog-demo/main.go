// Package main — демонстрация lclog: собирает App через DI и выводит
// последовательность INIT/log/error/DEINIT внутри root span.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Kargones/lclog/internal/config"
	"github.com/Kargones/lclog/internal/constants"
	"github.com/Kargones/lclog/internal/di"
	"github.com/Kargones/lclog/internal/pkg/tracing"
)

func main() {
	os.Exit(run())
}

// run возвращает exit code; os.Exit вызывается после defer-ов (tracer shutdown, span.End).
func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Не удалось загрузить конфигурацию: %v\n", err)
		return 5
	}

	app, err := di.InitializeApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Не удалось инициализировать приложение: %v\n", err)
		return 5
	}
	l := app.Logger.With(slog.String("trace_id", app.TraceID))
	l.Debug("Информация о сборке",
		slog.String("version", constants.Version),
		slog.String("commit_hash", constants.CommitHash),
	)

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.TracerShutdown(shutdownCtx); err != nil {
			l.Error("ошибка завершения tracing", slog.String("error", err.Error()))
		}
	}()

	ctx := tracing.ContextWithOTelTraceID(context.Background(), app.TraceID)
	ctx, span := otel.Tracer(constants.AppName).Start(ctx, "demo",
		trace.WithAttributes(attribute.String("trace_id", app.TraceID)),
	)
	defer span.End()

	runDemo(ctx, app)

	inits, deinits := app.Lifecycle.Counts()
	l.Info("демонстрация завершена", slog.Int64("inits", inits), slog.Int64("deinits", deinits))

	// Ошибки push логируются внутри Collector.
	_ = app.MetricsCollector.Push(ctx)
	return 0
}

// runDemo создаёт и закрывает несколько объектов, по пути пишет сообщения.
func runDemo(ctx context.Context, app *di.App) {
	repo := newUserRepository(ctx, app.Lifecycle)
	manager := newSessionManager(ctx, app.Lifecycle, repo)

	if err := manager.Login(ctx, "alice"); err != nil {
		app.Lifecycle.ErrorContext(ctx, err)
	}
	if err := manager.Login(ctx, ""); err != nil {
		app.Lifecycle.ErrorContext(ctx, err)
	}

	app.Lifecycle.SetEnabled(false)
	app.Lifecycle.LogContext(ctx, "это сообщение не выводится")
	app.Lifecycle.SetEnabled(true)

	manager.Close(ctx)
	repo.Close(ctx)
	app.Lifecycle.LogContext(ctx, "все объекты закрыты")
}
