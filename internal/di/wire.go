//go:build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/Kargones/lclog/internal/config"
)

//go:generate wire

// ProviderSet объединяет все провайдеры приложения.
var ProviderSet = wire.NewSet(
	ProvideLogger,
	ProvideTraceID,
	ProvideMetricsCollector,
	ProvideTracerProvider,
	ProvideLifecycleLogger,
	wire.Struct(new(App), "*"),
)

// InitializeApp создаёт App из загруженного Config.
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	app, err := di.InitializeApp(cfg)
func InitializeApp(cfg *config.Config) (*App, error) {
	wire.Build(ProviderSet)
	return nil, nil
}
