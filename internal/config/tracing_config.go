package config

import (
	"time"

	"github.com/Kargones/lclog/internal/constants"
	"github.com/Kargones/lclog/internal/pkg/tracing"
)

// TracingConfig содержит настройки OpenTelemetry.
type TracingConfig struct {
	Enabled bool `env:"LCLOG_TRACING_ENABLED" env-default:"false"`

	// Endpoint — OTLP HTTP, например "http://jaeger:4318".
	Endpoint string `env:"LCLOG_TRACING_ENDPOINT"`

	ServiceName string `env:"LCLOG_TRACING_SERVICE" env-default:"lclog"`
	Environment string `env:"LCLOG_TRACING_ENVIRONMENT" env-default:"development"`

	// Insecure — HTTP без TLS.
	Insecure bool `env:"LCLOG_TRACING_INSECURE" env-default:"false"`

	Timeout      time.Duration `env:"LCLOG_TRACING_TIMEOUT" env-default:"5s"`
	SamplingRate float64       `env:"LCLOG_TRACING_SAMPLING_RATE" env-default:"1.0"`
}

func (c TracingConfig) validate() error {
	tc := c.ToTracing()
	return tc.Validate()
}

// ToTracing переводит настройки в tracing.Config. Version берётся из сборки.
func (c TracingConfig) ToTracing() tracing.Config {
	return tracing.Config{
		Enabled:      c.Enabled,
		Endpoint:     c.Endpoint,
		ServiceName:  c.ServiceName,
		Version:      constants.Version,
		Environment:  c.Environment,
		Insecure:     c.Insecure,
		Timeout:      c.Timeout,
		SamplingRate: c.SamplingRate,
	}
}
