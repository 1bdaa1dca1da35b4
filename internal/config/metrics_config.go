package config

import (
	"time"

	"github.com/Kargones/lclog/internal/pkg/metrics"
)

// MetricsConfig содержит настройки отправки метрик в Pushgateway.
type MetricsConfig struct {
	Enabled bool `env:"LCLOG_METRICS_ENABLED" env-default:"false"`

	// PushgatewayURL, например "http://pushgateway:9091".
	PushgatewayURL string `env:"LCLOG_PUSHGATEWAY_URL"`

	JobName string        `env:"LCLOG_METRICS_JOB" env-default:"lclog"`
	Timeout time.Duration `env:"LCLOG_METRICS_TIMEOUT" env-default:"10s"`

	// InstanceLabel; пусто — hostname.
	InstanceLabel string `env:"LCLOG_METRICS_INSTANCE"`
}

func (c MetricsConfig) validate() error {
	mc := c.ToMetrics()
	return mc.Validate()
}

// ToMetrics переводит настройки в metrics.Config.
func (c MetricsConfig) ToMetrics() metrics.Config {
	return metrics.Config{
		Enabled:        c.Enabled,
		PushgatewayURL: c.PushgatewayURL,
		JobName:        c.JobName,
		Timeout:        c.Timeout,
		InstanceLabel:  c.InstanceLabel,
	}
}
