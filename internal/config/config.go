// Package config загружает настройки lclog из переменных окружения LCLOG_*.
//
// Файл конфигурации не используется: все значения читаются через
// cleanenv.ReadEnv с env-default, затем проверяются Validate.
package config

import (
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/Kargones/lclog/internal/pkg/apperrors"
)

// Config — корневая конфигурация приложения.
type Config struct {
	// Trace — вывод строк жизненного цикла.
	Trace TraceConfig

	// Logging — служебный лог самого lclog.
	Logging LoggingConfig

	// Metrics — Prometheus Pushgateway.
	Metrics MetricsConfig

	// Tracing — OpenTelemetry.
	Tracing TracingConfig
}

// Load читает Config из окружения и проверяет его.
// Ошибки возвращаются как *apperrors.AppError с кодами CONFIG.*.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrConfigLoad,
			"не удалось прочитать переменные окружения LCLOG_*", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет все секции по очереди и возвращает первую ошибку.
func (c *Config) Validate() error {
	checks := []struct {
		section string
		check   func() error
	}{
		{"trace", c.Trace.validate},
		{"logging", c.Logging.validate},
		{"metrics", c.Metrics.validate},
		{"tracing", c.Tracing.validate},
	}
	for _, ch := range checks {
		if err := ch.check(); err != nil {
			return apperrors.NewAppError(apperrors.ErrConfigValidate,
				"некорректная конфигурация "+ch.section, err)
		}
	}
	return nil
}
