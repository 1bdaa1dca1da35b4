package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/lclog/internal/pkg/apperrors"
	"github.com/Kargones/lclog/internal/pkg/logging"
	"github.com/Kargones/lclog/internal/pkg/metrics"
	"github.com/Kargones/lclog/internal/pkg/tracing"
	"github.com/Kargones/lclog/pkg/lifecycle"
)

// TestLoad_Defaults проверяет значения по умолчанию при пустом окружении.
func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Trace.Enabled)
	assert.Equal(t, "debug", cfg.Trace.Mode)
	assert.Empty(t, cfg.Trace.Prefix)
	assert.False(t, cfg.Trace.Color)

	assert.Equal(t, logging.DefaultConfig(), cfg.Logging.ToLogging())

	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "lclog", cfg.Metrics.JobName)
	assert.Equal(t, 10*time.Second, cfg.Metrics.Timeout)

	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, "lclog", cfg.Tracing.ServiceName)
	assert.Equal(t, "development", cfg.Tracing.Environment)
	assert.Equal(t, 5*time.Second, cfg.Tracing.Timeout)
	assert.Equal(t, 1.0, cfg.Tracing.SamplingRate)
}

// TestLoad_EnvOverrides проверяет чтение LCLOG_* переменных.
func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LCLOG_ENABLED", "false")
	t.Setenv("LCLOG_MODE", "Production")
	t.Setenv("LCLOG_PREFIX", "[app]")
	t.Setenv("LCLOG_SUFFIX", "<<")
	t.Setenv("LCLOG_COLOR", "true")
	t.Setenv("LCLOG_LOG_LEVEL", "debug")
	t.Setenv("LCLOG_LOG_FORMAT", "json")
	t.Setenv("LCLOG_METRICS_ENABLED", "true")
	t.Setenv("LCLOG_PUSHGATEWAY_URL", "http://pushgateway:9091")
	t.Setenv("LCLOG_METRICS_TIMEOUT", "3s")
	t.Setenv("LCLOG_TRACING_ENABLED", "true")
	t.Setenv("LCLOG_TRACING_ENDPOINT", "http://jaeger:4318")
	t.Setenv("LCLOG_TRACING_SAMPLING_RATE", "0.25")

	cfg, err := Load()
	require.NoError(t, err)

	lc := cfg.Trace.LifecycleConfig()
	assert.Equal(t, lifecycle.Config{
		Prefix:  "[app]",
		Suffix:  "<<",
		Enabled: false,
		Mode:    lifecycle.ModeProduction,
		Color:   true,
	}, lc)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)

	mc := cfg.Metrics.ToMetrics()
	assert.True(t, mc.Enabled)
	assert.Equal(t, "http://pushgateway:9091", mc.PushgatewayURL)
	assert.Equal(t, 3*time.Second, mc.Timeout)

	tc := cfg.Tracing.ToTracing()
	assert.True(t, tc.Enabled)
	assert.Equal(t, 0.25, tc.SamplingRate)
	assert.NotEmpty(t, tc.Version)
}

// TestLoad_ValidationErrors проверяет коды и причины ошибок валидации.
func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		cause error
	}{
		{"unknown mode", map[string]string{"LCLOG_MODE": "verbose"}, nil},
		{"unknown log level", map[string]string{"LCLOG_LOG_LEVEL": "trace"}, nil},
		{"unknown log format", map[string]string{"LCLOG_LOG_FORMAT": "xml"}, nil},
		{"unknown log output", map[string]string{"LCLOG_LOG_OUTPUT": "syslog"}, nil},
		{"metrics without url", map[string]string{"LCLOG_METRICS_ENABLED": "true"}, metrics.ErrPushgatewayURLRequired},
		{"tracing without endpoint", map[string]string{"LCLOG_TRACING_ENABLED": "true"}, tracing.ErrTracingEndpointRequired},
		{"sampling rate out of range", map[string]string{
			"LCLOG_TRACING_ENABLED":       "true",
			"LCLOG_TRACING_ENDPOINT":      "http://jaeger:4318",
			"LCLOG_TRACING_SAMPLING_RATE": "2",
		}, tracing.ErrTracingSamplingRateInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			require.Error(t, err)
			assert.Nil(t, cfg)

			var appErr *apperrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, apperrors.ErrConfigValidate, appErr.Code)
			if tt.cause != nil {
				assert.ErrorIs(t, err, tt.cause)
			}
		})
	}
}

// TestLoad_ParseError проверяет код CONFIG.LOAD_FAILED при неразбираемом значении.
func TestLoad_ParseError(t *testing.T) {
	t.Setenv("LCLOG_METRICS_TIMEOUT", "ten seconds")

	_, err := Load()
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrConfigLoad, appErr.Code)
	// В строке lifecycle выводится только описание, без кода.
	assert.Equal(t, appErr.Message, lifecycle.Describe(err))
}

// TestTraceConfig_LifecycleConfig_EmptyMode проверяет трактовку пустого режима.
func TestTraceConfig_LifecycleConfig_EmptyMode(t *testing.T) {
	lc := TraceConfig{Enabled: true}.LifecycleConfig()
	assert.Equal(t, lifecycle.ModeDebug, lc.Mode)
	assert.NoError(t, TraceConfig{}.validate())
}

// TestLoggingConfig_ToLogging_ZeroSizes проверяет подстановку defaults.
func TestLoggingConfig_ToLogging_ZeroSizes(t *testing.T) {
	lc := LoggingConfig{Level: "info", Format: "text", Output: "stderr"}.ToLogging()
	assert.Equal(t, logging.DefaultMaxSize, lc.MaxSize)
	assert.Equal(t, logging.DefaultMaxBackups, lc.MaxBackups)
	assert.Equal(t, logging.DefaultMaxAge, lc.MaxAge)
	assert.Equal(t, logging.DefaultFilePath, lc.FilePath)
	assert.False(t, lc.Compress)
}

// TestLoggingConfig_FileOutputRequiresPath проверяет обязательность пути для output=file.
func TestLoggingConfig_FileOutputRequiresPath(t *testing.T) {
	lc := LoggingConfig{Level: "warn", Format: "text", Output: "file"}
	assert.Error(t, lc.validate())

	lc.FilePath = "/tmp/lclog.log"
	assert.NoError(t, lc.validate())
}
