package di

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/lclog/internal/config"
	"github.com/Kargones/lclog/internal/pkg/metrics"
	capture "github.com/Kargones/lclog/internal/pkg/testutil"
	"github.com/Kargones/lclog/pkg/lifecycle"
)

// defaultConfig загружает Config из окружения теста.
func defaultConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load()
	require.NoError(t, err)
	return cfg
}

// TestProvideLogger проверяет создание служебного логгера с nil и обычным Config.
func TestProvideLogger(t *testing.T) {
	assert.NotNil(t, ProvideLogger(nil))
	assert.NotNil(t, ProvideLogger(defaultConfig(t)))
}

// TestProvideTraceID проверяет формат trace_id.
func TestProvideTraceID(t *testing.T) {
	id := ProvideTraceID()
	assert.Len(t, id, 32)
	assert.NotEqual(t, id, ProvideTraceID())
}

// TestProvideMetricsCollector проверяет выбор реализации Collector.
func TestProvideMetricsCollector(t *testing.T) {
	logger := ProvideLogger(nil)

	t.Run("nil config", func(t *testing.T) {
		assert.IsType(t, &metrics.NopCollector{}, ProvideMetricsCollector(nil, logger))
	})

	t.Run("disabled", func(t *testing.T) {
		assert.IsType(t, &metrics.NopCollector{}, ProvideMetricsCollector(defaultConfig(t), logger))
	})

	t.Run("enabled", func(t *testing.T) {
		cfg := defaultConfig(t)
		cfg.Metrics.Enabled = true
		cfg.Metrics.PushgatewayURL = "http://localhost:9091"
		assert.IsType(t, &metrics.PrometheusCollector{}, ProvideMetricsCollector(cfg, logger))
	})

	t.Run("invalid falls back to nop", func(t *testing.T) {
		cfg := defaultConfig(t)
		cfg.Metrics.Enabled = true
		cfg.Metrics.PushgatewayURL = ""
		assert.IsType(t, &metrics.NopCollector{}, ProvideMetricsCollector(cfg, logger))
	})
}

// TestProvideTracerProvider проверяет nop shutdown для выключенного и некорректного трейсинга.
func TestProvideTracerProvider(t *testing.T) {
	logger := ProvideLogger(nil)

	shutdown := ProvideTracerProvider(nil, logger)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))

	cfg := defaultConfig(t)
	shutdown = ProvideTracerProvider(cfg, logger)
	assert.NoError(t, shutdown(context.Background()))

	cfg.Tracing.Enabled = true
	cfg.Tracing.Endpoint = ""
	shutdown = ProvideTracerProvider(cfg, logger)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

// TestProvideLifecycleLogger_Config проверяет передачу Config.Trace в lifecycle.Logger.
func TestProvideLifecycleLogger_Config(t *testing.T) {
	logger := ProvideLogger(nil)

	cfg := defaultConfig(t)
	cfg.Trace.Prefix = "[demo]"
	out := capture.CaptureStdout(t, func() {
		l := ProvideLifecycleLogger(cfg, logger, metrics.NewNopCollector())
		l.Construct("", lifecycle.WithFile("UserRepository.swift"))
	})
	assert.True(t, strings.HasPrefix(out, "[demo] - 001   INIT  🗄 UserRepository"), out)

	cfg.Trace.Mode = "production"
	out = capture.CaptureStdout(t, func() {
		l := ProvideLifecycleLogger(cfg, logger, metrics.NewNopCollector())
		assert.False(t, l.Active())
		l.Construct("", lifecycle.WithFile("UserRepository.swift"))
	})
	assert.Empty(t, out)

	l := ProvideLifecycleLogger(nil, logger, metrics.NewNopCollector())
	assert.True(t, l.Enabled())
}

// TestProvideLifecycleLogger_Metrics проверяет что события попадают в Collector
// даже при выключенном выводе.
func TestProvideLifecycleLogger_Metrics(t *testing.T) {
	logger := ProvideLogger(nil)
	cfg := defaultConfig(t)
	cfg.Trace.Enabled = false
	cfg.Metrics.Enabled = true
	cfg.Metrics.PushgatewayURL = "http://localhost:9091"
	cfg.Metrics.Timeout = time.Second

	collector := ProvideMetricsCollector(cfg, logger)
	prom, ok := collector.(*metrics.PrometheusCollector)
	require.True(t, ok)

	l := ProvideLifecycleLogger(cfg, logger, collector)
	l.Construct("", lifecycle.WithFile("UserRepository.swift"))
	l.Construct("", lifecycle.WithFile("SessionManager.swift"))
	l.Destruct("", lifecycle.WithFile("SessionManager.swift"))
	l.Log("hello", lifecycle.WithFile("SessionManager.swift"))

	count, err := testutil.GatherAndCount(prom.Registry(), "lclog_construct_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "по одной серии на роль")

	expected := `
# HELP lclog_live_instances Constructed minus destructed objects per place
# TYPE lclog_live_instances gauge
lclog_live_instances{place="SessionManager"} 0
lclog_live_instances{place="UserRepository"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(prom.Registry(), strings.NewReader(expected), "lclog_live_instances"))
}
