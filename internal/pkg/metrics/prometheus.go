package metrics

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Kargones/lclog/internal/pkg/logging"
	"github.com/Kargones/lclog/internal/pkg/urlutil"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// namespace — префикс всех метрик.
const namespace = "lclog"

// PrometheusCollector реализует Collector на собственном registry.
type PrometheusCollector struct {
	config   Config
	logger   logging.Logger
	registry *prometheus.Registry

	constructs *prometheus.CounterVec
	destructs  *prometheus.CounterVec
	live       *prometheus.GaugeVec
	messages   *prometheus.CounterVec

	instance string
}

// NewPrometheusCollector создаёт коллектор и регистрирует метрики:
//   - lclog_construct_total{role} (counter)
//   - lclog_destruct_total{role} (counter)
//   - lclog_live_instances{place} (gauge, construct − destruct)
//   - lclog_messages_total{kind} (counter)
func NewPrometheusCollector(config Config, logger logging.Logger) (*PrometheusCollector, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	instance := config.InstanceLabel
	if instance == "" {
		hostname, err := os.Hostname()
		if err != nil {
			logger.Warn("metrics: не удалось получить hostname, instance=unknown", "error", err.Error())
			hostname = "unknown"
		}
		instance = hostname
	}

	constructs := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "construct_total",
			Help:      "Total number of traced object constructions",
		},
		[]string{"role"},
	)
	destructs := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "destruct_total",
			Help:      "Total number of traced object destructions",
		},
		[]string{"role"},
	)
	live := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_instances",
			Help:      "Constructed minus destructed objects per place",
		},
		[]string{"place"},
	)
	messages := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_total",
			Help:      "Total number of log and error lines",
		},
		[]string{"kind"},
	)

	registry := prometheus.NewRegistry()
	for _, c := range []prometheus.Collector{constructs, destructs, live, messages} {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("ошибка регистрации метрики: %w", err)
		}
	}

	return &PrometheusCollector{
		config:     config,
		logger:     logger,
		registry:   registry,
		constructs: constructs,
		destructs:  destructs,
		live:       live,
		messages:   messages,
		instance:   instance,
	}, nil
}

// maxLabelLength ограничивает длину label против взрыва кардинальности.
const maxLabelLength = 128

// sanitizeLabel заменяет управляющие символы и обрезает значение по рунам.
func sanitizeLabel(value string) string {
	clean := strings.Map(func(r rune) rune {
		if r < 0x20 {
			return '_'
		}
		return r
	}, value)

	runes := []rune(clean)
	if len(runes) > maxLabelLength {
		return string(runes[:maxLabelLength])
	}
	return clean
}

// RecordConstruct увеличивает construct_total и live_instances.
func (c *PrometheusCollector) RecordConstruct(role, place string) {
	c.constructs.WithLabelValues(sanitizeLabel(role)).Inc()
	c.live.WithLabelValues(sanitizeLabel(place)).Inc()
}

// RecordDestruct увеличивает destruct_total и уменьшает live_instances.
func (c *PrometheusCollector) RecordDestruct(role, place string) {
	c.destructs.WithLabelValues(sanitizeLabel(role)).Inc()
	c.live.WithLabelValues(sanitizeLabel(place)).Dec()
}

// RecordMessage увеличивает messages_total.
func (c *PrometheusCollector) RecordMessage(kind string) {
	c.messages.WithLabelValues(sanitizeLabel(kind)).Inc()
}

// Push отправляет метрики в Pushgateway. Ошибки логируются, возвращается nil.
func (c *PrometheusCollector) Push(ctx context.Context) error {
	select {
	case <-ctx.Done():
		c.logger.Debug("metrics: push отменён")
		return nil
	default:
	}

	pusher := push.New(c.config.PushgatewayURL, c.config.JobName).
		Gatherer(c.registry).
		Grouping("instance", c.instance)

	pushCtx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	if err := pusher.PushContext(pushCtx); err != nil {
		c.logger.Error("metrics: ошибка отправки в Pushgateway",
			"error", err.Error(),
			"url", urlutil.MaskURL(c.config.PushgatewayURL),
			"job", c.config.JobName,
		)
		return nil
	}

	c.logger.Debug("metrics: отправлены в Pushgateway",
		"url", urlutil.MaskURL(c.config.PushgatewayURL),
		"job", c.config.JobName,
		"instance", c.instance,
	)
	return nil
}

// Registry возвращает внутренний registry (для тестов и scrape-обработчиков).
func (c *PrometheusCollector) Registry() *prometheus.Registry {
	return c.registry
}
