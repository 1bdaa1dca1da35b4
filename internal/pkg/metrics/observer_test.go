package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/Kargones/lclog/pkg/lifecycle"
)

// TestObserver_WithLogger проверяет что события Logger доходят до коллектора,
// даже когда вывод выключен.
func TestObserver_WithLogger(t *testing.T) {
	c := newTestCollector(t, "http://localhost:9091")

	cfg := lifecycle.DefaultConfig()
	cfg.Enabled = false
	l := lifecycle.New(cfg,
		lifecycle.WithObserver(NewObserver(c)),
		lifecycle.WithClock(func() time.Time { return time.Unix(0, 0) }),
	)

	l.Construct("", lifecycle.WithFile("/app/UserRepository.swift"))
	l.Construct("", lifecycle.WithFile("/app/Main.swift"))
	l.Log("hello", lifecycle.WithFile("/app/Main.swift"))
	l.ErrorContext(context.Background(), assert.AnError, lifecycle.WithFile("/app/Main.swift"))
	l.Destruct("", lifecycle.WithFile("/app/UserRepository.swift"))

	assert.Equal(t, 1.0, testutil.ToFloat64(c.constructs.WithLabelValues("repository")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.constructs.WithLabelValues(unknownRole)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.destructs.WithLabelValues("repository")))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.live.WithLabelValues("UserRepository")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.live.WithLabelValues("Main")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.messages.WithLabelValues("log")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.messages.WithLabelValues("error")))
}
