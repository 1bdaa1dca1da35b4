package lifecycle

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type describedError struct {
	desc string
}

func (e *describedError) Error() string            { return "raw: " + e.desc }
func (e *describedError) ErrorDescription() string { return e.desc }

type panickyError struct{}

func (panickyError) Error() string { panic("boom") }

type panickyDescriber struct{}

func (panickyDescriber) Error() string            { return "fallback text" }
func (panickyDescriber) ErrorDescription() string { panic("boom") }

// TestDescribe проверяет выбор описания ошибки.
func TestDescribe(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil", nil, "<nil>"},
		{"plain error", errors.New("connection refused"), "connection refused"},
		{"describer", &describedError{desc: "Нет соединения"}, "Нет соединения"},
		{"wrapped describer", fmt.Errorf("load: %w", &describedError{desc: "Нет соединения"}), "Нет соединения"},
		{"empty description falls back to Error", &describedError{desc: ""}, "raw: "},
		{"describer panics", panickyDescriber{}, "fallback text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Describe(tt.err))
		})
	}
}

// TestDescribe_NeverPanics проверяет что паника в Error() не выходит наружу.
func TestDescribe_NeverPanics(t *testing.T) {
	assert.NotPanics(t, func() {
		got := Describe(panickyError{})
		assert.Contains(t, got, "panickyError")
	})

	var nilDescribed *describedError
	assert.NotPanics(t, func() {
		got := Describe(nilDescribed)
		assert.Contains(t, got, "describedError")
	})
}
