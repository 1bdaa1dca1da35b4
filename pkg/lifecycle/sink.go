package lifecycle

import (
	"io"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
)

// Diagnostics принимает служебные предупреждения самого логгера
// (например, ошибки записи). Совместим с internal/pkg/logging.Logger.
type Diagnostics interface {
	Warn(msg string, args ...any)
}

type nopDiagnostics struct{}

func (nopDiagnostics) Warn(string, ...any) {}

// sink пишет готовые строки в writer.
// allowed фиксируется при создании, enabled меняется во время работы.
type sink struct {
	mu      sync.Mutex
	w       io.Writer
	prefix  string
	suffix  string
	allowed bool
	enabled atomic.Bool
	styles  map[Kind]lipgloss.Style
	diag    Diagnostics
}

func newSink(cfg Config, w io.Writer, diag Diagnostics) *sink {
	s := &sink{
		w:       w,
		prefix:  cfg.Prefix,
		suffix:  cfg.Suffix,
		allowed: cfg.outputAllowed(),
		diag:    diag,
	}
	s.enabled.Store(cfg.Enabled)
	if cfg.Color {
		s.styles = newStyles(w)
	}
	return s
}

// newStyles создаёт стили, привязанные к writer: для не-терминала
// lipgloss выбирает ASCII-профиль и escape-последовательностей не будет.
func newStyles(w io.Writer) map[Kind]lipgloss.Style {
	r := lipgloss.NewRenderer(w)
	return map[Kind]lipgloss.Style{
		KindConstruct: r.NewStyle().Foreground(lipgloss.Color("34")),
		KindDestruct:  r.NewStyle().Foreground(lipgloss.Color("214")),
		KindLog:       r.NewStyle().Foreground(lipgloss.Color("250")),
		KindError:     r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}

// active сообщает, будет ли строка выведена прямо сейчас.
func (s *sink) active() bool {
	return s.allowed && s.enabled.Load()
}

// wrap добавляет префикс и суффикс: "<prefix> - <line> <suffix>".
func (s *sink) wrap(line string) string {
	if s.prefix != "" {
		line = s.prefix + " - " + line
	}
	if s.suffix != "" {
		line = line + " " + s.suffix
	}
	return line
}

// write выводит строку, если вывод активен. Ошибки записи не возвращаются,
// а уходят в Diagnostics.
func (s *sink) write(kind Kind, line string) {
	if !s.active() {
		return
	}
	line = s.wrap(line)
	if style, ok := s.styles[kind]; ok {
		line = style.Render(line)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := io.WriteString(s.w, line+"\n"); err != nil {
		s.diag.Warn("lifecycle: не удалось записать строку", "kind", string(kind), "error", err.Error())
	}
}
