package lifecycle

import (
	"context"
	"io"
	"os"
	"sync/atomic"
	"time"
)

// Logger печатает строки о создании и уничтожении объектов и произвольные
// сообщения. Создаётся один раз в composition root и передаётся потребителям.
//
// Безопасен для конкурентного использования: счётчики и флаг enabled атомарны,
// запись строки защищена мьютексом.
type Logger struct {
	sink      *sink
	now       func() time.Time
	observers []Observer

	initCount   atomic.Int64
	deinitCount atomic.Int64
}

// Option настраивает Logger при создании.
type Option func(*options)

type options struct {
	w         io.Writer
	now       func() time.Time
	observers []Observer
	diag      Diagnostics
}

// WithWriter заменяет os.Stdout на w.
func WithWriter(w io.Writer) Option {
	return func(o *options) { o.w = w }
}

// WithClock задаёт источник текущего времени для log/error.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithObserver подписывает obs на все события.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observers = append(o.observers, obs)
		}
	}
}

// WithDiagnostics задаёт получателя служебных предупреждений.
func WithDiagnostics(d Diagnostics) Option {
	return func(o *options) { o.diag = d }
}

// New создаёт Logger. Решение о том, разрешён ли вывод в текущей сборке
// и режиме (cfg.Mode), принимается здесь один раз.
func New(cfg Config, opts ...Option) *Logger {
	o := options{
		w:    os.Stdout,
		now:  time.Now,
		diag: nopDiagnostics{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.w == nil {
		o.w = os.Stdout
	}
	if o.now == nil {
		o.now = time.Now
	}
	if o.diag == nil {
		o.diag = nopDiagnostics{}
	}

	return &Logger{
		sink:      newSink(cfg, o.w, o.diag),
		now:       o.now,
		observers: o.observers,
	}
}

// Construct печатает строку INIT и увеличивает счётчик созданий.
//
//	func NewUserRepository(log *lifecycle.Logger) *UserRepository {
//	    log.Construct("")
//	    ...
//	}
func (l *Logger) Construct(message string, opts ...CallOption) {
	l.emit(context.Background(), KindConstruct, message, opts)
}

// ConstructContext — Construct с контекстом для observers.
func (l *Logger) ConstructContext(ctx context.Context, message string, opts ...CallOption) {
	l.emit(ctx, KindConstruct, message, opts)
}

// Destruct печатает строку DEINIT и увеличивает счётчик уничтожений.
func (l *Logger) Destruct(message string, opts ...CallOption) {
	l.emit(context.Background(), KindDestruct, message, opts)
}

// DestructContext — Destruct с контекстом для observers.
func (l *Logger) DestructContext(ctx context.Context, message string, opts ...CallOption) {
	l.emit(ctx, KindDestruct, message, opts)
}

// Log печатает произвольное сообщение с временем и местом вызова.
func (l *Logger) Log(message any, opts ...CallOption) {
	l.emit(context.Background(), KindLog, displayText(message), opts)
}

// LogContext — Log с контекстом для observers.
func (l *Logger) LogContext(ctx context.Context, message any, opts ...CallOption) {
	l.emit(ctx, KindLog, displayText(message), opts)
}

// Error печатает ошибку как сообщение Log с пометкой "‼️ Error: ".
// Описание берётся из Describer, если ошибка его реализует.
func (l *Logger) Error(err error, opts ...CallOption) {
	l.emit(context.Background(), KindError, errorMessage(err), opts)
}

// ErrorContext — Error с контекстом для observers.
func (l *Logger) ErrorContext(ctx context.Context, err error, opts ...CallOption) {
	l.emit(ctx, KindError, errorMessage(err), opts)
}

// SetEnabled включает или выключает вывод во время работы.
// В production-режиме вывод остаётся выключенным.
func (l *Logger) SetEnabled(enabled bool) {
	l.sink.enabled.Store(enabled)
}

// Enabled возвращает значение runtime-флага вывода.
func (l *Logger) Enabled() bool {
	return l.sink.enabled.Load()
}

// Active сообщает, будут ли строки действительно выводиться.
func (l *Logger) Active() bool {
	return l.sink.active()
}

// Counts возвращает текущие значения счётчиков INIT и DEINIT.
func (l *Logger) Counts() (inits, deinits int64) {
	return l.initCount.Load(), l.deinitCount.Load()
}

// emit — общий путь всех операций. Должен вызываться напрямую из публичного
// метода: от этого зависит глубина стека в callerFile.
func (l *Logger) emit(ctx context.Context, kind Kind, message string, opts []CallOption) {
	o := applyCallOptions(opts)
	file := o.file
	if !o.hasFile {
		file = callerFile(o.skip)
	}

	var counter int64
	switch kind {
	case KindConstruct:
		counter = l.initCount.Add(1)
	case KindDestruct:
		counter = l.deinitCount.Add(1)
	}

	if !l.sink.active() && len(l.observers) == 0 {
		return
	}

	place := NewPlace(file, o.typ)
	now := l.now()

	var line string
	switch kind {
	case KindConstruct:
		line = composeLifecycle(labelInit, counter, place, message)
	case KindDestruct:
		line = composeLifecycle(labelDeinit, counter, place, message)
	default:
		line = composeLog(now, place, message)
	}

	l.sink.write(kind, line)

	if len(l.observers) == 0 {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	e := Event{
		Kind:    kind,
		Counter: counter,
		Place:   place,
		Message: message,
		Line:    line,
		Time:    now,
	}
	for _, obs := range l.observers {
		obs.Observe(ctx, e)
	}
}
