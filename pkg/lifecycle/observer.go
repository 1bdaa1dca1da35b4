package lifecycle

import (
	"context"
	"time"
)

// Event описывает одно событие жизненного цикла.
type Event struct {
	Kind Kind

	// Counter — значение счётчика INIT/DEINIT; для log и error равно 0.
	Counter int64

	Place   Place
	Message string

	// Line — строка в том виде, в котором она выводится (без префикса и суффикса).
	Line string

	Time time.Time
}

// Observer получает каждое событие независимо от того, включён ли вывод.
// Реализации не должны блокировать: вызов синхронный.
type Observer interface {
	Observe(ctx context.Context, e Event)
}

// ObserverFunc позволяет использовать функцию как Observer.
type ObserverFunc func(ctx context.Context, e Event)

// Observe вызывает f(ctx, e).
func (f ObserverFunc) Observe(ctx context.Context, e Event) {
	f(ctx, e)
}
