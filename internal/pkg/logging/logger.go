// Package logging предоставляет служебный структурированный лог lclog:
// предупреждения конфигурации, ошибки отправки метрик и инициализации трейсинга.
// Строки lifecycle (INIT/DEINIT/log) через этот пакет НЕ проходят.
package logging

// Logger — интерфейс служебного лога.
//
//	logger.Warn("metrics: push не удался", "error", err.Error())
//
// Logger пишет только в stderr или файл, никогда в stdout:
// stdout занят строками lifecycle.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	// With возвращает Logger с атрибутами, добавляемыми ко всем записям.
	With(args ...any) Logger
}
