// Package apperrors предоставляет структурированные ошибки lclog.
package apperrors

import "fmt"

// Коды ошибок в формате CATEGORY.SPECIFIC.
const (
	// Category: CONFIG — чтение и проверка переменных окружения LCLOG_*.
	ErrConfigLoad     = "CONFIG.LOAD_FAILED"
	ErrConfigValidate = "CONFIG.VALIDATION_FAILED"

	// Category: METRICS — создание коллектора метрик.
	ErrMetricsInit = "METRICS.INIT_FAILED"

	// Category: TRACING — инициализация OTel TracerProvider.
	ErrTracingInit = "TRACING.INIT_FAILED"
)

// AppError — ошибка с машиночитаемым кодом.
//
// Реализует lifecycle.Describer: в строке "‼️ Error:" выводится только Message,
// без кода и причины.
//
//	return apperrors.NewAppError(apperrors.ErrConfigValidate,
//	    "недопустимое значение LCLOG_MODE", err)
type AppError struct {
	// Code — код в формате CATEGORY.SPECIFIC.
	Code string `json:"code"`

	// Message — человекочитаемое описание. Не должно содержать секретов.
	Message string `json:"message"`

	// Cause — исходная ошибка, не сериализуется.
	Cause error `json:"-"`
}

// Error реализует интерфейс error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap возвращает причину для errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// ErrorDescription возвращает описание для строки лога lifecycle.
func (e *AppError) ErrorDescription() string {
	return e.Message
}

// NewAppError создаёт AppError.
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}
