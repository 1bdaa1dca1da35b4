package lifecycle

import (
	"errors"
	"fmt"
)

// Describer реализуют доменные ошибки, у которых есть человекочитаемое описание.
// Если в цепочке ошибки есть Describer, Error выводит его описание вместо Error().
type Describer interface {
	ErrorDescription() string
}

// Describe возвращает текст ошибки для строки лога.
// Ищет Describer в цепочке через errors.As, иначе использует err.Error().
// Никогда не паникует: паника внутри методов ошибки перехватывается,
// в крайнем случае выводится только тип ошибки.
func Describe(err error) string {
	if err == nil {
		return "<nil>"
	}

	var d Describer
	if safeAs(err, &d) {
		if desc, ok := safeString(d.ErrorDescription); ok && desc != "" {
			return desc
		}
	}
	if text, ok := safeString(err.Error); ok {
		return text
	}
	return fmt.Sprintf("%T (описание недоступно)", err)
}

// safeAs — errors.As, переживающий панику в пользовательском As/Unwrap.
func safeAs(err error, target *Describer) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return errors.As(err, target)
}

// safeString вызывает fn и сообщает, завершился ли вызов без паники.
func safeString(fn func() string) (s string, ok bool) {
	defer func() {
		if recover() != nil {
			s, ok = "", false
		}
	}()
	return fn(), true
}
