package lifecycle

import (
	"fmt"
	"time"
)

// Kind — вид события жизненного цикла.
type Kind string

// Поддерживаемые виды событий.
const (
	KindConstruct Kind = "construct"
	KindDestruct  Kind = "destruct"
	KindLog       Kind = "log"
	KindError     Kind = "error"
)

// Метки строк INIT/DEINIT, выравниваются вправо до ширины labelWidth.
const (
	labelInit   = "INIT"
	labelDeinit = "DEINIT"
	labelWidth  = 6
)

// timeLayout — формат времени для log/error: HH:MM:SS, 24 часа.
const timeLayout = "15:04:05"

// errorMarker предшествует описанию ошибки.
const errorMarker = "‼️ Error: "

// composeLifecycle собирает строку INIT/DEINIT:
//
//	"001   INIT  🗄 UserRepository                 === (loaded)"
//
// Счётчик дополняется нулями до трёх цифр, больше 999 выводится как есть.
func composeLifecycle(label string, counter int64, place Place, message string) string {
	line := fmt.Sprintf("%03d %*s %s", counter, labelWidth, label, place.Boxed())
	if message != "" {
		line += " (" + message + ")"
	}
	return line
}

// composeLog собирает строку log/error:
//
//	"12:04:05 === 🤖 SessionManager(cache) === Loaded ==="
func composeLog(at time.Time, place Place, message string) string {
	return at.Format(timeLayout) + " ===" + place.Compact() + " " + message + " ==="
}

// errorMessage формирует текст сообщения для события error.
func errorMessage(err error) string {
	return errorMarker + Describe(err)
}

// displayText приводит произвольное значение к тексту для Log.
// fmt.Sprint сам перехватывает панику в String().
func displayText(v any) string {
	switch m := v.(type) {
	case string:
		return m
	case error:
		return Describe(m)
	default:
		return fmt.Sprint(v)
	}
}
