package lifecycle

import "runtime"

// callerDepth — число кадров между пользовательским кодом и runtime.Caller:
// callerFile → Logger.emit → публичный метод Logger → пользователь.
const callerDepth = 3

// CallOption задаёт параметры отдельного вызова.
type CallOption func(*callOptions)

type callOptions struct {
	typ     string
	file    string
	hasFile bool
	skip    int
}

// WithType добавляет к месту вызова аннотацию типа: "Name(typ)".
func WithType(typ string) CallOption {
	return func(o *callOptions) { o.typ = typ }
}

// WithFile задаёт путь к файлу явно вместо автоматического определения.
func WithFile(path string) CallOption {
	return func(o *callOptions) {
		o.file = path
		o.hasFile = true
	}
}

// WithCallerSkip пропускает дополнительные кадры стека. Нужен обёрткам
// над Logger, чтобы местом вызова считался код обёртки, а не сама обёртка.
func WithCallerSkip(skip int) CallOption {
	return func(o *callOptions) { o.skip += skip }
}

func applyCallOptions(opts []CallOption) callOptions {
	var o callOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// callerFile возвращает путь к файлу вызывающего кода или "" если стек недоступен.
func callerFile(skip int) string {
	_, file, _, ok := runtime.Caller(callerDepth + skip)
	if !ok {
		return ""
	}
	return file
}
