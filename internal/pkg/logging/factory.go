package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger создаёт служебный Logger по конфигурации.
//
// config.Output:
//   - "stderr" или "": os.Stderr
//   - "file": файл с ротацией через lumberjack (MaxSize/MaxBackups/MaxAge/Compress)
//
// Неизвестный output и ошибки подготовки файла приводят к fallback на stderr
// с предупреждением в stderr.
func NewLogger(config Config) Logger {
	var w io.Writer

	switch config.Output {
	case OutputFile:
		w = newRotatingWriter(config)
	case OutputStderr, "":
		w = os.Stderr
	default:
		warnStderr(fmt.Sprintf("lclog: неизвестный logging output %q, используется stderr", config.Output))
		w = os.Stderr
	}

	return NewLoggerWithWriter(config, w)
}

// newRotatingWriter создаёт lumberjack writer и при необходимости директорию для него.
func newRotatingWriter(config Config) io.Writer {
	if config.FilePath == "" {
		warnStderr("lclog: logging output=file, но путь к файлу пуст, используется stderr")
		return os.Stderr
	}

	dir := filepath.Dir(config.FilePath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			warnStderr(fmt.Sprintf("lclog: не удалось создать директорию логов %q: %v, используется stderr", dir, err))
			return os.Stderr
		}
	}

	return &lumberjack.Logger{
		Filename:   config.FilePath,
		MaxSize:    config.MaxSize,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge,
		Compress:   config.Compress,
	}
}

func warnStderr(msg string) {
	_, _ = os.Stderr.WriteString("WARNING: " + msg + "\n") //nolint:errcheck // bootstrap stderr
}

// NewLoggerWithWriter создаёт Logger, пишущий в w. Используется в тестах.
func NewLoggerWithWriter(config Config, w io.Writer) Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(config.Level)}

	var handler slog.Handler
	switch config.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return NewSlogAdapter(slog.New(handler).With("component", "lclog"))
}

// parseLevel переводит строковый уровень в slog.Level.
// Неизвестное значение трактуется как warn (DefaultLevel).
func parseLevel(level string) slog.Level {
	switch level {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
