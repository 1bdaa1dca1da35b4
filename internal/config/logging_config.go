package config

import (
	"fmt"

	"github.com/Kargones/lclog/internal/pkg/logging"
)

// LoggingConfig содержит настройки служебного лога.
//
// Defaults должны совпадать с logging.DefaultXxx.
type LoggingConfig struct {
	// Level: debug, info, warn, error.
	Level string `env:"LCLOG_LOG_LEVEL" env-default:"warn"`

	// Format: json, text.
	Format string `env:"LCLOG_LOG_FORMAT" env-default:"text"`

	// Output: stderr, file.
	Output string `env:"LCLOG_LOG_OUTPUT" env-default:"stderr"`

	// FilePath — путь к файлу при Output=file.
	FilePath string `env:"LCLOG_LOG_FILE_PATH" env-default:"/var/log/lclog.log"`

	MaxSize    int  `env:"LCLOG_LOG_MAX_SIZE" env-default:"10"`
	MaxBackups int  `env:"LCLOG_LOG_MAX_BACKUPS" env-default:"3"`
	MaxAge     int  `env:"LCLOG_LOG_MAX_AGE" env-default:"7"`
	Compress   bool `env:"LCLOG_LOG_COMPRESS" env-default:"true"`
}

func (c LoggingConfig) validate() error {
	switch c.Level {
	case logging.LevelDebug, logging.LevelInfo, logging.LevelWarn, logging.LevelError:
	default:
		return fmt.Errorf("LCLOG_LOG_LEVEL: неизвестный уровень %q", c.Level)
	}
	switch c.Format {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("LCLOG_LOG_FORMAT: неизвестный формат %q", c.Format)
	}
	switch c.Output {
	case logging.OutputStderr:
	case logging.OutputFile:
		if c.FilePath == "" {
			return fmt.Errorf("LCLOG_LOG_FILE_PATH обязателен при LCLOG_LOG_OUTPUT=file")
		}
	default:
		return fmt.Errorf("LCLOG_LOG_OUTPUT: неизвестный вывод %q", c.Output)
	}
	return nil
}

// ToLogging переводит настройки в logging.Config.
// Нулевые размеры ротации заменяются значениями по умолчанию.
func (c LoggingConfig) ToLogging() logging.Config {
	out := logging.DefaultConfig()
	out.Level = c.Level
	out.Format = c.Format
	out.Output = c.Output
	if c.FilePath != "" {
		out.FilePath = c.FilePath
	}
	if c.MaxSize > 0 {
		out.MaxSize = c.MaxSize
	}
	if c.MaxBackups > 0 {
		out.MaxBackups = c.MaxBackups
	}
	if c.MaxAge > 0 {
		out.MaxAge = c.MaxAge
	}
	out.Compress = c.Compress
	return out
}
