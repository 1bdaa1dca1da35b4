package config

import (
	"fmt"
	"strings"

	"github.com/Kargones/lclog/pkg/lifecycle"
)

// TraceConfig содержит настройки вывода строк INIT/DEINIT/log.
type TraceConfig struct {
	// Enabled — начальное значение runtime-флага вывода.
	Enabled bool `env:"LCLOG_ENABLED" env-default:"true"`

	// Mode: "debug" или "production". В production вывод выключен.
	Mode string `env:"LCLOG_MODE" env-default:"debug"`

	// Prefix и Suffix оборачивают каждую строку.
	Prefix string `env:"LCLOG_PREFIX"`
	Suffix string `env:"LCLOG_SUFFIX"`

	// Color раскрашивает строки, если вывод — терминал.
	Color bool `env:"LCLOG_COLOR" env-default:"false"`
}

func (c TraceConfig) mode() lifecycle.Mode {
	return lifecycle.Mode(strings.ToLower(strings.TrimSpace(c.Mode)))
}

func (c TraceConfig) validate() error {
	switch c.mode() {
	case lifecycle.ModeDebug, lifecycle.ModeProduction, "":
		return nil
	default:
		return fmt.Errorf("LCLOG_MODE: ожидается %q или %q, получено %q",
			lifecycle.ModeDebug, lifecycle.ModeProduction, c.Mode)
	}
}

// LifecycleConfig переводит настройки в lifecycle.Config.
// Пустой Mode трактуется как debug.
func (c TraceConfig) LifecycleConfig() lifecycle.Config {
	mode := c.mode()
	if mode == "" {
		mode = lifecycle.ModeDebug
	}
	return lifecycle.Config{
		Prefix:  c.Prefix,
		Suffix:  c.Suffix,
		Enabled: c.Enabled,
		Mode:    mode,
		Color:   c.Color,
	}
}
