package lifecycle

// Mode определяет режим сборки/запуска, в котором работает вывод.
type Mode string

// Поддерживаемые режимы.
const (
	// ModeDebug — вывод включён (значение по умолчанию).
	ModeDebug Mode = "debug"

	// ModeProduction — вывод полностью отключён независимо от Enabled.
	ModeProduction Mode = "production"
)

// Config содержит настройки Logger. После New меняется только Enabled
// (через Logger.SetEnabled).
type Config struct {
	// Prefix добавляется перед строкой: "<prefix> - <line>". Пустой — не выводится.
	Prefix string

	// Suffix добавляется после строки: "<line> <suffix>". Пустой — не выводится.
	Suffix string

	// Enabled — начальное значение runtime-флага вывода.
	Enabled bool

	// Mode — режим запуска. Пустое значение трактуется как ModeDebug.
	Mode Mode

	// Color раскрашивает строки через lipgloss (только для терминала).
	Color bool
}

// DefaultConfig возвращает Config со значениями по умолчанию:
// вывод включён, режим debug, без префикса, суффикса и цвета.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Mode:    ModeDebug,
	}
}

// outputAllowed сообщает, разрешён ли вывод с учётом тега сборки и режима.
// Вычисляется один раз при создании Logger.
func (c Config) outputAllowed() bool {
	return debugBuild && c.Mode != ModeProduction
}
