package logging

// Форматы служебного лога.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Уровни служебного лога.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Куда пишется служебный лог.
const (
	OutputStderr = "stderr"
	OutputFile   = "file"
)

// Значения по умолчанию. Служебный лог по умолчанию молчит до уровня warn,
// чтобы не смешиваться со строками lifecycle в консоли.
const (
	DefaultLevel      = LevelWarn
	DefaultFormat     = FormatText
	DefaultOutput     = OutputStderr
	DefaultFilePath   = "/var/log/lclog.log"
	DefaultMaxSize    = 10 // MB
	DefaultMaxBackups = 3
	DefaultMaxAge     = 7 // days
	DefaultCompress   = true
)

// DefaultConfig возвращает Config со значениями по умолчанию.
func DefaultConfig() Config {
	return Config{
		Level:      DefaultLevel,
		Format:     DefaultFormat,
		Output:     DefaultOutput,
		FilePath:   DefaultFilePath,
		MaxSize:    DefaultMaxSize,
		MaxBackups: DefaultMaxBackups,
		MaxAge:     DefaultMaxAge,
		Compress:   DefaultCompress,
	}
}

// Config содержит настройки служебного лога.
type Config struct {
	// Format: "json" или "text".
	Format string

	// Level — минимальный уровень: "debug", "info", "warn", "error".
	Level string

	// Output: "stderr" или "file".
	Output string

	// FilePath — путь к файлу при Output="file".
	FilePath string

	// MaxSize — размер файла в MB до ротации.
	MaxSize int

	// MaxBackups — сколько ротированных файлов хранить.
	MaxBackups int

	// MaxAge — сколько дней хранить ротированные файлы.
	MaxAge int

	// Compress — сжимать ротированные файлы gzip.
	Compress bool
}
