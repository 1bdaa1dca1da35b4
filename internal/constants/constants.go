// Package constants содержит общие константы lclog.
package constants

// AppName — имя приложения: tracer, job Pushgateway, component в служебном логе.
const AppName = "lclog"

// Version и CommitHash задаются при сборке:
//
//	go build -ldflags "-X github.com/Kargones/lclog/internal/constants.Version=1.2.0"
var (
	Version    = "dev"
	CommitHash = "unknown"
)
