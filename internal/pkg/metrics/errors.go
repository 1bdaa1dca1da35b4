package metrics

import "errors"

var (
	// ErrPushgatewayURLRequired — URL Pushgateway не задан при включённых метриках.
	ErrPushgatewayURLRequired = errors.New("pushgateway URL is required when metrics enabled")

	// ErrPushgatewayURLInvalid — URL Pushgateway без схемы или хоста.
	ErrPushgatewayURLInvalid = errors.New("pushgateway URL has invalid format")

	// ErrJobNameRequired — не задано имя job.
	ErrJobNameRequired = errors.New("job name is required")

	// ErrInvalidTimeout — таймаут не положительный.
	ErrInvalidTimeout = errors.New("timeout must be positive")
)
