//go:build !lclog_release

package lifecycle

// debugBuild включает вывод в обычной сборке.
// Для production-сборки используйте тег lclog_release.
const debugBuild = true
