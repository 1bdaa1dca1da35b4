//go:build lclog_release

package lifecycle

// debugBuild отключает вывод полностью: сборка с тегом lclog_release.
const debugBuild = false
