// Package lifecycle предоставляет отладочный логгер жизненного цикла объектов.
//
// Logger печатает строки четырёх видов:
//
//	001   INIT  🗄 UserRepository                           ===
//	12:04:05 === 🤖 SessionManager(cache) === Loaded ===
//	12:04:06 === 🤖 SessionManager === ‼️ Error: token expired ===
//	001 DEINIT  🗄 UserRepository                           ===
//
// Место вызова (имя файла) определяется автоматически через runtime.Caller,
// роль компонента — по ключевым словам в имени файла (см. Roles).
//
// Вывод отключается тремя способами: тегом сборки lclog_release,
// режимом ModeProduction в Config и флагом Logger.SetEnabled(false).
// Счётчики INIT/DEINIT увеличиваются всегда.
package lifecycle
