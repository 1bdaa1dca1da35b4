package lifecycle

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FallbackIcon — маркер, который выводится вместо иконки, если роль не распознана.
const FallbackIcon = "==="

// Role описывает архитектурную роль компонента: ключевое слово для поиска
// в имени и иконку для вывода.
type Role struct {
	// Keyword — ключевое слово в camelCase (сравнивается без учёта регистра).
	Keyword string

	// Icon — glyph, который выводится в строке лога.
	Icon string
}

// FallbackRole возвращается Classify, если ни одно ключевое слово не подошло.
var FallbackRole = Role{Icon: FallbackIcon}

// IsFallback сообщает, что роль не была распознана.
func (r Role) IsFallback() bool {
	return r.Keyword == ""
}

// roles — упорядоченная таблица ролей. Побеждает первое совпадение, поэтому
// более специфичные ключевые слова стоят раньше общих:
// tabBarController раньше tabBar, manager раньше session, userSession раньше session,
// *Controller и rootView раньше view.
var roles = []Role{
	{Keyword: "diContainer", Icon: "🫙"},
	{Keyword: "viewController", Icon: "🎥"},
	{Keyword: "overlayController", Icon: "🎥"},
	{Keyword: "navigationController", Icon: "🧭"},
	{Keyword: "tabBarController", Icon: "🗂️"},
	{Keyword: "tabBar", Icon: "📑"},
	{Keyword: "rootView", Icon: "📺"},
	{Keyword: "viewModel", Icon: "🧠"},
	{Keyword: "repository", Icon: "🗄"},
	{Keyword: "manager", Icon: "🤖"},
	{Keyword: "userSession", Icon: "🧔🏻‍♂️"},
	{Keyword: "session", Icon: "💼"},
	{Keyword: "configuration", Icon: "🧾"},
	{Keyword: "customization", Icon: "👕"},
	{Keyword: "keychain", Icon: "🔐"},
	{Keyword: "useCase", Icon: "🎞"},
	{Keyword: "textField", Icon: "✍️"},
	{Keyword: "factory", Icon: "🏭"},
	{Keyword: "coder", Icon: "👨‍💻"},
	{Keyword: "view", Icon: "🏙️"},
	{Keyword: "helper", Icon: "🙏"},
	{Keyword: "button", Icon: "⏺️"},
	// Роли, типичные для Go-сервисов.
	{Keyword: "handler", Icon: "🛎️"},
	{Keyword: "service", Icon: "🛠️"},
	{Keyword: "store", Icon: "📦"},
	{Keyword: "client", Icon: "📡"},
	{Keyword: "worker", Icon: "👷"},
}

// loweredKeywords кэширует ключевые слова в нижнем регистре, индексы совпадают с roles.
var loweredKeywords = func() []string {
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = lower(r.Keyword)
	}
	return out
}()

// Roles возвращает копию таблицы ролей в порядке приоритета.
func Roles() []Role {
	out := make([]Role, len(roles))
	copy(out, roles)
	return out
}

// Classify определяет роль по отображаемому имени.
// Имя приводится к нижнему регистру, затем ищется первое ключевое слово,
// входящее в него подстрокой. Если совпадений нет — FallbackRole.
func Classify(name string) Role {
	if name == "" {
		return FallbackRole
	}
	value := lower(name)
	for i, kw := range loweredKeywords {
		if strings.Contains(value, kw) {
			return roles[i]
		}
	}
	return FallbackRole
}

// lower приводит строку к нижнему регистру без учёта локали.
// cases.Caser хранит состояние, поэтому создаётся на каждый вызов.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
