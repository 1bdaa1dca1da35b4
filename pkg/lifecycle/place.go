package lifecycle

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// boxWidth — колонка, до которой дополняется пробелами boxed-представление.
const boxWidth = 50

// Place — вычисляемое место вызова: имя, выведенное из пути к файлу,
// необязательный тип и распознанная роль.
type Place struct {
	// Name — имя файла без директорий и расширения, сегменты склеены в camelCase.
	Name string

	// Type — явная аннотация типа, выводится в скобках. Может быть пустой.
	Type string

	// Role — роль, определённая по Name (без учёта Type).
	Role Role
}

// NewPlace строит Place по пути к файлу и необязательному типу.
func NewPlace(filePath, typ string) Place {
	name := fileName(lastPathComponent(filePath))
	return Place{
		Name: name,
		Type: typ,
		Role: Classify(name),
	}
}

// Label возвращает имя с типом в скобках: "SessionManager(cache)".
func (p Place) Label() string {
	if p.Type == "" {
		return p.Name
	}
	return p.Name + "(" + p.Type + ")"
}

// Boxed возвращает представление для INIT/DEINIT, выровненное до boxWidth:
//
//	" 🗄 UserRepository                            ==="
//
// Отступ не меньше одного пробела. Ширина считается в графемах, чтобы
// составные emoji учитывались как один символ.
func (p Place) Boxed() string {
	label := p.Label()
	length := uniseg.GraphemeClusterCount(p.Role.Icon) + uniseg.GraphemeClusterCount(label) + 5
	if p.Role.IsFallback() {
		length--
	}
	pad := max(boxWidth-length, 1)
	return " " + p.Role.Icon + " " + label + strings.Repeat(" ", pad) + "==="
}

// Compact возвращает представление без выравнивания: " 🤖 SessionManager(cache) ===".
func (p Place) Compact() string {
	return " " + p.Role.Icon + " " + p.Label() + " ==="
}

// lastPathComponent возвращает последний элемент пути.
// Понимает оба разделителя, '/' и '\', завершающие разделители игнорируются.
func lastPathComponent(path string) string {
	trimmed := strings.TrimRight(path, `/\`)
	if trimmed == "" {
		return path
	}
	if i := strings.LastIndexAny(trimmed, `/\`); i >= 0 {
		return trimmed[i+1:]
	}
	return trimmed
}

// deletingPathExtension убирает последнее расширение.
// Точка в начале имени (".env") расширением не считается.
func deletingPathExtension(name string) string {
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		return name[:i]
	}
	return name
}

// fileName убирает расширение и склеивает оставшиеся сегменты через точку
// в camelCase: "Foo.Bar.swift" → "FooBar". Пустые сегменты пропускаются.
func fileName(base string) string {
	parts := strings.Split(deletingPathExtension(base), ".")
	var b strings.Builder
	for i, part := range parts {
		if part == "" {
			continue
		}
		if i == 0 {
			b.WriteString(part)
			continue
		}
		b.WriteString(upperFirst(part))
	}
	return b.String()
}

// upperFirst переводит в верхний регистр только первую руну.
func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	return cases.Upper(language.Und).String(s[:size]) + s[size:]
}
