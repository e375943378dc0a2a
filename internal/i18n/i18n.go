// Package i18n resolves user-visible strings by key with a fallback literal
// and positional {0}, {1} substitution.
package i18n

import (
	"fmt"
	"strconv"
	"strings"
)

// Localizer resolves a message key. Implementations return the fallback
// (after substitution) when the key is unknown.
type Localizer interface {
	Localize(key, fallback string, args ...any) string
}

// LocalizerFunc adapts a function to the Localizer interface.
type LocalizerFunc func(key, fallback string, args ...any) string

// Localize implements Localizer.
func (f LocalizerFunc) Localize(key, fallback string, args ...any) string {
	return f(key, fallback, args...)
}

// Default ignores keys and formats the fallback.
var Default Localizer = LocalizerFunc(func(_ string, fallback string, args ...any) string {
	return Format(fallback, args...)
})

// Format replaces {n} placeholders with the n-th argument. Placeholders
// without a matching argument are left untouched.
func Format(template string, args ...any) string {
	if len(args) == 0 || !strings.Contains(template, "{") {
		return template
	}
	var b strings.Builder
	b.Grow(len(template))
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '{' {
			b.WriteByte(c)
			continue
		}
		end := strings.IndexByte(template[i:], '}')
		if end < 0 {
			b.WriteString(template[i:])
			break
		}
		idx, err := strconv.Atoi(template[i+1 : i+end])
		if err != nil || idx < 0 || idx >= len(args) {
			b.WriteByte(c)
			continue
		}
		b.WriteString(fmt.Sprint(args[idx]))
		i += end
	}
	return b.String()
}
