package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Style selects how tokens are joined back into a name.
type Style string

const (
	StyleKebab Style = "kebab" // my-file-name (default).
	StyleCamel Style = "camel" // myFileName.
)

// FallbackName is rendered when a stem contains no usable characters.
const FallbackName = "unnamed"

// Valid reports whether s is a style the renderer knows.
func (s Style) Valid() bool {
	switch s {
	case StyleKebab, StyleCamel:
		return true
	}
	return false
}

// Render joins tokens under style. It never returns an empty string: zero
// tokens render as FallbackName regardless of style. An unknown style
// falls back to the kebab join; Convert guards against unknown styles
// before it gets here.
func Render(tokens []string, style Style) string {
	if len(tokens) == 0 {
		return FallbackName
	}
	if style != StyleCamel {
		return strings.Join(tokens, "-")
	}

	var b strings.Builder
	b.WriteString(tokens[0])
	for _, tok := range tokens[1:] {
		b.WriteString(upperFirst(tok))
	}
	return b.String()
}

// upperFirst upper-cases the first rune of s and leaves the rest untouched.
func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
