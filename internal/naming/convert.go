package naming

import (
	"slices"
	"strings"
)

// SplitExt splits name at its final period. The extension keeps the dot;
// a name without a period has an empty extension. A dotfile such as
// ".env" splits into an empty stem and ".env".
func SplitExt(name string) (stem, ext string) {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return name, ""
	}
	return name[:i], name[i:]
}

// Convert renders name under style and re-attaches its extension in lower
// case. Names with an empty stem and unknown styles are returned
// unchanged.
//
//	Convert("MyFileName.TXT", StyleKebab)   → "my-file-name.txt"
//	Convert("my_file-name.txt", StyleCamel) → "myFileName.txt"
//	Convert("!!!.png", StyleKebab)          → "unnamed.png"
func Convert(name string, style Style) string {
	if !style.Valid() {
		return name
	}
	stem, ext := SplitExt(name)
	if stem == "" {
		return name
	}
	return renderStable(Tokenize(stem), style) + strings.ToLower(ext)
}

// renderStable renders tokens and re-reads the result until the token
// sequence survives a round trip. camelCase can fold single-letter words
// into one capital run ("a b c" → "aBC", which reads back as a, bc), so
// the first render is not always a fixed point. Capitals only ever start a
// token, so every pass can only merge neighbouring tokens and the loop
// ends after at most len(tokens) passes.
func renderStable(tokens []string, style Style) string {
	out := Render(tokens, style)
	for {
		next := Tokenize(out)
		if slices.Equal(next, tokens) {
			return out
		}
		tokens = next
		out = Render(tokens, style)
	}
}

// ToKebab is Convert with StyleKebab.
func ToKebab(name string) string { return Convert(name, StyleKebab) }

// ToCamel is Convert with StyleCamel.
func ToCamel(name string) string { return Convert(name, StyleCamel) }

// NeedsConversion reports whether Convert would change name.
func NeedsConversion(name string, style Style) bool {
	return Convert(name, style) != name
}
