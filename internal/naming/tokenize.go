package naming

import (
	"regexp"
	"strings"
)

// Boundary passes, applied in order by Tokenize.
var (
	// myFile → my File, file2Name → file2 Name.
	reCaseBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)

	// XMLParser → XML Parser. The acronym run keeps its last capital when
	// that capital starts a new word.
	reAcronymBoundary = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)

	// Anything that is not an ASCII letter or digit, whitespace, or a
	// Han / Hiragana / Katakana character.
	reSymbols = regexp.MustCompile(
		`[^a-zA-Z0-9\s\x{4e00}-\x{9fff}\x{3040}-\x{309f}\x{30a0}-\x{30ff}]`)
)

// sepReplacer turns the in-stem separators into spaces. The extension has
// already been removed, so every period here is internal.
var sepReplacer = strings.NewReplacer("_", " ", ".", " ")

// Tokenize splits a stem into ordered lowercase word tokens. A stem made
// only of symbols (or an empty stem) yields no tokens.
func Tokenize(stem string) []string {
	s := reCaseBoundary.ReplaceAllString(stem, "$1 $2")
	s = reAcronymBoundary.ReplaceAllString(s, "$1 $2")
	s = sepReplacer.Replace(s)
	s = reSymbols.ReplaceAllString(s, " ")
	s = strings.ToLower(s)
	// Fields collapses runs of whitespace and drops the empty edges.
	return strings.Fields(s)
}
