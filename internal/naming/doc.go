// Package naming turns arbitrary file and directory names into normalized
// kebab-case or camelCase names and keeps them unique within a directory.
//
// The pipeline for one name is:
//
//	name → SplitExt → Tokenize(stem) → Render(tokens, style) → stem' + lower(ext)
//
// Types:
//   - Style (kebab, camel)
//   - ClaimedNames (names already in use within one directory)
//
// Functions:
//   - Tokenize(stem) → []string
//     Ordered regex/replacer passes: case boundaries, acronym boundaries,
//     separators, symbol stripping, whitespace collapse, lowercasing.
//   - Render(tokens, style) → string
//     Joins tokens; zero tokens render as "unnamed".
//   - Convert(name, style) → string, NeedsConversion(name, style) → bool
//     Convert is idempotent for every input and style.
//   - ResolveConflict(candidate, claimed, style) → string
//     Numeric suffix ("-N" for kebab, "N" for camel) until unclaimed.
package naming
