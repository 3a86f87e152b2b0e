package naming

import "strconv"

// ClaimedNames is the set of names in use within one directory: the real
// entries seen at listing time plus every new name already handed out.
type ClaimedNames map[string]struct{}

// NewClaimedNames returns a set seeded with names.
func NewClaimedNames(names ...string) ClaimedNames {
	c := make(ClaimedNames, len(names))
	for _, n := range names {
		c[n] = struct{}{}
	}
	return c
}

// Has reports whether name is claimed.
func (c ClaimedNames) Has(name string) bool {
	_, ok := c[name]
	return ok
}

// Claim records name as taken.
func (c ClaimedNames) Claim(name string) {
	c[name] = struct{}{}
}

// ResolveConflict returns candidate if it is unclaimed, otherwise the first
// unclaimed numbered variant starting at 1:
//
//	kebab: my-file.txt → my-file-1.txt, my-file-2.txt, ...
//	camel: myFile.txt  → myFile1.txt, myFile2.txt, ...
//
// claimed is not modified; the caller claims the returned name before
// resolving the next entry of the same directory. The loop terminates
// because claimed is finite.
func ResolveConflict(candidate string, claimed ClaimedNames, style Style) string {
	if !claimed.Has(candidate) {
		return candidate
	}

	stem, ext := SplitExt(candidate)
	if stem == "" {
		stem, ext = candidate, ""
	}
	sep := "-"
	if style == StyleCamel {
		sep = ""
	}

	for counter := 1; ; counter++ {
		variant := stem + sep + strconv.Itoa(counter) + ext
		if !claimed.Has(variant) {
			return variant
		}
	}
}
