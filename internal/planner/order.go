package planner

import (
	"path/filepath"
	"slices"
	"strings"
)

// SortByDepth orders entries deepest OldPath first. Entries at equal depth
// keep their scan order. Executing in this order never renames a directory
// before the entries below it.
func SortByDepth(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return depth(b.OldPath) - depth(a.OldPath)
	})
}

func depth(path string) int {
	return strings.Count(filepath.Clean(path), string(filepath.Separator))
}
