package planner

import (
	"path/filepath"
	"strings"

	"github.com/backmassage/kebab-rename/internal/naming"
)

// Scan lists root (and, when opts.Recursive is set, every non-ignored
// subdirectory) and returns the rename plan ordered deepest-first.
//
// The filesystem is never modified, so a directory scheduled for renaming
// is still descended by its original path.
func Scan(l Lister, root string, opts Options) Plan {
	var plan Plan
	claims := make(map[string]naming.ClaimedNames)
	scanDir(l, root, opts, claims, &plan)
	SortByDepth(plan.Entries)
	return plan
}

// scanDir evaluates the entries of one directory. claims maps a directory
// path to the names taken in it; it is only ever touched from this walk.
func scanDir(l Lister, dir string, opts Options, claims map[string]naming.ClaimedNames, plan *Plan) {
	entries, err := l.ReadDir(dir)
	if err != nil {
		plan.Errors = append(plan.Errors, ScanError{Path: dir, Err: err})
		return
	}

	taken, ok := claims[dir]
	if !ok {
		taken = make(naming.ClaimedNames, len(entries))
		for _, e := range entries {
			taken.Claim(e.Name())
		}
		claims[dir] = taken
	}

	for _, e := range entries {
		name := e.Name()
		if isHidden(name) {
			continue
		}
		fullPath := filepath.Join(dir, name)

		switch {
		case e.IsDir():
			if IsIgnoredDir(name) {
				continue
			}
			evaluate(dir, name, true, opts.Style, taken, plan)
			if opts.Recursive {
				scanDir(l, fullPath, opts, claims, plan)
			}

		case e.Type().IsRegular():
			if len(opts.Extensions) > 0 {
				_, ext := naming.SplitExt(name)
				if !opts.Extensions[strings.ToLower(ext)] {
					continue
				}
			}
			evaluate(dir, name, false, opts.Style, taken, plan)
		}
		// Symlinks, sockets and devices are left alone.
	}
}

// evaluate appends a plan entry for name when it needs converting and
// claims the resolved name so later siblings cannot collide with it.
func evaluate(dir, name string, isDir bool, style naming.Style, taken naming.ClaimedNames, plan *Plan) {
	if !naming.NeedsConversion(name, style) {
		return
	}
	newName := naming.ResolveConflict(naming.Convert(name, style), taken, style)
	taken.Claim(newName)
	plan.Entries = append(plan.Entries, Entry{
		OldPath: filepath.Join(dir, name),
		NewPath: filepath.Join(dir, newName),
		OldName: name,
		NewName: newName,
		IsDir:   isDir,
	})
}
