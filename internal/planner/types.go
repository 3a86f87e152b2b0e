package planner

import (
	"io/fs"

	"github.com/backmassage/kebab-rename/internal/naming"
)

// Entry is one scheduled rename. It is produced by Scan and consumed once
// by the executor.
type Entry struct {
	OldPath string
	NewPath string
	OldName string
	NewName string
	IsDir   bool
}

// Options controls which entries Scan evaluates.
type Options struct {
	Recursive bool
	// Extensions holds lowercase dot-prefixed extensions (".jpg"). Empty
	// means every file is evaluated. Directories are never filtered.
	Extensions map[string]bool
	Style      naming.Style
}

// ScanError records a directory that could not be listed.
type ScanError struct {
	Path string
	Err  error
}

func (e ScanError) Error() string { return e.Path + ": " + e.Err.Error() }

func (e ScanError) Unwrap() error { return e.Err }

// Plan is the result of a scan: the ordered renames plus any subtrees that
// could not be read. A plan with errors is still usable.
type Plan struct {
	Entries []Entry
	Errors  []ScanError
}

// Dirs returns how many entries rename directories.
func (p *Plan) Dirs() int {
	n := 0
	for _, e := range p.Entries {
		if e.IsDir {
			n++
		}
	}
	return n
}

// Files returns how many entries rename files.
func (p *Plan) Files() int { return len(p.Entries) - p.Dirs() }

// Lister supplies directory listings. fsys.OS satisfies it, as does any
// fs.ReadDirFS wrapped to take native paths.
type Lister interface {
	ReadDir(name string) ([]fs.DirEntry, error)
}
