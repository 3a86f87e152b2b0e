// Package fsys is the filesystem collaborator: directory listings for the
// planner and single renames for the executor.
package fsys

import (
	"io/fs"
	"os"
)

// OS reads and renames on the host filesystem.
type OS struct{}

// ReadDir lists name sorted by filename.
func (OS) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

// Rename moves oldpath to newpath. Unlike os.Rename it refuses to replace
// an existing entry, returning an *os.LinkError wrapping fs.ErrExist. A
// target that is the same file as the source (a case-only rename on a
// case-insensitive volume) is allowed.
func (OS) Rename(oldpath, newpath string) error {
	if dst, err := os.Lstat(newpath); err == nil {
		src, serr := os.Lstat(oldpath)
		if serr != nil {
			return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: serr}
		}
		if !os.SameFile(src, dst) {
			return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: fs.ErrExist}
		}
	}
	return os.Rename(oldpath, newpath)
}
