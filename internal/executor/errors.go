package executor

import (
	"errors"
	"io/fs"
)

// Kind is a coarse failure category, used to print a hint next to the raw
// error message.
type Kind int

const (
	KindOther      Kind = iota
	KindExists          // Target name already taken on disk.
	KindPermission      // Not allowed to rename in this directory.
	KindNotFound        // Source vanished since the scan.
)

// ErrTargetExists matches failures where the target already exists.
var ErrTargetExists = fs.ErrExist

// Classify maps a rename error onto a Kind.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindOther
	case errors.Is(err, ErrTargetExists):
		return KindExists
	case errors.Is(err, fs.ErrPermission):
		return KindPermission
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	}
	return KindOther
}

// Hint returns a short human explanation for k, or "" for KindOther.
func (k Kind) Hint() string {
	switch k {
	case KindExists:
		return "target already exists"
	case KindPermission:
		return "permission denied"
	case KindNotFound:
		return "source no longer exists"
	}
	return ""
}
