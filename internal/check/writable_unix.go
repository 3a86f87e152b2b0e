//go:build unix

package check

import "golang.org/x/sys/unix"

// writable asks the kernel whether the caller may create entries in dir.
func writable(dir string) bool {
	return unix.Access(dir, unix.W_OK) == nil
}
