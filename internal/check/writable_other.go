//go:build !unix

package check

import "os"

// writable reports whether dir carries any write permission bit.
func writable(dir string) bool {
	info, err := os.Stat(dir)
	return err == nil && info.Mode().Perm()&0o222 != 0
}
