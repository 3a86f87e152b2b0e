// Command kebab-rename normalizes file and directory names under a target
// directory to kebab-case or camelCase. It previews by default and renames
// only with --yes.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// version and commit are set at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

// errReported marks a failure that was already logged; main only sets the
// exit status for it.
var errReported = errors.New("failure already reported")

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(stderr, "kebab-rename: %v\n", err)
		}
		return 1
	}
	return 0
}
