// Package display renders the rename plan for humans: the terminal preview,
// the batch summary, and the optional Markdown/HTML report.
package display

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/backmassage/kebab-rename/internal/executor"
	"github.com/backmassage/kebab-rename/internal/naming"
	"github.com/backmassage/kebab-rename/internal/planner"
	"github.com/backmassage/kebab-rename/internal/term"
)

// FormatPreview returns the old → new table for entries under root.
// Old names are padded by display width, so CJK names line up too.
//
//	  /photos
//
//	  dir   Summer Trip   →  summer-trip
//	  file  IMG_0001.JPG  →  img-0001.jpg
//
//	Found 2 entries to rename (1 directories, 1 files).
func FormatPreview(entries []planner.Entry, root string, style naming.Style) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n  %s\n\n", term.Cyan.Sprint(root))

	if len(entries) == 0 {
		fmt.Fprintf(&b, "  %s All names already follow the %s convention; nothing to rename.\n",
			term.Green.Sprint("✓"), style)
		return b.String()
	}

	width := 0
	dirs := 0
	for _, e := range entries {
		width = max(width, runewidth.StringWidth(e.OldName))
		if e.IsDir {
			dirs++
		}
	}

	for _, e := range entries {
		kind := "file"
		if e.IsDir {
			kind = "dir "
		}
		old := runewidth.FillRight(e.OldName, width)
		fmt.Fprintf(&b, "  %s  %s  →  %s\n", term.Dim.Sprint(kind), term.Yellow.Sprint(old), term.Green.Sprint(e.NewName))
	}

	fmt.Fprintf(&b, "\nFound %d %s to rename (%d directories, %d files).\n",
		len(entries), plural(len(entries), "entry", "entries"), dirs, len(entries)-dirs)
	return b.String()
}

// FormatSummary returns the one-line outcome of an applied batch.
func FormatSummary(res executor.Result) string {
	if res.Failed == 0 {
		return fmt.Sprintf("Renamed %d %s", res.Success, plural(res.Success, "entry", "entries"))
	}
	return fmt.Sprintf("Renamed %d %s, %d failed",
		res.Success, plural(res.Success, "entry", "entries"), res.Failed)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
