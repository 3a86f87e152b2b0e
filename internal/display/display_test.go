package display

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/kebab-rename/internal/config"
	"github.com/backmassage/kebab-rename/internal/executor"
	"github.com/backmassage/kebab-rename/internal/naming"
	"github.com/backmassage/kebab-rename/internal/planner"
	"github.com/backmassage/kebab-rename/internal/term"
)

func init() { term.Configure(config.ColorNever) }

func samplePlan(root string) planner.Plan {
	return planner.Plan{
		Entries: []planner.Entry{
			{OldPath: filepath.Join(root, "Trip", "IMG 1.JPG"), NewPath: filepath.Join(root, "Trip", "img-1.jpg"), OldName: "IMG 1.JPG", NewName: "img-1.jpg"},
			{OldPath: filepath.Join(root, "Trip"), NewPath: filepath.Join(root, "trip"), OldName: "Trip", NewName: "trip", IsDir: true},
		},
	}
}

func TestFormatPreview_Empty(t *testing.T) {
	out := FormatPreview(nil, "/photos", naming.StyleKebab)
	assert.Contains(t, out, "/photos")
	assert.Contains(t, out, "already follow the kebab convention")
}

func TestFormatPreview_Table(t *testing.T) {
	out := FormatPreview(samplePlan("/photos").Entries, "/photos", naming.StyleKebab)

	assert.Contains(t, out, "file  IMG 1.JPG  →  img-1.jpg")
	assert.Contains(t, out, "dir   Trip       →  trip")
	assert.Contains(t, out, "Found 2 entries to rename (1 directories, 1 files).")
}

func TestFormatPreview_AlignsWideNames(t *testing.T) {
	entries := []planner.Entry{
		{OldName: "報告 A.txt", NewName: "報告-a.txt"},
		{OldName: "Notes.TXT", NewName: "notes.txt"},
	}
	out := FormatPreview(entries, "/docs", naming.StyleKebab)

	var arrows []int
	for _, line := range strings.Split(out, "\n") {
		if i := strings.Index(line, "→"); i >= 0 {
			arrows = append(arrows, displayCol(line[:i]))
		}
	}
	require.Len(t, arrows, 2)
	assert.Equal(t, arrows[0], arrows[1])
	assert.Contains(t, out, "Found 2 entries")
}

// displayCol counts CJK runes as two columns.
func displayCol(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x4e00 && r <= 0x9fff {
			n += 2
		} else {
			n++
		}
	}
	return n
}

func TestFormatPreview_SingleEntry(t *testing.T) {
	out := FormatPreview([]planner.Entry{{OldName: "A B", NewName: "a-b"}}, "/x", naming.StyleKebab)
	assert.Contains(t, out, "Found 1 entry to rename (0 directories, 1 files).")
}

func TestFormatSummary(t *testing.T) {
	assert.Equal(t, "Renamed 1 entry", FormatSummary(executor.Result{Success: 1}))
	assert.Equal(t, "Renamed 3 entries, 1 failed", FormatSummary(executor.Result{Success: 3, Failed: 1}))
}

func TestRenderMarkdown(t *testing.T) {
	plan := samplePlan("/photos")
	plan.Errors = []planner.ScanError{{Path: "/photos/locked", Err: errors.New("permission denied")}}
	res := &executor.Result{Success: 1, Failed: 1, Failures: []executor.Failure{
		{Entry: plan.Entries[1], Err: errors.New("target exists")},
	}}

	md := RenderMarkdown(Report{
		Root: "/photos", Style: naming.StyleKebab, Plan: plan, Result: res,
		RunID: "run-1", Generated: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	})

	assert.Contains(t, md, "# kebab-rename report")
	assert.Contains(t, md, "- Mode: applied")
	assert.Contains(t, md, "- Run: run\\-1")
	assert.Contains(t, md, "2026-01-02T03:04:05Z")
	assert.Contains(t, md, "| file | Trip/IMG 1\\.JPG | img\\-1\\.jpg |")
	assert.Contains(t, md, "| dir | Trip | trip |")
	assert.Contains(t, md, "## Unreadable directories")
	assert.Contains(t, md, "- Failed: 1")
	assert.Contains(t, md, "- /photos/Trip: target exists")
}

func TestRenderMarkdown_Preview(t *testing.T) {
	md := RenderMarkdown(Report{Root: "/x", Style: naming.StyleCamel})
	assert.Contains(t, md, "- Mode: preview")
	assert.Contains(t, md, "Nothing to rename.")
	assert.NotContains(t, md, "## Result")
}

func TestMdEscape(t *testing.T) {
	assert.Equal(t, `a\|b\_c`, mdEscape("a|b_c"))
	assert.Equal(t, "報告", mdEscape("報告"))
}

func TestWriteReport_Markdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	require.NoError(t, WriteReport(path, Report{Root: "/photos", Style: naming.StyleKebab, Plan: samplePlan("/photos")}))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "# kebab-rename report"))
}

func TestWriteReport_HTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "report.html")
	require.NoError(t, WriteReport(path, Report{Root: "/photos", Style: naming.StyleKebab, Plan: samplePlan("/photos")}))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(b)
	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "<h1>kebab-rename report</h1>")
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "<td>trip</td>")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf)
	assert.Contains(t, buf.String(), "|_|\\_\\")
}
