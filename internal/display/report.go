package display

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/backmassage/kebab-rename/internal/executor"
	"github.com/backmassage/kebab-rename/internal/filelock"
	"github.com/backmassage/kebab-rename/internal/naming"
	"github.com/backmassage/kebab-rename/internal/planner"
)

// reportPerm is the mode of written reports.
const reportPerm = 0o644

// Report is everything a written report covers. Result is nil for a
// preview run.
type Report struct {
	Root      string
	Style     naming.Style
	Plan      planner.Plan
	Result    *executor.Result
	RunID     string
	Generated time.Time
}

// WriteReport renders r as Markdown and writes it atomically to path.
// Paths ending in .html or .htm are converted to HTML through goldmark.
func WriteReport(path string, r Report) error {
	md := RenderMarkdown(r)
	data := []byte(md)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		html, err := RenderHTML(md)
		if err != nil {
			return err
		}
		data = html
	}

	if err := filelock.AtomicWrite(path, data, reportPerm); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderMarkdown returns the report body as GitHub-flavored Markdown.
func RenderMarkdown(r Report) string {
	var b strings.Builder
	b.WriteString("# kebab-rename report\n\n")
	fmt.Fprintf(&b, "- Target: %s\n", mdEscape(r.Root))
	fmt.Fprintf(&b, "- Style: %s\n", r.Style)
	if r.Result == nil {
		b.WriteString("- Mode: preview\n")
	} else {
		b.WriteString("- Mode: applied\n")
	}
	if r.RunID != "" {
		fmt.Fprintf(&b, "- Run: %s\n", mdEscape(r.RunID))
	}
	if !r.Generated.IsZero() {
		fmt.Fprintf(&b, "- Generated: %s\n", r.Generated.Format(time.RFC3339))
	}

	fmt.Fprintf(&b, "\n## Renames (%d)\n\n", len(r.Plan.Entries))
	if len(r.Plan.Entries) == 0 {
		b.WriteString("Nothing to rename.\n")
	} else {
		b.WriteString("| Type | Path | New name |\n|---|---|---|\n")
		for _, e := range r.Plan.Entries {
			kind := "file"
			if e.IsDir {
				kind = "dir"
			}
			fmt.Fprintf(&b, "| %s | %s | %s |\n", kind, mdEscape(relTo(r.Root, e.OldPath)), mdEscape(e.NewName))
		}
	}

	if len(r.Plan.Errors) > 0 {
		b.WriteString("\n## Unreadable directories\n\n")
		for _, se := range r.Plan.Errors {
			fmt.Fprintf(&b, "- %s\n", mdEscape(se.Error()))
		}
	}

	if r.Result != nil {
		fmt.Fprintf(&b, "\n## Result\n\n- Renamed: %d\n- Failed: %d\n", r.Result.Success, r.Result.Failed)
		for _, msg := range r.Result.Messages() {
			fmt.Fprintf(&b, "- %s\n", mdEscape(msg))
		}
	}
	return b.String()
}

// RenderHTML converts report Markdown into a standalone HTML page.
func RenderHTML(md string) ([]byte, error) {
	gm := goldmark.New(goldmark.WithExtensions(extension.Table))
	var body bytes.Buffer
	if err := gm.Convert([]byte(md), &body); err != nil {
		return nil, fmt.Errorf("render report HTML: %w", err)
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>kebab-rename report</title>\n</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}

func relTo(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil {
		return rel
	}
	return path
}

// mdEscape backslash-escapes the ASCII punctuation Markdown would
// otherwise interpret inside a table cell or list item.
func mdEscape(s string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune("\\`*_{}[]()<>#+-.!|~", r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
