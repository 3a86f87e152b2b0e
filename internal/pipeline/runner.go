package pipeline

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/backmassage/kebab-rename/internal/check"
	"github.com/backmassage/kebab-rename/internal/config"
	"github.com/backmassage/kebab-rename/internal/display"
	"github.com/backmassage/kebab-rename/internal/executor"
	"github.com/backmassage/kebab-rename/internal/filelock"
	"github.com/backmassage/kebab-rename/internal/fsys"
	"github.com/backmassage/kebab-rename/internal/journal"
	"github.com/backmassage/kebab-rename/internal/logging"
	"github.com/backmassage/kebab-rename/internal/planner"
)

// Run is the top-level batch entry point. The preview table goes to out;
// everything else goes through log. The returned error means the run was
// aborted before any rename; failed renames are counted in RunStats.
//
// ctx is only consulted before the apply phase. Once renaming starts the
// batch runs to completion so the tree is never left half-processed by an
// interrupt.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, out io.Writer) (RunStats, error) {
	var stats RunStats

	root, err := filepath.Abs(cfg.TargetDir)
	if err != nil {
		return stats, fmt.Errorf("resolve %s: %w", cfg.TargetDir, err)
	}

	// --- Preflight ---
	if err := check.CheckTarget(root, cfg.Apply()); err != nil {
		return stats, err
	}

	// --- Scan ---
	log.Debug("Scanning %s (style %s, recursive %t)", root, cfg.Style, cfg.Recursive)
	plan := planner.Scan(fsys.OS{}, root, planner.Options{
		Recursive:  cfg.Recursive,
		Extensions: cfg.ExtensionSet(),
		Style:      cfg.Style,
	})
	stats.Planned = len(plan.Entries)
	stats.ScanErrors = len(plan.Errors)
	for _, se := range plan.Errors {
		log.Warn("Cannot read %s: %v", se.Path, se.Err)
	}

	// --- Preview ---
	fmt.Fprint(out, display.FormatPreview(plan.Entries, root, cfg.Style))
	fmt.Fprintln(out)

	if len(plan.Entries) == 0 {
		writeReport(cfg, log, root, plan, nil, "")
		return stats, nil
	}

	if !cfg.Apply() {
		if cfg.Yes && cfg.DryRun {
			log.Warn("Dry run: --yes ignored, no changes made")
		} else {
			log.Info("Preview only. Re-run with --yes (-y) to apply these renames.")
		}
		writeReport(cfg, log, root, plan, nil, "")
		return stats, nil
	}

	// --- Apply ---
	if err := ctx.Err(); err != nil {
		return stats, fmt.Errorf("interrupted before renaming: %w", err)
	}

	lock, err := filelock.AcquireDir(root)
	if err != nil {
		return stats, err
	}
	defer lock.Unlock()
	log.Debug("Holding lock %s", lock.Path())

	var rec executor.Recorder
	if cfg.Journal != "" {
		store, err := journal.Open(cfg.Journal)
		if err != nil {
			return stats, err
		}
		defer store.Close()
		run, err := store.StartRun(ctx, root, cfg.Style)
		if err != nil {
			return stats, err
		}
		rec = run
		stats.RunID = run.ID
		log.Debug("Journal run %s in %s", run.ID, store.Path())
	}

	res := executor.Execute(fsys.OS{}, plan.Entries, rec)
	stats.Applied = true
	stats.Renamed = res.Success
	stats.Failed = res.Failed

	for _, f := range res.Failures {
		if hint := f.Kind().Hint(); hint != "" {
			log.Error("%s (%s)", f.Error(), hint)
		} else {
			log.Error("%s", f.Error())
		}
	}
	for _, rerr := range res.RecordErrors {
		log.Warn("Journal: %v", rerr)
	}

	if res.Failed == 0 {
		log.Success("%s", display.FormatSummary(res))
	} else {
		log.Warn("%s", display.FormatSummary(res))
	}

	writeReport(cfg, log, root, plan, &res, stats.RunID)
	return stats, nil
}

// writeReport writes the optional report. A failure is logged, never fatal.
func writeReport(cfg *config.Config, log *logging.Logger, root string, plan planner.Plan, res *executor.Result, runID string) {
	if cfg.Report == "" {
		return
	}
	err := display.WriteReport(cfg.Report, display.Report{
		Root:      root,
		Style:     cfg.Style,
		Plan:      plan,
		Result:    res,
		RunID:     runID,
		Generated: time.Now(),
	})
	if err != nil {
		log.Warn("Report: %v", err)
		return
	}
	log.Info("Report written to %s", cfg.Report)
}
