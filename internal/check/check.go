// Package check provides the pre-run target validation (CheckTarget) and
// the informational diagnostics behind the check subcommand (RunCheck).
package check

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/backmassage/kebab-rename/internal/config"
	"github.com/backmassage/kebab-rename/internal/filelock"
	"github.com/backmassage/kebab-rename/internal/term"
)

// Sentinel errors returned by CheckTarget.
var (
	ErrTargetNotFound    = errors.New("target directory does not exist")
	ErrTargetNotDir      = errors.New("target is not a directory")
	ErrTargetNotWritable = errors.New("target directory is not writable")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// CheckTarget is the preflight run before scanning: dir must exist and be
// a directory, and when apply is set it must be writable. The returned
// error wraps one of the sentinels together with dir.
func CheckTarget(dir string, apply bool) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrTargetNotFound, dir)
		}
		return fmt.Errorf("stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrTargetNotDir, dir)
	}
	if apply && !writable(dir) {
		return fmt.Errorf("%w: %s", ErrTargetNotWritable, dir)
	}
	return nil
}

// RunCheck prints what a run with cfg would operate on: the target state,
// the conversion settings, the run lock, and the journal. It is
// informational only and does not stop on failure.
func RunCheck(cfg *config.Config, log Logger) {
	log.Info("=== Check: %s ===", cfg.TargetDir)

	checkTarget(cfg, log)
	checkSettings(cfg, log)
	checkLock(cfg, log)
	checkJournal(cfg, log)
}

func checkTarget(cfg *config.Config, log Logger) {
	err := CheckTarget(cfg.TargetDir, true)
	switch {
	case err == nil:
		log.Success("Target is a writable directory")
	case errors.Is(err, ErrTargetNotWritable):
		log.Warn("Target is read-only; previews work but --yes will fail")
	default:
		log.Error("%v", err)
	}
}

func checkSettings(cfg *config.Config, log Logger) {
	log.Info("Style: %s", cfg.Style)
	if cfg.Recursive {
		log.Info("Recursive: yes")
	} else {
		log.Info("Recursive: no (top-level entries only)")
	}
	if len(cfg.Extensions) > 0 {
		log.Info("Extensions: %s", strings.Join(cfg.Extensions, ", "))
	} else {
		log.Info("Extensions: all files")
	}
	if term.Enabled() {
		log.Info("Colors: on")
	} else {
		log.Info("Colors: off")
	}
}

func checkLock(cfg *config.Config, log Logger) {
	path, err := filelock.LockPath(cfg.TargetDir)
	if err != nil {
		log.Error("Cannot resolve lock path: %v", err)
		return
	}
	lock, err := filelock.AcquireDir(cfg.TargetDir)
	if err != nil {
		if errors.Is(err, filelock.ErrLocked) {
			log.Warn("Lock %s is held by another run", path)
		} else {
			log.Error("Lock %s: %v", path, err)
		}
		return
	}
	if err := lock.Unlock(); err != nil {
		log.Warn("Lock %s: %v", path, err)
		return
	}
	log.Success("Lock %s is free", path)
}

func checkJournal(cfg *config.Config, log Logger) {
	if cfg.Journal == "" {
		log.Info("Journal: disabled")
		return
	}
	if _, err := os.Stat(cfg.Journal); err == nil {
		log.Info("Journal: %s", cfg.Journal)
	} else {
		log.Info("Journal: %s (created on first applied run)", cfg.Journal)
	}
}
