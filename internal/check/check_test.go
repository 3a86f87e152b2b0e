package check

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/kebab-rename/internal/config"
	"github.com/backmassage/kebab-rename/internal/filelock"
)

type recordingLogger struct{ lines []string }

func (r *recordingLogger) add(level, format string, args ...interface{}) {
	r.lines = append(r.lines, level+" "+fmt.Sprintf(format, args...))
}
func (r *recordingLogger) Info(f string, a ...interface{})    { r.add("INFO", f, a...) }
func (r *recordingLogger) Success(f string, a ...interface{}) { r.add("SUCCESS", f, a...) }
func (r *recordingLogger) Warn(f string, a ...interface{})    { r.add("WARN", f, a...) }
func (r *recordingLogger) Error(f string, a ...interface{})   { r.add("ERROR", f, a...) }

func (r *recordingLogger) has(prefix string) bool {
	for _, l := range r.lines {
		if strings.HasPrefix(l, prefix) {
			return true
		}
	}
	return false
}

func TestCheckTarget(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	tests := []struct {
		name  string
		path  string
		apply bool
		want  error
	}{
		{"directory preview", dir, false, nil},
		{"directory apply", dir, true, nil},
		{"missing", filepath.Join(dir, "nope"), false, ErrTargetNotFound},
		{"file", file, false, ErrTargetNotDir},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckTarget(tt.path, tt.apply)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Contains(t, err.Error(), tt.path)
		})
	}
}

func TestCheckTarget_ReadOnly(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root bypasses permission bits")
	}
	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0o555))
	t.Cleanup(func() { os.Chmod(dir, 0o755) })

	assert.NoError(t, CheckTarget(dir, false))
	assert.ErrorIs(t, CheckTarget(dir, true), ErrTargetNotWritable)
}

func TestRunCheck(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.TargetDir = t.TempDir()
	cfg.Extensions = []string{".jpg", ".png"}

	log := &recordingLogger{}
	RunCheck(&cfg, log)

	assert.True(t, log.has("SUCCESS Target is a writable directory"))
	assert.True(t, log.has("INFO Style: kebab"))
	assert.True(t, log.has("INFO Extensions: .jpg, .png"))
	assert.True(t, log.has("INFO Journal: disabled"))
	assert.True(t, log.has("SUCCESS Lock "))
}

func TestRunCheck_ReleasesLock(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.TargetDir = t.TempDir()

	log := &recordingLogger{}
	RunCheck(&cfg, log)
	require.True(t, log.has("SUCCESS Lock "))
	assert.False(t, log.has("WARN Lock "))

	lock, err := filelock.AcquireDir(cfg.TargetDir)
	require.NoError(t, err, "check must not keep the run lock")
	require.NoError(t, lock.Unlock())
}

func TestRunCheck_MissingTargetAndHeldLock(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.TargetDir = filepath.Join(t.TempDir(), "missing")
	cfg.Journal = filepath.Join(t.TempDir(), "journal.db")

	lock, err := filelock.AcquireDir(cfg.TargetDir)
	require.NoError(t, err)
	defer lock.Unlock()

	log := &recordingLogger{}
	RunCheck(&cfg, log)

	assert.True(t, log.has("ERROR target directory does not exist"))
	assert.True(t, log.has("WARN Lock "))
	assert.True(t, log.has("INFO Journal: "+cfg.Journal+" (created on first applied run)"))
}
