package journal

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/kebab-rename/internal/executor"
	"github.com/backmassage/kebab-rename/internal/naming"
	"github.com/backmassage/kebab-rename/internal/planner"
)

var _ executor.Recorder = (*Run)(nil)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "state", "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_CreatesParentAndReopens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "journal.db")

	s, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, path, s.Path())
	_, err = s.StartRun(context.Background(), "/photos", naming.StyleKebab)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	runs, err := s.Runs(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestRecordAndRenames(t *testing.T) {
	s := openTemp(t)
	fixed := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	s.now = func() time.Time { return fixed }
	ctx := context.Background()

	run, err := s.StartRun(ctx, "/photos", naming.StyleKebab)
	require.NoError(t, err)
	require.NotEmpty(t, run.ID)

	ok := planner.Entry{OldPath: "/photos/IMG 1.JPG", NewPath: "/photos/img-1.jpg"}
	bad := planner.Entry{OldPath: "/photos/Trip", NewPath: "/photos/trip", IsDir: true}
	require.NoError(t, run.Record(ok, nil))
	require.NoError(t, run.Record(bad, errors.New("permission denied")))

	recs, err := s.Renames(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, "/photos/IMG 1.JPG", recs[0].OldPath)
	assert.True(t, recs[0].OK)
	assert.False(t, recs[0].IsDir)
	assert.Empty(t, recs[0].Error)
	assert.True(t, recs[0].RecordedAt.Equal(fixed))

	assert.False(t, recs[1].OK)
	assert.True(t, recs[1].IsDir)
	assert.Equal(t, "permission denied", recs[1].Error)
}

func TestRuns_NewestFirstWithCounts(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()

	first, err := s.StartRun(ctx, "/one", naming.StyleKebab)
	require.NoError(t, err)
	require.NoError(t, first.Record(planner.Entry{OldPath: "/one/A", NewPath: "/one/a"}, nil))

	second, err := s.StartRun(ctx, "/two", naming.StyleCamel)
	require.NoError(t, err)
	require.NoError(t, second.Record(planner.Entry{OldPath: "/two/a b", NewPath: "/two/aB"}, nil))
	require.NoError(t, second.Record(planner.Entry{OldPath: "/two/C D", NewPath: "/two/cD"}, errors.New("exists")))

	empty, err := s.StartRun(ctx, "/three", naming.StyleKebab)
	require.NoError(t, err)

	runs, err := s.Runs(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 3)

	assert.Equal(t, empty.ID, runs[0].ID)
	assert.Equal(t, 0, runs[0].Attempted)

	assert.Equal(t, second.ID, runs[1].ID)
	assert.Equal(t, naming.StyleCamel, runs[1].Style)
	assert.Equal(t, 2, runs[1].Attempted)
	assert.Equal(t, 1, runs[1].Renamed)
	assert.Equal(t, 1, runs[1].Failed())

	assert.Equal(t, first.ID, runs[2].ID)
	assert.Equal(t, "/one", runs[2].Root)

	limited, err := s.Runs(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, empty.ID, limited[0].ID)
}

func TestRenames_UnknownRun(t *testing.T) {
	s := openTemp(t)
	recs, err := s.Renames(context.Background(), "missing")
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestExecuteRecordsIntoJournal(t *testing.T) {
	s := openTemp(t)
	run, err := s.StartRun(context.Background(), "/x", naming.StyleKebab)
	require.NoError(t, err)

	entries := []planner.Entry{
		{OldPath: "/x/A", NewPath: "/x/a"},
		{OldPath: "/x/B", NewPath: "/x/b"},
	}
	res := executor.Execute(renamerFunc(func(oldpath, _ string) error {
		if oldpath == "/x/B" {
			return errors.New("boom")
		}
		return nil
	}), entries, run)

	assert.Equal(t, 1, res.Success)
	assert.Empty(t, res.RecordErrors)

	recs, err := s.Renames(context.Background(), run.ID)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "boom", recs[1].Error)
}

type renamerFunc func(oldpath, newpath string) error

func (f renamerFunc) Rename(oldpath, newpath string) error { return f(oldpath, newpath) }

func TestRecord_ClosedStore(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "j.db"))
	require.NoError(t, err)
	run, err := s.StartRun(context.Background(), "/x", naming.StyleKebab)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	assert.Error(t, run.Record(planner.Entry{OldPath: "/x/A", NewPath: "/x/a"}, nil))
}
