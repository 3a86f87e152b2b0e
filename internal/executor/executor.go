package executor

import (
	"github.com/backmassage/kebab-rename/internal/planner"
)

// Renamer performs a single rename.
type Renamer interface {
	Rename(oldpath, newpath string) error
}

// Recorder observes the outcome of every attempted rename. err is nil on
// success. A Recorder error never stops the batch; it is returned in
// Result.RecordErrors.
type Recorder interface {
	Record(e planner.Entry, err error) error
}

// Failure is one rename that did not happen.
type Failure struct {
	Entry planner.Entry
	Err   error
}

// Kind classifies the failure.
func (f Failure) Kind() Kind { return Classify(f.Err) }

// Error renders as "<old path>: <message>".
func (f Failure) Error() string { return f.Entry.OldPath + ": " + f.Err.Error() }

func (f Failure) Unwrap() error { return f.Err }

// Result is the outcome of a batch.
type Result struct {
	Success      int
	Failed       int
	Failures     []Failure
	RecordErrors []error
}

// Messages returns one "<path>: <message>" line per failure.
func (r *Result) Messages() []string {
	out := make([]string, len(r.Failures))
	for i, f := range r.Failures {
		out[i] = f.Error()
	}
	return out
}

// Execute renames every entry in order. rec may be nil.
func Execute(r Renamer, entries []planner.Entry, rec Recorder) Result {
	var res Result
	for _, e := range entries {
		err := r.Rename(e.OldPath, e.NewPath)
		if err != nil {
			res.Failed++
			res.Failures = append(res.Failures, Failure{Entry: e, Err: err})
		} else {
			res.Success++
		}
		if rec != nil {
			if rerr := rec.Record(e, err); rerr != nil {
				res.RecordErrors = append(res.RecordErrors, rerr)
			}
		}
	}
	return res
}
