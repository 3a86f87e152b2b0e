// Package executor applies a rename plan, one entry at a time, in plan
// order.
//
// Types:
//   - Renamer (fsys.OS in production)
//   - Recorder (optional per-entry hook; the journal implements it)
//   - Result (Success, Failed, Failures)
//   - Kind (failure classification for log hints)
//
// Functions:
//   - Execute(renamer, entries, recorder) → Result
//     A failed rename is counted and collected; the batch always runs to
//     the end and nothing is rolled back.
//   - Classify(err) → Kind
package executor
