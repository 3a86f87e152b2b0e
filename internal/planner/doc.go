// Package planner walks a target directory and builds the ordered rename
// plan that the executor consumes.
//
// Types:
//   - Entry (OldPath, NewPath, OldName, NewName, IsDir)
//   - Options (Recursive, Extensions, Style)
//   - Plan (Entries, Errors)
//   - Lister (directory listing collaborator; fsys.OS in production)
//
// Functions:
//   - Scan(lister, root, opts) → Plan
//     Per-directory claimed-name sets are seeded from the listing and
//     threaded through the walk. Hidden entries and IgnoredDirs are
//     skipped; directories are evaluated and then descended by their
//     original path. An unreadable directory is recorded in Plan.Errors
//     and the walk continues with its siblings.
//   - SortByDepth(entries)
//     Deepest paths first, so children are renamed before their parents.
//
// Nothing here touches the filesystem beyond ReadDir.
package planner
