// Package pipeline runs one rename batch end to end: preflight, scan,
// preview, and, when the user confirmed with --yes, the locked and
// journaled apply phase followed by the summary and optional report.
package pipeline
