package planner

// IgnoredDirs are version-control and dependency/build directories that are
// neither renamed nor descended into. Treat as read-only.
var IgnoredDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	".svn":         true,
	".hg":          true,
	"dist":         true,
	"build":        true,
	".next":        true,
	"__pycache__":  true,
	"venv":         true,
	".venv":        true,
}

// IsIgnoredDir reports whether a directory named name is skipped entirely.
func IsIgnoredDir(name string) bool { return IgnoredDirs[name] }

// isHidden reports whether name follows the dotfile convention.
func isHidden(name string) bool { return len(name) > 0 && name[0] == '.' }
