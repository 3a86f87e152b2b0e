package pipeline

// RunStats tracks the counters of one run.
type RunStats struct {
	Planned    int    // Entries in the rename plan.
	Renamed    int    // Renames that succeeded.
	Failed     int    // Renames that failed.
	ScanErrors int    // Directories that could not be listed.
	Applied    bool   // The apply phase ran.
	RunID      string // Journal run id, when journaling.
}

// OK reports whether the run finished without a failed rename.
func (s *RunStats) OK() bool { return s.Failed == 0 }
