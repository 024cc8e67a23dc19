package batch

import "time"

// RunStats tallies the outcome of a batch run. Succeeded and Failed count
// individual effect outputs, not files.
type RunStats struct {
	Files     int
	Succeeded int
	Failed    int
	Errors    []error
	Elapsed   time.Duration
}
