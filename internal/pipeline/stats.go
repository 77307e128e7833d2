package pipeline

// RunStats tracks outcome counters across a batch run. Each input file ends
// in exactly one of Renamed or Failed; Failed covers every per-file skip
// (unreadable source, unknown variable, existing destination, move error).
type RunStats struct {
	Total   int
	Current int
	Renamed int
	Failed  int
}
