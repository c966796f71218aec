package round

// SegmentSize returns ceil(n/(workers+1)) for the interval [low, high].
// The result is at least 1 for any non-empty interval, so every round makes progress.
func SegmentSize(low, high, workers int) int {
	n := high - low + 1
	if n <= 0 {
		return 0
	}
	return (n + workers) / (workers + 1)
}

// ProbePosition returns the index worker id reads in a round.
// offset is the policy displacement (0 or -1).
func ProbePosition(low, seg, id, offset int) int {
	return low + seg*(id+1) + offset
}

// Probes returns the probe positions of all workers for one round.
// Positions beyond high are returned as is; such workers publish LEFT.
func Probes(low, high, workers int, p Policy) []int {
	seg := SegmentSize(low, high, workers)
	out := make([]int, workers)
	for id := range out {
		out[id] = ProbePosition(low, seg, id, p.Offset())
	}
	return out
}
