package round

// Policy is a boundary convention plugged into the coordinator.
type Policy interface {
	// Name identifies the policy in logs and traces.
	Name() string
	// Offset is added to low + seg*(id+1) to get a worker's probe.
	Offset() int
	// Pair returns the neighbour pair worker id inspects every round.
	Pair(id int) int
	// EdgePair returns the pair only the elected worker inspects.
	EdgePair(workers int) int
	// Continue reports whether another round is needed for [low, high].
	Continue(low, high, workers int) bool
}

// RightLooking workers probe the first slot of the segment to their right and
// compare their flag with the next worker's. The elected worker covers the low
// border. Rounds run until a single candidate is left.
type RightLooking struct{}

func (RightLooking) Name() string                   { return "right-looking" }
func (RightLooking) Offset() int                    { return 0 }
func (RightLooking) Pair(id int) int                { return id + 1 }
func (RightLooking) EdgePair(int) int               { return 0 }
func (RightLooking) Continue(low, high, _ int) bool { return low < high }

// LeftLooking workers probe the last slot of their own segment and compare their
// flag with the previous worker's. The elected worker covers the trailing segment
// at the high border. Rounds run until the target is found or the interval is empty.
type LeftLooking struct{}

func (LeftLooking) Name() string                   { return "left-looking" }
func (LeftLooking) Offset() int                    { return -1 }
func (LeftLooking) Pair(id int) int                { return id }
func (LeftLooking) EdgePair(workers int) int       { return workers }
func (LeftLooking) Continue(low, high, _ int) bool { return low <= high }

// RightLookingSweep uses the right-looking rounds while the interval is wider than
// the worker count and leaves the remaining slots to the terminal sweep.
type RightLookingSweep struct {
	RightLooking
}

func (RightLookingSweep) Name() string { return "right-looking-sweep" }

func (RightLookingSweep) Continue(low, high, workers int) bool {
	return high-low+1 > workers
}
