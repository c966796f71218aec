package round

import "sync"

// NotFound is the value of an empty result slot.
const NotFound = -1

// state is the block shared by reference by every worker of one search.
type state struct {
	low, high int

	dirs    Directions
	probes  []int
	matches []bool

	result int
	rounds int
	err    error
}

var statePool = sync.Pool{
	New: func() any { return new(state) },
}

// acquireState returns a reset state for a search over n elements, reusing the
// buffers of an earlier search when they are large enough.
func acquireState(n, workers int) *state {
	s := statePool.Get().(*state)
	s.low, s.high = 0, n-1
	s.dirs = Directions{
		LeftBorder:  Right,
		Flags:       resize(s.dirs.Flags, workers),
		RightBorder: Left,
	}
	s.probes = resize(s.probes, workers)
	s.matches = resize(s.matches, workers)
	s.result, s.rounds, s.err = NotFound, 0, nil
	return s
}

func releaseState(s *state) {
	s.err = nil
	statePool.Put(s)
}

func resize[T any](buf []T, n int) []T {
	if cap(buf) < n {
		return make([]T, n)
	}
	buf = buf[:n]
	clear(buf)
	return buf
}

// Resolve computes the interval that remains when pair k holds the sign change of a
// round that probed [low, high]. If the last RIGHT probe (probes[k-1]) matched, the
// interval collapses onto it and match is that index; otherwise match is NotFound.
// The last RIGHT probe matches whenever any probe matched, so the owner of the
// changing pair is the only worker that ever publishes a match.
func Resolve(k, low, high int, probes []int, matches []bool) (lo, hi, match int) {
	if k > 0 && matches[k-1] {
		m := probes[k-1]
		return m, m, m
	}

	lo, hi = low, high
	if k > 0 {
		lo = probes[k-1] + 1
	}
	if k < len(probes) {
		hi = min(probes[k]-1, high)
	}
	return lo, hi, NotFound
}

// resolve applies Resolve for pair k. Only the owner of the changing pair calls it.
func (s *state) resolve(k, low, high int) {
	lo, hi, match := Resolve(k, low, high, s.probes, s.matches)
	s.low, s.high = lo, hi
	if match != NotFound {
		s.result = match
	}
}
