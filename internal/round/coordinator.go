package round

import (
	"context"
	"errors"

	"github.com/hupe1980/parsearch/internal/barrier"
	"golang.org/x/sync/errgroup"
)

// elected is the worker that runs the single-execution sections of every round.
const elected = 0

// ErrNoWorkers is returned by Run when Config.Workers < 1.
var ErrNoWorkers = errors.New("round: at least one worker is required")

// Sequence is a sorted, random-access sequence read by all workers.
type Sequence[E any] interface {
	Len() int
	At(i int) E
}

// Config describes one search.
type Config[E, T any] struct {
	Seq     Sequence[E]
	Target  T
	Compare func(E, T) int
	Workers int
	Policy  Policy

	// Tracer, if set, receives one Trace per round. It is called synchronously by
	// the elected worker while the other workers are already probing the next round.
	Tracer func(Trace)
}

// Trace is a snapshot of one round.
type Trace struct {
	Round    int
	Low      int
	High     int
	Probes   []int
	Flags    []Direction
	NextLow  int
	NextHigh int
	Match    int
}

// Outcome is the final state of a search.
type Outcome struct {
	// Index is the matching position or NotFound.
	Index int
	// Low and High are the final interval bounds.
	Low  int
	High int
	// Rounds counts the synchronised rounds, excluding the terminal sweep.
	Rounds int
}

type coordinator[E, T any] struct {
	cfg     Config[E, T]
	state   *state
	barrier *barrier.Barrier
}

// Run searches cfg.Seq for cfg.Target with cfg.Workers goroutines.
//
// The sequence must be sorted ascending by cfg.Compare. The context is checked once
// per round by the elected worker; on cancellation every worker leaves at the same
// round boundary and Run returns the context error.
func Run[E, T any](ctx context.Context, cfg Config[E, T]) (Outcome, error) {
	if cfg.Workers < 1 {
		return Outcome{Index: NotFound}, ErrNoWorkers
	}
	if cfg.Policy == nil {
		cfg.Policy = RightLooking{}
	}

	n := cfg.Seq.Len()
	if n == 0 {
		return Outcome{Index: NotFound, Low: 0, High: -1}, nil
	}
	if err := ctx.Err(); err != nil {
		return Outcome{Index: NotFound, Low: 0, High: n - 1}, err
	}

	c := &coordinator[E, T]{
		cfg:     cfg,
		state:   acquireState(n, cfg.Workers),
		barrier: barrier.New(cfg.Workers),
	}

	var g errgroup.Group
	for id := 0; id < cfg.Workers; id++ {
		g.Go(func() error {
			c.work(ctx, id)
			return nil
		})
	}
	_ = g.Wait()

	st := c.state
	defer releaseState(st)

	out := Outcome{Index: st.result, Low: st.low, High: st.high, Rounds: st.rounds}
	if st.result == NotFound && st.err != nil {
		return out, st.err
	}
	return out, nil
}

func (c *coordinator[E, T]) work(ctx context.Context, id int) {
	st := c.state
	p := c.cfg.Policy
	workers := c.cfg.Workers

	var trace *Trace
	for st.result == NotFound && st.err == nil && p.Continue(st.low, st.high, workers) {
		low, high := st.low, st.high

		// PROBING
		seg := SegmentSize(low, high, workers)
		c.probe(id, high, ProbePosition(low, seg, id, p.Offset()))

		c.barrier.Wait()

		// PUBLISH_RESULT / RESOLVE_BOUNDS
		if id == elected {
			st.rounds++
			if k := p.EdgePair(workers); st.dirs.ChangesAt(k) {
				st.resolve(k, low, high)
			}
			if err := ctx.Err(); err != nil {
				st.err = err
			}
			if c.cfg.Tracer != nil {
				trace = &Trace{
					Round:  st.rounds,
					Low:    low,
					High:   high,
					Probes: append([]int(nil), st.probes...),
					Flags:  append([]Direction(nil), st.dirs.Flags...),
				}
			}
		}
		if k := p.Pair(id); st.dirs.ChangesAt(k) {
			st.resolve(k, low, high)
		}

		c.barrier.Wait()

		if trace != nil {
			trace.NextLow, trace.NextHigh, trace.Match = st.low, st.high, st.result
			c.cfg.Tracer(*trace)
			trace = nil
		}
	}

	c.sweep(id)
}

// probe records worker id's probe and publishes its flag. A probe beyond high
// publishes LEFT without touching the sequence.
func (c *coordinator[E, T]) probe(id, high, pos int) {
	st := c.state
	st.probes[id] = pos
	if pos > high {
		st.dirs.Flags[id], st.matches[id] = Left, false
		return
	}
	st.dirs.Flags[id], st.matches[id] = Classify(c.cfg.Compare(c.cfg.Seq.At(pos), c.cfg.Target))
}

// sweep checks the slots left after the last round, one per worker, and publishes
// the lowest match.
func (c *coordinator[E, T]) sweep(id int) {
	st := c.state
	if st.result != NotFound || st.err != nil || st.low > st.high {
		return
	}

	low, high := st.low, st.high
	pos := low + id
	st.matches[id] = pos <= high && c.cfg.Compare(c.cfg.Seq.At(pos), c.cfg.Target) == 0

	c.barrier.Wait()

	if id != elected {
		return
	}
	for i, m := range st.matches {
		if m {
			st.result, st.low, st.high = low+i, low+i, low+i
			return
		}
	}
}
