package parsearch

import (
	"cmp"
	"context"
	"runtime"
	"time"

	"github.com/hupe1980/parsearch/internal/resource"
	"github.com/hupe1980/parsearch/internal/round"
	"golang.org/x/sync/errgroup"
)

// NotFound is the Index of a Result whose target is absent.
const NotFound = round.NotFound

// Trace is a snapshot of one round, delivered to the tracer set with WithTracer.
type Trace = round.Trace

// Direction is the flag a worker publishes for its probe.
type Direction = round.Direction

const (
	// Left means the target lies strictly before the probe.
	Left = round.Left
	// Right means the target lies at or past the probe.
	Right = round.Right
)

// Result describes the outcome of one search.
type Result struct {
	// Index is the position of an element equal to the target, or NotFound.
	// With duplicates, any matching position may be returned.
	Index int
	// Found reports whether Index is valid.
	Found bool
	// Low and High are the final inclusive interval. For an absent target it is
	// empty or brackets the position where the target would be inserted.
	Low  int
	High int
	// Rounds is the number of synchronised rounds the workers ran.
	Rounds int
	// Workers and Variant echo the configuration used.
	Workers int
	Variant Variant
}

// Searcher runs parallel partition searches with a fixed configuration.
// It is safe for concurrent use; every search gets its own workers and state.
type Searcher[E any] struct {
	compare func(a, b E) int
	opts    options
	policy  round.Policy
	logger  *Logger
	ctrl    *resource.Controller
}

// New creates a Searcher for ordered element types.
func New[E cmp.Ordered](optFns ...Option) (*Searcher[E], error) {
	return NewFunc(cmp.Compare[E], optFns...)
}

// NewFunc creates a Searcher that orders elements with compare, which must return
// a negative number, zero or a positive number when a < b, a == b or a > b.
func NewFunc[E any](compare func(a, b E) int, optFns ...Option) (*Searcher[E], error) {
	if compare == nil {
		return nil, ErrNilCompare
	}

	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	if o.workers < 1 {
		return nil, ErrInvalidWorkers
	}

	policy, ok := o.variant.policy()
	if !ok {
		return nil, &ErrInvalidVariant{Variant: o.variant.String()}
	}

	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.batchParallelism <= 0 {
		o.batchParallelism = max(1, runtime.GOMAXPROCS(0)/o.workers)
	}

	var ctrl *resource.Controller
	if o.maxWorkers > 0 || o.searchesPerSec > 0 {
		ctrl = resource.NewController(resource.Config{
			MaxWorkers:     o.maxWorkers,
			SearchesPerSec: o.searchesPerSec,
			SearchBurst:    o.searchBurst,
		})
	}

	return &Searcher[E]{
		compare: compare,
		opts:    o,
		policy:  policy,
		logger:  o.logger.WithVariant(o.variant).WithWorkers(o.workers),
		ctrl:    ctrl,
	}, nil
}

// Workers returns the number of workers per search.
func (s *Searcher[E]) Workers() int {
	return s.opts.workers
}

// Variant returns the configured variant.
func (s *Searcher[E]) Variant() Variant {
	return s.opts.variant
}

// Search looks for target in seq, which must be sorted ascending.
//
// The only error is the context's: cancellation is observed at round boundaries.
// On an unsorted sequence the result is undefined, as with binary search.
func (s *Searcher[E]) Search(ctx context.Context, seq Sequence[E], target E) (Result, error) {
	start := time.Now()

	res, err := s.search(ctx, seq, target)

	s.opts.metricsCollector.RecordSearch(res.Rounds, res.Found, time.Since(start), err)
	s.logger.LogSearch(ctx, res.Index, res.Rounds, err)

	return res, err
}

// SearchSlice is Search over a sorted slice.
func (s *Searcher[E]) SearchSlice(ctx context.Context, sorted []E, target E) (Result, error) {
	return s.Search(ctx, Slice[E](sorted), target)
}

// SearchBatch looks up every target in seq. Up to the configured batch parallelism
// searches run at once, each with its own workers. Results are in target order.
func (s *Searcher[E]) SearchBatch(ctx context.Context, seq Sequence[E], targets []E) ([]Result, error) {
	start := time.Now()
	results := make([]Result, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.batchParallelism)

	for i, target := range targets {
		g.Go(func() error {
			res, err := s.Search(gctx, seq, target)
			results[i] = res
			return err
		})
	}

	err := g.Wait()

	found := 0
	for _, r := range results {
		if r.Found {
			found++
		}
	}

	s.opts.metricsCollector.RecordBatch(len(targets), found, time.Since(start))
	s.logger.LogBatch(ctx, len(targets), found, err)

	if err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Searcher[E]) search(ctx context.Context, seq Sequence[E], target E) (Result, error) {
	res := Result{
		Index:   NotFound,
		Low:     0,
		High:    seq.Len() - 1,
		Workers: s.opts.workers,
		Variant: s.opts.variant,
	}

	if err := s.ctrl.AcquireSearch(ctx); err != nil {
		return res, err
	}

	workers := int64(s.opts.workers)
	if err := s.ctrl.AcquireWorkers(ctx, workers); err != nil {
		return res, err
	}
	defer s.ctrl.ReleaseWorkers(workers)

	out, err := round.Run(ctx, round.Config[E, E]{
		Seq:     seq,
		Target:  target,
		Compare: s.compare,
		Workers: s.opts.workers,
		Policy:  s.policy,
		Tracer:  s.opts.tracer,
	})

	res.Index = out.Index
	res.Found = out.Index != NotFound
	res.Low, res.High = out.Low, out.High
	res.Rounds = out.Rounds

	return res, err
}

// Search reports the index of target in the ascending slice sorted using workers
// cooperating goroutines with the right-looking variant. If workers < 1 or target
// is absent it returns (NotFound, false).
func Search[E cmp.Ordered](sorted []E, target E, workers int) (int, bool) {
	s, err := New[E](WithWorkers(workers))
	if err != nil {
		return NotFound, false
	}

	res, err := s.SearchSlice(context.Background(), sorted, target)
	if err != nil {
		return NotFound, false
	}
	return res.Index, res.Found
}
