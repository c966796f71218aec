package main

import (
	"fmt"
	"math"
	"runtime"
	"strings"

	"github.com/hupe1980/parsearch"
	"github.com/hupe1980/parsearch/dataset"
	"github.com/hupe1980/parsearch/testutil"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var (
	runN        int
	runStart    uint64
	runWorkers  int
	runQueries  int
	runQPS      float64
	runDataset  string
	runVariants string
	runVerbose  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Race the searches on random queries",
	Long: `Answers --queries random targets with binary search, lower bound, every selected
parallel variant and the sharded baseline.

Targets are drawn uniformly from [first, last+1] of the sequence, so some miss.
The sequence is either --n consecutive values from --start or a dataset loaded
from a local path, s3://bucket/key or minio://host/bucket/key.`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

func init() {
	runCmd.Flags().IntVar(&runN, "n", 1<<20, "length of the generated sequence when no dataset is given")
	runCmd.Flags().Uint64Var(&runStart, "start", 0, "first value of the generated sequence")
	runCmd.Flags().IntVar(&runWorkers, "workers", runtime.GOMAXPROCS(0), "workers per parallel search")
	runCmd.Flags().IntVar(&runQueries, "queries", 1000, "number of queries")
	runCmd.Flags().Float64Var(&runQPS, "qps", 0, "queries per second (0 = unlimited)")
	runCmd.Flags().StringVar(&runDataset, "dataset", "", "dataset location")
	runCmd.Flags().StringVar(&runVariants, "variants", "", "comma separated variants (default all)")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "print one row per query and algorithm")
}

func runBench(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	variants, err := parseVariants(runVariants)
	if err != nil {
		return err
	}

	values, err := loadValues(cmd)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return fmt.Errorf("empty sequence")
	}

	metrics := &parsearch.BasicMetricsCollector{}
	algos, err := newAlgorithms(values, benchConfig{
		workers:  runWorkers,
		variants: variants,
		metrics:  metrics,
		logger:   logger,
	})
	if err != nil {
		return err
	}

	printHost(out)
	fmt.Fprintf(out, "sequence: %d values in [%d, %d], workers=%d, queries=%d\n",
		len(values), values[0], values[len(values)-1], runWorkers, runQueries)

	limit := rate.Inf
	if runQPS > 0 {
		limit = rate.Limit(runQPS)
	}
	limiter := rate.NewLimiter(limit, 1)

	rng := testutil.NewRNG(seed)
	span := values[len(values)-1] - values[0] + 2
	if span < 2 {
		span = math.MaxUint64
	}

	b := newBench(values, algos, out, runVerbose)
	for range runQueries {
		if err := limiter.Wait(ctx); err != nil {
			return err
		}
		target := values[0] + rng.Uint64n(span)
		if err := b.query(ctx, target); err != nil {
			_ = b.summary(out)
			return err
		}
	}

	if err := b.summary(out); err != nil {
		return err
	}

	stats := metrics.GetStats()
	fmt.Fprintf(out, "parallel searches: %d, found: %d, average rounds: %.2f\n",
		stats.SearchCount, stats.SearchFound, stats.SearchAvgRounds)
	return nil
}

func loadValues(cmd *cobra.Command) ([]uint64, error) {
	if runDataset == "" {
		if runN < 0 {
			return nil, fmt.Errorf("--n must not be negative")
		}
		return dataset.Iota(runStart, runN), nil
	}

	store, name, err := openStore(cmd.Context(), runDataset)
	if err != nil {
		return nil, err
	}
	return dataset.Load(cmd.Context(), store, name)
}

func parseVariants(s string) ([]parsearch.Variant, error) {
	if s == "" {
		return parsearch.Variants(), nil
	}

	var variants []parsearch.Variant
	for _, name := range strings.Split(s, ",") {
		v, err := parsearch.ParseVariant(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}
	return variants, nil
}
