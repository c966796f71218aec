// Command parsearch-bench generates sorted datasets and races the parallel
// searcher against sequential and sharded baselines on them.
//
// Usage:
//
//	parsearch-bench gen --n 1000000 iota.bin.zst
//	parsearch-bench run --dataset iota.bin.zst --workers 8 --queries 1000
//	parsearch-bench run --dataset s3://bucket/sets/iota.bin.lz4 --qps 200
//	parsearch-bench run --dataset minio://localhost:9000/bucket/iota.txt
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/hupe1980/parsearch"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	seed     int64

	logger = parsearch.NoopLogger()
)

var rootCmd = &cobra.Command{
	Use:   "parsearch-bench",
	Short: "Benchmark multi-way parallel search against binary search",
	Long: `parsearch-bench compares the parallel partition search with binary search,
lower bound and an independently sharded binary search on the same queries.

Every query is answered by every algorithm; the run stops with an error at the
first disagreement.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := parseLevel(logLevel)
		if err != nil {
			return err
		}
		logger = parsearch.NewTextLogger(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 1, "seed for generated data and queries")

	rootCmd.AddCommand(genCmd, runCmd)
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
