package main

import (
	"fmt"

	"github.com/hupe1980/parsearch/dataset"
	"github.com/hupe1980/parsearch/testutil"
	"github.com/spf13/cobra"
)

var (
	genN      int
	genStart  uint64
	genMaxGap uint64
)

var genCmd = &cobra.Command{
	Use:   "gen [location]",
	Short: "Write a sorted dataset",
	Long: `Writes n ascending uint64 values to a local path, s3:// or minio:// location.

Without --max-gap the values are start, start+1, ...; with it, consecutive values
differ by a random step in [1, max-gap]. The file name selects the encoding:
".bin" for binary, anything else for text, plus ".zst" or ".lz4" for compression.`,
	Args: cobra.ExactArgs(1),
	RunE: runGen,
}

func init() {
	genCmd.Flags().IntVar(&genN, "n", 1_000_000, "number of values")
	genCmd.Flags().Uint64Var(&genStart, "start", 0, "first value")
	genCmd.Flags().Uint64Var(&genMaxGap, "max-gap", 0, "largest random step between values (0 = consecutive)")
}

func runGen(cmd *cobra.Command, args []string) error {
	if genN < 0 {
		return fmt.Errorf("--n must not be negative")
	}

	values := dataset.Iota(genStart, genN)
	if genMaxGap > 0 {
		values = testutil.NewRNG(seed).SortedUint64s(genN, genMaxGap)
		for i := range values {
			values[i] += genStart
		}
	}

	ctx := cmd.Context()
	store, name, err := openStore(ctx, args[0])
	if err != nil {
		return err
	}

	if err := dataset.Save(ctx, store, name, values); err != nil {
		return err
	}

	f, c := dataset.Detect(name)
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d values to %s (%s, %s)\n", len(values), args[0], f, c)
	return nil
}
