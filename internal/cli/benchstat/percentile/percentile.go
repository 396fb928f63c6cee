// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package percentile

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gopherbench/telemetry"
	"github.com/gopherbench/telemetry/analytics"
)

var (
	logPath string
	series  string
	p       float64
	seed    uint64
)

// NewPercentileCommand creates and returns the percentile command.
func NewPercentileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "percentile",
		Short: "Report one percentile of a series' dependent axis",
		RunE:  runPercentile,
	}

	cmd.Flags().StringVarP(&logPath, "log", "f", "", "path to the telemetry log file")
	cmd.Flags().StringVarP(&series, "series", "s", "", "name of the series to analyze")
	cmd.Flags().Float64Var(&p, "p", 0.99, "percentile to report, in (0, 1]")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for the reservoir sampler")
	_ = cmd.MarkFlagRequired("log")
	_ = cmd.MarkFlagRequired("series")

	return cmd
}

func runPercentile(cmd *cobra.Command, _ []string) error {
	f, err := os.Open(logPath)

	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}

	defer f.Close()

	r, err := telemetry.NewReader(f)

	if err != nil {
		return fmt.Errorf("reading log: %w", err)
	}

	it, err := r.Iterate(series)

	if err != nil {
		return err
	}

	value, err := analytics.Percentile(it, p, seed)

	if err != nil {
		return fmt.Errorf("computing percentile: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%g\n", value)
	return nil
}
