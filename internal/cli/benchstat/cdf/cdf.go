// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package cdf

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gopherbench/telemetry"
	"github.com/gopherbench/telemetry/analytics"
)

var (
	logPath string
	series  string
	step    float64
)

// NewCDFCommand creates and returns the cdf command.
func NewCDFCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cdf",
		Short: "Report a cumulative distribution over one series' dependent axis",
		RunE:  runCDF,
	}

	cmd.Flags().StringVarP(&logPath, "log", "f", "", "path to the telemetry log file")
	cmd.Flags().StringVarP(&series, "series", "s", "", "name of the series to analyze")
	cmd.Flags().Float64Var(&step, "step", 1, "bucket width, in the series' dependent units")
	_ = cmd.MarkFlagRequired("log")
	_ = cmd.MarkFlagRequired("series")

	return cmd
}

func runCDF(cmd *cobra.Command, _ []string) error {
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

	points, err := analytics.CDF(it, step)

	if err != nil {
		return fmt.Errorf("computing cdf: %w", err)
	}

	writer := bufio.NewWriter(cmd.OutOrStdout())
	defer writer.Flush()

	for _, p := range points {
		fmt.Fprintf(writer, "%g\t%.4f\n", p.Bound, p.Cumulative)
	}

	return writer.Flush()
}
