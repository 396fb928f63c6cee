// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package timeseries

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

// NewTimeseriesCommand creates and returns the timeseries command.
func NewTimeseriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timeseries",
		Short: "Report a bucketed point-count time series over one series' independent axis",
		RunE:  runTimeseries,
	}

	cmd.Flags().StringVarP(&logPath, "log", "f", "", "path to the telemetry log file")
	cmd.Flags().StringVarP(&series, "series", "s", "", "name of the series to analyze")
	cmd.Flags().Float64Var(&step, "step", 1, "bucket width, in the series' independent units")
	_ = cmd.MarkFlagRequired("log")
	_ = cmd.MarkFlagRequired("series")

	return cmd
}

func runTimeseries(cmd *cobra.Command, _ []string) error {
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

	points, err := analytics.Timeseries(it, step)

	if err != nil {
		return fmt.Errorf("computing timeseries: %w", err)
	}

	writer := bufio.NewWriter(cmd.OutOrStdout())
	defer writer.Flush()

	for _, p := range points {
		fmt.Fprintf(writer, "%g\t%d\n", p.Start, p.Count)
	}

	return writer.Flush()
}
