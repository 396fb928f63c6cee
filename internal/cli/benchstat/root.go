// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package benchstat implements the benchstat command-line front end over
// the analytics package: CDF, timeseries, percentile, and t-test reports
// read from a telemetry log file.
package benchstat

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gopherbench/telemetry/internal/cli/benchstat/cdf"
	"github.com/gopherbench/telemetry/internal/cli/benchstat/percentile"
	"github.com/gopherbench/telemetry/internal/cli/benchstat/timeseries"
	"github.com/gopherbench/telemetry/internal/cli/benchstat/ttest"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "benchstat",
	Short: "Compute statistics over telemetry log files",
	Long:  `benchstat reads a telemetry log file and reports cumulative distributions, time series, percentiles, and paired t-test comparisons over its series.`,
}

// Execute adds all child commands to RootCmd and runs it. It is called by
// main.main and should only be called once.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing benchstat: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.AddCommand(cdf.NewCDFCommand())
	RootCmd.AddCommand(timeseries.NewTimeseriesCommand())
	RootCmd.AddCommand(percentile.NewPercentileCommand())
	RootCmd.AddCommand(ttest.NewTTestCommand())
}
