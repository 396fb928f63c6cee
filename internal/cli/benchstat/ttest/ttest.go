// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package ttest

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gopherbench/telemetry"
	"github.com/gopherbench/telemetry/analytics"
)

var (
	baselineLog    string
	baselineSeries string
	candidateLog   string
	candidateSeries string
	confidence     float64
)

// NewTTestCommand creates and returns the ttest command.
func NewTTestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ttest",
		Short: "Compare a baseline series against a candidate series with a paired Student-t test",
		RunE:  runTTest,
	}

	cmd.Flags().StringVar(&baselineLog, "baseline-log", "", "path to the baseline telemetry log file")
	cmd.Flags().StringVar(&baselineSeries, "baseline-series", "", "name of the baseline series")
	cmd.Flags().StringVar(&candidateLog, "candidate-log", "", "path to the candidate telemetry log file")
	cmd.Flags().StringVar(&candidateSeries, "candidate-series", "", "name of the candidate series")
	cmd.Flags().Float64Var(&confidence, "confidence", 95, "confidence interval, in percent (80, 90, 95, 98, 99, 99.5)")
	_ = cmd.MarkFlagRequired("baseline-log")
	_ = cmd.MarkFlagRequired("baseline-series")
	_ = cmd.MarkFlagRequired("candidate-log")
	_ = cmd.MarkFlagRequired("candidate-series")

	return cmd
}

func summarize(path, series string) (analytics.Summary, error) {
	f, err := os.Open(path)

	if err != nil {
		return analytics.Summary{}, fmt.Errorf("opening log: %w", err)
	}

	defer f.Close()

	r, err := telemetry.NewReader(f)

	if err != nil {
		return analytics.Summary{}, fmt.Errorf("reading log: %w", err)
	}

	it, err := r.Iterate(series)

	if err != nil {
		return analytics.Summary{}, err
	}

	return analytics.Summarize(it)
}

func runTTest(cmd *cobra.Command, _ []string) error {
	baseline, err := summarize(baselineLog, baselineSeries)

	if err != nil {
		return fmt.Errorf("summarizing baseline: %w", err)
	}

	candidate, err := summarize(candidateLog, candidateSeries)

	if err != nil {
		return fmt.Errorf("summarizing candidate: %w", err)
	}

	significant, diff, err := analytics.TTest(baseline, candidate, confidence)

	if err != nil {
		return err
	}

	verdict := "not significant"

	if significant == 1 {
		verdict = "significant"
	}

	fmt.Fprintf(cmd.OutOrStdout(), "delta: %+.4g ± %.4g (%+.2f%% ± %.2f%%) at %g%% confidence: %s\n",
		diff.Raw, diff.RawPlusMinus, diff.Percent, diff.PercentPlusMinus, confidence, verdict)

	return nil
}
