// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package armnod implements the armnod command-line front end for the
// string generator in the stringgen package.
package armnod

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gopherbench/telemetry/internal/cli/armnod/generate"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "armnod",
	Short: "Generate pseudo-random strings for workload generators",
	Long:  `armnod generates pseudo-random strings from a configurable alphabet, cardinality, and length distribution, for driving benchmark workloads.`,
}

// Execute adds all child commands to RootCmd and runs it. It is called by
// main.main and should only be called once.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing armnod: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.AddCommand(generate.NewGenerateCommand())
}
