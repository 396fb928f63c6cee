// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package generate

import (
	"bufio"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/gopherbench/telemetry/stringgen"
)

var (
	alphabet string
	charset  string

	strings     string
	fixedSize   uint64
	fixedStart  uint64
	fixedLimit  uint64
	alpha       float64

	lengths    string
	length     uint64
	lengthMin  uint64
	lengthMax  uint64

	count uint64
	seed  uint64
)

// NewGenerateCommand creates and returns the generate command.
func NewGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one or more strings",
		Long: `Generate one or more pseudo-random strings with a configurable alphabet,
selection method, and length distribution.

If --strings is not specified, strings are drawn from a single continuous
content stream. If --lengths is not specified, every string is 16 bytes.`,
		RunE: runGenerate,
	}

	cmd.Flags().StringVar(&alphabet, "alphabet", "", "explicit alphabet to use for generated strings")
	cmd.Flags().StringVar(&charset, "charset", "", "named charset to use for generated strings (default, alnum, alpha, digit, lower, upper, punct, hex)")

	cmd.Flags().StringVar(&strings, "strings", "default", `method used to select which string to generate ("default", "fixed", "fixed-once", "fixed-zipf")`)
	cmd.Flags().Uint64Var(&fixedSize, "fixed-size", 1024, "cardinality of the set of strings generated, for methods that support it")
	cmd.Flags().Uint64Var(&fixedStart, "fixed-start", 0, "starting index for the fixed-once method")
	cmd.Flags().Uint64Var(&fixedLimit, "fixed-limit", 0, "ending index for the fixed-once method (0 means --fixed-size)")
	cmd.Flags().Float64Var(&alpha, "alpha", 0.6, "skew parameter for the fixed-zipf method")

	cmd.Flags().StringVar(&lengths, "lengths", "constant", `method used to select string length ("constant", "uniform")`)
	cmd.Flags().Uint64Var(&length, "length", stringgen.DefaultLength, "length of generated strings, for the constant method")
	cmd.Flags().Uint64Var(&lengthMin, "length-min", stringgen.DefaultLength, "minimum length of generated strings, for the uniform method")
	cmd.Flags().Uint64Var(&lengthMax, "length-max", stringgen.DefaultLength, "maximum length of generated strings, for the uniform method")

	cmd.Flags().Uint64VarP(&count, "count", "c", 1, "number of strings to generate")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for the selection stream")

	return cmd
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	opts, err := buildOptions()

	if err != nil {
		return writeError(cmd, "invalid configuration", err)
	}

	gen, err := stringgen.NewGenerator(opts...)

	if err != nil {
		return writeError(cmd, "failed to initialize generator", err)
	}

	gen.Seed(seed)

	writer := bufio.NewWriter(cmd.OutOrStdout())
	defer writer.Flush()

	var produced uint64

	for produced < count {
		s, err := gen.Generate()

		if err != nil {
			break
		}

		if _, err := writer.WriteString(s + "\n"); err != nil {
			return writeError(cmd, "error writing generated string", err)
		}

		produced++
	}

	if err := writer.Flush(); err != nil {
		return writeError(cmd, "error flushing output", err)
	}

	if produced < count {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "selection exhausted after %s of %s requested strings\n",
			humanize.Comma(int64(produced)), humanize.Comma(int64(count)))
	}

	return nil
}

func buildOptions() ([]stringgen.Option, error) {
	var opts []stringgen.Option

	if alphabet != "" {
		opts = append(opts, stringgen.WithAlphabet(alphabet))
	} else if charset != "" {
		opts = append(opts, stringgen.WithCharset(charset))
	}

	switch strings {
	case "default":
		opts = append(opts, stringgen.WithSelectDefault())
	case "fixed":
		opts = append(opts, stringgen.WithSelectFixed(fixedSize))
	case "fixed-once":
		limit := fixedLimit
		if limit == 0 {
			limit = fixedSize
		}

		opts = append(opts, stringgen.WithSelectFixedOnce(fixedSize, fixedStart, limit))
	case "fixed-zipf":
		opts = append(opts, stringgen.WithSelectFixedZipf(fixedSize, alpha))
	default:
		return nil, fmt.Errorf("unknown --strings method %q", strings)
	}

	switch lengths {
	case "constant":
		opts = append(opts, stringgen.WithLengthConstant(length))
	case "uniform":
		opts = append(opts, stringgen.WithLengthUniform(lengthMin, lengthMax))
	default:
		return nil, fmt.Errorf("unknown --lengths method %q", lengths)
	}

	return opts, nil
}

func writeError(cmd *cobra.Command, msg string, err error) error {
	if w, ok := cmd.OutOrStdout().(*bufio.Writer); ok {
		_ = w.Flush()
	}

	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", msg, err)
	return fmt.Errorf("%s: %w", msg, err)
}
