// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package stringgen

import (
	"fmt"
	"testing"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Float | constraints.Integer
}

func mean[T Number](data []T) float64 {
	if len(data) == 0 {
		return 0
	}

	var sum float64
	for _, d := range data {
		sum += float64(d)
	}

	return sum / float64(len(data))
}

// BenchmarkGenerateAllocations benchmarks generating a string of
// DefaultLength from the default charset.
func BenchmarkGenerateAllocations(b *testing.B) {
	b.ReportAllocs()

	gen, err := NewGenerator()
	if err != nil {
		b.Fatalf("failed to create generator: %v", err)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := gen.Generate(); err != nil {
			b.Fatalf("Generate returned an unexpected error: %v", err)
		}
	}
}

// BenchmarkGenerateVaryingLengths benchmarks generation across a set of
// fixed lengths, sizing a shared generator around their mean length.
func BenchmarkGenerateVaryingLengths(b *testing.B) {
	b.ReportAllocs()

	lengths := []int{8, 16, 21, 32, 64, 128}
	m := mean(lengths)

	for _, charset := range []string{"lower", "alnum", "hex"} {
		gen, err := NewGenerator(WithCharset(charset), WithLengthConstant(uint64(m)))
		if err != nil {
			b.Fatalf("failed to create generator with charset %s: %v", charset, err)
		}

		b.Run(fmt.Sprintf("Charset_%s", charset), func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := gen.Generate(); err != nil {
					b.Fatalf("Generate returned an unexpected error: %v", err)
				}
			}
		})
	}
}

// BenchmarkGenerateFixedSelectionCardinality benchmarks generation under
// a fixed-cardinality selection chooser at varying set sizes.
func BenchmarkGenerateFixedSelectionCardinality(b *testing.B) {
	b.ReportAllocs()

	cardinalities := []uint64{10, 1000, 100000}

	for _, size := range cardinalities {
		gen, err := NewGenerator(WithSelectFixed(size), WithLengthConstant(DefaultLength))
		if err != nil {
			b.Fatalf("failed to create generator with cardinality %d: %v", size, err)
		}

		gen.Seed(1)

		b.Run(fmt.Sprintf("Cardinality_%d", size), func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := gen.Generate(); err != nil {
					b.Fatalf("Generate returned an unexpected error: %v", err)
				}
			}
		})
	}
}
