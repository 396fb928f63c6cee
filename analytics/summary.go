// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package analytics

import "math"

// Summary is a one-pass summary of a stream: point count, time span, and
// running mean/variance of the dependent axis computed via Welford's
// algorithm.
type Summary struct {
	Points   uint64
	Span     float64
	Mean     float64
	Variance float64
	Stdev    float64
}

// Summarize walks it once, computing Summary. Span is the difference
// between the maximum and minimum independent-axis value seen.
func Summarize(it Iterator) (Summary, error) {
	indepPrec := it.Series().IndepPrec
	depPrec := it.Series().DepPrec

	var n float64
	var mean, m2 float64
	minIndep := math.Inf(1)
	maxIndep := math.Inf(-1)

	for {
		v := it.Valid()

		if v < 0 {
			return Summary{}, it.Err()
		}

		if v == 0 {
			break
		}

		p := it.Read()
		it.Advance()

		x := p.Indep.Float(indepPrec)

		if x < minIndep {
			minIndep = x
		}

		if x > maxIndep {
			maxIndep = x
		}

		n++
		data := p.Dep.Float(depPrec)
		delta := data - mean
		mean += delta / n
		m2 += delta * (data - mean)
	}

	var variance, stdev float64

	if n > 1 {
		variance = m2 / (n - 1)
		stdev = math.Sqrt(variance)
	}

	span := maxIndep - minIndep

	if n == 0 {
		span = 0
	}

	return Summary{Points: uint64(n), Span: span, Mean: mean, Variance: variance, Stdev: stdev}, nil
}
