// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package analytics

import (
	"fmt"
	"math"
	"sort"

	"github.com/gopherbench/telemetry"
)

// percentileBufferSize is the fixed reservoir size used while refining a
// streaming percentile: large enough to make most single-pass answers
// exact, small enough to bound memory on arbitrarily large streams.
const percentileBufferSize = 1024

// Percentile finds the p-th percentile (0 < p <= 1) of it's dependent
// axis without requiring the whole stream to fit in memory. It rewinds
// it as many times as the refinement needs; callers should not assume
// it is left at any particular position.
func Percentile(it Iterator, p float64, seed uint64) (float64, error) {
	if p <= 0 || p > 1 {
		return 0, fmt.Errorf("%w: percentile must be in (0, 1]", telemetry.ErrInvalidConfig)
	}

	depPrec := it.Series().DepPrec
	sampled, n, err := sampleDep(it, percentileBufferSize, seed, depPrec)

	if err != nil {
		return 0, err
	}

	k := len(sampled)
	sort.Float64s(sampled)

	if k == n {
		if n == 0 {
			return math.NaN(), nil
		}

		which := int(float64(n-1) * p)
		return sampled[which], nil
	}

	window := float64(percentileBufferSize) * 0.25 * float64(k) / float64(n)
	center := int(float64(k) * p)
	lowerCutIdx := 0

	if float64(center) > window {
		lowerCutIdx = int(float64(center) - window)
	}

	upperCutIdx := center + int(3*window)

	if upperCutIdx > k {
		upperCutIdx = k
	}

	lowerCutoff := math.Inf(-1)
	upperCutoff := math.Inf(1)

	if lowerCutIdx > 0 && lowerCutIdx <= upperCutIdx {
		lowerCutoff = sampled[lowerCutIdx]
	}

	if upperCutIdx < k && lowerCutIdx < upperCutIdx {
		upperCutoff = sampled[upperCutIdx]
	} else if upperCutIdx+1 < k && lowerCutIdx == upperCutIdx {
		upperCutoff = sampled[upperCutIdx+1]
	}

	which := int(float64(n-1) * p)
	adj := int(window * 2)

	for {
		if err := it.Rewind(); err != nil {
			return 0, err
		}

		var lowerCount, upperCount int
		values := make([]float64, percentileBufferSize)
		filled := 0

		for {
			v := it.Valid()

			if v < 0 {
				return 0, it.Err()
			}

			if v == 0 {
				break
			}

			if filled >= len(values) {
				sort.Float64s(values)

				if values[0] >= values[filled/4] {
					// the buffer holds too narrow a range to cut; grow it
					// instead of narrowing, bounded by the stream itself.
					values = append(values, make([]float64, len(values))...)
				} else {
					first := sort.Search(filled, func(i int) bool { return values[i] > lowerCutoff })
					cut := first + (filled-first)/2
					upperCutoff = values[cut]
					upperCount += filled - cut
					filled = cut
				}
			}

			pt := it.Read()
			it.Advance()
			val := pt.Dep.Float(depPrec)

			switch {
			case val < lowerCutoff:
				lowerCount++
			case val > lowerCutoff && val >= upperCutoff:
				upperCount++
			default:
				values[filled] = val
				filled++
			}
		}

		if lowerCount+upperCount+filled != n {
			return 0, fmt.Errorf("%w: percentile refinement lost points", telemetry.ErrMalformedInput)
		}

		values = values[:filled]
		sort.Float64s(values)

		switch {
		case which < lowerCount:
			if len(values) == 0 {
				values = append(values, upperCutoff)
			}

			lowerCutoff = math.Inf(-1)
			upperCutoff = values[0]

			idx := 0

			for idx+adj < len(sampled) && sampled[idx+adj] < upperCutoff {
				lowerCutoff = sampled[idx]
				idx++
			}
		case len(values) == 0 || which-lowerCount >= len(values):
			lowerCutoff = upperCutoff
			upperCutoff = math.Inf(1)

			idx := len(sampled) - 1

			for idx-adj >= 0 && sampled[idx-adj] > lowerCutoff {
				upperCutoff = sampled[idx]
				idx--
			}
		default:
			return values[which-lowerCount], nil
		}
	}
}

// sampleDep reservoir-samples the dependent axis's float value alongside
// the full point, using the same algorithm-R seeding as Sample.
func sampleDep(it Iterator, k int, seed uint64, depPrec telemetry.Precision) ([]float64, int, error) {
	points, n, err := Sample(it, k, seed)

	if err != nil {
		return nil, 0, err
	}

	values := make([]float64, len(points))

	for i, p := range points {
		values[i] = p.Dep.Float(depPrec)
	}

	return values, n, nil
}
