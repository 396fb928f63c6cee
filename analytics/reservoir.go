// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package analytics

import (
	"fmt"

	"github.com/gopherbench/telemetry"
	"github.com/gopherbench/telemetry/prng"
)

// Sample draws a size-k reservoir over it using algorithm R, seeded from
// seed so that repeated samples of the same (rewound) iterator under the
// same seed are identical. It returns the sampled points (length
// min(k, n)), and n, the total number of points seen.
func Sample(it Iterator, k int, seed uint64) (sampled []telemetry.Point, n int, err error) {
	if k <= 0 {
		return nil, 0, fmt.Errorf("%w: reservoir size must be positive", telemetry.ErrInvalidConfig)
	}

	source := prng.NewSource(seed)
	reservoir := make([]telemetry.Point, 0, k)
	elem := 0

	for {
		v := it.Valid()

		if v < 0 {
			return nil, 0, it.Err()
		}

		if v == 0 {
			break
		}

		p := it.Read()
		it.Advance()

		if elem < k {
			reservoir = append(reservoir, p)
		} else {
			// matches the reference sampler's reservoir-R variant: scale
			// the draw by the count of items already seen, not seen+1.
			idx := int(source.GenerateDouble() * float64(elem))

			if idx < k {
				reservoir[idx] = p
			}
		}

		elem++
	}

	return reservoir, elem, nil
}
