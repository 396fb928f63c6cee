// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package analytics

// CDFPoint is one bucket of a cumulative distribution: the bucket's
// upper bound (step * i) and the cumulative percentage, in [0, 100], of
// points with a dependent value at or below it.
type CDFPoint struct {
	Bound      float64
	Cumulative float64
}

// CDF walks it once, bucketing the dependent value by the caller-
// supplied step width (in the iterator's dependent units), growing the
// bucket list on demand, then sweeps once to convert counts into
// cumulative percentages.
func CDF(it Iterator, step float64) ([]CDFPoint, error) {
	depPrec := it.Series().DepPrec
	counts := []uint64{0}
	var total uint64

	for {
		v := it.Valid()

		if v < 0 {
			return nil, it.Err()
		}

		if v == 0 {
			break
		}

		p := it.Read()
		it.Advance()
		value := p.Dep.Float(depPrec)
		idx := 0

		for float64(idx)*step < value {
			idx++

			for idx >= len(counts) {
				counts = append(counts, 0)
			}
		}

		counts[idx]++
		total++
	}

	if total == 0 {
		return nil, nil
	}

	out := make([]CDFPoint, len(counts))
	var sum uint64

	for i, c := range counts {
		sum += c
		out[i] = CDFPoint{Bound: step * float64(i), Cumulative: 100 * float64(sum) / float64(total)}
	}

	return out, nil
}
