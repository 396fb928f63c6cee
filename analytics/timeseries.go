// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package analytics

// TimeseriesPoint is one bucket of a bucketed timeseries: the bucket's
// independent-axis start and the count of points landing in it.
type TimeseriesPoint struct {
	Start float64
	Count uint64
}

// Timeseries buckets the independent value of every point in it by the
// given step width, counting points per bucket, and emits a dense
// series with zero-filled gaps between the first and last bucket seen.
func Timeseries(it Iterator, step float64) ([]TimeseriesPoint, error) {
	indepPrec := it.Series().IndepPrec
	counts := make(map[int64]uint64)
	var minBucket, maxBucket int64
	first := true

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
		value := p.Indep.Float(indepPrec)
		bucket := int64(value / step)
		counts[bucket]++

		if first || bucket < minBucket {
			minBucket = bucket
		}

		if first || bucket > maxBucket {
			maxBucket = bucket
		}

		first = false
	}

	if first {
		return nil, nil
	}

	out := make([]TimeseriesPoint, 0, maxBucket-minBucket+1)

	for b := minBucket; b <= maxBucket; b++ {
		out = append(out, TimeseriesPoint{Start: float64(b) * step, Count: counts[b]})
	}

	return out, nil
}
