// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package analytics

import "github.com/gopherbench/telemetry"

// sliceIterator is a minimal in-memory Iterator backed by a fixed slice
// of points, used to exercise analytics functions without round-tripping
// through an actual log file.
type sliceIterator struct {
	schema telemetry.Schema
	points []telemetry.Point
	idx    int
}

func newSliceIterator(schema telemetry.Schema, points []telemetry.Point) *sliceIterator {
	return &sliceIterator{schema: schema, points: points}
}

func (s *sliceIterator) Series() telemetry.Schema { return s.schema }

func (s *sliceIterator) Valid() int {
	if s.idx < len(s.points) {
		return 1
	}

	return 0
}

func (s *sliceIterator) Read() telemetry.Point { return s.points[s.idx] }
func (s *sliceIterator) Advance()               { s.idx++ }

func (s *sliceIterator) Rewind() error {
	s.idx = 0
	return nil
}

func (s *sliceIterator) Err() error { return nil }

func indepPoints(schema telemetry.Schema, values []float64) []telemetry.Point {
	points := make([]telemetry.Point, len(values))

	for i, v := range values {
		points[i] = telemetry.Point{Indep: telemetry.Value{Approximate: v}, Dep: telemetry.Value{Approximate: v}}
	}

	return points
}
