// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package analytics implements the streaming analytics engine: CDF
// construction, time-series bucketing, reservoir sampling, streaming
// percentile refinement, and a paired Student-t hypothesis test. Every
// analysis here consumes an Iterator and is single-pass where possible.
package analytics

import "github.com/gopherbench/telemetry"

// Iterator is the narrow surface analytics consume, satisfied by both
// *telemetry.Iterator and *telemetry.ConvertingIterator.
type Iterator interface {
	Valid() int
	Read() telemetry.Point
	Advance()
	Rewind() error
	Series() telemetry.Schema
	Err() error
}
