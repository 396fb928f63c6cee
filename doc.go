// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package telemetry implements an append-only benchmarking measurement
// log: a typed, multi-series, concurrent writer with a compact on-disk
// encoding, and a streaming reader/iterator pipeline over it.
//
// A Writer owns one SeriesWriter per declared Schema and fans out
// recorded points by series ordinal. A Reader parses the schema table of
// an already-written log and produces independent Iterators, one per
// named series, each owning its own byte cursor so that concurrent scans
// of the same log never interfere with each other.
//
// Package analytics consumes Iterators to compute CDFs, bucketed
// timeseries, streaming percentiles, and paired Student-t comparisons.
// Package stringgen and package prng implement the companion
// random-payload generator used to produce workload inputs.
package telemetry
