// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package telemetry

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/gopherbench/telemetry/codec"
)

// seriesBufferCap is the fixed capacity of each of a SeriesWriter's two
// point buffers.
const seriesBufferCap = 1024

// SeriesWriter absorbs points for one series, batches them into one of
// two fixed-capacity buffers, and on fill sorts, packs, and writes the
// batch as a single block. It mirrors the log writer's locking
// discipline: pointsMu guards the active buffer pointer and pending
// count; ioMu serializes sort+pack+write of a filled buffer. Lock order
// when both are needed is pointsMu before ioMu.
type SeriesWriter struct {
	ordinal int
	schema  Schema
	sink    *sink

	pointsMu sync.Mutex
	buffers  [2][seriesBufferCap]Point
	current  int
	pending  int

	ioMu sync.Mutex
	err  error
}

func newSeriesWriter(ordinal int, schema Schema, sink *sink) *SeriesWriter {
	return &SeriesWriter{ordinal: ordinal, schema: schema, sink: sink}
}

// Record appends a point to the active buffer. If the buffer fills, the
// writer swaps to the other buffer while holding both mutexes only long
// enough to flip the pointer, then sorts, packs, and writes the
// just-filled buffer under ioMu alone, so producers are blocked only for
// the pointer swap.
func (w *SeriesWriter) Record(indep, dep Value) {
	w.pointsMu.Lock()
	idx := w.current
	slot := w.pending
	w.buffers[idx][slot] = Point{SeriesOrdinal: w.ordinal, Indep: indep, Dep: dep}
	w.pending++
	full := w.pending == seriesBufferCap

	if !full {
		w.pointsMu.Unlock()
		return
	}

	w.ioMu.Lock()
	batch := w.buffers[idx][:w.pending]
	w.current = 1 - idx
	w.pending = 0
	w.pointsMu.Unlock()

	w.flush(batch)
	w.ioMu.Unlock()
}

// Flush writes out any buffered, not-yet-full batch. Safe to call
// concurrently with Record; used by the log writer's flush-and-close
// path.
func (w *SeriesWriter) Flush() error {
	w.pointsMu.Lock()
	idx := w.current
	n := w.pending

	if n == 0 {
		w.pointsMu.Unlock()
		return w.err
	}

	w.ioMu.Lock()
	batch := make([]Point, n)
	copy(batch, w.buffers[idx][:n])
	w.pending = 0
	w.pointsMu.Unlock()

	w.flush(batch)
	err := w.err
	w.ioMu.Unlock()
	return err
}

// flush sorts, packs, and writes batch as one block. Must be called with
// ioMu held.
func (w *SeriesWriter) flush(batch []Point) {
	if w.err != nil || len(batch) == 0 {
		return
	}

	sortPoints(batch, w.schema.IndepPrec)

	payload := codec.AppendVarint(nil, uint64(w.ordinal))
	var prevPrecise uint64
	havePrev := false

	for i := range batch {
		p := &batch[i]
		payload = packValue(payload, p.Indep, w.schema.IndepPrec, &prevPrecise, &havePrev)
		payload = packValue(payload, p.Dep, w.schema.DepPrec, nil, nil)
	}

	if err := w.sink.writeBlock(payload); err != nil {
		w.err = fmt.Errorf("%w: %v", ErrIO, err)
	}
}

// packValue appends the wire encoding of v under prec. When prevPrecise
// is non-nil and prec is precise, the value is delta-encoded against the
// running previous value (the first call in a column stores its
// absolute value).
func packValue(dst []byte, v Value, prec Precision, prevPrecise *uint64, havePrev *bool) []byte {
	switch prec {
	case PrecisionPrecise:
		if prevPrecise == nil {
			return codec.AppendVarint(dst, v.Precise)
		}

		var encoded uint64

		if *havePrev {
			encoded = v.Precise - *prevPrecise
		} else {
			encoded = v.Precise
			*havePrev = true
		}

		*prevPrecise = v.Precise
		return codec.AppendVarint(dst, encoded)
	case PrecisionHalf:
		return codec.AppendUint16(dst, approximateToHalf(v.Approximate))
	case PrecisionSingle:
		return codec.AppendFloat32(dst, float32(v.Approximate))
	case PrecisionDouble:
		return codec.AppendFloat64(dst, v.Approximate)
	default:
		return dst
	}
}

func approximateToHalf(v float64) uint16 {
	return codec.CompressHalf(float32(v))
}

// sortPoints sorts batch by independent axis: precise integers compare
// as uint64, approximate axes compare as float64 with NaN sorting high
// so ordering is total and reproducible across calls.
func sortPoints(batch []Point, prec Precision) {
	sort.SliceStable(batch, func(i, j int) bool {
		if prec.IsPrecise() {
			return batch[i].Indep.Precise < batch[j].Indep.Precise
		}

		a, b := batch[i].Indep.Approximate, batch[j].Indep.Approximate

		if math.IsNaN(a) {
			return false
		}

		if math.IsNaN(b) {
			return true
		}

		return a < b
	})
}
