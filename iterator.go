// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package telemetry

import (
	"fmt"
	"io"

	"github.com/gopherbench/telemetry/codec"
)

// iterState is the iterator's state machine, mirroring the states named
// in the component design: a freshly opened or rewound iterator has no
// buffered points; reading a block transitions it to buffered; a clean
// short read at a block boundary is EOF; anything else malformed is
// Errored.
type iterState int

const (
	stateFresh iterState = iota
	stateBuffered
	stateEOF
	stateErrored
)

// Iterator is a lazy, restartable cursor over one series' blocks. It
// owns its own byte offset into the underlying source, so multiple
// Iterators over the same Reader proceed independently.
type Iterator struct {
	src        io.ReaderAt
	dataOffset int64
	offset     int64
	ordinal    int
	schema     Schema

	state   iterState
	err     error
	points  []Point
	nextIdx int
}

func newIterator(src io.ReaderAt, dataOffset int64, ordinal int, schema Schema) *Iterator {
	return &Iterator{src: src, dataOffset: dataOffset, offset: dataOffset, ordinal: ordinal, schema: schema, state: stateFresh}
}

// Series returns the schema this iterator reads.
func (it *Iterator) Series() Schema {
	return it.schema
}

// Valid reports whether a decoded point is ready (>0), the stream has
// reached a clean EOF (0), or a decoding error occurred (<0).
func (it *Iterator) Valid() int {
	for {
		switch it.state {
		case stateErrored:
			return -1
		case stateEOF:
			return 0
		case stateBuffered:
			if it.nextIdx < len(it.points) {
				return 1
			}

			it.state = stateFresh
		case stateFresh:
			if !it.fillBuffer() {
				return it.valid0()
			}
		}
	}
}

func (it *Iterator) valid0() int {
	if it.state == stateErrored {
		return -1
	}

	return 0
}

// fillBuffer reads and skips blocks until one belonging to this
// iterator's series is found and decoded, or the stream ends. It returns
// true if the iterator is now in stateBuffered with points ready.
func (it *Iterator) fillBuffer() bool {
	for {
		var lenBuf [8]byte
		n, err := readFullAt(it.src, lenBuf[:], it.offset)

		if err == io.EOF && n == 0 {
			it.state = stateEOF
			return false
		}

		if err != nil {
			it.state = stateErrored
			it.err = fmt.Errorf("%w: reading block length: %v", ErrIO, err)
			return false
		}

		blockLen, err := codec.DecodeUint64(lenBuf[:])

		if err != nil {
			it.state = stateErrored
			it.err = fmt.Errorf("%w: %v", ErrMalformedInput, err)
			return false
		}

		it.offset += 8
		payload := make([]byte, blockLen)

		if _, err := readFullAt(it.src, payload, it.offset); err != nil {
			it.state = stateErrored
			it.err = fmt.Errorf("%w: short read mid-block: %v", ErrIO, err)
			return false
		}

		it.offset += int64(blockLen)

		ordinal, consumed, err := codec.DecodeVarint(payload)

		if err != nil {
			it.state = stateErrored
			it.err = fmt.Errorf("%w: %v", ErrMalformedInput, err)
			return false
		}

		if int(ordinal) != it.ordinal {
			continue
		}

		points, err := decodeEntries(payload[consumed:], it.ordinal, it.schema)

		if err != nil {
			it.state = stateErrored
			it.err = err
			return false
		}

		it.points = points
		it.nextIdx = 0
		it.state = stateBuffered
		return true
	}
}

func readFullAt(src io.ReaderAt, buf []byte, offset int64) (int, error) {
	n, err := src.ReadAt(buf, offset)

	if err == io.EOF && n == len(buf) {
		return n, nil
	}

	return n, err
}

// decodeEntries decodes the ENTRY+ tail of one block's payload into
// Points, applying the same precision and delta rules the writer used
// to pack them.
func decodeEntries(buf []byte, ordinal int, schema Schema) ([]Point, error) {
	var points []Point
	var prevPrecise uint64
	havePrev := false

	for len(buf) > 0 {
		indep, n, err := unpackValue(buf, schema.IndepPrec, &prevPrecise, &havePrev)

		if err != nil {
			return nil, err
		}

		buf = buf[n:]
		dep, n, err := unpackValue(buf, schema.DepPrec, nil, nil)

		if err != nil {
			return nil, err
		}

		buf = buf[n:]
		points = append(points, Point{SeriesOrdinal: ordinal, Indep: indep, Dep: dep})
	}

	return points, nil
}

func unpackValue(buf []byte, prec Precision, prevPrecise *uint64, havePrev *bool) (Value, int, error) {
	switch prec {
	case PrecisionPrecise:
		delta, n, err := codec.DecodeVarint(buf)

		if err != nil {
			return Value{}, 0, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}

		if prevPrecise == nil {
			return Value{Precise: delta}, n, nil
		}

		var value uint64

		if *havePrev {
			value = *prevPrecise + delta
		} else {
			value = delta
			*havePrev = true
		}

		*prevPrecise = value
		return Value{Precise: value}, n, nil
	case PrecisionHalf:
		v, err := codec.DecodeUint16(buf)

		if err != nil {
			return Value{}, 0, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}

		return Value{Approximate: float64(codec.DecompressHalf(v))}, 2, nil
	case PrecisionSingle:
		v, err := codec.DecodeFloat32(buf)

		if err != nil {
			return Value{}, 0, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}

		return Value{Approximate: float64(v)}, 4, nil
	case PrecisionDouble:
		v, err := codec.DecodeFloat64(buf)

		if err != nil {
			return Value{}, 0, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}

		return Value{Approximate: v}, 8, nil
	default:
		return Value{}, 0, fmt.Errorf("%w: unknown precision byte %d", ErrMalformedInput, prec)
	}
}

// Read returns the current point. Callers must check Valid() > 0 first.
func (it *Iterator) Read() Point {
	return it.points[it.nextIdx]
}

// Advance pops the front of the buffer.
func (it *Iterator) Advance() {
	it.nextIdx++
}

// Rewind re-seeks to the start of the series' block data and resets
// error, EOF, and buffer state, transitioning Errored or EOF back to
// Fresh.
func (it *Iterator) Rewind() error {
	it.offset = it.dataOffset
	it.state = stateFresh
	it.err = nil
	it.points = nil
	it.nextIdx = 0
	return nil
}

// Err returns the error that put the iterator into the Errored state, if
// any.
func (it *Iterator) Err() error {
	return it.err
}
