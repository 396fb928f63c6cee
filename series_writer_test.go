// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package telemetry

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeriesWriterFlushesOnBufferFill(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	var buf bytes.Buffer
	sk := &sink{w: nopWriteCloser{&buf}}
	sw := newSeriesWriter(0, mustSchema(t, "s", UnitUnit, PrecisionPrecise, UnitUnit, PrecisionPrecise), sk)

	for i := 0; i < seriesBufferCap; i++ {
		sw.Record(Value{Precise: uint64(i)}, Value{Precise: uint64(i)})
	}

	is.Greater(buf.Len(), 0, "a full buffer must flush a block without an explicit Flush call")
	is.Equal(0, sw.pending, "pending count resets to zero once the full buffer is handed off")
}

func TestSeriesWriterFlipsActiveBufferOnFill(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	var buf bytes.Buffer
	sk := &sink{w: nopWriteCloser{&buf}}
	sw := newSeriesWriter(0, mustSchema(t, "s", UnitUnit, PrecisionPrecise, UnitUnit, PrecisionPrecise), sk)

	initial := sw.current

	for i := 0; i < seriesBufferCap; i++ {
		sw.Record(Value{Precise: uint64(i)}, Value{Precise: uint64(i)})
	}

	is.Equal(1-initial, sw.current, "filling the active buffer must flip to the other one")

	sw.Record(Value{Precise: 1}, Value{Precise: 1})
	is.Equal(1, sw.pending, "the next point lands in the freshly flipped buffer")
}

func TestSeriesWriterFlushWritesPartialBuffer(t *testing.T) {
	t.Parallel()
	is := assert.New(t)
	require := require.New(t)

	var buf bytes.Buffer
	sk := &sink{w: nopWriteCloser{&buf}}
	sw := newSeriesWriter(0, mustSchema(t, "s", UnitUnit, PrecisionPrecise, UnitUnit, PrecisionPrecise), sk)

	sw.Record(Value{Precise: 1}, Value{Precise: 2})
	sw.Record(Value{Precise: 3}, Value{Precise: 4})

	is.Equal(0, buf.Len(), "a partial buffer must not be written until Flush is called")

	require.NoError(sw.Flush())
	is.Greater(buf.Len(), 0)
	is.Equal(0, sw.pending)
}

func TestSeriesWriterFlushOnEmptyBufferIsNoop(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	var buf bytes.Buffer
	sk := &sink{w: nopWriteCloser{&buf}}
	sw := newSeriesWriter(0, mustSchema(t, "s", UnitUnit, PrecisionPrecise, UnitUnit, PrecisionPrecise), sk)

	require.NoError(t, sw.Flush())
	is.Equal(0, buf.Len())
}

func TestSeriesWriterConcurrentRecordIsRaceFree(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	var buf bytes.Buffer
	sk := &sink{w: nopWriteCloser{&buf}}
	sw := newSeriesWriter(0, mustSchema(t, "s", UnitUnit, PrecisionPrecise, UnitUnit, PrecisionPrecise), sk)

	const goroutines = 8
	const perGoroutine = 500

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for g := 0; g < goroutines; g++ {
		go func(base int) {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				sw.Record(Value{Precise: uint64(base + i)}, Value{Precise: uint64(base + i)})
			}
		}(g * perGoroutine)
	}

	wg.Wait()
	require.NoError(t, sw.Flush())
	is.NoError(sw.err)
}
