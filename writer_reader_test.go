// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package telemetry

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopWriteCloser struct {
	*bytes.Buffer
}

func (nopWriteCloser) Close() error { return nil }

func mustSchema(t *testing.T, name string, indepUnit Unit, indepPrec Precision, depUnit Unit, depPrec Precision) Schema {
	t.Helper()
	s, err := NewSchema(name, indepUnit, indepPrec, depUnit, depPrec)
	require.NoError(t, err)
	return s
}

func drain(t *testing.T, it *Iterator) []Point {
	t.Helper()
	var out []Point

	for {
		v := it.Valid()
		require.GreaterOrEqual(t, v, 0, "iterator errored: %v", it.Err())

		if v == 0 {
			return out
		}

		out = append(out, it.Read())
		it.Advance()
	}
}

func TestWriterReaderSingleSeriesOrdering(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	schema := mustSchema(t, "latency", UnitMicroseconds, PrecisionPrecise, UnitMicroseconds, PrecisionPrecise)
	buf := &bytes.Buffer{}

	w, err := NewWriter(nopWriteCloser{buf}, []Schema{schema})
	require.NoError(t, err)

	indeps := []uint64{30, 10, 20, 40, 15}

	for _, v := range indeps {
		require.NoError(t, w.Record(0, Value{Precise: v}, Value{Precise: v * 2}))
	}

	require.NoError(t, w.FlushAndClose())

	r, err := NewReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	it, err := r.Iterate("latency")
	require.NoError(t, err)

	points := drain(t, it)
	require.Len(t, points, len(indeps))

	var got []uint64
	for _, p := range points {
		got = append(got, p.Indep.Precise)
	}

	is.Equal([]uint64{10, 15, 20, 30, 40}, got, "points must be returned sorted by independent value")

	for _, p := range points {
		is.Equal(p.Indep.Precise*2, p.Dep.Precise)
	}
}

func TestWriterReaderMultiBlockDeltaEncoding(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	schema := mustSchema(t, "big", UnitMonotonic, PrecisionPrecise, UnitUnit, PrecisionPrecise)
	buf := &bytes.Buffer{}

	w, err := NewWriter(nopWriteCloser{buf}, []Schema{schema})
	require.NoError(t, err)

	const n = 2500

	for i := uint64(0); i < n; i++ {
		require.NoError(t, w.Record(0, Value{Precise: i}, Value{Precise: i}))
	}

	require.NoError(t, w.FlushAndClose())

	r, err := NewReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	it, err := r.Iterate("big")
	require.NoError(t, err)

	points := drain(t, it)
	require.Len(t, points, n)

	for i, p := range points {
		is.Equal(uint64(i), p.Indep.Precise, "point %d out of order or mis-decoded", i)
	}
}

func TestWriterReaderCrossSeriesIsolation(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	a := mustSchema(t, "a", UnitUnit, PrecisionPrecise, UnitUnit, PrecisionPrecise)
	b := mustSchema(t, "b", UnitUnit, PrecisionPrecise, UnitUnit, PrecisionPrecise)
	buf := &bytes.Buffer{}

	w, err := NewWriter(nopWriteCloser{buf}, []Schema{a, b})
	require.NoError(t, err)

	for i := uint64(0); i < 10; i++ {
		require.NoError(t, w.Record(0, Value{Precise: i}, Value{Precise: 0}))
		require.NoError(t, w.Record(1, Value{Precise: 100 + i}, Value{Precise: 0}))
	}

	require.NoError(t, w.FlushAndClose())

	r, err := NewReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	itA, err := r.Iterate("a")
	require.NoError(t, err)
	itB, err := r.Iterate("b")
	require.NoError(t, err)

	pointsA := drain(t, itA)
	pointsB := drain(t, itB)

	is.Len(pointsA, 10)
	is.Len(pointsB, 10)

	for _, p := range pointsA {
		is.Less(p.Indep.Precise, uint64(100), "series a must never see series b's points")
	}

	for _, p := range pointsB {
		is.GreaterOrEqual(p.Indep.Precise, uint64(100), "series b must never see series a's points")
	}
}

func TestReaderIterateUnknownSeries(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	schema := mustSchema(t, "known", UnitUnit, PrecisionPrecise, UnitUnit, PrecisionPrecise)
	buf := &bytes.Buffer{}

	w, err := NewWriter(nopWriteCloser{buf}, []Schema{schema})
	require.NoError(t, err)
	require.NoError(t, w.FlushAndClose())

	r, err := NewReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	_, err = r.Iterate("missing")
	is.ErrorIs(err, ErrNotFound)
}

func TestWriterRejectsDuplicateSeriesNames(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	a := mustSchema(t, "dup", UnitUnit, PrecisionPrecise, UnitUnit, PrecisionPrecise)
	buf := &bytes.Buffer{}

	_, err := NewWriter(nopWriteCloser{buf}, []Schema{a, a})
	is.ErrorIs(err, ErrInvalidConfig)
}

func TestIteratorRewind(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	schema := mustSchema(t, "s", UnitUnit, PrecisionPrecise, UnitUnit, PrecisionPrecise)
	buf := &bytes.Buffer{}

	w, err := NewWriter(nopWriteCloser{buf}, []Schema{schema})
	require.NoError(t, err)

	for i := uint64(0); i < 5; i++ {
		require.NoError(t, w.Record(0, Value{Precise: i}, Value{Precise: i}))
	}

	require.NoError(t, w.FlushAndClose())

	r, err := NewReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	it, err := r.Iterate("s")
	require.NoError(t, err)

	first := drain(t, it)
	is.Len(first, 5)

	require.NoError(t, it.Rewind())
	second := drain(t, it)
	is.Equal(first, second, "rewinding must reproduce the same sequence of points")
}

func TestHalfPrecisionRoundTrip(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	schema := mustSchema(t, "h", UnitSeconds, PrecisionPrecise, UnitSeconds, PrecisionHalf)
	buf := &bytes.Buffer{}

	w, err := NewWriter(nopWriteCloser{buf}, []Schema{schema})
	require.NoError(t, err)

	require.NoError(t, w.Record(0, Value{Precise: 0}, Value{Approximate: 1.5}))
	require.NoError(t, w.Record(0, Value{Precise: 1}, Value{Approximate: -2.0}))
	require.NoError(t, w.FlushAndClose())

	r, err := NewReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	it, err := r.Iterate("h")
	require.NoError(t, err)

	points := drain(t, it)
	require.Len(t, points, 2)
	is.Equal(1.5, points[0].Dep.Approximate)
	is.Equal(-2.0, points[1].Dep.Approximate)
}
