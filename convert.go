// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package telemetry

import "fmt"

// ConvertingIterator wraps another iterator and a pair of target units,
// rescaling the independent axis (or, symmetrically, the dependent axis)
// of every point it reads. Precise integers scaled by a non-integer
// ratio are demoted to double precision, since a fractional scale cannot
// be represented exactly as a uint64.
type ConvertingIterator struct {
	inner     *Iterator
	axis      Axis
	fromUnit  Unit
	toUnit    Unit
	ratio     float64
	resultPrec Precision
}

// Axis selects which of a point's two values a ConvertingIterator
// rescales.
type Axis int

const (
	AxisIndependent Axis = iota
	AxisDependent
)

// NewConvertingIterator wraps inner, converting the given axis from its
// schema unit to toUnit. It returns ErrIncompatibleUnits if the units
// are not in the same family.
func NewConvertingIterator(inner *Iterator, axis Axis, toUnit Unit) (*ConvertingIterator, error) {
	schema := inner.Series()
	fromUnit := schema.IndepUnit
	fromPrec := schema.IndepPrec

	if axis == AxisDependent {
		fromUnit = schema.DepUnit
		fromPrec = schema.DepPrec
	}

	if !UnitsCompatible(fromUnit, toUnit) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrIncompatibleUnits, fromUnit, toUnit)
	}

	ratio, err := ConversionRatio(fromUnit, toUnit)

	if err != nil {
		return nil, err
	}

	resultPrec := fromPrec

	if fromPrec.IsPrecise() && ratio != float64(int64(ratio)) {
		resultPrec = PrecisionDouble
	}

	return &ConvertingIterator{inner: inner, axis: axis, fromUnit: fromUnit, toUnit: toUnit, ratio: ratio, resultPrec: resultPrec}, nil
}

// Valid, Advance, Rewind, and Err delegate directly to the wrapped
// iterator; only Read rescales the selected axis.
func (c *ConvertingIterator) Valid() int    { return c.inner.Valid() }
func (c *ConvertingIterator) Advance()      { c.inner.Advance() }
func (c *ConvertingIterator) Rewind() error { return c.inner.Rewind() }
func (c *ConvertingIterator) Err() error    { return c.inner.Err() }

// Series returns the wrapped iterator's schema with the converted axis's
// unit and (if demoted) precision updated to reflect the conversion.
func (c *ConvertingIterator) Series() Schema {
	s := c.inner.Series()

	if c.axis == AxisIndependent {
		s.IndepUnit = c.toUnit
		s.IndepPrec = c.resultPrec
	} else {
		s.DepUnit = c.toUnit
		s.DepPrec = c.resultPrec
	}

	return s
}

// Read returns the current point with the selected axis rescaled by the
// conversion ratio.
func (c *ConvertingIterator) Read() Point {
	p := c.inner.Read()

	if c.axis == AxisIndependent {
		p.Indep = c.convertValue(p.Indep, c.inner.Series().IndepPrec)
	} else {
		p.Dep = c.convertValue(p.Dep, c.inner.Series().DepPrec)
	}

	return p
}

func (c *ConvertingIterator) convertValue(v Value, fromPrec Precision) Value {
	raw := v.Float(fromPrec)
	scaled := raw * c.ratio

	if c.resultPrec.IsPrecise() {
		return Value{Precise: uint64(scaled)}
	}

	return Value{Approximate: scaled}
}
