// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package telemetry

import "fmt"

// MaxSeriesNameLen is the maximum byte length of a series name,
// excluding its NUL terminator.
const MaxSeriesNameLen = 64

// Schema is an immutable declaration of one series: its name and the
// unit/precision pair for each of its two axes. Once constructed, a
// Schema's fields never change.
type Schema struct {
	Name          string
	IndepUnit     Unit
	IndepPrec     Precision
	DepUnit       Unit
	DepPrec       Precision
}

// NewSchema validates and returns a Schema. Name must be non-empty and
// no longer than MaxSeriesNameLen bytes and must not contain a NUL byte.
func NewSchema(name string, indepUnit Unit, indepPrec Precision, depUnit Unit, depPrec Precision) (Schema, error) {
	if name == "" || len(name) > MaxSeriesNameLen {
		return Schema{}, fmt.Errorf("%w: series name length must be in [1, %d]", ErrInvalidConfig, MaxSeriesNameLen)
	}

	for i := 0; i < len(name); i++ {
		if name[i] == 0 {
			return Schema{}, fmt.Errorf("%w: series name must not contain a NUL byte", ErrInvalidConfig)
		}
	}

	return Schema{
		Name:      name,
		IndepUnit: indepUnit,
		IndepPrec: indepPrec,
		DepUnit:   depUnit,
		DepPrec:   depPrec,
	}, nil
}

// encode appends this schema's wire representation
// (name 0x00 indep_unit indep_prec dep_unit dep_prec) to dst.
func (s Schema) encode(dst []byte) []byte {
	dst = append(dst, s.Name...)
	dst = append(dst, 0)
	dst = append(dst, byte(s.IndepUnit), byte(s.IndepPrec), byte(s.DepUnit), byte(s.DepPrec))
	return dst
}

// Value is one axis's measurement, holding either the precise integer or
// the approximate float representation depending on the owning
// Schema's precision for that axis.
type Value struct {
	Precise     uint64
	Approximate float64
}

// Float returns the value as a float64 regardless of which
// representation prec selects, for callers (analytics) that only need a
// numeric comparison.
func (v Value) Float(prec Precision) float64 {
	if prec.IsPrecise() {
		return float64(v.Precise)
	}

	return v.Approximate
}

// Point is one data point: a reference to its series by declaration
// ordinal, plus an independent and dependent value.
type Point struct {
	SeriesOrdinal int
	Indep         Value
	Dep           Value
}
