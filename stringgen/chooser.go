// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package stringgen

import "github.com/gopherbench/telemetry/prng"

// setKind tags the variant carried by a setChooser. Replaces a
// string_chooser virtual-dispatch hierarchy with a single sum type that is
// pattern-matched once, in setChooser.seed, called from Generator.Generate.
type setKind int

const (
	setDefault setKind = iota
	setFixed
	setFixedOnce
	setFixedZipf
)

// setChooser picks the 64-bit seed fed into the content stream on each
// call to Generate, or signals that the configured cardinality has been
// exhausted. The zero value is setDefault: the content stream is never
// reseeded by the chooser, and it simply continues drawing from wherever
// it left off.
type setChooser struct {
	kind setKind

	// setFixed, setFixedOnce
	size uint64

	// setFixedOnce
	idx, limit uint64

	// setFixedZipf
	zipf prng.ZipfParams
}

// newSetDefault builds the no-op chooser: Generator never reseeds its
// content stream between calls.
func newSetDefault() setChooser {
	return setChooser{kind: setDefault}
}

// newSetFixed builds a chooser drawing a uniform index in [0, size) on
// every call, forever.
func newSetFixed(size uint64) setChooser {
	return setChooser{kind: setFixed, size: size}
}

// newSetFixedOnce builds a chooser that walks [start, limit) once, in
// order, then reports exhaustion.
func newSetFixedOnce(size, start, limit uint64) setChooser {
	if limit > size {
		limit = size
	}

	if start > limit {
		start = limit
	}

	return setChooser{kind: setFixedOnce, size: size, idx: start, limit: limit}
}

// newSetFixedZipf builds a chooser drawing a Zipf-distributed index over
// [0, size) with skew alpha on every call, forever.
func newSetFixedZipf(size uint64, alpha float64) setChooser {
	return setChooser{kind: setFixedZipf, size: size, zipf: prng.NewZipfParams(size, alpha)}
}

// done reports whether the chooser has nothing left to offer. Only
// setFixedOnce ever reports true.
func (c *setChooser) done() bool {
	return c.kind == setFixedOnce && c.idx >= c.limit
}

// seed draws the next content-stream seed from the selection stream src.
// For setFixedOnce it ignores src and walks its own counter instead.
func (c *setChooser) seed(src *prng.Source) uint64 {
	switch c.kind {
	case setFixed:
		return uint64(float64(c.size) * src.GenerateDouble())
	case setFixedOnce:
		v := c.idx
		c.idx++
		return v
	case setFixedZipf:
		return src.Zipf(c.zipf)
	default:
		return 0
	}
}

// lengthKind tags the variant carried by a lengthChooser.
type lengthKind int

const (
	lengthConstant lengthKind = iota
	lengthUniform
)

// lengthChooser picks the length, in bytes, of the next generated string.
type lengthChooser struct {
	kind     lengthKind
	min, max uint64
}

// newLengthConstant builds a chooser that always returns size.
func newLengthConstant(size uint64) lengthChooser {
	return lengthChooser{kind: lengthConstant, min: size, max: size}
}

// newLengthUniform builds a chooser drawing a uniform length in [min, max]
// on every call.
func newLengthUniform(min, max uint64) lengthChooser {
	if max < min {
		max = min
	}

	return lengthChooser{kind: lengthUniform, min: min, max: max}
}

// maxLength returns the largest length this chooser can ever produce, used to
// size the content buffer once at construction.
func (c lengthChooser) maxLength() uint64 {
	return c.max
}

// length draws the next length from the content stream src.
func (c lengthChooser) length(src *prng.Source) uint64 {
	switch c.kind {
	case lengthUniform:
		return c.min + uint64(float64(c.max-c.min+1)*src.GenerateDouble())
	default:
		return c.min
	}
}
