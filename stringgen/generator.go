// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package stringgen generates pseudo-random strings from a configurable
// alphabet, cardinality, and length distribution, driven by two
// independent PRNG streams: a selection stream that picks which string
// to emit next, and a content stream that fills in its bytes.
package stringgen

import (
	"errors"
	"fmt"

	"github.com/gopherbench/telemetry"
	"github.com/gopherbench/telemetry/prng"
)

// DefaultLength is the length used when no length option is supplied.
const DefaultLength = 16

// lengthRoundup is the content draw granularity: GenerateBytes is always
// asked for a multiple of 4 bytes so that a run of generated strings never
// leaves the content stream mid-word.
const lengthRoundup = 4

// ErrExhausted is returned by Generate once a fixed-once selection has
// produced every index in its configured range.
var ErrExhausted = errors.New("stringgen: selection exhausted")

// Config holds the assembled configuration for a Generator. Build one
// with Options passed to NewGenerator; it is immutable once built.
type Config struct {
	alphabet string
	set      setChooser
	lengths  lengthChooser
}

// Option configures a Config via the functional options pattern.
type Option func(*Config) error

// WithAlphabet sets an explicit alphabet of up to 255 distinct bytes.
func WithAlphabet(alphabet string) Option {
	return func(c *Config) error {
		if len(alphabet) == 0 {
			return fmt.Errorf("%w: alphabet must not be empty", telemetry.ErrInvalidConfig)
		}

		if len(alphabet) >= 256 {
			return fmt.Errorf("%w: alphabet must be under 256 bytes", telemetry.ErrInvalidConfig)
		}

		c.alphabet = alphabet
		return nil
	}
}

// WithCharset selects one of the named preset alphabets: "default",
// "alnum", "alpha", "digit", "lower", "upper", "punct", or "hex".
func WithCharset(name string) Option {
	return func(c *Config) error {
		alphabet, ok := charsetByName(name)

		if !ok {
			return fmt.Errorf("%w: unknown charset %q", telemetry.ErrInvalidConfig, name)
		}

		c.alphabet = alphabet
		return nil
	}
}

// WithSelectDefault makes the generator never reseed its content stream
// between calls to Generate: strings are drawn from one continuous run of
// the content PRNG. This is the default.
func WithSelectDefault() Option {
	return func(c *Config) error {
		c.set = newSetDefault()
		return nil
	}
}

// WithSelectFixed draws a uniform index over a virtual set of the given
// size on every call, producing a fixed-cardinality workload with
// replacement.
func WithSelectFixed(size uint64) Option {
	return func(c *Config) error {
		if size == 0 {
			return fmt.Errorf("%w: fixed size must be positive", telemetry.ErrInvalidConfig)
		}

		c.set = newSetFixed(size)
		return nil
	}
}

// WithSelectFixedOnce walks [start, limit) once, in order, without
// replacement; Generate returns ErrExhausted once limit is reached.
func WithSelectFixedOnce(size, start, limit uint64) Option {
	return func(c *Config) error {
		if size == 0 {
			return fmt.Errorf("%w: fixed-once size must be positive", telemetry.ErrInvalidConfig)
		}

		c.set = newSetFixedOnce(size, start, limit)
		return nil
	}
}

// WithSelectFixedZipf draws a Zipf-distributed index over a virtual set of
// the given size with skew alpha on every call, with replacement.
func WithSelectFixedZipf(size uint64, alpha float64) Option {
	return func(c *Config) error {
		if size == 0 {
			return fmt.Errorf("%w: fixed-zipf size must be positive", telemetry.ErrInvalidConfig)
		}

		c.set = newSetFixedZipf(size, alpha)
		return nil
	}
}

// WithLengthConstant makes every generated string exactly size bytes.
func WithLengthConstant(size uint64) Option {
	return func(c *Config) error {
		c.lengths = newLengthConstant(size)
		return nil
	}
}

// WithLengthUniform draws a uniform length in [min, max] on every call.
func WithLengthUniform(min, max uint64) Option {
	return func(c *Config) error {
		if max < min {
			return fmt.Errorf("%w: length-max must be >= length-min", telemetry.ErrInvalidConfig)
		}

		c.lengths = newLengthUniform(min, max)
		return nil
	}
}

// Generator produces pseudo-random strings from an alphabet, a selection
// stream picking which logical string to emit, and a content stream
// filling its bytes. A Generator is not safe for concurrent use; callers
// needing concurrency should build one Generator per goroutine.
type Generator struct {
	alphabet string
	lut      [256]byte
	set      setChooser
	lengths  lengthChooser

	selectSrc  *prng.Source
	contentSrc *prng.Source

	buf []byte
}

// NewGenerator builds a Generator from opts, applied in order over a
// default configuration (the full default alphabet, no reseeding between
// calls, and a constant length of DefaultLength).
func NewGenerator(opts ...Option) (*Generator, error) {
	cfg := &Config{
		alphabet: AlphabetDefault,
		set:      newSetDefault(),
		lengths:  newLengthConstant(DefaultLength),
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	g := &Generator{
		alphabet:   cfg.alphabet,
		lut:        buildLUT(cfg.alphabet),
		set:        cfg.set,
		lengths:    cfg.lengths,
		selectSrc:  prng.NewSource(0),
		contentSrc: prng.NewSource(0),
	}

	g.buf = make([]byte, g.lengths.maxLength()+lengthRoundup)

	return g, nil
}

// Seed reseeds the selection stream. It does not touch the content
// stream, which is reseeded per call from a value drawn off the
// selection stream (except under WithSelectDefault, where the content
// stream is never reseeded and simply continues).
func (g *Generator) Seed(seed uint64) {
	g.selectSrc.Seed(seed)
}

// Generate produces the next string. It returns ErrExhausted once a
// WithSelectFixedOnce configuration has walked its entire range.
func (g *Generator) Generate() (string, error) {
	if g.set.done() {
		return "", ErrExhausted
	}

	if g.set.kind != setDefault {
		seed := g.set.seed(g.selectSrc)
		g.contentSrc.Seed(seed)
	}

	length := g.lengths.length(g.contentSrc)
	rounded := (length + lengthRoundup - 1) &^ (lengthRoundup - 1)

	g.contentSrc.GenerateBytes(g.buf[:rounded])

	for i := range g.buf[:rounded] {
		g.buf[i] = g.lut[g.buf[i]]
	}

	return string(g.buf[:length]), nil
}
