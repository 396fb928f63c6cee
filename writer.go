// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package telemetry

import (
	"fmt"
	"io"
	"sync"

	"github.com/gopherbench/telemetry/codec"
)

// sink serializes writes to the underlying byte sink. The log writer's
// sink has its own mutex held while writing each block; series writers
// acquire it transitively through writeBlock under their own ioMu, so a
// block is always written with a single Write call and never observed
// partially by a concurrent reader.
type sink struct {
	mu sync.Mutex
	w  io.WriteCloser
	err error
}

func (s *sink) writeBlock(payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return s.err
	}

	buf := codec.AppendUint64(nil, uint64(len(payload)))
	buf = append(buf, payload...)

	if _, err := s.w.Write(buf); err != nil {
		s.err = err
		return err
	}

	return nil
}

func (s *sink) close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Close()
}

// Writer is the log writer (component G): it writes the schema table on
// open, instantiates one SeriesWriter per schema, and dispatches
// Record calls by series ordinal.
type Writer struct {
	sink    *sink
	schemas []Schema
	writers []*SeriesWriter
}

// NewWriter writes the header for schemas to w and returns a Writer
// ready to record points against them. Series-declaration order is
// authoritative: block headers identify their series by the index of
// schemas passed here.
func NewWriter(w io.WriteCloser, schemas []Schema) (*Writer, error) {
	if len(schemas) == 0 {
		return nil, fmt.Errorf("%w: a writer needs at least one series schema", ErrInvalidConfig)
	}

	seen := make(map[string]bool, len(schemas))

	for _, s := range schemas {
		if seen[s.Name] {
			return nil, fmt.Errorf("%w: duplicate series name %q", ErrInvalidConfig, s.Name)
		}

		seen[s.Name] = true
	}

	var header []byte

	for _, s := range schemas {
		header = s.encode(header)
	}

	header = append(header, 0)

	if _, err := w.Write(header); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}

	sk := &sink{w: w}
	writers := make([]*SeriesWriter, len(schemas))

	for i, s := range schemas {
		writers[i] = newSeriesWriter(i, s, sk)
	}

	return &Writer{sink: sk, schemas: schemas, writers: writers}, nil
}

// Record dispatches a point to the series writer at the given ordinal.
// Safe to call concurrently from multiple goroutines, including
// concurrently across different ordinals and concurrently with the same
// ordinal.
func (w *Writer) Record(seriesOrdinal int, indep, dep Value) error {
	if seriesOrdinal < 0 || seriesOrdinal >= len(w.writers) {
		return fmt.Errorf("%w: series ordinal %d out of range", ErrInvalidConfig, seriesOrdinal)
	}

	w.writers[seriesOrdinal].Record(indep, dep)
	return nil
}

// FlushAndClose flushes every series writer, then flushes and closes the
// sink. It returns the first error encountered; record may have returned
// success even if a prior background write failed, but this return is
// authoritative.
func (w *Writer) FlushAndClose() error {
	var firstErr error

	for _, sw := range w.writers {
		if err := sw.Flush(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if err := w.sink.close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("%w: %v", ErrIO, err)
	}

	return firstErr
}

// Schemas returns the writer's series schemas in declaration order.
func (w *Writer) Schemas() []Schema {
	return w.schemas
}
