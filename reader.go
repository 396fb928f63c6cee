// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package telemetry

import (
	"bufio"
	"fmt"
	"io"
)

// Reader parses a log's schema table once on open and remembers
// dataOffset, the byte position of the first block. It produces
// independent Iterators over io.ReaderAt so that multiple iterators on
// the same log can proceed concurrently, each owning its own cursor.
type Reader struct {
	src        io.ReaderAt
	schemas    []Schema
	dataOffset int64
}

// NewReader parses the schema header from src and returns a Reader ready
// to produce iterators. src must support independent, concurrent reads
// at arbitrary offsets (as *os.File does).
func NewReader(src io.ReaderAt) (*Reader, error) {
	r := bufio.NewReader(io.NewSectionReader(src, 0, 1<<62))
	var schemas []Schema
	var offset int64

	for {
		name, n, err := readCString(r)

		if err != nil {
			return nil, fmt.Errorf("%w: reading schema name: %v", ErrMalformedInput, err)
		}

		offset += int64(n)

		if name == "" {
			break
		}

		var fields [4]byte

		if _, err := io.ReadFull(r, fields[:]); err != nil {
			return nil, fmt.Errorf("%w: reading schema fields: %v", ErrMalformedInput, err)
		}

		offset += 4

		for _, u := range []Unit{Unit(fields[0]), Unit(fields[2])} {
			if u.String() == "unknown" {
				return nil, fmt.Errorf("%w: unknown unit byte %d", ErrMalformedInput, uint8(u))
			}
		}

		for _, p := range []Precision{Precision(fields[1]), Precision(fields[3])} {
			if p.String() == "unknown" {
				return nil, fmt.Errorf("%w: unknown precision byte %d", ErrMalformedInput, uint8(p))
			}
		}

		schema, err := NewSchema(name, Unit(fields[0]), Precision(fields[1]), Unit(fields[2]), Precision(fields[3]))

		if err != nil {
			return nil, err
		}

		schemas = append(schemas, schema)
	}

	if len(schemas) == 0 {
		return nil, fmt.Errorf("%w: schema list has no series", ErrMalformedInput)
	}

	return &Reader{src: src, schemas: schemas, dataOffset: offset}, nil
}

// readCString reads bytes up to and including a NUL terminator,
// returning the string without the terminator and the total byte count
// consumed including it. An immediate NUL (empty string, 1 byte
// consumed) signals the end-of-schema-list sentinel.
func readCString(r *bufio.Reader) (string, int, error) {
	b, err := r.ReadBytes(0)

	if err != nil {
		return "", 0, err
	}

	return string(b[:len(b)-1]), len(b), nil
}

// Schemas returns the log's series schemas in declaration order.
func (r *Reader) Schemas() []Schema {
	return r.schemas
}

// Iterate returns an iterator over the named series. It returns
// ErrNotFound if no schema with that name was declared.
func (r *Reader) Iterate(name string) (*Iterator, error) {
	for i, s := range r.schemas {
		if s.Name == name {
			return newIterator(r.src, r.dataOffset, i, s), nil
		}
	}

	return nil, fmt.Errorf("%w: series %q", ErrNotFound, name)
}
