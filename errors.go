// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package telemetry

import "errors"

// The error kinds below form a closed set; every error this package
// returns wraps exactly one of them via fmt.Errorf("%w", ...) so callers
// can classify failures with errors.Is.
var (
	// ErrInvalidConfig covers out-of-bounds configuration: bad alphabet
	// length, bad length range, bad percentile, bad confidence interval.
	ErrInvalidConfig = errors.New("telemetry: invalid configuration")

	// ErrIO covers read, write, seek, open, and short-read-mid-block
	// failures against the underlying sink or source.
	ErrIO = errors.New("telemetry: i/o failure")

	// ErrMalformedInput covers varint overrun, truncated block, unknown
	// unit/precision byte, and a schema list missing its sentinel.
	ErrMalformedInput = errors.New("telemetry: malformed input")

	// ErrIncompatibleUnits covers a unit conversion requested across
	// unit families.
	ErrIncompatibleUnits = errors.New("telemetry: incompatible units")

	// ErrNotFound covers a requested series name absent from the log.
	ErrNotFound = errors.New("telemetry: series not found")
)
