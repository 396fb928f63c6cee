// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package codec

import (
	"encoding/binary"
	"math"
)

// AppendUint16/32/64 write big-endian fixed-width integers; these
// thin wrappers exist so callers encoding series values never reach
// past this package for the on-disk byte order.

// AppendUint16 appends the big-endian encoding of v to dst.
func AppendUint16(dst []byte, v uint16) []byte {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	return append(dst, b[:]...)
}

// AppendUint32 appends the big-endian encoding of v to dst.
func AppendUint32(dst []byte, v uint32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return append(dst, b[:]...)
}

// AppendUint64 appends the big-endian encoding of v to dst.
func AppendUint64(dst []byte, v uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return append(dst, b[:]...)
}

// AppendFloat32 appends the big-endian IEEE-754 encoding of v to dst.
func AppendFloat32(dst []byte, v float32) []byte {
	return AppendUint32(dst, math.Float32bits(v))
}

// AppendFloat64 appends the big-endian IEEE-754 encoding of v to dst.
func AppendFloat64(dst []byte, v float64) []byte {
	return AppendUint64(dst, math.Float64bits(v))
}

// DecodeUint16 reads a big-endian uint16 from the front of buf.
func DecodeUint16(buf []byte) (uint16, error) {
	if len(buf) < 2 {
		return 0, ErrShortBuffer
	}

	return binary.BigEndian.Uint16(buf), nil
}

// DecodeUint32 reads a big-endian uint32 from the front of buf.
func DecodeUint32(buf []byte) (uint32, error) {
	if len(buf) < 4 {
		return 0, ErrShortBuffer
	}

	return binary.BigEndian.Uint32(buf), nil
}

// DecodeUint64 reads a big-endian uint64 from the front of buf.
func DecodeUint64(buf []byte) (uint64, error) {
	if len(buf) < 8 {
		return 0, ErrShortBuffer
	}

	return binary.BigEndian.Uint64(buf), nil
}

// DecodeFloat32 reads a big-endian IEEE-754 float32 from the front of buf.
func DecodeFloat32(buf []byte) (float32, error) {
	u, err := DecodeUint32(buf)

	if err != nil {
		return 0, err
	}

	return math.Float32frombits(u), nil
}

// DecodeFloat64 reads a big-endian IEEE-754 float64 from the front of buf.
func DecodeFloat64(buf []byte) (float64, error) {
	u, err := DecodeUint64(buf)

	if err != nil {
		return 0, err
	}

	return math.Float64frombits(u), nil
}
