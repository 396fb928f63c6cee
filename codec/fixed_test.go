// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package codec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedWidthIntRoundTrip(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	u16, err := DecodeUint16(AppendUint16(nil, 0xBEEF))
	is.NoError(err)
	is.Equal(uint16(0xBEEF), u16)

	u32, err := DecodeUint32(AppendUint32(nil, 0xDEADBEEF))
	is.NoError(err)
	is.Equal(uint32(0xDEADBEEF), u32)

	u64, err := DecodeUint64(AppendUint64(nil, 0xDEADBEEFCAFEBABE))
	is.NoError(err)
	is.Equal(uint64(0xDEADBEEFCAFEBABE), u64)
}

func TestFixedWidthFloatRoundTrip(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	f32, err := DecodeFloat32(AppendFloat32(nil, 3.14159))
	is.NoError(err)
	is.Equal(float32(3.14159), f32)

	f64, err := DecodeFloat64(AppendFloat64(nil, math.Pi))
	is.NoError(err)
	is.Equal(math.Pi, f64)
}

func TestFixedWidthDecodeShortBuffer(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	_, err := DecodeUint16([]byte{0x01})
	is.ErrorIs(err, ErrShortBuffer)

	_, err = DecodeUint32([]byte{0x01, 0x02})
	is.ErrorIs(err, ErrShortBuffer)

	_, err = DecodeUint64(nil)
	is.ErrorIs(err, ErrShortBuffer)
}

func TestFixedWidthByteOrderIsBigEndian(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	buf := AppendUint32(nil, 0x01020304)
	is.Equal([]byte{0x01, 0x02, 0x03, 0x04}, buf)
}
