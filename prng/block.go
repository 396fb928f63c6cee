// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package prng implements a deterministic, seekable, counter-keyed stream
// of pseudo-random bytes used to drive reproducible workload generation.
//
// The block function at the core of the package is a reduced-round
// Salsa20 variant (eight single rounds, i.e. four column/row double
// rounds) run with a fixed zero key and the caller's 64-bit counter
// packed into the nonce words. It has no relation to any
// cryptographically-secure generator in this module and must never be
// used for anything security-sensitive.
package prng

import "encoding/binary"

// sigma are the four Salsa20 constant words ("expand 32-byte k" split
// across the diagonal), used here with an implicit all-zero key.
const (
	sigma0 uint32 = 1634760805 // "expa"
	sigma1 uint32 = 857760878  // "nd 3"
	sigma2 uint32 = 2036477234 // "2-by"
	sigma3 uint32 = 1797285236 // "te k"
)

// rounds is the number of single (column or row) rounds applied; four
// column rounds interleaved with four row rounds, eight total.
const rounds = 8

// BlockSize is the number of bytes produced by one call to Mash.
const BlockSize = 64

func rotl(u uint32, c uint) uint32 {
	return (u << c) | (u >> (32 - c))
}

// Mash is the block function: a pure, side-effect-free mapping from a
// 64-bit counter to 64 bytes of output. Calling Mash twice with the same
// counter always yields identical output, on any platform.
func Mash(counter uint64) [BlockSize]byte {
	var state [16]uint32
	state[0] = sigma0
	state[5] = sigma1
	state[10] = sigma2
	state[15] = sigma3
	state[6] = uint32(counter)
	state[7] = uint32(counter >> 32)

	working := state

	for i := rounds; i > 0; i -= 2 {
		// column round
		working[4] ^= rotl(working[0]+working[12], 7)
		working[8] ^= rotl(working[4]+working[0], 9)
		working[12] ^= rotl(working[8]+working[4], 13)
		working[0] ^= rotl(working[12]+working[8], 18)

		working[9] ^= rotl(working[5]+working[1], 7)
		working[13] ^= rotl(working[9]+working[5], 9)
		working[1] ^= rotl(working[13]+working[9], 13)
		working[5] ^= rotl(working[1]+working[13], 18)

		working[14] ^= rotl(working[10]+working[6], 7)
		working[2] ^= rotl(working[14]+working[10], 9)
		working[6] ^= rotl(working[2]+working[14], 13)
		working[10] ^= rotl(working[6]+working[2], 18)

		working[3] ^= rotl(working[15]+working[11], 7)
		working[7] ^= rotl(working[3]+working[15], 9)
		working[11] ^= rotl(working[7]+working[3], 13)
		working[15] ^= rotl(working[11]+working[7], 18)

		// row round
		working[1] ^= rotl(working[0]+working[3], 7)
		working[2] ^= rotl(working[1]+working[0], 9)
		working[3] ^= rotl(working[2]+working[1], 13)
		working[0] ^= rotl(working[3]+working[2], 18)

		working[6] ^= rotl(working[5]+working[4], 7)
		working[7] ^= rotl(working[6]+working[5], 9)
		working[4] ^= rotl(working[7]+working[6], 13)
		working[5] ^= rotl(working[4]+working[7], 18)

		working[11] ^= rotl(working[10]+working[9], 7)
		working[8] ^= rotl(working[11]+working[10], 9)
		working[9] ^= rotl(working[8]+working[11], 13)
		working[10] ^= rotl(working[9]+working[8], 18)

		working[12] ^= rotl(working[15]+working[14], 7)
		working[13] ^= rotl(working[12]+working[15], 9)
		working[14] ^= rotl(working[13]+working[12], 13)
		working[15] ^= rotl(working[14]+working[13], 18)
	}

	var out [BlockSize]byte

	for i := 0; i < 16; i++ {
		binary.LittleEndian.PutUint32(out[i*4:], working[i]+state[i])
	}

	return out
}
