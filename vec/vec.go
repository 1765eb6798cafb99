// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package vec is a portable fixed-width byte vector: 64 byte lanes compared
// lane-wise with plain 64-bit word arithmetic.  It exists so that block-based
// kernels can be written once and run on every GOARCH; the amd64 AVX-512
// kernels elsewhere in this module compute exactly the same masks.
package vec

import (
	"encoding/binary"
	"math/bits"
)

// Lanes is the number of byte lanes in a Bytes64.
const Lanes = 64

const (
	wordsPerVec = Lanes / 8
	lo7         = 0x7f7f7f7f7f7f7f7f
	lsb         = 0x0101010101010101
	// gatherMagic moves bit 8j of a word into bit 56+j.
	gatherMagic = 0x0102040810204080
)

// Bytes64 holds 64 byte lanes.  Lane i is byte i of the source buffer.
type Bytes64 struct {
	w [wordsPerVec]uint64
}

// Mask64 has bit i set when lane i satisfied a lane-wise predicate.
type Mask64 uint64

// Splat returns a vector with every lane set to b.
func Splat(b byte) Bytes64 {
	var v Bytes64
	word := uint64(b) * lsb
	for i := range v.w {
		v.w[i] = word
	}
	return v
}

// Load returns the first Lanes bytes of src as a vector.  It panics if
// len(src) < Lanes.
func Load(src []byte) Bytes64 {
	_ = src[Lanes-1]
	var v Bytes64
	for i := range v.w {
		v.w[i] = binary.LittleEndian.Uint64(src[8*i:])
	}
	return v
}

// LoadOr is like Load, but src may be shorter than Lanes; lanes past the end
// of src are set to fill.
func LoadOr(src []byte, fill byte) Bytes64 {
	if len(src) >= Lanes {
		return Load(src)
	}
	var buf [Lanes]byte
	if fill != 0 {
		for i := len(src); i < Lanes; i++ {
			buf[i] = fill
		}
	}
	copy(buf[:], src)
	return Load(buf[:])
}

// Eq returns the mask of lanes where v and u hold the same byte.
func (v Bytes64) Eq(u Bytes64) Mask64 {
	var m Mask64
	for i := range v.w {
		m |= Mask64(zeroBytes(v.w[i]^u.w[i])) << (8 * uint(i))
	}
	return m
}

// zeroBytes returns an 8-bit mask whose bit j is set iff byte j of x is zero.
// Unlike the classic haszero() trick this is exact: no carry crosses a byte.
func zeroBytes(x uint64) uint64 {
	t := (x & lo7) + lo7
	hi := ^(t | x | lo7)
	return ((hi >> 7) * gatherMagic) >> 56
}

// Count returns the number of set lanes.
func (m Mask64) Count() int {
	return bits.OnesCount64(uint64(m))
}

// Bits returns m as a plain 64-bit mask.
func (m Mask64) Bits() uint64 {
	return uint64(m)
}
