// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package vec_test

import (
	"math/rand"
	"testing"

	"github.com/grailbio/biocount/vec"
	"github.com/grailbio/testutil/expect"
)

func eqMaskSlow(src []byte, fill, val byte) uint64 {
	mask := uint64(0)
	for lane := 0; lane < vec.Lanes; lane++ {
		b := fill
		if lane < len(src) {
			b = src[lane]
		}
		if b == val {
			mask |= 1 << uint(lane)
		}
	}
	return mask
}

func TestEq(t *testing.T) {
	nIter := 2000
	src := make([]byte, vec.Lanes)
	for iter := 0; iter < nIter; iter++ {
		// Small alphabets make matches common; 256 exercises every byte value.
		alphabet := 1 + rand.Intn(256)
		for i := range src {
			src[i] = byte(rand.Intn(alphabet))
		}
		val := byte(rand.Intn(alphabet))
		got := vec.Load(src).Eq(vec.Splat(val))
		want := eqMaskSlow(src, 0, val)
		if got.Bits() != want {
			t.Fatalf("Eq(%v, %d): got %#x, want %#x", src, val, got.Bits(), want)
		}
	}
}

func TestEqExact(t *testing.T) {
	// Every (lane byte, target) pair, including 0x80/0x00 which trip up the
	// approximate zero-byte idioms.
	src := make([]byte, vec.Lanes)
	for x := 0; x < 256; x++ {
		for i := range src {
			src[i] = byte(x)
		}
		v := vec.Load(src)
		for val := 0; val < 256; val++ {
			n := v.Eq(vec.Splat(byte(val))).Count()
			if x == val {
				expect.EQ(t, n, vec.Lanes)
			} else {
				expect.EQ(t, n, 0)
			}
		}
	}
}

func TestLoadOr(t *testing.T) {
	for n := 0; n <= vec.Lanes+3; n++ {
		src := make([]byte, n)
		for i := range src {
			src[i] = byte(rand.Intn(4))
		}
		for _, fill := range []byte{0, 1, 0xff} {
			v := vec.LoadOr(src, fill)
			for _, val := range []byte{0, 1, 2, 3, 0xff} {
				expect.EQ(t, v.Eq(vec.Splat(val)).Bits(), eqMaskSlow(src, fill, val))
			}
		}
	}
}

func TestLoadPanicsOnShortInput(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Load did not panic on a short slice.")
		}
	}()
	vec.Load(make([]byte, vec.Lanes-1))
}

func TestMaskCount(t *testing.T) {
	expect.EQ(t, vec.Mask64(0).Count(), 0)
	expect.EQ(t, vec.Mask64(0xf0).Count(), 4)
	expect.EQ(t, vec.Mask64(^uint64(0)).Count(), 64)
}
