// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build amd64 && !appengine
// +build amd64,!appengine

package biosimd

import (
	"unsafe"

	"github.com/grailbio/biocount/internal/isa"
	"github.com/grailbio/biocount/popcnt"
)

// *** the following functions are defined in count_amd64.s

//go:noescape
func countNucleotidesNaiveAsm(src, last unsafe.Pointer) (nA, nC, nG, nT uint64)

// Requires AVX-512BW.
//
//go:noescape
func nucleotideMasksAVX512Asm(block *[BytesPerBlock]byte) (nA, nC, nG, nT uint64)

// Requires AVX-512BW and POPCNT.
//
//go:noescape
func countNucleotidesFusedAVX512Asm(src unsafe.Pointer, nByte int) (nA, nC, nG, nT uint64)

// *** end assembly function signature(s)

func init() {
	if isa.Active() == isa.AVX512 {
		kernelWide = countNucleotidesWideAVX512
		kernelFused = countNucleotidesFusedAVX512
	}
}

// CountNucleotidesNaive returns the number of A/C/G/T bytes in seq8, one byte
// at a time.  Each byte is compared against 'A', 'C', 'G' and 'T' in that
// order, and the remaining comparisons are skipped after a match.
func CountNucleotidesNaive(seq8 []byte) NucleotideCount {
	// The loop bound is &seq8[len(seq8)-1], which doesn't exist for empty
	// input.
	if len(seq8) == 0 {
		return NucleotideCount{}
	}
	a, c, g, t := countNucleotidesNaiveAsm(unsafe.Pointer(&seq8[0]), unsafe.Pointer(&seq8[len(seq8)-1]))
	return NucleotideCount{A: a, C: c, G: g, T: t}
}

func countNucleotidesWideAVX512(seq8 []byte) NucleotideCount {
	var nc NucleotideCount
	nFull := len(seq8) &^ (BytesPerBlock - 1)
	for pos := 0; pos < nFull; pos += BytesPerBlock {
		a, c, g, t := nucleotideMasksAVX512Asm((*[BytesPerBlock]byte)(seq8[pos:]))
		nc.A += popcnt.Popcnt64(a)
		nc.C += popcnt.Popcnt64(c)
		nc.G += popcnt.Popcnt64(g)
		nc.T += popcnt.Popcnt64(t)
	}
	if nFull != len(seq8) {
		// Zero-initialized, i.e. already filled with sentinel bytes.
		var block [BytesPerBlock]byte
		copy(block[:], seq8[nFull:])
		a, c, g, t := nucleotideMasksAVX512Asm(&block)
		nc.A += popcnt.Popcnt64(a)
		nc.C += popcnt.Popcnt64(c)
		nc.G += popcnt.Popcnt64(g)
		nc.T += popcnt.Popcnt64(t)
	}
	return nc
}

func countNucleotidesFusedAVX512(seq8 []byte) NucleotideCount {
	if len(seq8) == 0 {
		return NucleotideCount{}
	}
	a, c, g, t := countNucleotidesFusedAVX512Asm(unsafe.Pointer(&seq8[0]), len(seq8))
	return NucleotideCount{A: a, C: c, G: g, T: t}
}
