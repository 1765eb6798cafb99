// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package biosimd

import (
	"github.com/grailbio/base/errors"
	"github.com/grailbio/biocount/popcnt"
	"github.com/grailbio/biocount/vec"
)

// BytesPerBlock is the number of bytes processed per wide comparison.
const BytesPerBlock = vec.Lanes

// NucleotideCount holds the number of 'A', 'C', 'G' and 'T' bytes in a
// sequence.  Any other byte value, including lowercase bases and 'N', is not
// counted.
type NucleotideCount struct {
	A, C, G, T uint64
}

// Total returns A + C + G + T.
func (nc NucleotideCount) Total() uint64 {
	return nc.A + nc.C + nc.G + nc.T
}

// The padding byte for partial blocks must not be one of the counted values.
const sentinel = 0

var (
	allA = vec.Splat('A')
	allC = vec.Splat('C')
	allG = vec.Splat('G')
	allT = vec.Splat('T')
)

// Wide-register kernels.  These are the portable versions; count_amd64.go
// replaces them when AVX-512 is active.
var (
	kernelWide  = countNucleotidesWideGeneric
	kernelFused = countNucleotidesFusedGeneric
)

// CountNucleotides returns the number of A/C/G/T bytes in seq8.  This is the
// reference implementation.
func CountNucleotides(seq8 []byte) NucleotideCount {
	var nc NucleotideCount
	for _, b := range seq8 {
		switch b {
		case 'A':
			nc.A++
		case 'C':
			nc.C++
		case 'G':
			nc.G++
		case 'T':
			nc.T++
		}
	}
	return nc
}

// CountNucleotidesVec counts A/C/G/T bytes 64 at a time with the portable
// vector type.  The last partial block is padded with null bytes, so there is
// no separate tail loop.
func CountNucleotidesVec(seq8 []byte) NucleotideCount {
	var nc NucleotideCount
	for pos := 0; pos < len(seq8); pos += BytesPerBlock {
		cur := vec.LoadOr(seq8[pos:], sentinel)
		nc.A += uint64(cur.Eq(allA).Count())
		nc.C += uint64(cur.Eq(allC).Count())
		nc.G += uint64(cur.Eq(allG).Count())
		nc.T += uint64(cur.Eq(allT).Count())
	}
	return nc
}

// CountNucleotidesWide counts A/C/G/T bytes 64 at a time, reducing each
// comparison mask with popcnt.Popcnt64.  The last partial block is padded with
// null bytes.  On AVX-512 hardware the masks come straight from VPCMPEQB.
func CountNucleotidesWide(seq8 []byte) NucleotideCount {
	return kernelWide(seq8)
}

// CountNucleotidesFused counts all full 64-byte blocks of seq8 with wide
// compares and finishes the remaining 0-63 bytes one at a time.  No padding is
// involved.  On AVX-512 hardware both phases run in a single assembly routine.
func CountNucleotidesFused(seq8 []byte) NucleotideCount {
	return kernelFused(seq8)
}

func countNucleotidesWideGeneric(seq8 []byte) NucleotideCount {
	var nc NucleotideCount
	for pos := 0; pos < len(seq8); pos += BytesPerBlock {
		cur := vec.LoadOr(seq8[pos:], sentinel)
		nc.A += popcnt.Popcnt64(cur.Eq(allA).Bits())
		nc.C += popcnt.Popcnt64(cur.Eq(allC).Bits())
		nc.G += popcnt.Popcnt64(cur.Eq(allG).Bits())
		nc.T += popcnt.Popcnt64(cur.Eq(allT).Bits())
	}
	return nc
}

func countNucleotidesFusedGeneric(seq8 []byte) NucleotideCount {
	var nc NucleotideCount
	nFull := len(seq8) &^ (BytesPerBlock - 1)
	for pos := 0; pos < nFull; pos += BytesPerBlock {
		cur := vec.Load(seq8[pos:])
		nc.A += popcnt.Popcnt64(cur.Eq(allA).Bits())
		nc.C += popcnt.Popcnt64(cur.Eq(allC).Bits())
		nc.G += popcnt.Popcnt64(cur.Eq(allG).Bits())
		nc.T += popcnt.Popcnt64(cur.Eq(allT).Bits())
	}
	countTail(&nc, seq8[nFull:])
	return nc
}

// countTail adds the A/C/G/T bytes of seq8 to nc, testing each byte against
// the four values in turn and stopping at the first match.
func countTail(nc *NucleotideCount, seq8 []byte) {
	for _, b := range seq8 {
		if b == 'A' {
			nc.A++
		} else if b == 'C' {
			nc.C++
		} else if b == 'G' {
			nc.G++
		} else if b == 'T' {
			nc.T++
		}
	}
}

// NucleotideStrategy is a named nucleotide-counting kernel.
type NucleotideStrategy struct {
	Name  string
	Count func(seq8 []byte) NucleotideCount
}

var nucleotideStrategies = []NucleotideStrategy{
	{"reference", CountNucleotides},
	{"naive", CountNucleotidesNaive},
	{"vector", CountNucleotidesVec},
	{"wide", CountNucleotidesWide},
	{"fused", CountNucleotidesFused},
}

// NucleotideStrategies returns every nucleotide-counting strategy, reference
// first.
func NucleotideStrategies() []NucleotideStrategy {
	return append([]NucleotideStrategy(nil), nucleotideStrategies...)
}

// LookupNucleotideStrategy returns the strategy with the given name.
func LookupNucleotideStrategy(name string) (NucleotideStrategy, error) {
	for _, s := range nucleotideStrategies {
		if s.Name == name {
			return s, nil
		}
	}
	return NucleotideStrategy{}, errors.E(errors.NotExist, "biosimd: unknown nucleotide strategy", name)
}
