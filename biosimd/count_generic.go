// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build !amd64 || appengine
// +build !amd64 appengine

package biosimd

// CountNucleotidesNaive returns the number of A/C/G/T bytes in seq8, one byte
// at a time.  Each byte is compared against 'A', 'C', 'G' and 'T' in that
// order, and the remaining comparisons are skipped after a match.
func CountNucleotidesNaive(seq8 []byte) NucleotideCount {
	var nc NucleotideCount
	if len(seq8) == 0 {
		return nc
	}
	countTail(&nc, seq8)
	return nc
}
