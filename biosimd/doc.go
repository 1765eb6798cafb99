// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package biosimd provides several interchangeable implementations of
// nucleotide counting over ASCII sequence data: a scalar reference, a naive
// byte-at-a-time assembly loop, a portable 64-lane vector loop, an AVX-512
// mask-and-popcount loop, and a fused assembly routine that handles both full
// blocks and the tail.
//
// Every implementation returns exactly what CountNucleotides returns for every
// input; none of them allocate, and all are safe for concurrent use.
//
// The AVX-512 paths are used when internal/isa selects AVX512.  Otherwise the
// same algorithms run on the portable vec backend.
package biosimd
