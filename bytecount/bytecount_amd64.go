// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build amd64 && !appengine
// +build amd64,!appengine

package bytecount

import "unsafe"

// *** the following functions are defined in bytecount_amd64.s

// Although val is really a byte parameter, declaring it as a byte instead of
// an int in the function signature produces a large performance penalty.

//go:noescape
func countByteCmovAsm(src, last unsafe.Pointer, val int) int

//go:noescape
func countByteBranchAsm(src, last unsafe.Pointer, val int) int

// *** end assembly function signature(s)

// CountCmov returns the number of bytes in src equal to val.  Each byte's
// equality predicate is materialized with CMOVQEQ and added to the total, so
// the loop body has no data-dependent branch.
func CountCmov(src []byte, val byte) int {
	// The loop bound is &src[len(src)-1], which doesn't exist for empty src.
	if len(src) == 0 {
		return 0
	}
	return countByteCmovAsm(unsafe.Pointer(&src[0]), unsafe.Pointer(&src[len(src)-1]), int(val))
}

// CountBranch returns the number of bytes in src equal to val, branching on
// every byte and incrementing only on a match.
func CountBranch(src []byte, val byte) int {
	if len(src) == 0 {
		return 0
	}
	return countByteBranchAsm(unsafe.Pointer(&src[0]), unsafe.Pointer(&src[len(src)-1]), int(val))
}
