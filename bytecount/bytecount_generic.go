// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build !amd64 || appengine
// +build !amd64 appengine

package bytecount

// CountCmov returns the number of bytes in src equal to val.  The predicate is
// written as a select, which the compiler lowers to a conditional move or set
// instruction rather than a branch.
func CountCmov(src []byte, val byte) int {
	if len(src) == 0 {
		return 0
	}
	cnt := 0
	for _, srcByte := range src {
		eq := 0
		if srcByte == val {
			eq = 1
		}
		cnt += eq
	}
	return cnt
}

// CountBranch returns the number of bytes in src equal to val, branching on
// every byte and incrementing only on a match.
func CountBranch(src []byte, val byte) int {
	if len(src) == 0 {
		return 0
	}
	cnt := 0
	last := len(src) - 1
	for pos := 0; pos <= last; pos++ {
		if src[pos] != val {
			continue
		}
		cnt++
	}
	return cnt
}
