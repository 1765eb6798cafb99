// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package bytecount counts occurrences of a single byte value in a []byte.
//
// Three interchangeable strategies are provided so that a branching counting
// loop can be compared against a branch-free one at the instruction level:
// Count is the straightforward reference, CountCmov accumulates a
// conditional-move predicate, and CountBranch increments behind a per-byte
// branch.  All three return identical results on every input.
package bytecount

import "github.com/grailbio/base/errors"

// Count returns the number of bytes in src equal to val.  This is the
// reference implementation the other strategies are checked against.
func Count(src []byte, val byte) int {
	cnt := 0
	for _, srcByte := range src {
		if srcByte == val {
			cnt++
		}
	}
	return cnt
}

// Strategy is a named byte-counting kernel.
type Strategy struct {
	Name  string
	Count func(src []byte, val byte) int
}

var strategies = []Strategy{
	{"reference", Count},
	{"cmov", CountCmov},
	{"branch", CountBranch},
}

// Strategies returns every byte-counting strategy, reference first.
func Strategies() []Strategy {
	return append([]Strategy(nil), strategies...)
}

// Lookup returns the strategy with the given name.
func Lookup(name string) (Strategy, error) {
	for _, s := range strategies {
		if s.Name == name {
			return s, nil
		}
	}
	return Strategy{}, errors.E(errors.NotExist, "bytecount: unknown strategy", name)
}
