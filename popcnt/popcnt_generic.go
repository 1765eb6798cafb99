// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build !amd64 || appengine
// +build !amd64 appengine

package popcnt

import "math/bits"

// Popcnt64 returns the number of set bits in x.
func Popcnt64(x uint64) uint64 {
	return uint64(bits.OnesCount64(x))
}
