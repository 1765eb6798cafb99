// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package popcnt provides the population-count primitive used to reduce a
// per-lane comparison mask to a scalar count.
package popcnt
