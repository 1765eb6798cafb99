// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package isa

import (
	"testing"

	"github.com/grailbio/base/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseISA(t *testing.T) {
	for _, test := range []struct {
		in   string
		want ISA
	}{
		{"generic", Generic},
		{"GENERIC", Generic},
		{" avx512\n", AVX512},
		{"AVX512", AVX512},
	} {
		got, err := ParseISA(test.in)
		require.NoError(t, err, test.in)
		assert.Equal(t, test.want, got, test.in)
		roundTrip, err := ParseISA(got.String())
		require.NoError(t, err)
		assert.Equal(t, got, roundTrip)
	}
	for _, bad := range []string{"", "avx2", "neon", "avx-512"} {
		_, err := ParseISA(bad)
		require.Error(t, err, bad)
		assert.True(t, errors.Is(errors.Invalid, err), "%q: %v", bad, err)
	}
	assert.Equal(t, "unknown", ISA(200).String())
}

func TestSelectISA(t *testing.T) {
	best := Generic
	if Available(AVX512) {
		best = AVX512
	}
	assert.Equal(t, best, selectISA(""))
	assert.Equal(t, Generic, selectISA("generic"))
	assert.Equal(t, best, selectISA("no-such-isa"))
	if Available(AVX512) {
		assert.Equal(t, AVX512, selectISA("avx512"))
	} else {
		// Unavailable overrides fall back to autodetection.
		assert.Equal(t, Generic, selectISA("avx512"))
	}
	assert.True(t, Available(Active()))
	assert.True(t, Available(Generic))
	assert.False(t, Available(ISA(200)))
}
