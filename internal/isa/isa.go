// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package isa picks the instruction set used by the wide-register counting
// kernels.  The choice is made once, during package initialization, from CPU
// feature detection and the BIOCOUNT_ISA environment variable.
package isa

import (
	"os"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
)

// EnvVar names the environment variable that overrides ISA autodetection.
const EnvVar = "BIOCOUNT_ISA"

// ISA represents a SIMD instruction set.
type ISA uint8

const (
	// Generic is the portable pure-Go backend.
	Generic ISA = iota
	// AVX512 is x86-64 AVX-512 (F+BW) with POPCNT.
	AVX512
)

// String returns the name accepted by ParseISA.
func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case AVX512:
		return "avx512"
	default:
		return "unknown"
	}
}

// ParseISA parses an ISA name, ignoring case and surrounding space.
func ParseISA(s string) (ISA, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, nil
	case "avx512":
		return AVX512, nil
	}
	return Generic, errors.E(errors.Invalid, "isa: unknown instruction set", s)
}

// Available reports whether i can run on this CPU.
func Available(i ISA) bool {
	switch i {
	case Generic:
		return true
	case AVX512:
		return hasAVX512
	}
	return false
}

// Active returns the ISA chosen at initialization.
func Active() ISA {
	return active
}

var active = selectISA(os.Getenv(EnvVar))

// selectISA honors override when it names an available ISA, and otherwise
// returns the best available one.
func selectISA(override string) ISA {
	if override != "" {
		i, err := ParseISA(override)
		switch {
		case err != nil:
			log.Error.Printf("%s=%q ignored: %v", EnvVar, override, err)
		case !Available(i):
			log.Error.Printf("%s=%q ignored: not supported by this CPU", EnvVar, override)
		default:
			log.Debug.Printf("isa: %s selected by %s", i, EnvVar)
			return i
		}
	}
	i := Generic
	if hasAVX512 {
		i = AVX512
	}
	log.Debug.Printf("isa: %s selected", i)
	return i
}
