// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

// package svvec implements bit-select and part-select access to
// word-packed vectors, the representation simulators use to hand
// signals wider than 32 bits to foreign code:
//  1. two-state vectors, one bit per position (BitVec)
//  2. four-state vectors, an aval and a bval bit per position (LogicVec)
//  3. selects at any offset and width, across any number of words
//
// Vectors are plain caller owned slices.  Nothing is cached between
// calls, so concurrent access is safe as long as no two callers write
// overlapping words of the same vector.
package svvec

import (
	"errors"
	"fmt"
)

// WordBits is the number of logical bits stored in one vector word
const WordBits = 32

// ErrOutOfRange is returned (wrapped) when a select addresses bits
// beyond the storage of a vector, or when a destination or value
// vector is too short for the requested width.  Nothing is written
// when it is returned.
var ErrOutOfRange = errors.New("select out of range")

// WordsFor reports the number of words needed to hold width bits
func WordsFor(width uint) uint {
	return (width + WordBits - 1) / WordBits
}

// checkSelect verifies that [off, off+width) lies within a vector of
// words words.  width must be positive.
func checkSelect(words int, off, width uint) error {
	if width == 0 {
		panic(fmt.Sprintf("zero width part select at offset %d", off))
	}
	n := uint(words) * WordBits
	if width > n || off > n-width {
		return fmt.Errorf("%w: bits [%d, %d) of a %d bit vector", ErrOutOfRange, off, uint64(off)+uint64(width), n)
	}
	return nil
}

func checkIndex(words int, ix uint) error {
	n := uint(words) * WordBits
	if ix >= n {
		return fmt.Errorf("%w: bit %d of a %d bit vector", ErrOutOfRange, ix, n)
	}
	return nil
}

// checkOperand verifies that a destination or value vector of words
// words can hold width bits
func checkOperand(what string, words int, width uint) error {
	if need := WordsFor(width); uint(words) < need {
		return fmt.Errorf("%w: %s has %d words, %d bits need %d", ErrOutOfRange, what, words, width, need)
	}
	return nil
}
