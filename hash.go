// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package svvec

import (
	"encoding/binary"

	murmur "github.com/aviddiviner/go-murmur"
)

// sumSeed seeds the checksum.  Changing it changes every Sum64.
const sumSeed = uint64(0x5356563100000000)

// Sum64 returns a murmur64 checksum of the vector words.  Equal vectors
// have equal sums; use it to check that a range of words is unchanged.
func (v BitVec) Sum64() uint64 {
	buf := make([]byte, 0, len(v)*4)
	for _, w := range v {
		buf = binary.LittleEndian.AppendUint32(buf, w)
	}
	return murmur.MurmurHash64A(buf, sumSeed)
}

// Sum64 returns a murmur64 checksum over both planes of the vector
func (v LogicVec) Sum64() uint64 {
	buf := make([]byte, 0, len(v)*8)
	for _, w := range v {
		buf = binary.LittleEndian.AppendUint32(buf, w.Aval)
		buf = binary.LittleEndian.AppendUint32(buf, w.Bval)
	}
	return murmur.MurmurHash64A(buf, sumSeed)
}
