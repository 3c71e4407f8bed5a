package svvec

import (
	"math/big"
	"strings"
)

// BitVecFromUint64 packs the low width bits of x into a new vector of
// WordsFor(width) words
func BitVecFromUint64(x uint64, width uint) BitVec {
	v := NewBitVec(width)
	if len(v) > 0 {
		v[0] = uint32(x)
	}
	if len(v) > 1 {
		v[1] = uint32(x >> 32)
	}
	if len(v) > 0 {
		v[len(v)-1] &= tailMask(width)
	}
	return v
}

// Uint64 returns the low 64 bits of v
func (v BitVec) Uint64() uint64 {
	var x uint64
	if len(v) > 0 {
		x = uint64(v[0])
	}
	if len(v) > 1 {
		x |= uint64(v[1]) << 32
	}
	return x
}

// BitVecFromBig packs the low width bits of the magnitude of x into a
// new vector of WordsFor(width) words
func BitVecFromBig(x *big.Int, width uint) BitVec {
	v := NewBitVec(width)
	var w, mask big.Int
	mask.SetUint64(uint64(^uint32(0)))
	var rest big.Int
	rest.Abs(x)
	for i := range v {
		v[i] = uint32(w.And(&rest, &mask).Uint64())
		rest.Rsh(&rest, WordBits)
	}
	if len(v) > 0 {
		v[len(v)-1] &= tailMask(width)
	}
	return v
}

// Big returns the vector as a non-negative integer
func (v BitVec) Big() *big.Int {
	x := new(big.Int)
	var w big.Int
	for i := len(v) - 1; i >= 0; i-- {
		x.Lsh(x, WordBits)
		x.Or(x, w.SetUint64(uint64(v[i])))
	}
	return x
}

// Hex formats the low width bits of v as hexadecimal digits, most
// significant first, zero padded to width
func (v BitVec) Hex(width uint) string {
	n := int(WordsFor(width))
	if n > len(v) {
		n = len(v)
	}
	low := append(BitVec(nil), v[:n]...)
	if n == int(WordsFor(width)) && n > 0 {
		low[n-1] &= tailMask(width)
	}
	digits := int((width + 3) / 4)
	s := low.Big().Text(16)
	if len(s) < digits {
		s = strings.Repeat("0", digits-len(s)) + s
	}
	return s
}
