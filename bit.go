// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package svvec

// BitVec is a two-state vector.  Word i holds logical bits
// [32*i, 32*i+31], logical bit 0 is the least significant bit of
// word 0.
type BitVec []uint32

var _ Vector = BitVec(nil)

// NewBitVec allocates a zeroed BitVec able to hold width bits
func NewBitVec(width uint) BitVec {
	return make(BitVec, WordsFor(width))
}

// Len returns the number of bits the vector can hold
func (v BitVec) Len() uint {
	return uint(len(v)) * WordBits
}

// Bit returns bit ix, 0 or 1
func (v BitVec) Bit(ix uint) (uint32, error) {
	if err := checkIndex(len(v), ix); err != nil {
		return 0, err
	}
	return (v[ix/WordBits] >> (ix % WordBits)) & 1, nil
}

// SetBit sets bit ix to val&1.  All other bits are unchanged.
func (v BitVec) SetBit(ix uint, val uint32) error {
	if err := checkIndex(len(v), ix); err != nil {
		return err
	}
	word, bit := ix/WordBits, ix%WordBits
	v[word] = (v[word] &^ (1 << bit)) | ((val & 1) << bit)
	return nil
}

// Part returns bits [off, off+width) as a new vector of
// WordsFor(width) words.  Bits above width in the last word are zero.
// Part panics if width is zero.
func (v BitVec) Part(off, width uint) (BitVec, error) {
	if err := checkSelect(len(v), off, width); err != nil {
		return nil, err
	}
	dst := NewBitVec(width)
	getPart(bitPlane(dst), bitPlane(v), off, width)
	return dst, nil
}

// PartInto copies bits [off, off+width) into dst starting at bit 0.
// Words of dst past WordsFor(width) are left alone.
func (v BitVec) PartInto(dst BitVec, off, width uint) error {
	if err := checkSelect(len(v), off, width); err != nil {
		return err
	}
	if err := checkOperand("destination", len(dst), width); err != nil {
		return err
	}
	getPart(bitPlane(dst), bitPlane(v), off, width)
	return nil
}

// SetPart writes the low width bits of val into v starting at bit off.
// Bits of v outside [off, off+width) are preserved.
// SetPart panics if width is zero.
func (v BitVec) SetPart(val BitVec, off, width uint) error {
	if err := checkSelect(len(v), off, width); err != nil {
		return err
	}
	if err := checkOperand("value", len(val), width); err != nil {
		return err
	}
	putPart(bitPlane(v), bitPlane(val), off, width)
	return nil
}

// SetPartWord is SetPart for a value held in a single word; width must
// be in [1, 32].
func (v BitVec) SetPartWord(val uint32, off, width uint) error {
	if width > WordBits {
		panic("SetPartWord: width exceeds a single word")
	}
	return v.SetPart(BitVec{val}, off, width)
}
