// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package svvec

// LogicWord holds 32 positions of a four-state vector, one bit of each
// position in each plane.  The layout matches svLogicVecVal.
type LogicWord struct {
	Aval uint32
	Bval uint32
}

// LogicVec is a four-state vector.  Logical bit k lives at bit k%32 of
// both v[k/32].Aval and v[k/32].Bval.
type LogicVec []LogicWord

var _ Vector = LogicVec(nil)

// Code is the two bit state of one four-state position, aBit|bBit<<1.
// Mapping codes to 0/1/Z/X is left to the caller.
type Code uint8

// NewCode builds a Code from its plane bits
func NewCode(a, b uint32) Code {
	return Code(a&1 | (b&1)<<1)
}

// A returns the aval plane bit of c
func (c Code) A() uint32 { return uint32(c) & 1 }

// B returns the bval plane bit of c
func (c Code) B() uint32 { return uint32(c>>1) & 1 }

// NewLogicVec allocates a zeroed LogicVec able to hold width bits
func NewLogicVec(width uint) LogicVec {
	return make(LogicVec, WordsFor(width))
}

// Len returns the number of bits the vector can hold
func (v LogicVec) Len() uint {
	return uint(len(v)) * WordBits
}

// Planes returns copies of the aval and bval planes as two-state vectors
func (v LogicVec) Planes() (aval, bval BitVec) {
	aval, bval = make(BitVec, len(v)), make(BitVec, len(v))
	for i, w := range v {
		aval[i], bval[i] = w.Aval, w.Bval
	}
	return
}

// LogicVecFromPlanes interleaves two equally sized planes into a
// LogicVec.  Missing words of the shorter plane read as zero.
func LogicVecFromPlanes(aval, bval BitVec) LogicVec {
	n := len(aval)
	if len(bval) > n {
		n = len(bval)
	}
	v := make(LogicVec, n)
	for i := range v {
		if i < len(aval) {
			v[i].Aval = aval[i]
		}
		if i < len(bval) {
			v[i].Bval = bval[i]
		}
	}
	return v
}

// Bit returns the code of position ix
func (v LogicVec) Bit(ix uint) (Code, error) {
	if err := checkIndex(len(v), ix); err != nil {
		return 0, err
	}
	w, bit := v[ix/WordBits], ix%WordBits
	return NewCode(w.Aval>>bit, w.Bval>>bit), nil
}

// SetBit stores code c at position ix, writing both planes.  Bits of c
// above the two code bits are ignored.
func (v LogicVec) SetBit(ix uint, c Code) error {
	if err := checkIndex(len(v), ix); err != nil {
		return err
	}
	w, bit := &v[ix/WordBits], ix%WordBits
	w.Aval = (w.Aval &^ (1 << bit)) | (c.A() << bit)
	w.Bval = (w.Bval &^ (1 << bit)) | (c.B() << bit)
	return nil
}

// Part returns positions [off, off+width) of both planes as a new
// vector of WordsFor(width) words.  Part panics if width is zero.
func (v LogicVec) Part(off, width uint) (LogicVec, error) {
	if err := checkSelect(len(v), off, width); err != nil {
		return nil, err
	}
	dst := NewLogicVec(width)
	v.part(dst, off, width)
	return dst, nil
}

// PartInto copies positions [off, off+width) of both planes into dst
// starting at position 0
func (v LogicVec) PartInto(dst LogicVec, off, width uint) error {
	if err := checkSelect(len(v), off, width); err != nil {
		return err
	}
	if err := checkOperand("destination", len(dst), width); err != nil {
		return err
	}
	v.part(dst, off, width)
	return nil
}

func (v LogicVec) part(dst LogicVec, off, width uint) {
	getPart(avalPlane(dst), avalPlane(v), off, width)
	getPart(bvalPlane(dst), bvalPlane(v), off, width)
}

// SetPart writes the low width positions of val, both planes, into v
// starting at position off.  SetPart panics if width is zero.
func (v LogicVec) SetPart(val LogicVec, off, width uint) error {
	if err := checkSelect(len(v), off, width); err != nil {
		return err
	}
	if err := checkOperand("value", len(val), width); err != nil {
		return err
	}
	putPart(avalPlane(v), avalPlane(val), off, width)
	putPart(bvalPlane(v), bvalPlane(val), off, width)
	return nil
}

// SetPartWord is SetPart for a value held in a single word; width must
// be in [1, 32].
func (v LogicVec) SetPartWord(val LogicWord, off, width uint) error {
	if width > WordBits {
		panic("SetPartWord: width exceeds a single word")
	}
	return v.SetPart(LogicVec{val}, off, width)
}
