// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package svvec

// plane is a sequence of 32 bit words addressed by word index.  A
// two-state vector is a single plane, a four-state vector is two planes
// (aval and bval) interleaved in one slice.  The range helpers below are
// written once against plane and instantiated per concrete type.
type plane interface {
	word(ix uint) uint32
	setWord(ix uint, w uint32)
}

type bitPlane []uint32

func (p bitPlane) word(ix uint) uint32       { return p[ix] }
func (p bitPlane) setWord(ix uint, w uint32) { p[ix] = w }

type avalPlane []LogicWord

func (p avalPlane) word(ix uint) uint32       { return p[ix].Aval }
func (p avalPlane) setWord(ix uint, w uint32) { p[ix].Aval = w }

type bvalPlane []LogicWord

func (p bvalPlane) word(ix uint) uint32       { return p[ix].Bval }
func (p bvalPlane) setWord(ix uint, w uint32) { p[ix].Bval = w }

// lowMask returns a word with the low n bits set, n <= WordBits
func lowMask(n uint) uint32 {
	if n >= WordBits {
		return ^uint32(0)
	}
	return uint32(1)<<n - 1
}

// tailMask returns the mask of valid bits in the last word of a
// width bit vector
func tailMask(width uint) uint32 {
	if r := width % WordBits; r != 0 {
		return lowMask(r)
	}
	return ^uint32(0)
}

//  src:   |   word lo+1   |    word lo    |
//                 \---------------/
//                  dst word i, starting at bit 'shift' of word lo
//
// getPart copies bits [off, off+width) of src into dst starting at bit
// 0.  The last destination word is masked to width, destination words
// past WordsFor(width) are not touched.  A source word is only read when
// it holds at least one addressed bit.
func getPart[D, S plane](dst D, src S, off, width uint) {
	n := WordsFor(width)
	lo := off / WordBits
	shift := off % WordBits
	last := (off + width - 1) / WordBits
	for i := uint(0); i < n; i++ {
		w := src.word(lo+i) >> shift
		if shift != 0 && lo+i+1 <= last {
			w |= src.word(lo+i+1) << (WordBits - shift)
		}
		dst.setWord(i, w)
	}
	dst.setWord(n-1, dst.word(n-1)&tailMask(width))
}

// putPart writes the low width bits of src into dst starting at bit
// off.  Each destination word touched gets a single read-modify-write
// with the bits outside [off, off+width) preserved.
func putPart[D, S plane](dst D, src S, off, width uint) {
	for done := uint(0); done < width; {
		pos := off + done
		ix, bit := pos/WordBits, pos%WordBits
		n := WordBits - bit
		if rem := width - done; rem < n {
			n = rem
		}
		m := lowMask(n) << bit
		dst.setWord(ix, (dst.word(ix) &^ m)|((extract(src, done, n)<<bit)&m))
		done += n
	}
}

// extract returns n bits of src starting at bit at, right aligned
func extract[S plane](src S, at, n uint) uint32 {
	ix, shift := at/WordBits, at%WordBits
	w := src.word(ix) >> shift
	if shift+n > WordBits {
		w |= src.word(ix+1) << (WordBits - shift)
	}
	return w & lowMask(n)
}
