package svvec

import (
	"math/rand"
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

// tracePlane records which words are read
type tracePlane struct {
	words []uint32
	read  map[uint]bool
}

func (p *tracePlane) word(ix uint) uint32 {
	p.read[ix] = true
	return p.words[ix]
}

func (p *tracePlane) setWord(ix uint, w uint32) { p.words[ix] = w }

func TestMasks(t *testing.T) {
	assert.Equal(t, uint32(0), lowMask(0))
	assert.Equal(t, uint32(0x1), lowMask(1))
	assert.Equal(t, uint32(0x7fffffff), lowMask(31))
	assert.Equal(t, uint32(0xffffffff), lowMask(32))

	assert.Equal(t, uint32(0xffffffff), tailMask(32))
	assert.Equal(t, uint32(0xffffffff), tailMask(64))
	assert.Equal(t, uint32(0xff), tailMask(40))
	assert.Equal(t, uint32(0x1), tailMask(33))

	assert.Equal(t, uint(0), WordsFor(0))
	assert.Equal(t, uint(1), WordsFor(1))
	assert.Equal(t, uint(1), WordsFor(32))
	assert.Equal(t, uint(2), WordsFor(33))
}

func TestGetPartReadsOnlyAddressedWords(t *testing.T) {
	for _, tc := range []struct {
		off, width uint
		read       []uint
	}{
		{off: 40, width: 8, read: []uint{1}},
		{off: 32, width: 32, read: []uint{1}},
		{off: 48, width: 40, read: []uint{1, 2}},
		{off: 60, width: 4, read: []uint{1}},
		{off: 60, width: 5, read: []uint{1, 2}},
		{off: 0, width: 96, read: []uint{0, 1, 2}},
	} {
		src := &tracePlane{
			words: []uint32{0xa3a2a1a0, 0xa7a6a5a4, 0xabaaa9a8},
			read:  map[uint]bool{},
		}
		dst := make(bitPlane, WordsFor(tc.width))
		getPart(dst, src, tc.off, tc.width)

		want := map[uint]bool{}
		for _, ix := range tc.read {
			want[ix] = true
		}
		assert.Equal(t, want, src.read, "[%d +: %d]", tc.off, tc.width)
	}
}

// model returns the reference bitset holding the bits of v
func model(v BitVec) *bitset.BitSet {
	b := bitset.New(v.Len())
	for ix := uint(0); ix < v.Len(); ix++ {
		b.SetTo(ix, v[ix/WordBits]&(1<<(ix%WordBits)) != 0)
	}
	return b
}

// fromModel packs the first n bits of b
func fromModel(b *bitset.BitSet, n uint) BitVec {
	v := NewBitVec(n)
	for ix := uint(0); ix < n; ix++ {
		if b.Test(ix) {
			v[ix/WordBits] |= 1 << (ix % WordBits)
		}
	}
	return v
}

func TestPartAgainstModel(t *testing.T) {
	r := rand.New(rand.NewSource(2023)) //intentionally fixed seed
	for j := 0; j < 3000; j++ {
		v := make(BitVec, 1+r.Intn(8))
		for i := range v {
			v[i] = r.Uint32()
		}
		ref := model(v)
		off := uint(r.Intn(int(v.Len())))
		width := 1 + uint(r.Intn(int(v.Len()-off)))

		got, err := v.Part(off, width)
		if err != nil {
			t.Fatal(err)
		}
		want := NewBitVec(width)
		for ix := uint(0); ix < width; ix++ {
			if ref.Test(off + ix) {
				want[ix/WordBits] |= 1 << (ix % WordBits)
			}
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("part [%d +: %d] mismatch (-want +got):\n%s", off, width, diff)
		}

		val := make(BitVec, WordsFor(width))
		for i := range val {
			val[i] = r.Uint32()
		}
		for ix := uint(0); ix < width; ix++ {
			ref.SetTo(off+ix, val[ix/WordBits]&(1<<(ix%WordBits)) != 0)
		}
		if err := v.SetPart(val, off, width); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(fromModel(ref, v.Len()), v); diff != "" {
			t.Fatalf("setpart [%d +: %d] mismatch (-want +got):\n%s", off, width, diff)
		}
	}
}
