package main

import (
	"bytes"
	"fmt"

	svvec "github.com/facebookincubator/go-svvec"
)

func main() {
	// a 96 bit two-state vector, as a simulator would hand it over
	bv := svvec.BitVec{0xa3a2a1a0, 0xa7a6a5a4, 0xabaaa9a8}
	for ix := uint(32); ix < 40; ix++ {
		b, _ := bv.Bit(ix)
		fmt.Printf("bv[%d] = %d\n", ix, b)
	}

	bv.SetBit(32, 1)
	bv.SetBit(33, 0)
	bv.SetBit(34, 1)
	bv.SetBit(35, 1)
	fmt.Printf("after bit writes: %08x\n", []uint32(bv))

	p, _ := bv.Part(48, 40)
	fmt.Printf("bv[87:48] = 40'h%s\n", p.Hex(40))

	bv.SetPartWord(0x99887766, 24, 24)
	fmt.Printf("after bv[47:24] = 24'h887766: %08x\n", []uint32(bv))

	// the same vector shape in four-state form
	lv := svvec.LogicVec{
		{Aval: 0xb3b2b1b0, Bval: 0xc3c2c1c0},
		{Aval: 0xb7b6b5b4, Bval: 0xc7c6c5c4},
		{Aval: 0xbbbab9b8, Bval: 0xcbcac9c8},
	}
	for ix := uint(32); ix < 40; ix++ {
		code, _ := lv.Bit(ix)
		fmt.Printf("lv[%d] = %d\n", ix, code)
	}

	lp, _ := lv.Part(40, 8)
	fmt.Printf("lv[47:40] = aval %02x bval %02x\n", lp[0].Aval, lp[0].Bval)

	// Serialize the vector and report size and checksum
	buf := bytes.NewBuffer([]byte{})
	lv.WriteTo(buf)
	fmt.Printf("vector serializes into %d bytes, checksum %016x\n", buf.Len(), lv.Sum64())
}
