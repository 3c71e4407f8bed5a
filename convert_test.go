package svvec

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUint64Conversion(t *testing.T) {
	v := BitVecFromUint64(0xa7a6a5a4a3a2a1a0, 64)
	assert.Equal(t, BitVec{0xa3a2a1a0, 0xa7a6a5a4}, v)
	assert.Equal(t, uint64(0xa7a6a5a4a3a2a1a0), v.Uint64())

	assert.Equal(t, BitVec{0xa3a2a1a0, 0x04}, BitVecFromUint64(0xa7a6a5a4a3a2a1a0, 36))
	assert.Equal(t, BitVec{0x0}, BitVecFromUint64(0x100, 8))
	assert.Equal(t, uint64(0x11), BitVec{0x11}.Uint64())
}

func TestBigConversion(t *testing.T) {
	x, ok := new(big.Int).SetString("abaaa9a8a7a6a5a4a3a2a1a0", 16)
	require.True(t, ok)
	v := BitVecFromBig(x, 96)
	assert.Equal(t, BitVec{0xa3a2a1a0, 0xa7a6a5a4, 0xabaaa9a8}, v)
	assert.Equal(t, 0, x.Cmp(v.Big()))

	assert.Equal(t, BitVec{0xa3a2a1a0, 0xa5a4}, BitVecFromBig(x, 48))
	assert.Equal(t, BitVec{0x5, 0, 0}, BitVecFromBig(big.NewInt(-5), 70))
}

func TestHex(t *testing.T) {
	bv := BitVec{0xa3a2a1a0, 0xa7a6a5a4, 0xabaaa9a8}
	assert.Equal(t, "abaaa9a8a7a6a5a4a3a2a1a0", bv.Hex(96))
	assert.Equal(t, "5a4a3a2a1a0", bv.Hex(44))
	assert.Equal(t, "a0", bv.Hex(8))
	assert.Equal(t, "000000a0", BitVec{0xa0}.Hex(32))
	assert.Equal(t, "00000000000000a0", BitVec{0xa0}.Hex(64), "narrow vector pads to width")
}
