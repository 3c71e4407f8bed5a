// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package svvec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"unsafe"
)

// vecMagic opens every serialized vector, "SVV1" read little endian
const vecMagic = uint32(0x31565653)

// vecVersion is a version number for the serialized representation.
// Any time incompatible changes are made, it is bumped
const vecVersion = uint32(0x0001)

// maxWords bounds the per plane word count accepted from a stream
const maxWords = 1 << 24

// ErrBadFormat is returned (wrapped) when a stream does not hold a
// serialized vector of the expected kind
var ErrBadFormat = errors.New("not a serialized vector")

// Kind identifies the representation of a serialized vector
type Kind uint32

const (
	KindBit   Kind = 1
	KindLogic Kind = 2
)

func (k Kind) String() string {
	switch k {
	case KindBit:
		return "two-state"
	case KindLogic:
		return "four-state"
	}
	return fmt.Sprintf("kind(%d)", uint32(k))
}

// Header describes a serialized vector
type Header struct {
	Magic   uint32
	Version uint32
	// the representation that follows the header
	Kind Kind
	// the number of words per plane that follow the header
	Words uint32
}

// WriteTo writes the vector to a stream
func (v BitVec) WriteTo(w io.Writer) (n int64, err error) {
	if n, err = writeHeader(w, KindBit, len(v)); err != nil {
		return
	}
	if err = binary.Write(w, binary.LittleEndian, []uint32(v)); err != nil {
		return n, fmt.Errorf("writing vector words: %w", err)
	}
	n += int64(len(v)) * 4
	return
}

// ReadFrom replaces the vector with one read from a stream
func (v *BitVec) ReadFrom(r io.Reader) (n int64, err error) {
	h, n, err := readHeader(r, KindBit)
	if err != nil {
		return
	}
	nv := make(BitVec, h.Words)
	if err = binary.Read(r, binary.LittleEndian, []uint32(nv)); err != nil {
		return n, fmt.Errorf("reading vector words: %w", err)
	}
	n += int64(h.Words) * 4
	*v = nv
	return
}

// WriteTo writes the vector, both planes, to a stream
func (v LogicVec) WriteTo(w io.Writer) (n int64, err error) {
	if n, err = writeHeader(w, KindLogic, len(v)); err != nil {
		return
	}
	if err = binary.Write(w, binary.LittleEndian, []LogicWord(v)); err != nil {
		return n, fmt.Errorf("writing vector words: %w", err)
	}
	n += int64(len(v)) * int64(unsafe.Sizeof(LogicWord{}))
	return
}

// ReadFrom replaces the vector with one read from a stream
func (v *LogicVec) ReadFrom(r io.Reader) (n int64, err error) {
	h, n, err := readHeader(r, KindLogic)
	if err != nil {
		return
	}
	nv := make(LogicVec, h.Words)
	if err = binary.Read(r, binary.LittleEndian, []LogicWord(nv)); err != nil {
		return n, fmt.Errorf("reading vector words: %w", err)
	}
	n += int64(h.Words) * int64(unsafe.Sizeof(LogicWord{}))
	*v = nv
	return
}

// ReadHeader reads and validates the header of a serialized vector
func ReadHeader(r io.Reader) (Header, error) {
	h, _, err := readHeader(r, 0)
	return h, err
}

// ReadHeaderFromPath reads the header of a serialized vector file
func ReadHeaderFromPath(path string) (Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, err
	}
	defer f.Close()
	return ReadHeader(f)
}

func writeHeader(w io.Writer, kind Kind, words int) (int64, error) {
	if words > maxWords {
		return 0, fmt.Errorf("vector of %d words is too large to serialize", words)
	}
	h := Header{
		Magic:   vecMagic,
		Version: vecVersion,
		Kind:    kind,
		Words:   uint32(words),
	}
	if err := binary.Write(w, binary.LittleEndian, h); err != nil {
		return 0, fmt.Errorf("writing vector header: %w", err)
	}
	return int64(unsafe.Sizeof(h)), nil
}

// readHeader reads a header, checking its kind unless want is zero
func readHeader(r io.Reader, want Kind) (h Header, n int64, err error) {
	if err = binary.Read(r, binary.LittleEndian, &h); err != nil {
		return h, 0, fmt.Errorf("reading vector header: %w", err)
	}
	n = int64(unsafe.Sizeof(h))
	switch {
	case h.Magic != vecMagic:
		err = fmt.Errorf("%w: bad magic %#08x", ErrBadFormat, h.Magic)
	case h.Version != vecVersion:
		err = fmt.Errorf("%w: incompatible version %d, expected %d", ErrBadFormat, h.Version, vecVersion)
	case h.Kind != KindBit && h.Kind != KindLogic:
		err = fmt.Errorf("%w: unknown kind %d", ErrBadFormat, uint32(h.Kind))
	case want != 0 && h.Kind != want:
		err = fmt.Errorf("%w: stream holds a %s vector, expected %s", ErrBadFormat, h.Kind, want)
	case h.Words > maxWords:
		err = fmt.Errorf("%w: %d words exceeds limit of %d", ErrBadFormat, h.Words, maxWords)
	}
	return
}
