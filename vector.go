package svvec

import "io"

// Vector is the behavior shared by two-state and four-state vectors
type Vector interface {
	// Len returns the number of logical bits the storage holds
	Len() uint
	// Sum64 returns a checksum of the vector contents
	Sum64() uint64

	// vectors can be serialized
	io.WriterTo
}
