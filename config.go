package svvec

import "fmt"

// Config describes a declared vector: its width in bits and whether it
// is four-state.  It sizes buffers and validates selects against the
// declared width, which may be narrower than the allocated words.
type Config struct {
	// The declared number of logical bits
	Width uint
	// Whether each position carries an aval and a bval bit
	FourState bool
}

// Planes reports the number of word planes, 1 or 2
func (c *Config) Planes() uint {
	if c.FourState {
		return 2
	}
	return 1
}

// Words reports the number of words per plane
func (c *Config) Words() uint {
	return WordsFor(c.Width)
}

// BytesRequired reports the storage needed for all planes
func (c *Config) BytesRequired() uint {
	return c.Words() * c.Planes() * WordBits / 8
}

// NewBitVec allocates a zeroed two-state buffer for the declared width
func (c *Config) NewBitVec() BitVec {
	return NewBitVec(c.Width)
}

// NewLogicVec allocates a zeroed four-state buffer for the declared width
func (c *Config) NewLogicVec() LogicVec {
	return NewLogicVec(c.Width)
}

// Check verifies that [off, off+width) lies within the declared width
func (c *Config) Check(off, width uint) error {
	if width == 0 {
		panic(fmt.Sprintf("zero width part select at offset %d", off))
	}
	if width > c.Width || off > c.Width-width {
		return fmt.Errorf("%w: bits [%d, %d) of a vector declared [%d:0]",
			ErrOutOfRange, off, uint64(off)+uint64(width), int64(c.Width)-1)
	}
	return nil
}

// ExplainIndent will print an indented summary of the configuration to stdout
func (c *Config) ExplainIndent(indent string) {
	kind := "two-state"
	if c.FourState {
		kind = "four-state"
	}
	fmt.Printf("%s%4d bits declared (%s)\n", indent, c.Width, kind)
	fmt.Printf("%s%4d words per plane, %d plane(s)\n", indent, c.Words(), c.Planes())
	if r := c.Width % WordBits; r != 0 {
		fmt.Printf("%s%4d unused bits in the top word\n", indent, WordBits-r)
	}
	fmt.Printf("%s     %s storage required\n", indent, humanBytes(c.BytesRequired()))
}

// Explain will print a summary of the configuration to stdout
func (c *Config) Explain() {
	c.ExplainIndent("")
}

func humanBytes(bytes uint) string {
	v := float64(bytes)
	suffix := "bytes"
	if v > 1024 {
		v /= 1024.
		suffix = "KB"
		if v > 1024. {
			suffix = "MB"
			v /= 1024.0
			if v > 1024. {
				suffix = "GB"
				v /= 1024.
			}
		}
	}
	if v < 10 {
		return fmt.Sprintf("%0.2f %s", v, suffix)
	} else if v < 100 {
		return fmt.Sprintf("%0.1f %s", v, suffix)
	} else {
		return fmt.Sprintf("%0.0f %s", v, suffix)
	}
}
