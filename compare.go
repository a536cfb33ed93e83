package portrunner

// Comparer verifies that an unbounded byte stream is a contiguous repetition
// of a fixed reference pattern. It keeps a single piece of alignment state,
// the phase offset: the pattern index of the next byte it expects to see.
// Chunks of any size may be fed in, including chunks longer than the pattern
// itself; comparison wraps around the pattern end with modular indexing.
//
// On a mismatch the comparer does not search for the true resync point. It
// counts one miscompare for the whole chunk and re-anchors at pattern index
// zero, trading alignment precision for simplicity.
type Comparer struct {
	pattern []byte
	offset  int

	good        uint64 // full pattern cycles matched since start
	miscompares uint64 // chunks containing at least one bad byte
}

// NewComparer creates a Comparer for the given pattern. The pattern must be
// at least one byte long and is not copied; callers must not mutate it.
func NewComparer(pattern []byte) (*Comparer, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	return &Comparer{pattern: pattern}, nil
}

// Compare walks chunk against the pattern at the current phase offset and
// reports whether every byte matched. An empty chunk is a no-op: neither the
// offset nor any counter changes.
//
// On a full match the offset advances by len(chunk) modulo the pattern
// length, and the good-compare counter increases once for every complete
// pattern cycle the chunk finished. On any bad byte the miscompare counter
// increases exactly once and the offset resets to zero.
func (c *Comparer) Compare(chunk []byte) bool {
	if len(chunk) == 0 {
		return true
	}

	for i, b := range chunk {
		if b != c.pattern[(c.offset+i)%len(c.pattern)] {
			c.miscompares++
			c.offset = 0
			return false
		}
	}

	advanced := c.offset + len(chunk)
	c.good += uint64(advanced / len(c.pattern))
	c.offset = advanced % len(c.pattern)
	return true
}

// Offset returns the current phase offset, always in [0, pattern length).
func (c *Comparer) Offset() int {
	return c.offset
}

// Good returns the number of full pattern cycles matched so far.
func (c *Comparer) Good() uint64 {
	return c.good
}

// Miscompares returns the number of chunks that failed to match.
func (c *Comparer) Miscompares() uint64 {
	return c.miscompares
}
