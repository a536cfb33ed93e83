package portrunner

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewComparerRejectsEmptyPattern(t *testing.T) {
	_, err := NewComparer(nil)
	require.ErrorIs(t, err, ErrEmptyPattern)

	_, err = NewComparer([]byte{})
	require.ErrorIs(t, err, ErrEmptyPattern)
}

func TestCompareCleanStream(t *testing.T) {
	// Any sequence of chunk sizes summing to a multiple of the pattern
	// length must produce exactly total/len good compares and no
	// miscompares, regardless of where the chunk boundaries fall.
	tests := []struct {
		name    string
		pattern string
		chunks  []int
		good    uint64
	}{
		{"aligned chunks", "ABCD", []int{4, 4, 4}, 3},
		{"chunk equals pattern", "AB", []int{2, 2, 2}, 3},
		{"unaligned boundaries", "ABCD", []int{3, 5, 4}, 3},
		{"single bytes", "ABC", []int{1, 1, 1, 1, 1, 1}, 2},
		{"chunk longer than pattern", "ABC", []int{7, 2}, 3},
		{"one big chunk", "AB", []int{10}, 5},
		{"pattern length one", "X", []int{1, 3, 2}, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewComparer([]byte(tt.pattern))
			require.NoError(t, err)

			stream := bytes.Repeat([]byte(tt.pattern), 16)
			pos := 0
			for _, n := range tt.chunks {
				require.True(t, c.Compare(stream[pos:pos+n]))
				pos = pos + n
			}

			assert.Equal(t, tt.good, c.Good())
			assert.Equal(t, uint64(0), c.Miscompares())
			assert.Equal(t, pos%len(tt.pattern), c.Offset())
		})
	}
}

func TestCompareMiscompareResetsOffset(t *testing.T) {
	c, err := NewComparer([]byte("ABCD"))
	require.NoError(t, err)

	require.True(t, c.Compare([]byte("AB")))
	assert.Equal(t, 2, c.Offset())

	// One bad byte in the chunk counts a single miscompare, not one per
	// differing byte, and re-anchors at pattern index zero.
	require.False(t, c.Compare([]byte("CX")))
	assert.Equal(t, uint64(1), c.Miscompares())
	assert.Equal(t, 0, c.Offset())

	require.False(t, c.Compare([]byte("XXXX")))
	assert.Equal(t, uint64(2), c.Miscompares())
	assert.Equal(t, 0, c.Offset())

	// The next read is compared from the pattern start regardless of the
	// link's true skew.
	require.True(t, c.Compare([]byte("ABCD")))
	assert.Equal(t, uint64(1), c.Good())
}

func TestCompareEmptyChunkIsNoOp(t *testing.T) {
	c, err := NewComparer([]byte("AB"))
	require.NoError(t, err)

	require.True(t, c.Compare([]byte("A")))

	for i := 0; i < 5; i++ {
		require.True(t, c.Compare(nil))
		require.True(t, c.Compare([]byte{}))
	}

	assert.Equal(t, 1, c.Offset())
	assert.Equal(t, uint64(0), c.Good())
	assert.Equal(t, uint64(0), c.Miscompares())
}

func TestCompareWrapsAroundPatternEnd(t *testing.T) {
	// Pattern length 5, offset 3, chunk length 4: bytes are compared
	// against pattern indices 3,4,0,1 and the offset lands on 2.
	c, err := NewComparer([]byte{10, 20, 30, 40, 50})
	require.NoError(t, err)

	require.True(t, c.Compare([]byte{10, 20, 30}))
	require.Equal(t, 3, c.Offset())

	require.True(t, c.Compare([]byte{40, 50, 10, 20}))
	assert.Equal(t, 2, c.Offset())
	assert.Equal(t, uint64(1), c.Good())
	assert.Equal(t, uint64(0), c.Miscompares())
}

func TestComparePatternLengthOne(t *testing.T) {
	c, err := NewComparer([]byte{0x55})
	require.NoError(t, err)

	// Every matching byte is a completed cycle.
	require.True(t, c.Compare([]byte{0x55}))
	assert.Equal(t, uint64(1), c.Good())
	assert.Equal(t, 0, c.Offset())

	require.False(t, c.Compare([]byte{0xAA}))
	assert.Equal(t, uint64(1), c.Miscompares())

	require.True(t, c.Compare([]byte{0x55, 0x55, 0x55}))
	assert.Equal(t, uint64(4), c.Good())
}

func TestCompareSequenceEndToEnd(t *testing.T) {
	t.Run("clean", func(t *testing.T) {
		c, err := NewComparer([]byte("AB"))
		require.NoError(t, err)

		for _, chunk := range []string{"AB", "AB", "AB"} {
			require.True(t, c.Compare([]byte(chunk)))
		}

		assert.Equal(t, uint64(3), c.Good())
		assert.Equal(t, uint64(0), c.Miscompares())
		assert.Equal(t, 0, c.Offset())
	})

	t.Run("corrupted middle read", func(t *testing.T) {
		c, err := NewComparer([]byte("AB"))
		require.NoError(t, err)

		require.True(t, c.Compare([]byte("AB")))
		assert.Equal(t, uint64(1), c.Good())

		require.False(t, c.Compare([]byte("XY")))
		assert.Equal(t, uint64(1), c.Miscompares())
		assert.Equal(t, 0, c.Offset())

		require.True(t, c.Compare([]byte("AB")))
		assert.Equal(t, uint64(2), c.Good())
		assert.Equal(t, uint64(1), c.Miscompares())
	})
}

func TestCompareCountersAreMonotonic(t *testing.T) {
	c, err := NewComparer([]byte("ABC"))
	require.NoError(t, err)

	var lastGood, lastMis uint64
	chunks := [][]byte{
		[]byte("ABC"), []byte("AB"), []byte("X"), []byte("ABCABC"),
		nil, []byte("A"), []byte("Z"), []byte("ABC"),
	}
	for _, chunk := range chunks {
		c.Compare(chunk)
		assert.GreaterOrEqual(t, c.Good(), lastGood)
		assert.GreaterOrEqual(t, c.Miscompares(), lastMis)
		assert.GreaterOrEqual(t, c.Offset(), 0)
		assert.Less(t, c.Offset(), 3)
		lastGood, lastMis = c.Good(), c.Miscompares()
	}
}
