package chain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChain_Append(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, Config{Difficulty: 2, TailDisplay: 4})
	c := NewChain(e)

	assert.Nil(t, c.Tip())
	assert.Equal(t, 0, c.Len())

	for i := 0; i < 6; i++ {
		b, err := c.Append(fmt.Sprintf("This is block %d", i+1))
		require.NoError(t, err)
		assert.Same(t, b, c.Tip())
	}
	require.Equal(t, 6, c.Len())

	blocks := c.Blocks()
	for i, b := range blocks {
		assert.Equal(t, uint64(i), b.Sequence)
		assert.Equal(t, "00", b.Digest.String()[:2])
		if i == 0 {
			assert.Nil(t, b.PrevDigest)
			continue
		}
		require.NotNil(t, b.PrevDigest)
		assert.Equal(t, *blocks[i-1].Digest, *b.PrevDigest)
	}

	assert.True(t, c.Validate().Valid)
}

func TestChain_BlocksIsACopy(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, Config{Difficulty: 1, TailDisplay: 4})
	c := NewChain(e)
	_, err := c.Append("GENESIS")
	require.NoError(t, err)

	blocks := c.Blocks()
	blocks[0] = nil
	assert.NotNil(t, c.Blocks()[0])
	assert.True(t, c.Validate().Valid)
}

func TestChain_TamperDetection(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, Config{Difficulty: 3, TailDisplay: 4})
	c := NewChain(e)

	_, err := c.Append("GENESIS")
	require.NoError(t, err)
	second, err := c.Append("hello")
	require.NoError(t, err)
	require.True(t, c.Validate().Valid)

	second.Payload = "goodbye"
	report := c.Validate()
	assert.False(t, report.Valid)
	assert.Equal(t, 1, report.FirstInvalid)
	assert.ErrorIs(t, report.Err, ErrDigestMismatch)
	assert.Equal(t, *c.Blocks()[0].Digest, *second.PrevDigest, "link still matches")
}
