package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tekstitv/internal/domain"
)

func addr(page int) domain.PageAddress {
	return domain.NewPageAddress(page)
}

func TestHistoryWalk(t *testing.T) {
	t.Parallel()

	h := New(addr(100))
	assert.Equal(t, addr(100), h.Current())
	assert.Equal(t, 1, h.Len())

	h.Add(addr(201))
	h.Add(addr(350))
	assert.Equal(t, addr(350), h.Current())
	assert.Equal(t, 3, h.Len())

	prev, ok := h.Prev()
	require.True(t, ok)
	assert.Equal(t, addr(201), prev)

	prev, ok = h.Prev()
	require.True(t, ok)
	assert.Equal(t, addr(100), prev)

	// At the oldest entry back is a no-op.
	_, ok = h.Prev()
	assert.False(t, ok)
	assert.Equal(t, addr(100), h.Current())

	next, ok := h.Next()
	require.True(t, ok)
	assert.Equal(t, addr(201), next)

	next, ok = h.Next()
	require.True(t, ok)
	assert.Equal(t, addr(350), next)

	// At the newest entry forward is a no-op.
	_, ok = h.Next()
	assert.False(t, ok)
	assert.Equal(t, addr(350), h.Current())
}

func TestHistoryBranchTruncates(t *testing.T) {
	t.Parallel()

	h := New(addr(100))
	h.Add(addr(201))
	h.Add(addr(350))

	_, ok := h.Prev()
	require.True(t, ok)
	assert.Equal(t, addr(201), h.Current())

	// Adding from the middle drops the forward entries.
	h.Add(addr(400))
	assert.Equal(t, addr(400), h.Current())
	assert.Equal(t, 3, h.Len())

	_, ok = h.Next()
	assert.False(t, ok, "the truncated branch is gone")

	prev, ok := h.Prev()
	require.True(t, ok)
	assert.Equal(t, addr(201), prev)
}

func TestHistoryPrevTrunc(t *testing.T) {
	t.Parallel()

	h := New(addr(100))
	h.Add(addr(666))

	prev, ok := h.PrevTrunc()
	require.True(t, ok)
	assert.Equal(t, addr(100), prev)
	assert.Equal(t, 1, h.Len(), "the unwound entry is dropped")

	_, ok = h.Next()
	assert.False(t, ok)

	_, ok = h.PrevTrunc()
	assert.False(t, ok, "the seed entry always remains")
	assert.Equal(t, addr(100), h.Current())
}
