package dvec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllocBlock(t *testing.T) {
	t.Parallel()

	b := allocBlock[string](0)
	require.Equal(t, 0, b.cap())
	require.Nil(t, b.slots)

	b = allocBlock[string](5)
	require.Equal(t, 5, b.cap())
	for _, s := range b.slots {
		require.Empty(t, s)
	}

	b.release()
	require.Equal(t, 0, b.cap())
}

func TestAdoptBlockKeepsBackingArray(t *testing.T) {
	t.Parallel()

	s := make([]int, 2, 8)
	b := adoptBlock(s)
	require.Equal(t, 8, b.cap())
	require.Same(t, &s[0], &b.slots[0])

	b = adoptBlock[int](nil)
	require.Equal(t, 0, b.cap())
}
