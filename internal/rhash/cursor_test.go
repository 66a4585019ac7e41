package rhash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupAndLSet(t *testing.T) {
	tbl := newIntTable(t)
	_, err := tbl.Put(1, 10)
	require.NoError(t, err)

	c, ok := tbl.Lookup(1)
	require.True(t, ok)
	require.Equal(t, 1, c.Key())
	require.Equal(t, 10, c.LGet())
	require.GreaterOrEqual(t, c.LSlot(), 0)

	require.NoError(t, c.LSet(20))
	v, ok := tbl.Get(1)
	require.True(t, ok)
	require.Equal(t, 20, v)
	c.Release()

	_, ok = tbl.Lookup(2)
	require.False(t, ok)
}

func TestLookupSentinel(t *testing.T) {
	tbl := newIntTable(t)
	_, err := tbl.Put(0, 5)
	require.NoError(t, err)

	c, ok := tbl.Lookup(0)
	require.True(t, ok)
	require.Equal(t, 0, c.Key())
	require.Equal(t, 5, c.LGet())
	require.Equal(t, -1, c.LSlot())

	require.NoError(t, c.LSet(6))
	v, ok := tbl.Get(0)
	require.True(t, ok)
	require.Equal(t, 6, v)
	c.Release()
}

func TestLSetAfterMutationFails(t *testing.T) {
	tbl := newIntTable(t)
	_, err := tbl.Put(1, 10)
	require.NoError(t, err)

	c, ok := tbl.Lookup(1)
	require.True(t, ok)

	_, err = tbl.Put(2, 20)
	require.NoError(t, err)

	err = c.LSet(99)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrState)
}

func TestClassicLAccessorsFollowContainsKey(t *testing.T) {
	tbl := newIntTable(t)
	_, err := tbl.Put(1, 10)
	require.NoError(t, err)
	_, err = tbl.Put(0, 99)
	require.NoError(t, err)

	require.True(t, tbl.ContainsKey(1))
	k, err := tbl.LKey()
	require.NoError(t, err)
	require.Equal(t, 1, k)
	v, err := tbl.LGet()
	require.NoError(t, err)
	require.Equal(t, 10, v)
	slot, err := tbl.LSlot()
	require.NoError(t, err)
	require.GreaterOrEqual(t, slot, 0)

	require.NoError(t, tbl.LSet(11))
	got, ok := tbl.Get(1)
	require.True(t, ok)
	require.Equal(t, 11, got)

	// The sentinel key memoizes slot -1.
	require.True(t, tbl.ContainsKey(0))
	slot, err = tbl.LSlot()
	require.NoError(t, err)
	require.Equal(t, -1, slot)
	v, err = tbl.LGet()
	require.NoError(t, err)
	require.Equal(t, 99, v)

	// A failed ContainsKey invalidates the memo.
	require.False(t, tbl.ContainsKey(42))
	_, err = tbl.LGet()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrState)
}

func TestLAccessorsWithoutContainsKeyFail(t *testing.T) {
	tbl := newIntTable(t)
	_, err := tbl.Put(1, 10)
	require.NoError(t, err)

	_, err = tbl.LKey()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrState)

	_, err = tbl.LGet()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrState)

	err = tbl.LSet(1)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrState)

	_, err = tbl.LSlot()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrState)
}

func TestCursorPoolReusesHandles(t *testing.T) {
	tbl := newIntTable(t)
	for i := 0; i < 10; i++ {
		_, err := tbl.Put(i, i)
		require.NoError(t, err)
	}

	seen := make(map[*Cursor[int, int]]bool)
	for i := 0; i < 10; i++ {
		c, ok := tbl.Lookup(i)
		require.True(t, ok)
		seen[c] = true
		c.Release()
	}
	// With a pool capacity of cursorFreeListCap and strictly sequential
	// acquire/release, the same handful of handles should be recycled
	// rather than growing without bound.
	require.LessOrEqual(t, len(seen), cursorFreeListCap+1)
}
