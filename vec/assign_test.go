package vec_test

import (
	"testing"

	"github.com/ostankov/staticvec/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCopyFrom_Ints covers copy assignment into empty, shorter, and
// longer destinations.
func TestCopyFrom_Ints(t *testing.T) {
	u, err := vec.Of(10, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	require.NoError(t, err)

	t.Run("into empty", func(t *testing.T) {
		v, errNew := vec.New[int](10)
		require.NoError(t, errNew)
		require.NoError(t, v.CopyFrom(u))
		assert.Equal(t, u.ToSlice(), v.ToSlice())
	})

	t.Run("into shorter", func(t *testing.T) {
		v, errNew := vec.Of(10, 7, 7, 7)
		require.NoError(t, errNew)
		require.NoError(t, v.CopyFrom(u))
		assert.Equal(t, u.ToSlice(), v.ToSlice())
	})

	t.Run("into longer", func(t *testing.T) {
		v, errNew := vec.Of(10, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7)
		require.NoError(t, errNew)
		src, errSrc := vec.Of(10, 1, 2)
		require.NoError(t, errSrc)
		require.NoError(t, v.CopyFrom(src))
		assert.Equal(t, []int{1, 2}, v.ToSlice(), "surplus slots must be destroyed")
	})

	t.Run("self assignment", func(t *testing.T) {
		require.NoError(t, u.CopyFrom(u))
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, u.ToSlice())
	})

	t.Run("capacity exceeded", func(t *testing.T) {
		v, errNew := vec.Of(2, 5, 6)
		require.NoError(t, errNew)
		assert.ErrorIs(t, v.CopyFrom(u), vec.ErrCapacityExceeded)
		assert.Equal(t, []int{5, 6}, v.ToSlice(), "failed assignment must leave the destination untouched")
	})
}

// TestCopyFrom_Probes verifies assignment uses copy-assign over the
// overlap, copy-construct for the extras, and destroy for the surplus,
// keeping self-referential elements address-correct throughout.
func TestCopyFrom_Probes(t *testing.T) {
	var live int
	hooks := copyProbeHooks(&live)

	u, err := vec.New(10, vec.WithHooks[copyProbe](hooks))
	require.NoError(t, err)
	emplaceCopyProbes(t, u, 10, &live)

	v, err := vec.New(10, vec.WithHooks[copyProbe](hooks))
	require.NoError(t, err)
	emplaceCopyProbes(t, v, 4, &live)

	require.NoError(t, v.CopyFrom(u))
	assert.Equal(t, 10, v.Len())
	requireAllVerified(t, v)
	requireAllVerified(t, u)
	assert.Equal(t, 20, live)

	u.Clear()
	v.Clear()
	assert.Zero(t, live)
}

// TestMoveFrom_Ints covers move assignment: content transfers and the
// source drains.
func TestMoveFrom_Ints(t *testing.T) {
	u, err := vec.Of(10, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	require.NoError(t, err)
	v, err := vec.New[int](10)
	require.NoError(t, err)

	require.NoError(t, v.MoveFrom(u))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, v.ToSlice())
	assert.Zero(t, u.Len())

	require.NoError(t, v.MoveFrom(v), "self-move must be a safe identity")
	assert.Equal(t, 10, v.Len())
}

// TestMoveFrom_Probes verifies move assignment drives move hooks for
// overlap and extras, then drains the source.
func TestMoveFrom_Probes(t *testing.T) {
	var live int
	hooks := moveProbeHooks(&live)

	u, err := vec.New(10, vec.WithHooks[moveProbe](hooks))
	require.NoError(t, err)
	emplaceMoveProbes(t, u, 10, &live)

	v, err := vec.New(10, vec.WithHooks[moveProbe](hooks))
	require.NoError(t, err)
	emplaceMoveProbes(t, v, 3, &live)

	require.NoError(t, v.MoveFrom(u))
	assert.Equal(t, 10, v.Len())
	assert.Zero(t, u.Len())
	requireAllMoveVerified(t, v)

	v.Clear()
	assert.Zero(t, live)
}
