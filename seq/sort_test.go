package seq_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/ostankov/staticvec/seq"
	"github.com/ostankov/staticvec/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInsertionSort_AgainstReference sorts a vector through the
// rotate/upper-bound composition and checks it agrees with a plain
// reference sort of the same input, elementwise via Transform+AllOf.
func TestInsertionSort_AgainstReference(t *testing.T) {
	input := []int{2, 4, 2, 0, 5, 10, 7, 3, 7, 1}

	v, err := vec.Of(20, input...)
	require.NoError(t, err)
	w := v.Clone()

	require.NoError(t, seq.InsertionSort[int](v, intLess))

	reference := w.ToSlice()
	slices.Sort(reference)
	require.NoError(t, w.CopyFrom(mustOf(t, 20, reference...)))

	z, err := vec.New[bool](20)
	require.NoError(t, err)
	i := 0
	require.NoError(t, seq.Transform(v, z, func(x int) bool {
		same := x == w.Get(i)
		i++

		return same
	}))
	assert.Equal(t, v.Len(), z.Len())

	all, err := seq.AllOf[bool](z, func(b bool) bool { return b })
	require.NoError(t, err)
	assert.True(t, all, "both sorts must produce the same order")
}

// TestInsertionSort_Random cross-checks against slices.Sort on random
// permutations of varying length.
func TestInsertionSort_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, n := range []int{0, 1, 2, 7, 33, 128} {
		input := rng.Perm(n)
		v, err := vec.Of(n, input...)
		require.NoError(t, err, "n=%d", n)

		require.NoError(t, seq.InsertionSort[int](v, intLess))

		want := slices.Clone(input)
		slices.Sort(want)
		assert.Equal(t, want, v.ToSlice(), "n=%d", n)

		sorted, err := seq.IsSorted[int](v, intLess)
		require.NoError(t, err)
		assert.True(t, sorted, "n=%d", n)
	}
}

// TestInsertionSort_Stable checks stability on a key/tag pair type.
func TestInsertionSort_Stable(t *testing.T) {
	type pair struct {
		key int
		tag string
	}
	s := seq.SliceSequence[pair]{
		{2, "a"}, {1, "b"}, {2, "c"}, {1, "d"}, {2, "e"},
	}
	require.NoError(t, seq.InsertionSort[pair](s, func(a, b pair) bool { return a.key < b.key }))
	assert.Equal(t, seq.SliceSequence[pair]{
		{1, "b"}, {1, "d"}, {2, "a"}, {2, "c"}, {2, "e"},
	}, s)
}

// TestInsertionSort_Validation covers the nil-argument errors.
func TestInsertionSort_Validation(t *testing.T) {
	assert.ErrorIs(t, seq.InsertionSort[int](nil, intLess), seq.ErrNilSequence)

	s := seq.SliceSequence[int]{1}
	assert.ErrorIs(t, seq.InsertionSort[int](s, nil), seq.ErrNilFunc)

	_, err := seq.IsSorted[int](nil, intLess)
	assert.ErrorIs(t, err, seq.ErrNilSequence)
}

// mustOf builds a vector from elems or fails the test.
func mustOf(t *testing.T, capacity int, elems ...int) *vec.Vector[int] {
	t.Helper()
	v, err := vec.Of(capacity, elems...)
	require.NoError(t, err)

	return v
}
