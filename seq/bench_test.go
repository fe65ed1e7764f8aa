package seq_test

import (
	"math/rand"
	"testing"

	"github.com/ostankov/staticvec/seq"
)

// BenchmarkInsertionSort measures the rotation-based sort on a fixed
// random permutation.
func BenchmarkInsertionSort(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	input := rng.Perm(256)
	scratch := make([]int, len(input))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(scratch, input)
		_ = seq.InsertionSort[int](seq.SliceSequence[int](scratch), func(a, b int) bool { return a < b })
	}
}

// BenchmarkRotate measures a half-range rotation.
func BenchmarkRotate(b *testing.B) {
	s := make(seq.SliceSequence[int], 1024)
	for i := range s {
		s[i] = i
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = seq.Rotate[int](s, 0, 512, 1024)
	}
}
