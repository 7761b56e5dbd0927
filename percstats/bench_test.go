package percstats_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/percolate/percstats"
)

// BenchmarkNew measures full construction: 20 trials on a 50×50 grid with
// a deterministic seed.
// Complexity: O(trials · openings · α(n²)).
func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		opts := &percstats.Options{Rand: rand.New(rand.NewSource(42))}
		if _, err := percstats.New(50, 20, opts); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}

// BenchmarkQueries measures the memoized statistics path after the first
// computation.
func BenchmarkQueries(b *testing.B) {
	opts := &percstats.Options{Rand: rand.New(rand.NewSource(42))}
	s, err := percstats.New(50, 20, opts)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	s.Mean() // prime the caches
	s.StdDev()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.ConfidenceLo()
		_ = s.ConfidenceHi()
	}
}
