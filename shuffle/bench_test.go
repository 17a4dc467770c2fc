package shuffle_test

import (
	"testing"

	"github.com/katalvlaran/typoglyph/prng"
	"github.com/katalvlaran/typoglyph/shuffle"
)

// benchmarkRunes shuffles an n-rune sequence per iteration.
func benchmarkRunes(b *testing.B, n int) {
	seq := make([]rune, n)
	for i := range seq {
		seq[i] = rune('a' + i%26)
	}
	src := prng.NewLCG(42)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = shuffle.Runes(seq, src)
	}
}

// BenchmarkRunes_Word exercises a typical word-interior length.
func BenchmarkRunes_Word(b *testing.B) { benchmarkRunes(b, 8) }

// BenchmarkRunes_Long exercises a pathological very long token.
func BenchmarkRunes_Long(b *testing.B) { benchmarkRunes(b, 1024) }
