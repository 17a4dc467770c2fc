// Package shuffle - draw-driven Fisher–Yates.
//
// Goals:
//   - Purity: inputs are copied, never mutated; callers keep their slices.
//   - Determinism: the permutation is a pure function of the source's draws.
//   - Safety: no panics; nil sources and empty slices are handled.
package shuffle

import "github.com/katalvlaran/typoglyph/prng"

// fallbackSeed seeds the deterministic stream used when a nil source is
// passed. Arbitrary but stable, so misuse stays reproducible.
const fallbackSeed int64 = 1

// Runes returns a uniformly shuffled copy of seq, drawing partner indices
// from src. seq itself is left untouched.
//
// Complexity: O(n) time, O(n) space.
func Runes(seq []rune, src prng.Source) []rune {
	out := make([]rune, len(seq))
	copy(out, seq)
	if len(out) <= 1 {
		return out
	}
	if src == nil {
		src = prng.NewLCG(fallbackSeed)
	}

	var (
		i int
		j int
	)
	for i = len(out) - 1; i > 0; i-- {
		j = int(src.Float64() * float64(i+1))
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// Ints returns a uniformly shuffled copy of seq, drawing partner indices
// from src. seq itself is left untouched.
//
// Complexity: O(n) time, O(n) space.
func Ints(seq []int, src prng.Source) []int {
	out := make([]int, len(seq))
	copy(out, seq)
	if len(out) <= 1 {
		return out
	}
	if src == nil {
		src = prng.NewLCG(fallbackSeed)
	}

	var (
		i int
		j int
	)
	for i = len(out) - 1; i > 0; i-- {
		j = int(src.Float64() * float64(i+1))
		out[i], out[j] = out[j], out[i]
	}

	return out
}
