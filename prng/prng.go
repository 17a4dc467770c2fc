// Package prng - Park–Miller deterministic generator.
//
// This file implements the seeded generator used for reproducible scrambles.
//
// Goals:
//   - Determinism: same seed ⇒ identical draw sequence on every platform.
//   - Parity: the constants and the (state−1)/(modulus−1) draw formula are
//     contractual; changing either breaks replay against other
//     implementations of the same scheme.
//   - Safety: no panics, no logging; any int64 seed is accepted.
package prng

// Park–Miller "minimal standard" constants. Load-bearing: outputs are only
// reproducible across implementations that share this exact pair.
const (
	// Modulus is the Mersenne prime 2^31 − 1.
	Modulus int64 = 2147483647

	// Multiplier is the primitive root 7^5.
	Multiplier int64 = 16807
)

// LCG is a Park–Miller linear congruential generator. The zero value is not
// usable; construct with NewLCG. Not safe for concurrent use: one LCG serves
// exactly one scrambling invocation.
type LCG struct {
	state int64
}

// NewLCG returns a generator seeded with seed.
//
// Seed normalization: state = seed mod Modulus (Go's sign-preserving %,
// matching the reference arithmetic); results ≤ 0 are shifted by
// Modulus − 1 into the strictly positive range [1, Modulus−1].
//
// Complexity: O(1).
func NewLCG(seed int64) *LCG {
	var s = seed % Modulus
	if s <= 0 {
		s += Modulus - 1
	}

	return &LCG{state: s}
}

// Float64 advances the state once and returns a value in [0, 1).
//
// Each call computes state = (state × Multiplier) mod Modulus and maps the
// new state to (state−1)/(Modulus−1). The product fits int64: state is at
// most 2147483646 and 2147483646 × 16807 < 2^63.
//
// Complexity: O(1).
func (g *LCG) Float64() float64 {
	g.state = g.state * Multiplier % Modulus

	return float64(g.state-1) / float64(Modulus-1)
}
