// Package prng provides the pseudo-random value sources that drive text
// scrambling: a deterministic Park–Miller linear congruential generator for
// seeded, reproducible runs, and an ambient non-deterministic source for
// unseeded runs.
//
// What:
//
//   - Source — the one-method strategy interface (Float64 in [0,1)) consumed
//     by the shuffle and scramble packages.
//   - LCG — the "minimal standard" Park–Miller generator (modulus 2147483647,
//     multiplier 16807). Same seed ⇒ bit-for-bit identical draw sequence,
//     across platforms and across implementations sharing these constants.
//   - Ambient — the process-global, auto-seeded math/rand stream, for callers
//     that did not supply a seed. Explicitly outside any reproducibility
//     guarantee.
//   - FromRand — adapter for a caller-owned *rand.Rand stream.
//
// Why:
//
//   - Scrambled output must be replayable from a seed alone; hiding a
//     time-based source inside the engine would break that.
//   - The generator is injected, never global, so tests can substitute a
//     scripted Source and the engine stays free of hidden process state.
//
// Complexity:
//
//   - Every draw is O(1) time, O(1) space; LCG state is a single int64.
//
// Errors:
//
//   - None. Construction normalizes any int64 seed into the generator's
//     valid state range; draws cannot fail.
//
// Concurrency:
//
//   - LCG and FromRand sources are NOT goroutine-safe: one instance belongs
//     to exactly one scrambling invocation. Ambient() is safe for concurrent
//     use (it delegates to the locked global math/rand stream).
package prng
