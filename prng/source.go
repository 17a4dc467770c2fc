// Package prng - value-source strategy and the ambient fallback.
//
// This file defines the Source interface the engine draws from, plus the two
// non-contractual sources: the ambient process stream and a *rand.Rand
// adapter. Keeping the source injectable is what lets tests script every
// draw without touching global state.
package prng

import "math/rand"

// Source yields uniform values in [0, 1). It is the single seam between the
// scrambling engine and randomness: seeded runs plug in an LCG, unseeded
// runs fall back to Ambient, and tests may supply anything else.
type Source interface {
	Float64() float64
}

// ambient delegates to the process-global math/rand stream, which Go
// auto-seeds at startup.
type ambient struct{}

// Float64 returns the next value from the global stream.
func (ambient) Float64() float64 { return rand.Float64() }

// Ambient returns the non-deterministic fallback source used when no seed
// was supplied. Draws are uniform in [0, 1) but carry no reproducibility
// guarantee. Safe for concurrent use; the global stream locks internally.
//
// Complexity: O(1) per draw.
func Ambient() Source { return ambient{} }

// fromRand adapts a caller-owned *rand.Rand.
type fromRand struct {
	r *rand.Rand
}

// Float64 returns the next value from the wrapped stream.
func (f fromRand) Float64() float64 { return f.r.Float64() }

// FromRand wraps r as a Source. If r is nil, the ambient source is returned
// instead. The wrapped stream inherits *rand.Rand's concurrency contract:
// do not share one instance across goroutines.
//
// Complexity: O(1) per draw.
func FromRand(r *rand.Rand) Source {
	if r == nil {
		return ambient{}
	}

	return fromRand{r: r}
}
