// Package scramble - functional configuration.
//
// This file defines the documented defaults, the Options record, the With*
// setters, and the internal gatherOptions helper. Fields are unexported;
// public APIs consume ...Option and apply setters in order with
// last-writer-wins semantics, which is also what gives the factory its
// shallow-merge behavior (defaults first, overrides after).
//
// Setters never validate: the engine is total, and out-of-range values keep
// the documented degraded meaning instead of panicking.
package scramble

import "github.com/katalvlaran/typoglyph/prng"

// Documented defaults; single source of truth for option resolution.
const (
	// DefaultMinLength is the minimum rune length a word's letter core needs
	// to be eligible for scrambling. Values ≤ 0 disable the filter.
	DefaultMinLength = 4

	// DefaultPreserveCase keeps the input's positional casing pattern on the
	// scrambled interior.
	DefaultPreserveCase = true

	// DefaultProbability scrambles every eligible word. Values ≥ 1 mean
	// "always"; the per-word gate only draws when the probability is below 1.
	DefaultProbability = 1.0
)

// Option configures one scramble invocation via functional arguments.
type Option func(*Options)

// Options holds the resolved parameters of one invocation. Zero value is
// not meaningful; construct through gatherOptions (public APIs do).
type Options struct {
	// minLength filters words whose letter core is shorter (in runes).
	minLength int

	// seed drives the deterministic generator; only meaningful when seeded.
	seed int64

	// seeded distinguishes WithSeed(0) from "no seed given".
	seeded bool

	// preserveCase reattaches the original positional casing pattern.
	preserveCase bool

	// probability is the independent per-word chance of being scrambled.
	probability float64

	// source is an injected draw source for unseeded runs; nil means the
	// ambient stream.
	source prng.Source
}

// WithMinLength sets the minimum rune length of the letter core. Values ≤ 0
// make the length filter always pass.
func WithMinLength(n int) Option {
	return func(o *Options) { o.minLength = n }
}

// WithSeed selects deterministic mode: the invocation builds a fresh
// Park–Miller generator from seed and replays identically on every call
// with the same effective options. Any int64 is valid, including 0 and
// negatives; seeds congruent modulo the generator's modulus coincide.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithPreserveCase toggles positional case reattachment on the scrambled
// interior. See the package documentation for the exact (positional, not
// per-letter) semantics.
func WithPreserveCase(preserve bool) Option {
	return func(o *Options) { o.preserveCase = preserve }
}

// WithProbability sets the independent per-word scramble probability.
// Values ≥ 1 scramble every eligible word without consuming a gate draw;
// values ≤ 0 let every word through untouched (up to draw arithmetic:
// the gate passes only when the drawn value does not exceed p).
func WithProbability(p float64) Option {
	return func(o *Options) { o.probability = p }
}

// WithSource injects a custom draw source for unseeded runs — the test seam
// for ambient mode. It is ignored when a seed is set: reproducibility
// guarantees stay attached to the seed.
func WithSource(src prng.Source) Option {
	return func(o *Options) { o.source = src }
}

// gatherOptions resolves documented defaults, then applies the caller's
// setters in order.
func gatherOptions(user ...Option) Options {
	o := Options{
		minLength:    DefaultMinLength,
		preserveCase: DefaultPreserveCase,
		probability:  DefaultProbability,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// drawSource builds the per-invocation value source: a fresh private LCG in
// seeded mode, the injected source otherwise, the ambient stream as the
// final fallback.
func (o Options) drawSource() prng.Source {
	if o.seeded {
		return prng.NewLCG(o.seed)
	}
	if o.source != nil {
		return o.source
	}

	return prng.Ambient()
}
