// Package scramble - the option-binding factory.
//
// A Scrambler is configuration, not state: it stores the default setters
// and nothing else. No generator lives in the factory, so two calls with
// the same effective options (seed included) replay the same output.
package scramble

// Scrambler binds default options for repeated use. Safe for concurrent
// use: it is immutable after New.
type Scrambler struct {
	defaults []Option
}

// New returns a Scrambler bound to defaults. The setters are copied, so
// later mutation of the caller's slice does not leak in.
func New(defaults ...Option) *Scrambler {
	return &Scrambler{defaults: append([]Option(nil), defaults...)}
}

// Scramble runs the engine on text with the bound defaults, shallow-merged
// under overrides: both setter lists apply in order, so an override wins
// per-field over the default for the same field. Each call builds a fresh
// generator; nothing carries over between calls.
func (s *Scrambler) Scramble(text string, overrides ...Option) string {
	merged := make([]Option, 0, len(s.defaults)+len(overrides))
	merged = append(merged, s.defaults...)
	merged = append(merged, overrides...)

	return Scramble(text, merged...)
}
