// Package scramble is the typoglycemia engine: it permutes the interior
// letters of each eligible word while anchoring the first and last letter,
// leaving the text approximately readable.
//
// What:
//
//   - Scramble — the orchestrator: tokenize, gate each word by probability,
//     filter by minimum core length, scramble the survivors, reassemble.
//   - Word — the per-word scrambler: first and last rune fixed, interior
//     permuted, original casing reattached per position.
//   - Options and With* setters — functional configuration: minimum length,
//     seed, case preservation, scramble probability, injected value source.
//   - New / Scrambler — a factory binding default options; each call merges
//     per-call overrides over the bound defaults and runs a fresh engine.
//
// Why:
//
//   - A seeded run owns exactly one private generator for its whole
//     duration, so identical text, seed, and options replay identical
//     output; unseeded runs draw from the ambient source instead.
//   - Whitespace runs and punctuation shells pass through verbatim: the
//     output is a per-word permutation of the input, nothing more.
//
// Semantics worth knowing:
//
//   - The probability gate draws exactly once per content token (only when
//     the probability is below 1) and does so BEFORE the length filter, so
//     the draw sequence is a function of the token stream, not of token
//     eligibility.
//   - With case preservation on, the interior is lower-cased before the
//     shuffle and the ORIGINAL positional casing pattern is stamped onto
//     the shuffled interior. Case sticks to positions, not to letters; an
//     uppercase letter can land lowercase elsewhere while its old slot
//     upper-cases whoever arrives. Observable, replay-relevant behavior.
//
// Errors:
//
//   - None. The engine is total over all strings; out-of-range options
//     degrade (probability ≥ 1 always scrambles, minimum length ≤ 0 never
//     filters) instead of failing.
//
// Concurrency:
//
//   - Scramble calls are independent and safe to run in parallel; all
//     mutable state lives in the per-call generator.
package scramble
