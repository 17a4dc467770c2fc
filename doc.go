// Package typoglyph scrambles the interior letters of words while keeping
// the first and last letter anchored — the "typoglycemia" effect, where
// shuffled interiors barely slow a reader down.
//
// 🚀 What is typoglyph?
//
//	A small, deterministic text-distortion library plus CLI:
//		• Scrambling engine: tokenize, gate, filter, permute, reassemble
//		• Seeded mode: the same seed replays bit-for-bit identical output
//		• Case fidelity: the casing pattern of every word survives in place
//		• Whitespace fidelity: every space, tab and newline passes verbatim
//		• Presets: named option bundles, built-in or loaded from TOML
//
// ✨ Why choose typoglyph?
//
//   - Reproducible – a Park–Miller generator pins every permutation to its seed
//   - Total – no error paths; every string in, a permuted string out
//   - Pure core – the engine does no I/O and holds no global state
//   - Composable – functional options with shallow-merge factory defaults
//
// Everything is organized under five packages:
//
//	prng/     — Park–Miller generator, ambient fallback, Source strategy
//	shuffle/  — draw-driven Fisher–Yates over runes and ints
//	token/    — whitespace/content partition + prefix/core/suffix segments
//	scramble/ — word scrambler, orchestrator, options, factory
//	preset/   — named option bundles, embedded and file-loaded (TOML)
//
// Quick example:
//
//	scramble.Scramble("The quick brown fox", scramble.WithSeed(42))
//	// → "The qciuk borwn fox" — same call, same answer, every time.
//
// The cmd/typoglyph CLI wraps the engine with stdin/file/argument input,
// encoding conversion, preset selection and a token-stream debug view.
package typoglyph
