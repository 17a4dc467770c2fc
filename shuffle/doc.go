// Package shuffle implements the Fisher–Yates permutation engine used to
// rearrange word interiors.
//
// What:
//
//   - Runes / Ints — uniform shuffles of the respective element types.
//     The input slice is never mutated; a freshly allocated permutation is
//     returned.
//
// Why:
//
//   - Scrambling is a permutation, never substitution: shuffled output must
//     carry exactly the input's elements, only reordered.
//   - Index selection draws through a prng.Source, so the permutation is as
//     deterministic (or as ambient) as the source that feeds it.
//
// Semantics:
//
//   - Iteration runs from the last index down to 1; at step i the partner
//     index is j = ⌊draw · (i+1)⌋ with 0 ≤ j ≤ i, and elements i and j are
//     exchanged. Uniform draws yield a uniform permutation.
//   - Length ≤ 1 returns a copy equal to the input.
//   - A nil source falls back to a fixed deterministic stream, keeping the
//     functions total and replayable even when misused.
//
// Complexity:
//
//   - O(n) time, O(n) space for the returned slice.
//
// Errors:
//
//   - None. Both functions are total over all inputs.
package shuffle
