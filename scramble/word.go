// Package scramble - the per-word scrambler.
//
// Goals:
//   - Anchoring: the first and last rune never move; only the interior is
//     permuted, so a reader can still resolve the word.
//   - Parity: the case-preservation rule reattaches the ORIGINAL positional
//     casing pattern to the shuffled interior. This is contractual behavior
//     (case follows the position, not the letter) and must not be "fixed"
//     into case-travels-with-its-letter semantics.
package scramble

import (
	"unicode"

	"github.com/katalvlaran/typoglyph/prng"
	"github.com/katalvlaran/typoglyph/shuffle"
)

// Word scrambles the interior of word, drawing permutation indices from src.
//
// Words of rune length ≤ 3 come back unchanged: there is no interior to
// permute, or permuting one interior rune is a no-op. Otherwise the interior
// (everything between the first and last rune) is shuffled; with
// preserveCase the interior is lower-cased first and each shuffled rune is
// upper-cased exactly where the original interior rune at that position was
// uppercase.
//
// A shuffle of n interior runes consumes exactly n−1 draws from src.
//
// Complexity: O(n) in the rune length of word.
func Word(word string, src prng.Source, preserveCase bool) string {
	runes := []rune(word)
	if len(runes) <= 3 {
		return word
	}

	interior := runes[1 : len(runes)-1]

	var shuffled []rune
	if !preserveCase {
		shuffled = shuffle.Runes(interior, src)
	} else {
		lowered := make([]rune, len(interior))
		for i, r := range interior {
			lowered[i] = unicode.ToLower(r)
		}

		shuffled = shuffle.Runes(lowered, src)

		// Stamp the pre-shuffle casing pattern onto the shuffled interior.
		for i, r := range interior {
			if unicode.IsUpper(r) {
				shuffled[i] = unicode.ToUpper(shuffled[i])
			}
		}
	}

	out := make([]rune, 0, len(runes))
	out = append(out, runes[0])
	out = append(out, shuffled...)
	out = append(out, runes[len(runes)-1])

	return string(out)
}
