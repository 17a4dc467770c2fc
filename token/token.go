// Package token - text partition and segment classification.
//
// Goals:
//   - Fidelity: Split never trims, collapses, or reorders; the token texts
//     concatenate back to the input byte-for-byte.
//   - Unicode: whitespace is unicode.IsSpace and letters are
//     unicode.IsLetter, so non-ASCII text classifies correctly and
//     unassigned code points fall on the non-letter side.
//   - Totality: both functions accept every string, including the empty one.
package token

import "unicode"

// Split partitions text into maximal runs of whitespace and non-whitespace,
// in input order. Empty input yields an empty slice.
//
// Complexity: O(n) in the byte length of text.
func Split(text string) []Token {
	if text == "" {
		return nil
	}

	var (
		toks  []Token
		start int
		inWS  bool
	)
	for i, r := range text {
		ws := unicode.IsSpace(r)
		if i == 0 {
			inWS = ws
			continue
		}
		if ws != inWS {
			toks = append(toks, Token{Text: text[start:i], Kind: kindOf(inWS)})
			start, inWS = i, ws
		}
	}
	toks = append(toks, Token{Text: text[start:], Kind: kindOf(inWS)})

	return toks
}

// kindOf maps the whitespace flag of a run to its Kind.
func kindOf(ws bool) Kind {
	if ws {
		return Whitespace
	}

	return Content
}

// Classify decomposes one content token into its Segment: scan forward over
// non-letters for the Prefix, backward over non-letters for the Suffix, and
// keep the remainder as the Core. A token with no letters keeps its whole
// text in Prefix with an empty Core and Suffix.
//
// Complexity: O(len(tok)).
func Classify(tok string) Segment {
	runes := []rune(tok)

	var lo int
	for lo < len(runes) && !unicode.IsLetter(runes[lo]) {
		lo++
	}
	if lo == len(runes) {
		// No letters anywhere; the whole token is boundary material.
		return Segment{Prefix: tok}
	}

	hi := len(runes) - 1
	for hi >= 0 && !unicode.IsLetter(runes[hi]) {
		hi--
	}

	return Segment{
		Prefix: string(runes[:lo]),
		Core:   string(runes[lo : hi+1]),
		Suffix: string(runes[hi+1:]),
	}
}
