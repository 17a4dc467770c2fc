// Package scramble - the orchestrator.
//
// Pipeline, one bounded pass: text → tokens → probability gate → length
// filter → segment classification → interior shuffle → reassembly. Every
// token the gate or the filter rejects is emitted verbatim, so the output
// differs from the input only inside scrambled word cores.
package scramble

import (
	"strings"

	"github.com/katalvlaran/typoglyph/token"
)

// Scramble transforms text according to opts and returns the result.
//
// Stages per token:
//  1. Whitespace runs pass through verbatim.
//  2. When the probability is below 1, one gate value is drawn for every
//     content token — before any eligibility check, so the generator
//     advances identically regardless of word lengths — and a draw above
//     the probability passes the token through unchanged.
//  3. The token splits into prefix/core/suffix; a core shorter than the
//     minimum length (in runes) passes the whole token through unchanged.
//  4. Surviving cores are scrambled by Word with the invocation's source
//     and reassembled between their original prefix and suffix.
//
// Empty text returns the empty string. The function is total: no input or
// option combination makes it fail.
//
// Complexity: O(n) in the input length.
func Scramble(text string, opts ...Option) string {
	o := gatherOptions(opts...)
	src := o.drawSource()

	var b strings.Builder
	b.Grow(len(text))
	for _, tok := range token.Split(text) {
		if tok.Kind == token.Whitespace {
			b.WriteString(tok.Text)
			continue
		}

		// Gate before length check; the draw is part of the replayed stream.
		if o.probability < 1 && src.Float64() > o.probability {
			b.WriteString(tok.Text)
			continue
		}

		seg := token.Classify(tok.Text)
		if seg.CoreLen() < o.minLength {
			b.WriteString(tok.Text)
			continue
		}

		b.WriteString(seg.Prefix)
		b.WriteString(Word(seg.Core, src, o.preserveCase))
		b.WriteString(seg.Suffix)
	}

	return b.String()
}
