// Package token - token and segment value types.
//
// This file holds the plain data carried between the tokenizer and the
// scrambler: the Kind enumeration, the Token slice of the input, and the
// Segment decomposition of a content token.
package token

// Kind classifies a token produced by Split.
type Kind int

const (
	// Whitespace marks a maximal run of unicode.IsSpace characters,
	// preserved verbatim by every downstream stage.
	Whitespace Kind = iota

	// Content marks a maximal run of non-whitespace characters; letters,
	// digits and punctuation may all mix inside one content token.
	Content
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case Whitespace:
		return "Whitespace"
	case Content:
		return "Content"
	default:
		return "Unknown"
	}
}

// Token is one immutable slice of the input text. Concatenating the Text of
// every token returned by Split, in order, reconstructs the input exactly.
type Token struct {
	// Text is the token's characters, byte-for-byte as they appeared.
	Text string

	// Kind tells whitespace runs apart from content runs.
	Kind Kind
}

// Segment is the Prefix/Core/Suffix decomposition of one content token:
// a leading run of non-letters, the maximal interior run that starts and
// ends on a letter, and a trailing run of non-letters. Any part may be
// empty; Prefix + Core + Suffix always equals the classified token.
type Segment struct {
	Prefix string
	Core   string
	Suffix string
}

// CoreLen reports the length of Core in runes. Scramble eligibility is
// measured in runes, not bytes, so multibyte letters count once.
func (s Segment) CoreLen() int {
	var n int
	for range s.Core {
		n++
	}

	return n
}
