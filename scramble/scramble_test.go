package scramble_test

import (
	"sort"
	"strings"
	"testing"
	"unicode"

	"github.com/katalvlaran/typoglyph/scramble"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScramble_SeededValues pins exact outputs for fixed seeds; these are
// the cross-implementation parity fixtures.
func TestScramble_SeededValues(t *testing.T) {
	cases := []struct {
		text string
		seed int64
		want string
	}{
		{"hello", 42, "hlleo"},
		{"hello world", 42, "hlleo wrold"},
		{"hello world", 43, "hlleo wolrd"},
		{"hello!", 42, "hlleo!"},
		{"HELLO", 42, "HLLEO"},
		{"The quick brown fox jumps over the lazy dog.", 42, "The qciuk borwn fox jpums over the lazy dog."},
		{"Typoglycemia keeps words readable.", 42, "Tmecgiopylya kepes words rblaeade."},
		{"naïve café français", 42, "nvïae café fçanrias"},
		{"GoLang MiXeD CaSe", 42, "GnAlog MxEiD CsAe"},
		{"'quoted' (bracketed) --dashed--", 42, "'qetoud' (betekrcad) --dheasd--"},
		{"hello\tworld\n\nagain", 42, "hlleo\twrold\n\naigan"},
	}
	for _, c := range cases {
		got := scramble.Scramble(c.text, scramble.WithSeed(c.seed))
		assert.Equal(t, c.want, got, "Scramble(%q, seed=%d)", c.text, c.seed)
	}
}

// TestScramble_ContractScenarios covers the contract's concrete scenarios with
// seed 42 and defaults.
func TestScramble_ContractScenarios(t *testing.T) {
	got := scramble.Scramble("hello", scramble.WithSeed(42))
	require.Len(t, got, 5)
	assert.Equal(t, byte('h'), got[0])
	assert.Equal(t, byte('o'), got[4])

	assert.Equal(t, "", scramble.Scramble("", scramble.WithSeed(42)))
	assert.Equal(t, "ab", scramble.Scramble("ab", scramble.WithSeed(42)), "length ≤ 3 words are untouched")

	bang := scramble.Scramble("hello!", scramble.WithSeed(42))
	assert.True(t, strings.HasPrefix(bang, "h"))
	assert.True(t, strings.HasSuffix(bang, "!"))

	upper := scramble.Scramble("HELLO", scramble.WithSeed(42))
	for i, r := range upper {
		assert.True(t, unicode.IsUpper(r), "rune %d of %q must stay uppercase", i, upper)
	}
}

// TestScramble_Deterministic verifies identical arguments replay identical
// output, for several seeds and option mixes.
func TestScramble_Deterministic(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog."
	optSets := [][]scramble.Option{
		{scramble.WithSeed(42)},
		{scramble.WithSeed(0)},
		{scramble.WithSeed(-7), scramble.WithPreserveCase(false)},
		{scramble.WithSeed(42), scramble.WithProbability(0.5)},
		{scramble.WithSeed(42), scramble.WithMinLength(6)},
	}
	for i, opts := range optSets {
		a := scramble.Scramble(text, opts...)
		b := scramble.Scramble(text, opts...)
		require.Equal(t, a, b, "option set %d must replay identically", i)
	}
}

// TestScramble_SeedSensitivity verifies adjacent seeds diverge on a text
// with eligible words.
func TestScramble_SeedSensitivity(t *testing.T) {
	text := "typoglycemia demonstration sentence"
	a := scramble.Scramble(text, scramble.WithSeed(42))
	b := scramble.Scramble(text, scramble.WithSeed(43))

	assert.NotEqual(t, a, b, "seeds 42 and 43 must scramble differently here")
	assert.NotEqual(t, text, a, "seed 42 must actually scramble this text")
}

// TestScramble_ProbabilityZero verifies a zero gate lets everything through
// untouched.
func TestScramble_ProbabilityZero(t *testing.T) {
	text := "nothing here should ever change, not even slightly"
	got := scramble.Scramble(text, scramble.WithSeed(42), scramble.WithProbability(0))

	assert.Equal(t, text, got)
}

// TestScramble_ProbabilityGate pins a partial scramble: with seed 42 and
// probability 0.5 the gate (and coincidental identity shuffles) keep some
// words intact while others scramble — and the order of gate draws makes
// the result reproducible.
func TestScramble_ProbabilityGate(t *testing.T) {
	got := scramble.Scramble("hello world", scramble.WithSeed(42), scramble.WithProbability(0.5))
	assert.Equal(t, "hello wlord", got)

	got = scramble.Scramble("The quick brown fox jumps over the lazy dog.",
		scramble.WithSeed(42), scramble.WithProbability(0.5))
	assert.Equal(t, "The quick brown fox jpmus over the lzay dog.", got)
}

// TestScramble_ProbabilityAboveOne verifies values ≥ 1 behave exactly like
// the default "always scramble" (no gate draw is consumed).
func TestScramble_ProbabilityAboveOne(t *testing.T) {
	always := scramble.Scramble("hello world", scramble.WithSeed(42))
	loose := scramble.Scramble("hello world", scramble.WithSeed(42), scramble.WithProbability(1.5))

	assert.Equal(t, always, loose)
	assert.Equal(t, "hlleo wrold", loose)
}

// TestScramble_MinLength verifies the rune-length filter, including the
// degraded ≤ 0 meaning (filter always passes).
func TestScramble_MinLength(t *testing.T) {
	assert.Equal(t, "abcd", scramble.Scramble("abcd", scramble.WithSeed(42), scramble.WithMinLength(5)),
		"a 4-letter core must not pass a minimum of 5")
	assert.Equal(t, "acbd", scramble.Scramble("abcd", scramble.WithSeed(42), scramble.WithMinLength(0)),
		"minimum ≤ 0 must disable the filter")
	assert.Equal(t, "ab cd", scramble.Scramble("ab cd", scramble.WithSeed(42), scramble.WithMinLength(0)),
		"even with the filter off, length ≤ 3 words have no interior to permute")
}

// TestScramble_WhitespacePreserved verifies every whitespace run survives
// verbatim at its relative position.
func TestScramble_WhitespacePreserved(t *testing.T) {
	text := "  leading\tand  trailing newlines\r\n\n  "
	got := scramble.Scramble(text, scramble.WithSeed(42))

	require.Equal(t, len(text), len(got))
	assert.Equal(t, wsRuns(text), wsRuns(got), "whitespace runs must be untouched")
}

// TestScramble_MultisetPreserved verifies the permutation property: on
// uniform-case input the exact rune multiset survives; on mixed-case input
// the case-folded multiset survives.
func TestScramble_MultisetPreserved(t *testing.T) {
	uniform := "the quick brown fox jumps over the lazy dog"
	got := scramble.Scramble(uniform, scramble.WithSeed(42))
	assert.Equal(t, sortedRunes(uniform), sortedRunes(got), "uniform-case multiset must be exact")

	mixed := "The Quick BROWN fox JuMpS"
	got = scramble.Scramble(mixed, scramble.WithSeed(42))
	assert.Equal(t, sortedRunes(strings.ToLower(mixed)), sortedRunes(strings.ToLower(got)),
		"mixed-case multiset must match up to case")
}

// TestScramble_NoEligibleWords verifies texts without eligible words come
// back value-equal.
func TestScramble_NoEligibleWords(t *testing.T) {
	for _, text := range []string{"a bb ccc", "123 456!", "...", "\t \n"} {
		assert.Equal(t, text, scramble.Scramble(text, scramble.WithSeed(42)), "text %q has nothing to scramble", text)
	}
}

// TestScramble_InjectedSource verifies WithSource is honored in unseeded
// mode and ignored once a seed is present.
func TestScramble_InjectedSource(t *testing.T) {
	// Draws near 1 make every shuffle the identity permutation.
	high := &scriptedSource{draws: []float64{0.999999}}
	got := scramble.Scramble("hello world", scramble.WithSource(high))
	assert.Equal(t, "hello world", got, "identity draws must leave the text unchanged")
	assert.Equal(t, 4, high.next, "two 3-rune interiors must consume two draws each")

	high = &scriptedSource{draws: []float64{0.999999}}
	got = scramble.Scramble("hello world", scramble.WithSource(high), scramble.WithSeed(42))
	assert.Equal(t, "hlleo wrold", got, "seed must win over an injected source")
	assert.Zero(t, high.next, "seeded mode must not touch the injected source")
}

// wsRuns extracts the whitespace runs of s in order.
func wsRuns(s string) []string {
	var (
		runs []string
		cur  strings.Builder
	)
	for _, r := range s {
		if unicode.IsSpace(r) {
			cur.WriteRune(r)
			continue
		}
		if cur.Len() > 0 {
			runs = append(runs, cur.String())
			cur.Reset()
		}
	}
	if cur.Len() > 0 {
		runs = append(runs, cur.String())
	}

	return runs
}

// sortedRunes returns s's runes in sorted order.
func sortedRunes(s string) []rune {
	out := []rune(s)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
