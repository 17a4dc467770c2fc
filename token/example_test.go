package token_test

import (
	"fmt"

	"github.com/katalvlaran/typoglyph/token"
)

// ExampleSplit partitions a line into alternating runs; nothing is lost,
// so the runs concatenate back to the input.
func ExampleSplit() {
	for _, tok := range token.Split("hello  world!") {
		fmt.Printf("%-10s %q\n", tok.Kind, tok.Text)
	}

	// Output:
	// Content    "hello"
	// Whitespace "  "
	// Content    "world!"
}

// ExampleClassify separates a token's punctuation shell from its letter
// core; only the core is eligible for scrambling.
func ExampleClassify() {
	seg := token.Classify("(hello!)")
	fmt.Printf("prefix=%q core=%q suffix=%q len=%d\n", seg.Prefix, seg.Core, seg.Suffix, seg.CoreLen())

	// Output:
	// prefix="(" core="hello" suffix="!)" len=5
}
