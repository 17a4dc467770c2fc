package main

import (
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/katalvlaran/typoglyph/token"
	"github.com/mattn/go-isatty"
)

// highlightChanges rebuilds the output with every changed content token
// colorized. The engine preserves token structure, so input and output
// split into streams of equal shape; any misalignment falls back to the
// plain output.
func highlightChanges(input, output string) string {
	inToks := token.Split(input)
	outToks := token.Split(output)
	if len(inToks) != len(outToks) {
		return output
	}

	var b strings.Builder
	b.Grow(len(output))
	for i, out := range outToks {
		if out.Kind == token.Content && out.Text != inToks[i].Text {
			b.WriteString(text.FgHiYellow.Sprint(out.Text))
			continue
		}
		b.WriteString(out.Text)
	}

	return b.String()
}

// countChanged reports how many content tokens differ between the two
// streams.
func countChanged(in, out []token.Token) int {
	if len(in) != len(out) {
		return 0
	}

	var n int
	for i, tok := range out {
		if tok.Kind == token.Content && tok.Text != in[i].Text {
			n++
		}
	}

	return n
}

// shouldColorize reports whether writer is a real terminal.
func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
