// Command typoglyph scrambles the interior letters of words while keeping
// the first and last letter in place, leaving text approximately readable.
package main

import (
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
