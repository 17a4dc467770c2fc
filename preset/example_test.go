package preset_test

import (
	"fmt"

	"github.com/katalvlaran/typoglyph/preset"
	"github.com/katalvlaran/typoglyph/scramble"
)

// Example resolves a built-in preset and layers a per-call seed on top, the
// same way the CLI composes flags over a preset.
func Example() {
	c := preset.NewCatalog()

	def, err := c.Resolve("chaos")
	if err != nil {
		fmt.Println(err)
		return
	}

	opts := append(def.Options(), scramble.WithSeed(42))
	fmt.Println(scramble.Scramble("Mixed CASE words", opts...))

	// Output:
	// Mexid CASE wrdos
}
