// Package preset - definitions and TOML decoding.
//
// A Definition is deliberately partial: every field is a pointer, and only
// set fields produce option setters, so a preset composes with the engine
// defaults (and with per-call overrides) instead of replacing them.
package preset

import (
	"fmt"
	"os"

	"github.com/katalvlaran/typoglyph/scramble"
	"github.com/pelletier/go-toml/v2"
)

// Definition is one named option bundle. Nil fields are "not set" and keep
// the engine default.
type Definition struct {
	// MinLength is the minimum rune length of a word's letter core.
	MinLength *int `toml:"min_length"`

	// Seed selects deterministic mode when set.
	Seed *int64 `toml:"seed"`

	// PreserveCase toggles positional case reattachment.
	PreserveCase *bool `toml:"preserve_case"`

	// Probability is the independent per-word scramble chance.
	Probability *float64 `toml:"probability"`
}

// Options turns the set fields into scramble setters, in a stable order.
// Unset fields contribute nothing, so appending per-call overrides after
// these setters yields the usual last-writer-wins merge.
func (d Definition) Options() []scramble.Option {
	var opts []scramble.Option
	if d.MinLength != nil {
		opts = append(opts, scramble.WithMinLength(*d.MinLength))
	}
	if d.Seed != nil {
		opts = append(opts, scramble.WithSeed(*d.Seed))
	}
	if d.PreserveCase != nil {
		opts = append(opts, scramble.WithPreserveCase(*d.PreserveCase))
	}
	if d.Probability != nil {
		opts = append(opts, scramble.WithProbability(*d.Probability))
	}

	return opts
}

// File is a decoded presets document.
type File struct {
	// DefaultPreset names the preset to use when the caller names none.
	DefaultPreset string `toml:"default_preset"`

	// Presets maps preset names to their definitions.
	Presets map[string]Definition `toml:"presets"`
}

// Parse decodes a TOML presets document. Unknown keys are ignored; only
// syntactically broken input fails, wrapped around ErrMalformedFile.
func Parse(data []byte) (File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("%w: %v", ErrMalformedFile, err)
	}

	return f, nil
}

// Load reads and decodes a presets file from path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}

	return Parse(data)
}
