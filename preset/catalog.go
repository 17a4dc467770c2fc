// Package preset - the merged catalogue.
//
// Built-ins live in builtin.toml, embedded at build time and decoded
// through the same Parse path user files take, so the shipped catalogue and
// the file format can never drift apart.
package preset

import (
	_ "embed"
	"fmt"
	"sort"
)

//go:embed builtin.toml
var builtinTOML []byte

// Builtins returns a fresh copy of the embedded catalogue. The embedded
// document is a build-time asset; failing to decode it is a programmer
// error and panics.
func Builtins() map[string]Definition {
	f, err := Parse(builtinTOML)
	if err != nil {
		panic(fmt.Sprintf("preset: embedded builtin catalogue is broken: %v", err))
	}

	out := make(map[string]Definition, len(f.Presets))
	for name, def := range f.Presets {
		out[name] = def
	}

	return out
}

// Catalog is the lookup surface over built-ins plus any merged files.
type Catalog struct {
	defs        map[string]Definition
	defaultName string
}

// NewCatalog returns a Catalog holding the built-in presets, with
// "standard" as the default.
func NewCatalog() *Catalog {
	f, err := Parse(builtinTOML)
	if err != nil {
		panic(fmt.Sprintf("preset: embedded builtin catalogue is broken: %v", err))
	}

	return &Catalog{defs: f.Presets, defaultName: f.DefaultPreset}
}

// Merge folds a decoded file into the catalogue. File presets win over
// existing entries on name collision, and a non-empty DefaultPreset
// replaces the current default.
func (c *Catalog) Merge(f File) {
	for name, def := range f.Presets {
		c.defs[name] = def
	}
	if f.DefaultPreset != "" {
		c.defaultName = f.DefaultPreset
	}
}

// Resolve looks up a preset by name; the empty name resolves the default.
func (c *Catalog) Resolve(name string) (Definition, error) {
	if name == "" {
		name = c.defaultName
	}

	def, ok := c.defs[name]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}

	return def, nil
}

// DefaultName reports the name Resolve("") would look up.
func (c *Catalog) DefaultName() string { return c.defaultName }

// Names lists the catalogue's preset names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.defs))
	for name := range c.defs {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
