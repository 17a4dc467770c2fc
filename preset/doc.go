// Package preset ships named option bundles for the scramble engine and
// loads user-defined ones from TOML files.
//
// What:
//
//   - Definition — a partial option record; unset fields (nil pointers)
//     fall back to the engine defaults. Options() turns the set fields
//     into scramble setters.
//   - Builtins — the embedded catalogue: "standard", "gentle", "chaos".
//   - Parse / Load — decode a TOML presets file; unrecognized keys are
//     ignored rather than rejected.
//   - Catalog — built-ins merged with file presets (file wins on name
//     collision), with lookup by name.
//
// File format:
//
//	default_preset = "gentle"
//
//	[presets.gentle]
//	min_length = 6
//	probability = 0.5
//
//	[presets.mine]
//	seed = 42
//	preserve_case = false
//
// Errors:
//
//   - Sentinels ErrUnknownPreset, ErrUnreadableFile and ErrMalformedFile,
//     wrapped with contextual detail; match with errors.Is.
package preset
