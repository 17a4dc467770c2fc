package preset

import "errors"

var (
	// ErrUnknownPreset indicates a lookup for a name the catalogue lacks.
	ErrUnknownPreset = errors.New("preset: unknown preset name")
	// ErrUnreadableFile indicates the presets file could not be read.
	ErrUnreadableFile = errors.New("preset: cannot read presets file")
	// ErrMalformedFile indicates the presets file is not valid TOML.
	ErrMalformedFile = errors.New("preset: malformed presets file")
)
