package main

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var errUnknownEncoding = errors.New("typoglyph: unknown encoding")

// resolveEncoding maps a user-facing encoding name to a text encoding.
// A nil return with nil error means UTF-8, which needs no transformation.
func resolveEncoding(name string) (encoding.Encoding, error) {
	switch normalizeEncodingName(name) {
	case "", "utf8":
		return nil, nil
	case "latin1", "iso88591":
		return charmap.ISO8859_1, nil
	case "windows1252", "cp1252":
		return charmap.Windows1252, nil
	case "utf16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), nil
	case "utf16be":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownEncoding, name)
	}
}

// normalizeEncodingName folds case and drops separators, so "UTF-8",
// "utf_8" and "utf8" all name the same encoding.
func normalizeEncodingName(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, "-", "")
	name = strings.ReplaceAll(name, "_", "")

	return name
}
