package document

import (
	"strings"

	"github.com/aleister1102/structdiff/internal/common/errorwrapper"
)

// Format identifies the textual encoding of an input buffer.
type Format int

const (
	// FormatAuto lets the parser sniff the encoding.
	FormatAuto Format = iota
	// FormatJSON is strict JSON.
	FormatJSON
	// FormatYAML is YAML 1.2 (a superset of JSON).
	FormatYAML
)

// String returns the lowercase format name.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "auto"
	}
}

// ParseFormatName parses a user-supplied format name.
func ParseFormatName(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return FormatAuto, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatAuto, errorwrapper.NewValidationError("format", name, "must be one of: auto, json, yaml")
	}
}

// DetectFormat sniffs the likely encoding of a buffer. Buffers opening
// with a JSON container or quoted string are treated as JSON; everything
// else is treated as YAML, which also covers bare scalars since YAML
// parses them to the same value JSON would.
func DetectFormat(text string) Format {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return FormatJSON
	}
	switch trimmed[0] {
	case '{', '[', '"':
		return FormatJSON
	default:
		return FormatYAML
	}
}
