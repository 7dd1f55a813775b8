package document

import (
	"strings"

	"github.com/go-json-experiment/json/jsontext"
)

// Serialize renders a Value as JSON text with the given indent width,
// preserving object entry order. Indent 0 yields compact output. JSON is
// the canonical textual form for both JSON and YAML sources, so callers
// never have to worry about YAML's multiple encodings of one value.
func Serialize(v *Value, indent int) (string, error) {
	var sb strings.Builder

	var opts []jsontext.Options
	if indent > 0 {
		opts = append(opts, jsontext.WithIndent(strings.Repeat(" ", indent)))
	}
	enc := jsontext.NewEncoder(&sb, opts...)

	if err := encodeValue(enc, v); err != nil {
		return "", err
	}

	// The encoder terminates the top-level value with a newline.
	return strings.TrimSuffix(sb.String(), "\n"), nil
}

func encodeValue(enc *jsontext.Encoder, v *Value) error {
	switch v.Kind() {
	case KindNull:
		return enc.WriteToken(jsontext.Null)
	case KindBool:
		return enc.WriteToken(jsontext.Bool(v.BoolValue()))
	case KindNumber:
		return enc.WriteToken(jsontext.Float(v.NumberValue()))
	case KindString:
		return enc.WriteToken(jsontext.String(v.StringValue()))
	case KindArray:
		if err := enc.WriteToken(jsontext.ArrayStart); err != nil {
			return err
		}
		for _, item := range v.Items() {
			if err := encodeValue(enc, item); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.ArrayEnd)
	case KindObject:
		if err := enc.WriteToken(jsontext.ObjectStart); err != nil {
			return err
		}
		for _, e := range v.Entries() {
			if err := enc.WriteToken(jsontext.String(e.Key)); err != nil {
				return err
			}
			if err := encodeValue(enc, e.Value); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.ObjectEnd)
	default:
		return NewParseError(FormatJSON, "cannot serialize unknown value kind", 0, 0)
	}
}
