package document

import (
	"io"
	"strings"

	"github.com/go-json-experiment/json/jsontext"
)

// maxNestingDepth bounds parser recursion. Nesting depth is user
// controlled, so without a ceiling a pathological input could exhaust
// the goroutine stack.
const maxNestingDepth = 10000

// Parse decodes a text buffer into a Value. The declared format wins;
// FormatAuto sniffs via DetectFormat. Object entry order is preserved
// from the source. On failure the returned error is a *ParseError.
func Parse(text string, format Format) (*Value, error) {
	if format == FormatAuto {
		format = DetectFormat(text)
	}
	switch format {
	case FormatYAML:
		return parseYAML(text)
	default:
		return parseJSON(text)
	}
}

// parseJSON decodes strict JSON through a token stream so object entry
// order survives. Duplicate object keys are rejected by the decoder.
func parseJSON(text string) (*Value, error) {
	dec := jsontext.NewDecoder(strings.NewReader(text))

	v, err := decodeJSONValue(dec, 1)
	if err != nil {
		return nil, jsonParseError(text, dec, err)
	}

	// Trailing garbage after the top-level value is an error.
	if _, err := dec.ReadToken(); err != io.EOF {
		return nil, jsonParseError(text, dec, NewParseError(FormatJSON, "unexpected data after top-level value", 0, 0))
	}

	return v, nil
}

func decodeJSONValue(dec *jsontext.Decoder, depth int) (*Value, error) {
	if depth > maxNestingDepth {
		return nil, NewParseError(FormatJSON, "document too deeply nested", 0, 0)
	}

	tok, err := dec.ReadToken()
	if err != nil {
		return nil, err
	}

	switch tok.Kind() {
	case 'n':
		return Null(), nil
	case 't', 'f':
		return Bool(tok.Bool()), nil
	case '"':
		return String(tok.String()), nil
	case '0':
		return Number(tok.Float()), nil
	case '[':
		var items []*Value
		for dec.PeekKind() != ']' {
			item, err := decodeJSONValue(dec, depth+1)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		return Array(items...), nil
	case '{':
		var entries []Entry
		for dec.PeekKind() != '}' {
			keyTok, err := dec.ReadToken()
			if err != nil {
				return nil, err
			}
			// The token is only valid until the next decoder call, so
			// extract the key before recursing.
			key := keyTok.String()
			value, err := decodeJSONValue(dec, depth+1)
			if err != nil {
				return nil, err
			}
			entries = append(entries, Entry{Key: key, Value: value})
		}
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		return Object(entries...), nil
	default:
		return nil, NewParseError(FormatJSON, "unexpected token "+tok.String(), 0, 0)
	}
}

// jsonParseError normalizes decoder failures into a ParseError carrying
// the line/column derived from the decoder's input offset.
func jsonParseError(text string, dec *jsontext.Decoder, err error) *ParseError {
	if pe, ok := err.(*ParseError); ok {
		if pe.Line == 0 {
			pe.Line, pe.Column = lineColumn(text, int(dec.InputOffset()))
		}
		return pe
	}

	message := err.Error()
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		message = "unexpected end of input"
	}
	line, column := lineColumn(text, int(dec.InputOffset()))
	return NewParseError(FormatJSON, message, line, column)
}

// lineColumn converts a byte offset into 1-based line and column numbers.
func lineColumn(text string, offset int) (int, int) {
	if offset > len(text) {
		offset = len(text)
	}
	line := 1
	lineStart := 0
	for i := 0; i < offset; i++ {
		if text[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return line, offset - lineStart + 1
}
