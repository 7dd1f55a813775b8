package document

import (
	"math"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

var yamlLineRe = regexp.MustCompile(`line (\d+):`)

// parseYAML decodes a YAML buffer through the yaml.Node tree so mapping
// entry order survives. JSON input also parses here since YAML is a
// superset, but declared-JSON buffers take the strict path instead.
func parseYAML(text string) (*Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal([]byte(text), &root); err != nil {
		return nil, yamlParseError(err)
	}

	// An empty buffer decodes to a zero node; treat it as null, which is
	// what YAML defines for an empty document.
	if root.Kind == 0 || len(root.Content) == 0 {
		return Null(), nil
	}

	return convertYAMLNode(root.Content[0], 1)
}

func convertYAMLNode(node *yaml.Node, depth int) (*Value, error) {
	if depth > maxNestingDepth {
		return nil, NewParseError(FormatYAML, "document too deeply nested", node.Line, node.Column)
	}

	switch node.Kind {
	case yaml.AliasNode:
		return convertYAMLNode(node.Alias, depth+1)
	case yaml.ScalarNode:
		return convertYAMLScalar(node)
	case yaml.SequenceNode:
		items := make([]*Value, len(node.Content))
		for i, child := range node.Content {
			v, err := convertYAMLNode(child, depth+1)
			if err != nil {
				return nil, err
			}
			items[i] = v
		}
		return Array(items...), nil
	case yaml.MappingNode:
		entries := make([]Entry, 0, len(node.Content)/2)
		seen := make(map[string]bool, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode := node.Content[i]
			if keyNode.Kind != yaml.ScalarNode {
				return nil, NewParseError(FormatYAML, "non-scalar mapping key", keyNode.Line, keyNode.Column)
			}
			if seen[keyNode.Value] {
				return nil, NewParseError(FormatYAML, "duplicate mapping key "+strconv.Quote(keyNode.Value), keyNode.Line, keyNode.Column)
			}
			seen[keyNode.Value] = true

			value, err := convertYAMLNode(node.Content[i+1], depth+1)
			if err != nil {
				return nil, err
			}
			entries = append(entries, Entry{Key: keyNode.Value, Value: value})
		}
		return Object(entries...), nil
	default:
		return nil, NewParseError(FormatYAML, "unsupported node kind", node.Line, node.Column)
	}
}

// convertYAMLScalar maps a resolved scalar node onto the Value union
// using the node's resolved tag.
func convertYAMLScalar(node *yaml.Node) (*Value, error) {
	switch node.Tag {
	case "!!null":
		return Null(), nil
	case "!!bool":
		b, err := strconv.ParseBool(node.Value)
		if err != nil {
			// YAML 1.1 spellings like "yes"/"on" resolve to !!bool but do
			// not parse with strconv; fall back to string form.
			return String(node.Value), nil
		}
		return Bool(b), nil
	case "!!int":
		n, err := strconv.ParseInt(node.Value, 0, 64)
		if err != nil {
			return String(node.Value), nil
		}
		return Number(float64(n)), nil
	case "!!float":
		return Number(parseYAMLFloat(node.Value)), nil
	default:
		// Strings, timestamps, and any unresolved tag keep scalar text.
		return String(node.Value), nil
	}
}

func parseYAMLFloat(text string) float64 {
	switch text {
	case ".inf", "+.inf", ".Inf", "+.Inf":
		return math.Inf(1)
	case "-.inf", "-.Inf":
		return math.Inf(-1)
	case ".nan", ".NaN":
		return math.NaN()
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0
	}
	return f
}

// yamlParseError extracts the line number yaml.v3 embeds in its error
// strings; the library does not expose positions structurally.
func yamlParseError(err error) *ParseError {
	message := err.Error()
	line := 0
	if m := yamlLineRe.FindStringSubmatch(message); m != nil {
		line, _ = strconv.Atoi(m[1])
	}
	return NewParseError(FormatYAML, message, line, 0)
}
