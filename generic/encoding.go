package generic

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the Map as a JSON object keeping key order.
func (m *Map) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}

		val, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, fmt.Errorf("encoding key %q: %w", k, err)
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object keeping document order.
// Nested objects become *Map, arrays become []any and numbers json.Number.
func (m *Map) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}

	*m = Map{}

	return decodeObject(dec, m)
}

func decodeObject(dec *json.Decoder, m *Map) error {
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}

		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}

		val, err := decodeValue(dec)
		if err != nil {
			return fmt.Errorf("decoding key %q: %w", key, err)
		}

		m.Set(key, val)
	}

	// closing '}'
	_, err := dec.Token()

	return err
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}

		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		nested := NewMap(0)
		if err := decodeObject(dec, nested); err != nil {
			return nil, err
		}

		return nested, nil

	case '[':
		arr := []any{}
		for dec.More() {
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}

			arr = append(arr, v)
		}

		if _, err := dec.Token(); err != nil {
			return nil, err
		}

		return arr, nil

	default:
		return nil, fmt.Errorf("unexpected delimiter %v", delim)
	}
}

// MarshalYAML encodes the Map as an ordered YAML mapping.
func (m *Map) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	if m == nil {
		return node, nil
	}

	for _, k := range m.keys {
		var val yaml.Node
		if err := val.Encode(m.values[k]); err != nil {
			return nil, fmt.Errorf("encoding key %q: %w", k, err)
		}

		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&val,
		)
	}

	return node, nil
}

// UnmarshalYAML decodes a YAML mapping keeping document order.
// Nested mappings become *Map and sequences become []any.
func (m *Map) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("expected mapping, got %v", node.Kind)
	}

	*m = Map{}

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]

		val, err := decodeYAMLValue(valNode)
		if err != nil {
			return fmt.Errorf("decoding key %q: %w", keyNode.Value, err)
		}

		m.Set(keyNode.Value, val)
	}

	return nil
}

func decodeYAMLValue(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.MappingNode:
		nested := NewMap(len(node.Content) / 2)
		if err := nested.UnmarshalYAML(node); err != nil {
			return nil, err
		}

		return nested, nil

	case yaml.SequenceNode:
		arr := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			v, err := decodeYAMLValue(item)
			if err != nil {
				return nil, err
			}

			arr = append(arr, v)
		}

		return arr, nil

	case yaml.AliasNode:
		return decodeYAMLValue(node.Alias)

	default:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, err
		}

		return v, nil
	}
}
