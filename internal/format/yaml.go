package format

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// formatYAML renders records as a block sequence of mappings, preserving
// field declaration order via the node API. Object-valued fields become
// JSON-text scalars; nil values render as null.
func formatYAML[T any](records []T) (string, error) {
	if len(records) == 0 {
		return "[]\n", nil
	}

	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for i := range records {
		mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, f := range recordFields(records[i]) {
			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.name}
			var val yaml.Node
			switch {
			case f.value == nil:
				val = yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
			case f.isObject:
				raw, err := json.Marshal(f.value)
				if err != nil {
					return "", fmt.Errorf("failed to encode field %s: %w", f.name, err)
				}
				val = yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(raw)}
			default:
				if err := val.Encode(f.value); err != nil {
					return "", fmt.Errorf("failed to encode field %s: %w", f.name, err)
				}
			}
			mapping.Content = append(mapping.Content, key, &val)
		}
		seq.Content = append(seq.Content, mapping)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(seq); err != nil {
		return "", fmt.Errorf("failed to encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("failed to encode yaml: %w", err)
	}
	return buf.String(), nil
}
