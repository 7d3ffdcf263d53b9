// Package format renders record collections into interchange formats.
// Records are plain structs; their json tags decide key names, key order
// and which fields are scalar enough to survive flattening into CSV.
package format

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind names an output format
type Kind string

const (
	KindJSON Kind = "json"
	KindCSV  Kind = "csv"
	KindXML  Kind = "xml"
	KindYAML Kind = "yaml"

	// KindJSONLines is produced by the streaming exporter only; the
	// buffered Format rejects it.
	KindJSONLines Kind = "jsonl"
)

// ParseKind normalizes a user-supplied format name
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindJSON, KindCSV, KindXML, KindYAML, KindJSONLines:
		return k, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", s)
	}
}

// Metadata names the XML wrapper elements
type Metadata struct {
	RootName string
	ItemName string
}

func (m *Metadata) withDefaults() Metadata {
	meta := Metadata{RootName: "data", ItemName: "item"}
	if m != nil {
		if m.RootName != "" {
			meta.RootName = m.RootName
		}
		if m.ItemName != "" {
			meta.ItemName = m.ItemName
		}
	}
	return meta
}

// Options tunes rendering. Pretty applies to JSON and XML; Delimiter and
// Headers to CSV.
type Options struct {
	Pretty    bool
	Delimiter rune
	Headers   bool
}

// DefaultOptions returns comma-delimited CSV with a header row
func DefaultOptions() Options {
	return Options{Delimiter: ',', Headers: true}
}

// Format renders records as a single string in the requested kind
func Format[T any](records []T, kind Kind, meta *Metadata, opts *Options) (string, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
		if o.Delimiter == 0 {
			o.Delimiter = ','
		}
	}

	switch kind {
	case KindJSON:
		return formatJSON(records, o.Pretty)
	case KindCSV:
		return formatCSV(records, o), nil
	case KindXML:
		return formatXML(records, meta.withDefaults(), o.Pretty)
	case KindYAML:
		return formatYAML(records)
	default:
		return "", fmt.Errorf("unsupported format: %s", kind)
	}
}

func formatJSON[T any](records []T, pretty bool) (string, error) {
	if len(records) == 0 {
		return "[]", nil
	}
	var (
		raw []byte
		err error
	)
	if pretty {
		raw, err = json.MarshalIndent(records, "", "  ")
	} else {
		raw, err = json.Marshal(records)
	}
	if err != nil {
		return "", fmt.Errorf("failed to encode json: %w", err)
	}
	return string(raw), nil
}
