package format

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strings"
)

// formatXML wraps each record in an item element under a single root.
// Object-valued fields are carried as JSON text inside their element; nil
// values are omitted. No XML declaration is emitted.
func formatXML[T any](records []T, meta Metadata, pretty bool) (string, error) {
	nl, pad, pad2 := "", "", ""
	if pretty {
		nl, pad, pad2 = "\n", "  ", "    "
	}

	var b strings.Builder
	b.WriteString("<" + meta.RootName + ">" + nl)
	for i := range records {
		b.WriteString(pad + "<" + meta.ItemName + ">" + nl)
		for _, f := range recordFields(records[i]) {
			if f.value == nil {
				continue
			}
			text := scalarString(f.value)
			if f.isObject {
				raw, err := json.Marshal(f.value)
				if err != nil {
					return "", fmt.Errorf("failed to encode field %s: %w", f.name, err)
				}
				text = string(raw)
			}
			b.WriteString(pad2 + "<" + f.name + ">" + escapeXML(text) + "</" + f.name + ">" + nl)
		}
		b.WriteString(pad + "</" + meta.ItemName + ">" + nl)
	}
	b.WriteString("</" + meta.RootName + ">")
	return b.String(), nil
}

func escapeXML(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
