package format

import "strings"

// CSVEscape quotes a value when it contains the delimiter, a double quote
// or a line break, doubling any internal quotes
func CSVEscape(value string, delimiter rune) string {
	if strings.ContainsRune(value, delimiter) || strings.ContainsAny(value, "\"\n\r") {
		return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
	}
	return value
}

// CSVRow renders one delimiter-separated line from extracted values
func CSVRow(values []string, delimiter rune) string {
	escaped := make([]string, len(values))
	for i, v := range values {
		escaped[i] = CSVEscape(v, delimiter)
	}
	return strings.Join(escaped, string(delimiter))
}

// formatCSV flattens records over the union of their scalar keys, in
// first-seen order. Lines are joined without a trailing newline; an empty
// collection renders as an empty string.
func formatCSV[T any](records []T, opts Options) string {
	if len(records) == 0 {
		return ""
	}

	var keys []string
	seen := make(map[string]bool)
	for i := range records {
		for _, k := range ScalarKeys(records[i]) {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}

	lines := make([]string, 0, len(records)+1)
	if opts.Headers {
		// keys come from json tags and never need escaping
		lines = append(lines, strings.Join(keys, string(opts.Delimiter)))
	}
	for i := range records {
		lines = append(lines, CSVRow(ScalarValues(records[i], keys), opts.Delimiter))
	}
	return strings.Join(lines, "\n")
}
