// Package fields splits delimited records, as a subject for sequence matching.
package fields

import "strings"

// Split splits a comma-separated record into trimmed fields.
func Split(record string) []string {
	if record == "" {
		return nil
	}

	parts := strings.Split(record, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}

	return parts
}
