package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// splitFields splits a compound payload on ';' and trims each field.
func splitFields(payload string) []string {
	parts := strings.Split(payload, ";")
	fields := make([]string, 0, len(parts))
	for _, part := range parts {
		fields = append(fields, strings.TrimSpace(part))
	}
	return fields
}

// parseID parses a positive record id from the payload.
func parseID(payload string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(payload))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("not a positive number: %q", payload)
	}
	return id, nil
}
