package server

import (
	"strings"
	"time"
)

// parseOptionalDate accepts either RFC 3339 or a bare calendar date.
// An empty value returns nil with no error.
func parseOptionalDate(value string) (*time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, trimmed); err == nil {
		t = t.UTC()
		return &t, nil
	}

	t, err := time.Parse("2006-01-02", trimmed)
	if err != nil {
		return nil, err
	}
	t = t.UTC()
	return &t, nil
}
