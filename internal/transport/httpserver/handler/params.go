package handler

import (
	"strings"
	"time"
)

// parseDateParam accepts "2006-01-02" and returns nil for a blank value.
func parseDateParam(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
