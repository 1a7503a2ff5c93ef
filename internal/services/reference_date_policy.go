package services

import (
	"errors"
	"strings"
	"time"
)

var ErrReferenceDateInvalid = errors.New("invalid reference date")

// ParseReferenceDate reads a YYYY-MM-DD date in location. An empty value
// means today.
func ParseReferenceDate(raw string, now time.Time, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.UTC
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return dateAtLocation(now, location), nil
	}

	parsed, err := time.ParseInLocation(exportDateLayout, trimmed, location)
	if err != nil {
		return time.Time{}, ErrReferenceDateInvalid
	}
	return dateAtLocation(parsed, location), nil
}
