package shared

import "time"

// ParseDate parses a calendar date. The API speaks plain YYYY-MM-DD;
// RFC3339 timestamps are accepted as a fallback for clients that send
// full instants.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if parsed, err := time.Parse("2006-01-02", value); err == nil {
		return parsed, nil
	}
	return time.Parse(time.RFC3339, value)
}
