package repository

import (
	"database/sql"
	"fmt"
	"time"
)

// ParseTime parses a timestamp in "2006-01-02", SQLite DATETIME or RFC3339
// format. All results are normalized to UTC.
func ParseTime(str string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", "2006-01-02 15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, str); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("failed to parse date: %q", str)
}

// parseNullTime parses an optional timestamp column into *time.Time.
// Returns nil for NULL values.
func parseNullTime(ns sql.NullString) (*time.Time, error) {
	if !ns.Valid || ns.String == "" {
		return nil, nil
	}
	t, err := ParseTime(ns.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
