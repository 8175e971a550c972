package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// archiveLayout is the timestamp format the archive API returns when
// timezone=auto is requested: local time at minute precision, no zone.
const archiveLayout = "2006-01-02T15:04"

// Timestamp wraps time.Time so the analyzer and reporter are decoupled
// from the archive's timestamp representation.
type Timestamp struct {
	time.Time
}

// ParseTimestamp parses an archive timestamp string. Full RFC3339
// timestamps are accepted as a fallback.
func ParseTimestamp(s string) (Timestamp, error) {
	if t, err := time.Parse(archiveLayout, s); err == nil {
		return Timestamp{t}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Timestamp{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return Timestamp{t}, nil
}

// Date returns the calendar date component as YYYY-MM-DD.
func (t Timestamp) Date() string {
	return t.Format("2006-01-02")
}

// WeekdayName returns the English weekday name, e.g. "Monday".
func (t Timestamp) WeekdayName() string {
	return t.Weekday().String()
}

// Display returns the timestamp formatted for report output.
func (t Timestamp) Display() string {
	return t.Format("2006-01-02 15:04")
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(archiveLayout))
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
