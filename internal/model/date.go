package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// dateLayout is the wire and storage format for calendar dates.
const dateLayout = "2006-01-02"

// DateOnly is a calendar day with no time component. It marshals as
// "YYYY-MM-DD", maps to a SQL DATE column, and is always anchored at
// UTC midnight so the same date string buckets the same policies
// regardless of the caller's timezone.
type DateOnly struct {
	t time.Time
}

// NewDate builds a DateOnly from year, month and day.
func NewDate(year int, month time.Month, day int) DateOnly {
	return DateOnly{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates an instant to its calendar day in UTC.
func DateOf(t time.Time) DateOnly {
	y, m, d := t.UTC().Date()
	return NewDate(y, m, d)
}

// Today returns the current calendar day in UTC.
func Today() DateOnly {
	return DateOf(time.Now())
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (DateOnly, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return DateOnly{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return DateOnly{t: t}, nil
}

// Time returns the day as UTC midnight.
func (d DateOnly) Time() time.Time { return d.t }

// IsZero reports whether the date is unset.
func (d DateOnly) IsZero() bool { return d.t.IsZero() }

// Equal reports calendar-day equality.
func (d DateOnly) Equal(other DateOnly) bool { return d.t.Equal(other.t) }

// Before reports whether d is an earlier calendar day than other.
func (d DateOnly) Before(other DateOnly) bool { return d.t.Before(other.t) }

// After reports whether d is a later calendar day than other.
func (d DateOnly) After(other DateOnly) bool { return d.t.After(other.t) }

// AddDays returns the date shifted by n calendar days.
func (d DateOnly) AddDays(n int) DateOnly { return DateOnly{t: d.t.AddDate(0, 0, n)} }

// Year returns the calendar year.
func (d DateOnly) Year() int { return d.t.Year() }

// Month returns the calendar month.
func (d DateOnly) Month() time.Month { return d.t.Month() }

// Day returns the day of month.
func (d DateOnly) Day() int { return d.t.Day() }

// Weekday returns the day of week.
func (d DateOnly) Weekday() time.Weekday { return d.t.Weekday() }

// String formats the date as YYYY-MM-DD.
func (d DateOnly) String() string { return d.t.Format(dateLayout) }

// MarshalJSON implements json.Marshaler.
func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler. It also accepts full RFC 3339
// timestamps and keeps only the UTC calendar day, since older clients sent
// instants instead of dates.
func (d *DateOnly) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = DateOnly{}
		return nil
	}
	if parsed, err := ParseDate(s); err == nil {
		*d = parsed
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	*d = DateOf(t)
	return nil
}

// Value implements driver.Valuer for DATE columns.
func (d DateOnly) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.t, nil
}

// Scan implements sql.Scanner.
func (d *DateOnly) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = DateOnly{}
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into DateOnly", value)
	}
}

// GormDataType tells GORM to use a DATE column.
func (DateOnly) GormDataType() string { return "date" }
