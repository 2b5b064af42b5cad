package dbtime

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Layout is the wire format for every date-time in the API: local wall clock,
// second precision, no zone.
const Layout = "2006-01-02 15:04:05"

// DateTime wraps time.Time with the API wire format.
type DateTime struct{ time.Time }

func From(t time.Time) DateTime { return DateTime{Time: t} }

// FromPtr keeps nil as nil (rendered as JSON null).
func FromPtr(t *time.Time) *DateTime {
	if t == nil {
		return nil
	}
	d := From(*t)
	return &d
}

// Now is the service clock, truncated to the wire precision.
func Now() time.Time { return time.Now().Truncate(time.Second) }

func Parse(s string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date-time %q, expected %s", s, Layout)
	}
	return t, nil
}

func Format(t time.Time) string { return t.In(time.Local).Format(Layout) }

func (d DateTime) String() string { return Format(d.Time) }

func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(Format(d.Time))), nil
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		d.Time = time.Time{}
		return nil
	}
	raw, err := strconv.Unquote(s)
	if err != nil {
		return fmt.Errorf("date-time must be a string: %w", err)
	}
	t, err := Parse(raw)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}
