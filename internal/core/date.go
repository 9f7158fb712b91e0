package core

import (
	"errors"
	"strings"
	"time"
)

// Date is a calendar day without a time component. Entries always carry a
// concrete, parsed date; rows whose date cannot be parsed never become
// entries in the first place.
type Date struct {
	time.Time
}

// ErrInvalidDate signals a date string that matches none of the accepted
// layouts.
var ErrInvalidDate = errors.New("invalid date")

// dateLayouts are the formats accepted on ingest. The sheet normally holds
// ISO dates, but manually edited rows show up in a handful of variants.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006.01.02",
	"01/02/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2006-01-02 15:04:05",
}

// ParseDate parses s against the accepted layouts in order.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, ErrInvalidDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return NewDate(t.Year(), int(t.Month()), t.Day()), nil
		}
	}
	return Date{}, ErrInvalidDate
}

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

// Validate rejects the zero date.
func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// String renders the canonical serialization (YYYY-MM-DD). Dates always
// leave the engine in this fixed format so the backing store cannot
// re-interpret them as locale-dependent values.
func (d Date) String() string {
	return d.Format("2006-01-02")
}
