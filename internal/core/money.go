// Package core holds the domain types of the ledger: dates, yen amounts,
// categories, entries, and draft suggestions.
//
// Amounts are whole yen. There is no fractional sub-unit, so money never
// touches floating point outside of display formatting.
package core

import (
	"errors"
	"strconv"
	"strings"
)

// Money is an amount in whole yen.
type Money struct {
	Yen int64
}

// ErrInvalidAmount signals an empty, non-numeric, or negative amount.
var ErrInvalidAmount = errors.New("invalid amount")

// ParseYen converts a raw amount string to whole yen. Thousands separators
// and surrounding whitespace are stripped ("1,200" -> 1200). A trailing
// ".0"-style decimal part is accepted when it is all zeros, since the Sheets
// API occasionally renders integers that way. Negative values are rejected.
func ParseYen(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, ErrInvalidAmount
	}
	if i := strings.IndexByte(s, '.'); i >= 0 {
		frac := s[i+1:]
		if strings.Trim(frac, "0") != "" {
			return 0, ErrInvalidAmount
		}
		s = s[:i]
		if s == "" {
			s = "0"
		}
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if v < 0 {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

// Validate rejects non-positive amounts. Zero is representable on ingested
// historical rows but is never accepted on submit.
func (m Money) Validate() error {
	if m.Yen <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// String renders the amount with thousands separators for display.
func (m Money) String() string {
	s := strconv.FormatInt(m.Yen, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(s[i])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
