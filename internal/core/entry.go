package core

import (
	"errors"
	"strings"
)

// Entry is one finalized expense record in the ledger.
type Entry struct {
	Date        Date
	Item        string
	Amount      Money
	Category    Category
	Description string
}

var (
	ErrEmptyItem   = errors.New("empty item")
	ErrItemTooLong = errors.New("item too long (max 200 characters)")
)

// Validate checks the submit-time invariants: a parsed date, a non-empty
// item, and a positive amount. Entries that fail validation are never
// written, not even partially.
func (e Entry) Validate() error {
	if err := e.Date.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(e.Item) == "" {
		return ErrEmptyItem
	}
	if len(e.Item) > 200 {
		return ErrItemTooLong
	}
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	return nil
}

// CategoryAmount is an amount aggregated under one category label.
type CategoryAmount struct {
	Category Category
	Amount   Money
}
