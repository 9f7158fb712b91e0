package core

import "strings"

// Draft is an AI-suggested candidate entry awaiting user confirmation. It is
// advisory only: it lives for a single submission cycle and is never
// persisted directly.
type Draft struct {
	Item     string
	Amount   int64
	Category Category
}

// DefaultDraft is what the form falls back to when the classifier is
// unavailable or its output cannot be used.
func DefaultDraft() Draft {
	return Draft{Item: "", Amount: 0, Category: DefaultCategory}
}

// Merge applies user overrides on top of the draft. A non-zero override
// always wins; the draft only fills fields the user left blank.
func (d Draft) Merge(item string, amount int64, category Category) Draft {
	out := d
	if strings.TrimSpace(item) != "" {
		out.Item = item
	}
	if amount > 0 {
		out.Amount = amount
	}
	if strings.TrimSpace(string(category)) != "" {
		out.Category = category
	}
	return out
}

// Entry turns a confirmed draft into a ledger entry dated on the given day.
func (d Draft) Entry(date Date, description string) Entry {
	return Entry{
		Date:        date,
		Item:        d.Item,
		Amount:      Money{Yen: d.Amount},
		Category:    d.Category,
		Description: description,
	}
}
