// Package ledger turns raw spreadsheet rows into a canonical ledger and
// computes the period-scoped figures the budget view is built from.
package ledger

import "strings"

// Record is one raw row from the backing store: an untyped mapping from
// column name to cell text. No schema is enforced at the store boundary;
// everything the engine relies on is checked here.
type Record map[string]string

// Column names as they appear in the sheet header row.
const (
	ColDate        = "Date"
	ColItem        = "Item"
	ColAmount      = "Amount"
	ColCategory    = "Category"
	ColDescription = "Description"
)

// Header is the canonical column order used when appending or rewriting
// rows: [date, item, amount, category, description].
func Header() []string {
	return []string{ColDate, ColItem, ColAmount, ColCategory, ColDescription}
}

// Field looks up a column by name, tolerating leading/trailing whitespace
// and case variation in the stored header. The value is returned trimmed.
func (r Record) Field(name string) (string, bool) {
	for k, v := range r {
		if strings.EqualFold(strings.TrimSpace(k), name) {
			return strings.TrimSpace(v), true
		}
	}
	return "", false
}
