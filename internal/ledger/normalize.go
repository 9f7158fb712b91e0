package ledger

import (
	"github.com/ceugb69-B/yen-tracker2/internal/core"
)

// Normalize coerces raw rows into typed entries. Rows that are missing a
// date or amount column, or whose date or amount does not parse, are dropped
// rather than surfaced: blank trailing rows and historically messy cells are
// expected from the backing store, and the ledger must stay usable around
// them. Dropping (not zero-filling) malformed amounts is deliberate and
// applied uniformly.
//
// Normalize is a pure function of its input and does not sort; chronological
// ordering is the aggregator's concern.
func Normalize(records []Record) []core.Entry {
	entries := make([]core.Entry, 0, len(records))
	for _, r := range records {
		e, ok := normalizeOne(r)
		if !ok {
			continue
		}
		entries = append(entries, e)
	}
	return entries
}

func normalizeOne(r Record) (core.Entry, bool) {
	rawDate, ok := r.Field(ColDate)
	if !ok {
		return core.Entry{}, false
	}
	date, err := core.ParseDate(rawDate)
	if err != nil {
		return core.Entry{}, false
	}

	rawAmount, ok := r.Field(ColAmount)
	if !ok {
		return core.Entry{}, false
	}
	yen, err := core.ParseYen(rawAmount)
	if err != nil {
		return core.Entry{}, false
	}

	item, _ := r.Field(ColItem)
	category, _ := r.Field(ColCategory)
	description, _ := r.Field(ColDescription)

	return core.Entry{
		Date:   date,
		Item:   item,
		Amount: core.Money{Yen: yen},
		// Unknown labels are kept verbatim; Canonical only fixes casing
		// of the known set.
		Category:    core.Category(category).Canonical(),
		Description: description,
	}, true
}
