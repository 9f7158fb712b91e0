package google

import (
	"fmt"
	"strings"

	"github.com/ceugb69-B/yen-tracker2/internal/core"
	"github.com/ceugb69-B/yen-tracker2/internal/ledger"
)

// rowsToRecords converts a values matrix (as returned by the Sheets API)
// into untyped records keyed by the header row. Short rows are padded with
// empty strings; extra cells beyond the header are ignored. An empty matrix
// or a header-only sheet yields no records.
func rowsToRecords(values [][]any) []ledger.Record {
	if len(values) < 2 {
		return nil
	}
	header := toStrings(values[0])
	records := make([]ledger.Record, 0, len(values)-1)
	for _, row := range values[1:] {
		cols := toStrings(row)
		rec := make(ledger.Record, len(header))
		for i, name := range header {
			if name == "" {
				continue
			}
			if i < len(cols) {
				rec[name] = cols[i]
			} else {
				rec[name] = ""
			}
		}
		records = append(records, rec)
	}
	return records
}

// entryToRow serializes an entry in the fixed positional column order.
// Everything is written as text: amounts render without separators and the
// date in canonical YYYY-MM-DD.
func entryToRow(e core.Entry) []any {
	return []any{
		e.Date.String(),
		e.Item,
		fmt.Sprintf("%d", e.Amount.Yen),
		string(e.Category),
		e.Description,
	}
}

func toStrings(in []any) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = strings.TrimSpace(fmt.Sprint(v))
	}
	return out
}
