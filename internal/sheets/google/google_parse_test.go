package google

import (
	"testing"

	"github.com/ceugb69-B/yen-tracker2/internal/core"
	"github.com/ceugb69-B/yen-tracker2/internal/ledger"
)

func TestRowsToRecords(t *testing.T) {
	values := [][]any{
		{" Date ", "Item", "Amount", "Category", "Description"},
		{"2025-01-05", "Lunch", 1200, "Food", "with Aki"},
		{"2025-01-06", "Coffee"}, // short row: padded
		{},                       // blank row survives as empty record
	}
	records := rowsToRecords(values)
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	if v, ok := records[0].Field(ledger.ColDate); !ok || v != "2025-01-05" {
		t.Errorf("date field = %q, %v", v, ok)
	}
	if v, ok := records[0].Field(ledger.ColAmount); !ok || v != "1200" {
		t.Errorf("amount field = %q, %v", v, ok)
	}
	if v, ok := records[1].Field(ledger.ColAmount); !ok || v != "" {
		t.Errorf("short row amount = %q, ok=%v, want empty string present", v, ok)
	}

	// The normalizer is the schema gate: padded and blank rows drop there.
	entries := ledger.Normalize(records)
	if len(entries) != 1 {
		t.Fatalf("expected 1 normalized entry, got %d", len(entries))
	}
	if entries[0].Item != "Lunch" || entries[0].Amount.Yen != 1200 {
		t.Errorf("entry = %+v", entries[0])
	}
}

func TestRowsToRecordsEmpty(t *testing.T) {
	if got := rowsToRecords(nil); got != nil {
		t.Errorf("nil matrix should give nil, got %v", got)
	}
	headerOnly := [][]any{{"Date", "Item", "Amount"}}
	if got := rowsToRecords(headerOnly); len(got) != 0 {
		t.Errorf("header-only sheet should give no records, got %v", got)
	}
}

func TestEntryToRow(t *testing.T) {
	e := core.Entry{
		Date:        core.NewDate(2025, 1, 5),
		Item:        "Lunch",
		Amount:      core.Money{Yen: 1200},
		Category:    core.CategoryFood,
		Description: "",
	}
	row := entryToRow(e)
	want := []any{"2025-01-05", "Lunch", "1200", "Food", ""}
	if len(row) != len(want) {
		t.Fatalf("row length = %d, want %d", len(row), len(want))
	}
	for i := range want {
		if row[i] != want[i] {
			t.Errorf("row[%d] = %v, want %v", i, row[i], want[i])
		}
	}
}
