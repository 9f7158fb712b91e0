package ledger

import (
	"testing"

	"github.com/ceugb69-B/yen-tracker2/internal/core"
)

func TestNormalizeDropsMalformedRows(t *testing.T) {
	cases := []struct {
		name string
		in   Record
		keep bool
	}{
		{"well formed", Record{"Date": "2025-01-05", "Item": "Lunch", "Amount": "1200", "Category": "Food"}, true},
		{"alternate date format", Record{"Date": "2025/01/05", "Item": "Lunch", "Amount": "1200"}, true},
		{"thousands separator", Record{"Date": "2025-01-05", "Item": "Rent", "Amount": "120,000"}, true},
		{"blank row", Record{"Date": "", "Item": "", "Amount": ""}, false},
		{"missing date column", Record{"Item": "Lunch", "Amount": "1200"}, false},
		{"missing amount column", Record{"Date": "2025-01-05", "Item": "Lunch"}, false},
		{"unparsable date", Record{"Date": "last tuesday", "Item": "Lunch", "Amount": "1200"}, false},
		{"unparsable amount", Record{"Date": "2025-01-05", "Item": "Lunch", "Amount": "lots"}, false},
		{"negative amount", Record{"Date": "2025-01-05", "Item": "Refund", "Amount": "-500"}, false},
		{"zero amount kept", Record{"Date": "2025-01-05", "Item": "Freebie", "Amount": "0"}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Normalize([]Record{c.in})
			if c.keep && len(got) != 1 {
				t.Fatalf("expected row kept, got %d entries", len(got))
			}
			if !c.keep && len(got) != 0 {
				t.Fatalf("expected row dropped, got %+v", got)
			}
		})
	}
}

func TestNormalizeHeaderTolerance(t *testing.T) {
	// Column names may carry whitespace and case variation from manual edits.
	in := Record{" date ": " 2025-01-05 ", "ITEM": "Lunch", "  Amount": " 1,200 ", "category ": "food"}
	got := Normalize([]Record{in})
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	e := got[0]
	if e.Date.String() != "2025-01-05" {
		t.Errorf("date = %q", e.Date.String())
	}
	if e.Item != "Lunch" {
		t.Errorf("item = %q", e.Item)
	}
	if e.Amount.Yen != 1200 {
		t.Errorf("amount = %d", e.Amount.Yen)
	}
	if e.Category != core.CategoryFood {
		t.Errorf("category = %q, want canonical Food", e.Category)
	}
}

func TestNormalizeKeepsUnknownCategories(t *testing.T) {
	in := Record{"Date": "2025-01-05", "Item": "Souvenir", "Amount": "3000", "Category": "Omiyage"}
	got := Normalize([]Record{in})
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	if got[0].Category != "Omiyage" {
		t.Errorf("unknown category must survive verbatim, got %q", got[0].Category)
	}
}

func TestNormalizeOutputInvariants(t *testing.T) {
	records := []Record{
		{"Date": "2025-01-05", "Item": "Lunch", "Amount": "1200"},
		{"Date": "garbage", "Item": "x", "Amount": "100"},
		{"Date": "2025-01-06", "Item": "Coffee", "Amount": "nope"},
		{},
		{"Date": "2025-02-01", "Item": "Gas", "Amount": "5,000"},
	}
	entries := Normalize(records)
	if len(entries) > len(records) {
		t.Fatalf("output longer than input: %d > %d", len(entries), len(records))
	}
	for _, e := range entries {
		if e.Date.IsZero() {
			t.Errorf("entry with zero date survived: %+v", e)
		}
		if e.Amount.Yen < 0 {
			t.Errorf("entry with negative amount survived: %+v", e)
		}
	}
	if len(entries) != 2 {
		t.Errorf("expected 2 surviving entries, got %d", len(entries))
	}
}
