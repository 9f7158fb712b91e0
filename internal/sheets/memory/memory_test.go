package memory

import (
	"context"
	"testing"

	"github.com/ceugb69-B/yen-tracker2/internal/core"
	"github.com/ceugb69-B/yen-tracker2/internal/ledger"
)

func TestAppendAndReadAll(t *testing.T) {
	ctx := context.Background()
	s := New()

	e := core.Entry{
		Date:     core.NewDate(2025, 1, 5),
		Item:     "Lunch",
		Amount:   core.Money{Yen: 1200},
		Category: core.CategoryFood,
	}
	ref, err := s.AppendRow(ctx, e)
	if err != nil {
		t.Fatalf("AppendRow: %v", err)
	}
	if ref == "" {
		t.Error("expected a row reference")
	}

	records, err := s.ReadAll(ctx)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	entries := ledger.Normalize(records)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Item != "Lunch" || entries[0].Amount.Yen != 1200 {
		t.Errorf("round-tripped entry = %+v", entries[0])
	}
}

func TestAppendRejectsInvalid(t *testing.T) {
	s := New()
	_, err := s.AppendRow(context.Background(), core.Entry{Date: core.NewDate(2025, 1, 5)})
	if err == nil {
		t.Error("invalid entry should not append")
	}
	if s.Len() != 0 {
		t.Errorf("store should stay empty, has %d rows", s.Len())
	}
}

func TestBudgetCell(t *testing.T) {
	ctx := context.Background()
	s := New()

	cell, err := s.ReadBudgetCell(ctx)
	if err != nil {
		t.Fatalf("ReadBudgetCell: %v", err)
	}
	if cell != "" {
		t.Errorf("fresh store budget cell = %q, want empty", cell)
	}

	if err := s.WriteBudgetCell(ctx, 250000); err != nil {
		t.Fatalf("WriteBudgetCell: %v", err)
	}
	cell, err = s.ReadBudgetCell(ctx)
	if err != nil {
		t.Fatalf("ReadBudgetCell: %v", err)
	}
	if cell != "250000" {
		t.Errorf("budget cell = %q, want 250000", cell)
	}
}

func TestSeedPreservesMessyRows(t *testing.T) {
	s := New()
	s.Seed([]string{" date ", "Item", "AMOUNT", "Category"}, [][]string{
		{"2025-01-05", "Lunch", "1,200", "food"},
		{"", "", "", ""},
		{"not a date", "x", "100", "Food"},
	})

	records, err := s.ReadAll(context.Background())
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("raw reads must not filter, got %d records", len(records))
	}
	entries := ledger.Normalize(records)
	if len(entries) != 1 {
		t.Fatalf("expected 1 normalized entry, got %d", len(entries))
	}
}
