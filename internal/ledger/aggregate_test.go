package ledger

import (
	"testing"
	"time"

	"github.com/ceugb69-B/yen-tracker2/internal/core"
)

func entry(date string, item string, yen int64, cat core.Category) core.Entry {
	d, err := core.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return core.Entry{Date: d, Item: item, Amount: core.Money{Yen: yen}, Category: cat}
}

func TestByMonthGroupsAndOrders(t *testing.T) {
	entries := []core.Entry{
		entry("2025-02-10", "b", 200, core.CategoryFood),
		entry("2025-01-05", "a", 100, core.CategoryFood),
		entry("2025-01-20", "c", 300, core.CategoryCar),
		entry("2024-12-31", "d", 50, core.CategoryGifts),
	}
	got := ByMonth(entries)
	if len(got) != 3 {
		t.Fatalf("expected 3 periods, got %d", len(got))
	}
	wantOrder := []PeriodKey{
		{2024, time.December},
		{2025, time.January},
		{2025, time.February},
	}
	for i, w := range wantOrder {
		if got[i].Period != w {
			t.Errorf("period[%d] = %v, want %v", i, got[i].Period, w)
		}
	}
	if got[1].Total.Yen != 400 {
		t.Errorf("2025-01 total = %d, want 400", got[1].Total.Yen)
	}
}

func TestByMonthSumInvariant(t *testing.T) {
	entries := []core.Entry{
		entry("2025-01-05", "a", 100, core.CategoryFood),
		entry("2025-01-20", "b", 300, core.CategoryCar),
		entry("2025-03-01", "c", 250, core.CategoryPet),
		entry("2024-11-11", "d", 999, core.CategoryShopping),
	}
	var want, got int64
	for _, e := range entries {
		want += e.Amount.Yen
	}
	for _, mt := range ByMonth(entries) {
		got += mt.Total.Yen
	}
	if got != want {
		t.Errorf("aggregate total %d != entry sum %d", got, want)
	}
}

func TestByMonthEmptyInput(t *testing.T) {
	if got := ByMonth(nil); len(got) != 0 {
		t.Errorf("empty input should yield empty aggregate, got %+v", got)
	}
}

func TestByCategoryScopesToPeriod(t *testing.T) {
	entries := []core.Entry{
		entry("2025-01-05", "lunch", 1200, core.CategoryFood),
		entry("2025-01-08", "dinner", 1800, core.CategoryFood),
		entry("2025-01-20", "gas", 5000, core.CategoryCar),
		entry("2025-02-01", "gift", 7000, core.CategoryGifts),
	}
	got := ByCategory(entries, PeriodKey{2025, time.January})
	if len(got) != 2 {
		t.Fatalf("expected 2 categories, got %+v", got)
	}
	if got[0].Category != core.CategoryFood || got[0].Amount.Yen != 3000 {
		t.Errorf("Food total = %+v, want 3000", got[0])
	}
	if got[1].Category != core.CategoryCar || got[1].Amount.Yen != 5000 {
		t.Errorf("Car total = %+v, want 5000", got[1])
	}

	if got := ByCategory(entries, PeriodKey{2030, time.June}); len(got) != 0 {
		t.Errorf("period with no entries should be empty, got %+v", got)
	}
}

func TestPeriodTotal(t *testing.T) {
	entries := []core.Entry{
		entry("2025-01-05", "lunch", 1200, core.CategoryFood),
		entry("2025-01-20", "gas", 5000, core.CategoryCar),
		entry("2025-02-01", "gift", 7000, core.CategoryGifts),
	}
	if got := PeriodTotal(entries, PeriodKey{2025, time.January}); got.Yen != 6200 {
		t.Errorf("January total = %d, want 6200", got.Yen)
	}
	if got := PeriodTotal(nil, PeriodKey{2025, time.January}); got.Yen != 0 {
		t.Errorf("empty ledger total = %d, want 0", got.Yen)
	}
}

func TestSortByDate(t *testing.T) {
	entries := []core.Entry{
		entry("2025-01-20", "late", 1, core.CategoryFood),
		entry("2025-01-05", "early", 1, core.CategoryFood),
		entry("2025-01-05", "early2", 1, core.CategoryFood),
	}
	SortByDate(entries)
	if entries[0].Item != "early" || entries[1].Item != "early2" || entries[2].Item != "late" {
		t.Errorf("unexpected order: %q %q %q", entries[0].Item, entries[1].Item, entries[2].Item)
	}
}

func TestCurrentPeriod(t *testing.T) {
	now := time.Date(2025, time.January, 25, 10, 0, 0, 0, time.UTC)
	if got := CurrentPeriod(now); got != (PeriodKey{2025, time.January}) {
		t.Errorf("CurrentPeriod = %v", got)
	}
}
