package ledger

import (
	"sort"
	"time"

	"github.com/ceugb69-B/yen-tracker2/internal/core"
)

// PeriodKey identifies one budget period: a calendar month.
type PeriodKey struct {
	Year  int
	Month time.Month
}

// PeriodOf derives the period an entry belongs to.
func PeriodOf(e core.Entry) PeriodKey {
	return PeriodKey{Year: e.Date.Year(), Month: e.Date.Month()}
}

// CurrentPeriod derives the period of the evaluation instant. The instant is
// always supplied by the caller, never read from the wall clock here.
func CurrentPeriod(now time.Time) PeriodKey {
	return PeriodKey{Year: now.Year(), Month: now.Month()}
}

func (k PeriodKey) before(other PeriodKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Month < other.Month
}

// String renders the period as "2025-01".
func (k PeriodKey) String() string {
	return time.Date(k.Year, k.Month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

// MonthTotal is the aggregate spend of one period.
type MonthTotal struct {
	Period PeriodKey
	Total  core.Money
}

// ByMonth groups entries into per-month totals, ordered chronologically.
// Two entries sharing a year and month always land in the same bucket, and
// the grand total across buckets equals the sum over all entries.
func ByMonth(entries []core.Entry) []MonthTotal {
	totals := map[PeriodKey]int64{}
	for _, e := range entries {
		totals[PeriodOf(e)] += e.Amount.Yen
	}
	out := make([]MonthTotal, 0, len(totals))
	for k, v := range totals {
		out = append(out, MonthTotal{Period: k, Total: core.Money{Yen: v}})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Period.before(out[j].Period)
	})
	return out
}

// ByCategory sums entries of the given period per category, preserving
// first-seen category order. Entries outside the period are ignored; empty
// input yields an empty slice.
func ByCategory(entries []core.Entry, period PeriodKey) []core.CategoryAmount {
	totals := map[core.Category]int64{}
	order := make([]core.Category, 0)
	for _, e := range entries {
		if PeriodOf(e) != period {
			continue
		}
		if _, seen := totals[e.Category]; !seen {
			order = append(order, e.Category)
		}
		totals[e.Category] += e.Amount.Yen
	}
	out := make([]core.CategoryAmount, 0, len(order))
	for _, c := range order {
		out = append(out, core.CategoryAmount{Category: c, Amount: core.Money{Yen: totals[c]}})
	}
	return out
}

// PeriodTotal sums entries of the given period.
func PeriodTotal(entries []core.Entry, period PeriodKey) core.Money {
	var total int64
	for _, e := range entries {
		if PeriodOf(e) == period {
			total += e.Amount.Yen
		}
	}
	return core.Money{Yen: total}
}

// SortByDate orders entries ascending by date, stable for equal days.
func SortByDate(entries []core.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date.Time)
	})
}
