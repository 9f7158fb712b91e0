package ledger

import (
	"time"

	"github.com/ceugb69-B/yen-tracker2/internal/core"
)

// DefaultMonthlyBudget is used whenever the stored budget cell is absent,
// empty, or unparsable.
const DefaultMonthlyBudget int64 = 300000

// ParseBudget reads the raw budget cell text. The cell is edited by hand and
// frequently carries thousands separators; anything that does not parse to a
// positive integer falls back to the default.
func ParseBudget(cell string) int64 {
	v, err := core.ParseYen(cell)
	if err != nil || v <= 0 {
		return DefaultMonthlyBudget
	}
	return v
}

// Report is the budget view for the current period. All fields are pure
// functions of the inputs to Evaluate.
type Report struct {
	Spent          core.Money
	Budget         core.Money
	Remaining      core.Money
	PercentSpent   float64
	DaysRemaining  int
	DailyAllowance core.Money
	OverBudget     bool
}

// Evaluate combines the current period's spend with the configured budget.
//
// Remaining may go negative: over-budget is a representable state, not an
// error. PercentSpent is clamped to [0,1] and defined as 0 for a
// non-positive budget so a zero budget can never fault. DaysRemaining counts
// today inclusively. DailyAllowance is the integer-truncated remaining yen
// per remaining day, reported as 0 once over budget; the zero is the
// user-visible "over budget" signal, paired with the explicit flag.
func Evaluate(spent, budget int64, now time.Time) Report {
	remaining := budget - spent

	var pct float64
	if budget > 0 {
		pct = float64(spent) / float64(budget)
		if pct < 0 {
			pct = 0
		}
		if pct > 1 {
			pct = 1
		}
	}

	days := daysInMonth(now) - now.Day() + 1

	var allowance int64
	if remaining > 0 {
		allowance = remaining / int64(days)
	}

	return Report{
		Spent:          core.Money{Yen: spent},
		Budget:         core.Money{Yen: budget},
		Remaining:      core.Money{Yen: remaining},
		PercentSpent:   pct,
		DaysRemaining:  days,
		DailyAllowance: core.Money{Yen: allowance},
		OverBudget:     remaining <= 0,
	}
}

func daysInMonth(t time.Time) int {
	firstOfNext := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1).Day()
}
