package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdjustmentThreshold is the minimum absolute gap, in currency units,
// between the ideal daily budget and the current pace that is worth
// flagging.
const AdjustmentThreshold = 5.0

// RecommendationInput holds everything the budget calculator needs.
type RecommendationInput struct {
	MonthlyBudget float64
	SpentSoFar    float64
	// CurrentPace is the current daily budget for Meta accounts and the
	// weighted average of recent spend for Google accounts.
	CurrentPace float64
	// CustomBudget is the custom budget applicable on Date, if any.
	CustomBudget   *CustomBudget
	Date           time.Time
	WarningIgnored bool
	Threshold      float64
}

// Recommendation is the outcome of the budget calculator. A negative
// Difference means the daily budget should be reduced.
type Recommendation struct {
	// Window is the period the budget is spread over: the calendar month,
	// or the custom budget's own dates.
	Window           DateWindow
	RemainingDays    int
	RemainingBudget  float64
	IdealDailyBudget float64
	Difference       float64
	NeedsAdjustment  bool
}

// Recommend computes the ideal daily budget that exhausts the remaining
// monthly (or custom window) budget by the end of the window. Today is
// counted as a remaining spend day.
func Recommend(in RecommendationInput) Recommendation {
	rec := Recommendation{Window: BudgetWindow(in.CustomBudget, in.Date)}
	rec.RemainingDays = max(DaysBetween(in.Date, rec.Window.End)+1, 1)

	remaining := decimal.NewFromFloat(in.MonthlyBudget).Sub(decimal.NewFromFloat(in.SpentSoFar))
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	rec.RemainingBudget = remaining.Round(2).InexactFloat64()

	if in.MonthlyBudget <= 0 {
		return rec
	}

	ideal := remaining.Div(decimal.NewFromInt(int64(rec.RemainingDays))).Round(2)
	diff := ideal.Sub(decimal.NewFromFloat(in.CurrentPace)).Round(2)
	rec.IdealDailyBudget = ideal.InexactFloat64()
	rec.Difference = diff.InexactFloat64()

	rec.NeedsAdjustment = !in.WarningIgnored && ExceedsThreshold(rec.Difference, in.Threshold)
	return rec
}

// ExceedsThreshold reports whether |diff| reaches threshold. A threshold
// of zero or less means AdjustmentThreshold.
func ExceedsThreshold(diff, threshold float64) bool {
	if threshold <= 0 {
		threshold = AdjustmentThreshold
	}
	return decimal.NewFromFloat(diff).Abs().GreaterThanOrEqual(decimal.NewFromFloat(threshold))
}

// SpendWindow returns the dates whose spend counts against the budget on
// day: from the custom budget's start, wherever it falls, else from the
// first of the month. It never runs past the budget window's end.
func SpendWindow(custom *CustomBudget, day time.Time) DateWindow {
	if custom == nil {
		return MonthToDate(day)
	}
	bw := BudgetWindow(custom, day)
	w := DateWindow{Start: bw.Start, End: DateOnly(day)}
	if civil(w.End) > civil(bw.End) {
		w.End = bw.End
	}
	return w
}

// BudgetWindow returns the dates the budget is spread over on day: the
// custom budget's start and end dates when one applies, else day's
// calendar month. Dates are expressed in day's location.
func BudgetWindow(custom *CustomBudget, day time.Time) DateWindow {
	if custom == nil {
		first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		return DateWindow{Start: first, End: first.AddDate(0, 1, -1)}
	}
	return DateWindow{Start: inLocation(custom.StartDate, day.Location()), End: inLocation(custom.EndDate, day.Location())}
}

// WeightedAverage returns the linearly weighted mean of spend, where spend
// is ordered oldest first and the most recent day carries the highest
// weight. An empty slice yields zero.
func WeightedAverage(spend []float64) float64 {
	if len(spend) == 0 {
		return 0
	}
	var sum, weights decimal.Decimal
	for i, v := range spend {
		w := decimal.NewFromInt(int64(i + 1))
		sum = sum.Add(decimal.NewFromFloat(v).Mul(w))
		weights = weights.Add(w)
	}
	return sum.Div(weights).Round(2).InexactFloat64()
}

// RoundMoney rounds v to cents.
func RoundMoney(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
