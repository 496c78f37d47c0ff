package domain

import "time"

// ReviewKey is the identity of a BudgetReview.
type ReviewKey struct {
	ClientID     string
	AccountRowID int64
	Platform     Platform
	ReviewDate   time.Time
}

// BudgetReview is the daily budget assessment of one account. Exactly one
// row exists per ReviewKey.
type BudgetReview struct {
	ID int64
	ReviewKey

	AccountName        string
	CurrentDailyBudget float64
	TotalSpent         float64
	MonthlyBudget      float64
	IdealDailyBudget   float64
	Difference         float64
	RemainingDays      int
	NeedsAdjustment    bool

	UsingCustomBudget  bool
	CustomBudgetID     *int64
	CustomBudgetAmount *float64
	CustomBudgetStart  *time.Time
	CustomBudgetEnd    *time.Time

	LastFiveDaysSpend    []float64
	WeightedAverageSpend float64

	WarningIgnored     bool
	WarningIgnoredDate *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// WarningIgnoredOn reports whether the warning was ignored for day. The
// flag expires with the day it was set on.
func (r *BudgetReview) WarningIgnoredOn(day time.Time) bool {
	return r != nil && r.WarningIgnored && r.WarningIgnoredDate != nil && SameDay(*r.WarningIgnoredDate, day)
}

// ApplyCustomBudget records the custom budget used for the review.
func (r *BudgetReview) ApplyCustomBudget(b *CustomBudget) {
	if b == nil {
		r.UsingCustomBudget = false
		r.CustomBudgetID, r.CustomBudgetAmount = nil, nil
		r.CustomBudgetStart, r.CustomBudgetEnd = nil, nil
		return
	}
	id, amount := b.ID, b.Amount
	start, end := b.StartDate, b.EndDate
	r.UsingCustomBudget = true
	r.CustomBudgetID = &id
	r.CustomBudgetAmount = &amount
	r.CustomBudgetStart = &start
	r.CustomBudgetEnd = &end
}

// ReviewScope narrows cleanup to a set of clients and, optionally, one
// account. An empty scope covers the whole platform.
type ReviewScope struct {
	ClientIDs    []string
	AccountRowID *int64
}

// CleanupResult counts rows removed by a cleanup pass.
type CleanupResult struct {
	StaleDeleted      int64
	DuplicatesDeleted int64
}
