package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"budget-review/internal/core/domain"
)

// ReviewUseCase defines the single-account operations of the review
// engine.
type ReviewUseCase interface {
	// ReviewAccount computes and stores today's (or req.Date's) budget
	// review of one account and schedules its health snapshot.
	ReviewAccount(ctx context.Context, req ReviewRequest) (*ReviewResult, error)
	// IgnoreWarning sets or clears the per-day warning-ignored flag of the
	// account's review for today.
	IgnoreWarning(ctx context.Context, req IgnoreWarningRequest) (*domain.BudgetReview, error)
}

// BatchUseCase runs reviews for many accounts at once.
type BatchUseCase interface {
	// RunBatch reviews every active account of the given clients. Task
	// failures are reported in the result, never returned as an error.
	RunBatch(ctx context.Context, req BatchRequest) (*BatchResult, error)
}

// ReviewRequest selects one account to review. AccountID is the platform
// account id; when empty the client's primary account is used. A zero
// Date means today.
type ReviewRequest struct {
	ClientID  string
	AccountID string
	Platform  domain.Platform
	Date      time.Time
}

// ReviewResult is the outcome of one account review.
type ReviewResult struct {
	Review         *domain.BudgetReview
	Account        *domain.ClientAccount
	Recommendation domain.Recommendation
	Balance        *domain.AccountBalance
	// Warnings lists degraded steps, such as a failed balance fetch.
	Warnings []string
}

// IgnoreWarningRequest toggles the warning-ignored flag.
type IgnoreWarningRequest struct {
	ClientID  string
	AccountID string
	Platform  domain.Platform
	Ignored   bool
}

// BatchRequest lists the clients to review. A zero Date means today.
type BatchRequest struct {
	ClientIDs []string
	Platform  domain.Platform
	Date      time.Time
}

// TaskStatus is the outcome of one batch task.
type TaskStatus string

const (
	TaskSuccess TaskStatus = "success"
	// TaskWarning marks a task whose review may be partially saved.
	TaskWarning TaskStatus = "warning"
	TaskError   TaskStatus = "error"
)

// TaskResult reports one (client, account) task of a batch.
type TaskResult struct {
	ClientID  string
	AccountID string
	Status    TaskStatus
	Result    *ReviewResult
	Error     string
}

// BatchSummary aggregates a batch run.
type BatchSummary struct {
	RunID        uuid.UUID
	Platform     domain.Platform
	ReviewDate   time.Time
	Total        int
	SuccessCount int
	WarningCount int
	ErrorCount   int
	SuccessRate  float64
	Elapsed      time.Duration
	Cleanup      domain.CleanupResult
}

// BatchResult is returned by RunBatch. Errors repeats the failed entries
// of Results.
type BatchResult struct {
	Summary BatchSummary
	Results []TaskResult
	Errors  []TaskResult
}
