package port

import (
	"context"
	"time"

	"budget-review/internal/core/domain"
)

// AccountRepository reads clients, accounts and custom budgets. Missing
// rows are reported as (nil, nil).
type AccountRepository interface {
	// GetClient returns a client by id.
	GetClient(ctx context.Context, clientID string) (*domain.Client, error)
	// GetAccount returns the client's account with the given platform
	// account id.
	GetAccount(ctx context.Context, clientID, accountID string, platform domain.Platform) (*domain.ClientAccount, error)
	// GetPrimaryAccount returns the client's primary account on platform.
	GetPrimaryAccount(ctx context.Context, clientID string, platform domain.Platform) (*domain.ClientAccount, error)
	// ListActiveAccounts returns every active account of the given clients
	// on platform, ordered by client and account.
	ListActiveAccounts(ctx context.Context, clientIDs []string, platform domain.Platform) ([]domain.ClientAccount, error)
	// FindActiveCustomBudget returns the most recently created active
	// custom budget covering day.
	FindActiveCustomBudget(ctx context.Context, clientID string, day time.Time) (*domain.CustomBudget, error)
}

// ReviewRepository persists budget reviews. Implementations must be safe
// for concurrent use.
type ReviewRepository interface {
	// FindReview returns the review with the given identity.
	FindReview(ctx context.Context, key domain.ReviewKey) (*domain.BudgetReview, error)
	// SaveReview updates the review identified by review.ReviewKey or
	// inserts it, and writes the account cache fields, atomically.
	SaveReview(ctx context.Context, review *domain.BudgetReview, cache domain.AccountCache) error
	// CleanupStale deletes reviews of platform older than day and reviews
	// dated day, restricted to scope.
	CleanupStale(ctx context.Context, platform domain.Platform, day time.Time, scope domain.ReviewScope) (domain.CleanupResult, error)
	// UpdateWarning writes the warning-ignored flag, its date and the
	// adjustment flag of a stored review.
	UpdateWarning(ctx context.Context, review *domain.BudgetReview) error
}

// HealthRepository persists campaign health snapshots.
type HealthRepository interface {
	// SaveHealthSnapshot upserts the snapshot on its identity.
	SaveHealthSnapshot(ctx context.Context, s *domain.CampaignHealthSnapshot) error
}

// AuditRepository stores the write-only batch audit trail.
type AuditRepository interface {
	SaveBatchRun(ctx context.Context, run *domain.BatchRun) error
	AppendAuditLog(ctx context.Context, entry domain.AuditLog) error
}

// SecretStore holds platform credentials. GetSecret returns "" for a
// missing secret.
type SecretStore interface {
	GetSecret(ctx context.Context, name string) (string, error)
	PutSecrets(ctx context.Context, secrets map[string]string) error
}
