package port

import (
	"context"
	"time"

	"budget-review/internal/core/domain"
)

// Clock resolves the current time and civil date in the service's fixed
// timezone.
type Clock interface {
	Now() time.Time
	// Today returns midnight of the current civil date.
	Today() time.Time
}

// Credentials supplies platform access tokens.
type Credentials interface {
	// SocialToken returns the long-lived Meta access token.
	SocialToken(ctx context.Context) (string, error)
	// SearchToken returns a valid Google Ads access token, renewing it
	// when it is close to expiry.
	SearchToken(ctx context.Context) (string, error)
}

// FetchRequest describes one account fetch.
type FetchRequest struct {
	AccountID string
	// Spend is the window total spend is summed over.
	Spend domain.DateWindow
	// Day is the review date; the last five days of spend precede it.
	Day time.Time
}

// PlatformFetcher reads live budget and spend facts from an ad platform.
type PlatformFetcher interface {
	Platform() domain.Platform
	// FetchAccountData returns the account's current daily budget, spend
	// for the requested window and recent daily spend.
	FetchAccountData(ctx context.Context, req FetchRequest) (domain.PlatformData, error)
	// FetchCampaigns returns the active campaigns with their delivery on
	// day.
	FetchCampaigns(ctx context.Context, accountID string, day time.Time) ([]domain.CampaignMetrics, error)
}

// BalanceFetcher reads account balance and billing metadata.
type BalanceFetcher interface {
	FetchBalance(ctx context.Context, accountID string) (*domain.AccountBalance, error)
}
