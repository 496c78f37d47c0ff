package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"budget-review/internal/clock"
	"budget-review/internal/core/domain"
	"budget-review/internal/core/port"
	"budget-review/internal/core/port/mocks"
)

var testLoc = time.FixedZone("BRT", -3*60*60)

func september(day int) time.Time {
	return time.Date(2025, time.September, day, 10, 30, 0, 0, testLoc)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func metaFetcher(t *testing.T) *mocks.MockPlatformFetcher {
	f := mocks.NewMockPlatformFetcher(t)
	f.EXPECT().Platform().Return(domain.PlatformMeta)
	return f
}

func seedAccount(repo *memRepo) *domain.ClientAccount {
	return repo.addAccount(domain.ClientAccount{
		ClientID:      "c1",
		Platform:      domain.PlatformMeta,
		AccountID:     "act_1",
		Name:          "Stored name",
		MonthlyBudget: 3000,
		IsPrimary:     true,
	})
}

type serviceOpts struct {
	fetchers []port.PlatformFetcher
	balances map[domain.Platform]port.BalanceFetcher
	health   port.HealthRepository
}

func newTestReviewService(repo *memRepo, now time.Time, opts serviceOpts) *ReviewService {
	return NewReviewService(ReviewDeps{
		Accounts: repo,
		Reviews:  repo,
		Health:   opts.health,
		Fetchers: opts.fetchers,
		Balances: opts.balances,
		Clock:    clock.Fixed(now),
		Logger:   discardLogger(),
	}, ReviewConfig{Threshold: domain.AdjustmentThreshold})
}

func TestReviewAccountBudgetMath(t *testing.T) {
	repo := newMemRepo()
	acc := seedAccount(repo)
	fetcher := metaFetcher(t)
	fetcher.EXPECT().
		FetchAccountData(mock.Anything, mock.MatchedBy(func(req port.FetchRequest) bool {
			return req.AccountID == "act_1" &&
				req.Spend.Start.Day() == 1 && req.Spend.End.Day() == 20 &&
				req.Day.Day() == 20
		})).
		Return(&domain.MetaData{Budget: 150, Spent: 1200, Name: "Acme BR", LastFiveDays: []float64{100, 120, 140, 160, 180}}, nil)

	fundedAt := time.Date(2025, time.September, 12, 12, 30, 0, 0, time.UTC)
	funded := 250.5
	balances := mocks.NewMockBalanceFetcher(t)
	balances.EXPECT().FetchBalance(mock.Anything, "act_1").
		Return(&domain.AccountBalance{RemainingBalance: 600, IsPrepay: true, LastFundingAt: &fundedAt, LastFundingAmount: &funded}, nil)

	svc := newTestReviewService(repo, september(20), serviceOpts{
		fetchers: []port.PlatformFetcher{fetcher},
		balances: map[domain.Platform]port.BalanceFetcher{domain.PlatformMeta: balances},
	})

	res, err := svc.ReviewAccount(context.Background(), port.ReviewRequest{ClientID: "c1", AccountID: "act_1", Platform: domain.PlatformMeta})
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)

	rv := res.Review
	assert.Equal(t, 11, rv.RemainingDays)
	assert.Equal(t, 163.64, rv.IdealDailyBudget)
	assert.Equal(t, 13.64, rv.Difference)
	assert.True(t, rv.NeedsAdjustment)
	assert.Equal(t, 3000.0, rv.MonthlyBudget)
	assert.Equal(t, 150.0, rv.CurrentDailyBudget)
	assert.Equal(t, 1200.0, rv.TotalSpent)
	assert.Equal(t, "Acme BR", rv.AccountName)
	assert.Equal(t, 153.33, rv.WeightedAverageSpend)
	assert.False(t, rv.UsingCustomBudget)
	assert.Equal(t, "2025-09-20", rv.ReviewDate.Format(domain.DateLayout))
	assert.NotZero(t, rv.ID)

	stored := repo.accountByRow(acc.ID)
	require.NotNil(t, stored.RemainingBalance)
	assert.Equal(t, 600.0, *stored.RemainingBalance)
	require.NotNil(t, stored.LastFundingAmount)
	assert.Equal(t, 250.5, *stored.LastFundingAmount)
	assert.Equal(t, "Acme BR", stored.Name)
	assert.Equal(t, "Acme BR", res.Account.Name)
}

func TestReviewAccountUsesCustomBudget(t *testing.T) {
	repo := newMemRepo()
	seedAccount(repo)
	repo.budgets = []domain.CustomBudget{
		{ID: 7, ClientID: "c1", Amount: 900, Active: true,
			StartDate: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), EndDate: time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC),
			CreatedAt: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 8, ClientID: "c1", Amount: 600, Active: true,
			StartDate: time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC), EndDate: time.Date(2025, 9, 25, 0, 0, 0, 0, time.UTC),
			CreatedAt: time.Date(2025, 9, 9, 0, 0, 0, 0, time.UTC)},
	}
	fetcher := metaFetcher(t)
	fetcher.EXPECT().
		FetchAccountData(mock.Anything, mock.MatchedBy(func(req port.FetchRequest) bool {
			return req.Spend.Start.Day() == 10 && req.Spend.End.Day() == 20
		})).
		Return(&domain.MetaData{Budget: 40, Spent: 300}, nil)

	svc := newTestReviewService(repo, september(20), serviceOpts{fetchers: []port.PlatformFetcher{fetcher}})
	res, err := svc.ReviewAccount(context.Background(), port.ReviewRequest{ClientID: "c1", Platform: domain.PlatformMeta})
	require.NoError(t, err)

	rv := res.Review
	assert.True(t, rv.UsingCustomBudget)
	require.NotNil(t, rv.CustomBudgetID)
	assert.Equal(t, int64(8), *rv.CustomBudgetID)
	assert.Equal(t, 600.0, rv.MonthlyBudget)
	assert.Equal(t, 6, rv.RemainingDays)
	assert.Equal(t, 50.0, rv.IdealDailyBudget)
	assert.Equal(t, 10.0, rv.Difference)
	assert.True(t, rv.NeedsAdjustment)
	assert.Equal(t, "Stored name", rv.AccountName)
}

func TestReviewAccountGooglePace(t *testing.T) {
	repo := newMemRepo()
	repo.addAccount(domain.ClientAccount{ClientID: "c1", Platform: domain.PlatformGoogle, AccountID: "123-456-7890", MonthlyBudget: 3000, IsPrimary: true})
	fetcher := mocks.NewMockPlatformFetcher(t)
	fetcher.EXPECT().Platform().Return(domain.PlatformGoogle)
	fetcher.EXPECT().FetchAccountData(mock.Anything, mock.Anything).
		Return(&domain.GoogleData{Budget: 75.5, Spent: 1200, LastFiveDays: []float64{10, 20, 30, 40, 50}}, nil)

	svc := newTestReviewService(repo, september(20), serviceOpts{fetchers: []port.PlatformFetcher{fetcher}})
	res, err := svc.ReviewAccount(context.Background(), port.ReviewRequest{ClientID: "c1", Platform: domain.PlatformGoogle})
	require.NoError(t, err)

	assert.Equal(t, 163.64, res.Review.IdealDailyBudget)
	assert.Equal(t, 126.97, res.Review.Difference)
	assert.Equal(t, 75.5, res.Review.CurrentDailyBudget)
	assert.Equal(t, 36.67, res.Review.WeightedAverageSpend)
}

func TestReviewAccountDegradesOnBalanceFailure(t *testing.T) {
	repo := newMemRepo()
	seedAccount(repo)
	fetcher := metaFetcher(t)
	fetcher.EXPECT().FetchAccountData(mock.Anything, mock.Anything).Return(&domain.MetaData{Budget: 150, Spent: 1200}, nil)
	balances := mocks.NewMockBalanceFetcher(t)
	balances.EXPECT().FetchBalance(mock.Anything, "act_1").Return(nil, errors.New("timeout"))

	svc := newTestReviewService(repo, september(20), serviceOpts{
		fetchers: []port.PlatformFetcher{fetcher},
		balances: map[domain.Platform]port.BalanceFetcher{domain.PlatformMeta: balances},
	})
	res, err := svc.ReviewAccount(context.Background(), port.ReviewRequest{ClientID: "c1", Platform: domain.PlatformMeta})
	require.NoError(t, err)

	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "balance unavailable")
	assert.Nil(t, res.Balance)
	assert.Equal(t, 163.64, res.Review.IdealDailyBudget)
	assert.Equal(t, "Stored name", res.Review.AccountName)
	assert.Equal(t, 1, repo.reviewCount())
}

func TestReviewAccountPlatformFailureKeepsEarlierReview(t *testing.T) {
	repo := newMemRepo()
	seedAccount(repo)
	fetcher := metaFetcher(t)
	fetcher.EXPECT().FetchAccountData(mock.Anything, mock.Anything).Return(&domain.MetaData{Budget: 150, Spent: 1200}, nil).Once()
	fetcher.EXPECT().FetchAccountData(mock.Anything, mock.Anything).
		Return(nil, errors.New("list campaigns: platform circuit breaker open")).Once()

	svc := newTestReviewService(repo, september(20), serviceOpts{fetchers: []port.PlatformFetcher{fetcher}})
	ctx := context.Background()
	req := port.ReviewRequest{ClientID: "c1", Platform: domain.PlatformMeta}

	first, err := svc.ReviewAccount(ctx, req)
	require.NoError(t, err)

	_, err = svc.ReviewAccount(ctx, req)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPlatformData)
	assert.False(t, domain.IsCredentialError(err))
	assert.Contains(t, err.Error(), "act_1")

	require.Equal(t, 1, repo.reviewCount())
	stored := repo.reviews[reviewKey(first.Review.ReviewKey)]
	require.NotNil(t, stored)
	assert.Equal(t, 150.0, stored.CurrentDailyBudget)
	assert.Equal(t, 163.64, stored.IdealDailyBudget)
}

func TestReviewAccountCustomBudgetFromLastMonth(t *testing.T) {
	repo := newMemRepo()
	seedAccount(repo)
	repo.budgets = []domain.CustomBudget{
		{ID: 5, ClientID: "c1", Amount: 1000, Active: true,
			StartDate: time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC), EndDate: time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC),
			CreatedAt: time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC)},
	}
	fetcher := metaFetcher(t)
	fetcher.EXPECT().
		FetchAccountData(mock.Anything, mock.MatchedBy(func(req port.FetchRequest) bool {
			return req.Spend.Start.Format(domain.DateLayout) == "2025-08-25" &&
				req.Spend.End.Format(domain.DateLayout) == "2025-09-05"
		})).
		Return(&domain.MetaData{Budget: 100, Spent: 300}, nil)

	svc := newTestReviewService(repo, september(5), serviceOpts{fetchers: []port.PlatformFetcher{fetcher}})
	res, err := svc.ReviewAccount(context.Background(), port.ReviewRequest{ClientID: "c1", Platform: domain.PlatformMeta})
	require.NoError(t, err)

	rv := res.Review
	assert.True(t, rv.UsingCustomBudget)
	assert.Equal(t, 1000.0, rv.MonthlyBudget)
	assert.Equal(t, 6, rv.RemainingDays)
	assert.Equal(t, 116.67, rv.IdealDailyBudget)
	assert.Equal(t, 16.67, rv.Difference)
}

func TestReviewAccountCredentialErrorIsFatal(t *testing.T) {
	tests := []struct {
		name    string
		balance error
		fetch   error
	}{
		{name: "balance", balance: fmt.Errorf("meta token: %w", domain.ErrCredentialMissing)},
		{name: "platform", fetch: &domain.TokenRefreshError{Reason: "invalid_grant"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemRepo()
			seedAccount(repo)
			fetcher := metaFetcher(t)
			balances := mocks.NewMockBalanceFetcher(t)
			if tt.balance != nil {
				balances.EXPECT().FetchBalance(mock.Anything, "act_1").Return(nil, tt.balance)
			} else {
				balances.EXPECT().FetchBalance(mock.Anything, "act_1").Return(&domain.AccountBalance{}, nil)
				fetcher.EXPECT().FetchAccountData(mock.Anything, mock.Anything).Return(nil, tt.fetch)
			}

			svc := newTestReviewService(repo, september(20), serviceOpts{
				fetchers: []port.PlatformFetcher{fetcher},
				balances: map[domain.Platform]port.BalanceFetcher{domain.PlatformMeta: balances},
			})
			_, err := svc.ReviewAccount(context.Background(), port.ReviewRequest{ClientID: "c1", Platform: domain.PlatformMeta})
			require.Error(t, err)
			assert.True(t, domain.IsCredentialError(err))
			assert.Zero(t, repo.reviewCount())
		})
	}
}

func TestReviewAccountResolveErrors(t *testing.T) {
	repo := newMemRepo()
	seedAccount(repo)
	repo.clients["gone"] = domain.Client{ID: "gone", Active: false}
	repo.clients["c2"] = domain.Client{ID: "c2", Active: true}
	repo.addAccount(domain.ClientAccount{ClientID: "c1", Platform: domain.PlatformMeta, AccountID: "act_old"}).IsActive = false

	svc := newTestReviewService(repo, september(20), serviceOpts{fetchers: []port.PlatformFetcher{metaFetcher(t)}})
	ctx := context.Background()

	tests := []struct {
		name     string
		req      port.ReviewRequest
		notFound bool
	}{
		{name: "unknown client", req: port.ReviewRequest{ClientID: "nope"}, notFound: true},
		{name: "inactive client", req: port.ReviewRequest{ClientID: "gone"}, notFound: true},
		{name: "unknown account", req: port.ReviewRequest{ClientID: "c1", AccountID: "act_404"}, notFound: true},
		{name: "deactivated account", req: port.ReviewRequest{ClientID: "c1", AccountID: "act_old"}, notFound: true},
		{name: "no primary account", req: port.ReviewRequest{ClientID: "c2"}, notFound: true},
		{name: "unknown platform", req: port.ReviewRequest{ClientID: "c1", Platform: "tiktok"}},
		{name: "unconfigured platform", req: port.ReviewRequest{ClientID: "c1", Platform: domain.PlatformGoogle}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ReviewAccount(ctx, tt.req)
			require.Error(t, err)
			if tt.notFound {
				assert.True(t, domain.IsNotFound(err), err.Error())
			} else {
				assert.ErrorIs(t, err, domain.ErrInvalidRequest)
			}
		})
	}
	assert.Zero(t, repo.reviewCount())
}

func TestReviewAccountIsIdempotentPerDay(t *testing.T) {
	repo := newMemRepo()
	seedAccount(repo)
	fetcher := metaFetcher(t)
	fetcher.EXPECT().FetchAccountData(mock.Anything, mock.Anything).
		Return(&domain.MetaData{Budget: 150, Spent: 1200}, nil)

	svc := newTestReviewService(repo, september(20), serviceOpts{fetchers: []port.PlatformFetcher{fetcher}})
	ctx := context.Background()
	req := port.ReviewRequest{ClientID: "c1", Platform: domain.PlatformMeta}

	first, err := svc.ReviewAccount(ctx, req)
	require.NoError(t, err)
	require.True(t, first.Review.NeedsAdjustment)

	ignored, err := svc.IgnoreWarning(ctx, port.IgnoreWarningRequest{ClientID: "c1", Platform: domain.PlatformMeta, Ignored: true})
	require.NoError(t, err)
	assert.True(t, ignored.WarningIgnored)
	assert.False(t, ignored.NeedsAdjustment)
	require.NotNil(t, ignored.WarningIgnoredDate)

	second, err := svc.ReviewAccount(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, first.Review.ID, second.Review.ID)
	assert.True(t, second.Review.WarningIgnored)
	assert.False(t, second.Review.NeedsAdjustment)
	assert.False(t, second.Recommendation.NeedsAdjustment)
	assert.Equal(t, 1, repo.reviewCount())

	cleared, err := svc.IgnoreWarning(ctx, port.IgnoreWarningRequest{ClientID: "c1", Platform: domain.PlatformMeta, Ignored: false})
	require.NoError(t, err)
	assert.False(t, cleared.WarningIgnored)
	assert.Nil(t, cleared.WarningIgnoredDate)
	assert.True(t, cleared.NeedsAdjustment)

	_, err = svc.IgnoreWarning(ctx, port.IgnoreWarningRequest{ClientID: "c1", Platform: domain.PlatformMeta, Ignored: true})
	require.NoError(t, err)

	nextDay := newTestReviewService(repo, september(21), serviceOpts{fetchers: []port.PlatformFetcher{fetcher}})
	third, err := nextDay.ReviewAccount(ctx, req)
	require.NoError(t, err)
	assert.NotEqual(t, first.Review.ID, third.Review.ID)
	assert.False(t, third.Review.WarningIgnored)
	assert.True(t, third.Review.NeedsAdjustment)
	assert.Equal(t, 2, repo.reviewCount())
}

func TestIgnoreWarningWithoutReview(t *testing.T) {
	repo := newMemRepo()
	seedAccount(repo)
	svc := newTestReviewService(repo, september(20), serviceOpts{fetchers: []port.PlatformFetcher{metaFetcher(t)}})

	_, err := svc.IgnoreWarning(context.Background(), port.IgnoreWarningRequest{ClientID: "c1", Ignored: true})
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestReviewAccountSavesHealthSnapshot(t *testing.T) {
	tests := []struct {
		name      string
		campaigns []domain.CampaignMetrics
		err       error
		want      domain.HealthStatus
	}{
		{
			name: "partial",
			campaigns: []domain.CampaignMetrics{
				{ID: "1", Name: "Search", Cost: 12.5, Impressions: 300},
				{ID: "2", Name: "Display"},
			},
			want: domain.HealthPartialRunning,
		},
		{name: "no campaigns", want: domain.HealthNoCampaigns},
		{name: "unreachable", err: errors.New("connection reset"), want: domain.HealthNoData},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemRepo()
			acc := seedAccount(repo)
			fetcher := metaFetcher(t)
			fetcher.EXPECT().FetchAccountData(mock.Anything, mock.Anything).Return(&domain.MetaData{Budget: 100, Spent: 500}, nil)
			fetcher.EXPECT().FetchCampaigns(mock.Anything, "act_1", mock.Anything).Return(tt.campaigns, tt.err)

			health := mocks.NewMockHealthRepository(t)
			health.EXPECT().
				SaveHealthSnapshot(mock.Anything, mock.MatchedBy(func(s *domain.CampaignHealthSnapshot) bool {
					return s.Status == tt.want &&
						s.AccountRowID == acc.ID &&
						s.ActiveCampaigns == len(tt.campaigns) &&
						s.SnapshotDate.Day() == 20
				})).
				Return(nil)

			svc := newTestReviewService(repo, september(20), serviceOpts{
				fetchers: []port.PlatformFetcher{fetcher},
				health:   health,
			})

			ctx, cancel := context.WithCancel(context.Background())
			_, err := svc.ReviewAccount(ctx, port.ReviewRequest{ClientID: "c1", Platform: domain.PlatformMeta})
			require.NoError(t, err)
			cancel()

			waitCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
			defer done()
			require.NoError(t, svc.Wait(waitCtx))
		})
	}
}
