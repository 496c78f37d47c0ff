package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"budget-review/internal/core/domain"
	"budget-review/internal/core/port"
)

const defaultHealthTimeout = 30 * time.Second

// ReviewConfig tunes the review service.
type ReviewConfig struct {
	// Threshold is the minimum |difference| that needs adjustment.
	Threshold float64
	// HealthTimeout bounds one background health snapshot.
	HealthTimeout time.Duration
}

// ReviewDeps groups the collaborators of ReviewService.
type ReviewDeps struct {
	Accounts port.AccountRepository
	Reviews  port.ReviewRepository
	Health   port.HealthRepository
	Fetchers []port.PlatformFetcher
	// Balances is keyed by platform; platforms without an entry skip the
	// balance step.
	Balances map[domain.Platform]port.BalanceFetcher
	Clock    port.Clock
	Logger   *slog.Logger
}

// ReviewService implements port.ReviewUseCase. Health snapshots run in
// the background; Wait drains them.
type ReviewService struct {
	accounts port.AccountRepository
	reviews  port.ReviewRepository
	health   port.HealthRepository
	fetchers map[domain.Platform]port.PlatformFetcher
	balances map[domain.Platform]port.BalanceFetcher
	clock    port.Clock
	cfg      ReviewConfig
	logger   *slog.Logger

	wg sync.WaitGroup
}

// NewReviewService wires a review service.
func NewReviewService(deps ReviewDeps, cfg ReviewConfig) *ReviewService {
	if cfg.HealthTimeout <= 0 {
		cfg.HealthTimeout = defaultHealthTimeout
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	fetchers := make(map[domain.Platform]port.PlatformFetcher, len(deps.Fetchers))
	for _, f := range deps.Fetchers {
		fetchers[f.Platform()] = f
	}
	return &ReviewService{
		accounts: deps.Accounts,
		reviews:  deps.Reviews,
		health:   deps.Health,
		fetchers: fetchers,
		balances: deps.Balances,
		clock:    deps.Clock,
		cfg:      cfg,
		logger:   logger,
	}
}

// ReviewAccount resolves the account, fetches live platform data, computes
// the recommendation and stores the day's review. A failed balance fetch
// is listed in the result's Warnings. A platform fetch that fails outright
// yields no budget figure and is returned as domain.ErrPlatformData, as are
// missing entities, credential problems and persistence failures.
func (s *ReviewService) ReviewAccount(ctx context.Context, req port.ReviewRequest) (*port.ReviewResult, error) {
	platform, fetcher, err := s.fetcher(req.Platform)
	if err != nil {
		return nil, err
	}
	day := s.reviewDay(req.Date)
	log := s.logger.With(
		slog.String("client_id", req.ClientID),
		slog.String("platform", string(platform)),
	)

	acc, err := s.resolveAccount(ctx, req.ClientID, req.AccountID, platform)
	if err != nil {
		return nil, err
	}
	log = log.With(slog.String("account_id", acc.AccountID))

	custom, err := s.accounts.FindActiveCustomBudget(ctx, acc.ClientID, day)
	if err != nil {
		return nil, fmt.Errorf("find custom budget: %w", err)
	}
	if !custom.AppliesOn(day) {
		custom = nil
	}

	res := &port.ReviewResult{Account: acc}

	if bf, ok := s.balances[platform]; ok {
		bal, err := bf.FetchBalance(ctx, acc.AccountID)
		switch {
		case domain.IsCredentialError(err):
			return nil, err
		case err != nil:
			log.WarnContext(ctx, "balance fetch failed", slog.Any("error", err))
			res.Warnings = append(res.Warnings, "balance unavailable: "+err.Error())
		default:
			res.Balance = bal
		}
	}

	data, err := fetcher.FetchAccountData(ctx, port.FetchRequest{
		AccountID: acc.AccountID,
		Spend:     domain.SpendWindow(custom, day),
		Day:       day,
	})
	switch {
	case domain.IsCredentialError(err):
		return nil, err
	case err != nil:
		return nil, fmt.Errorf("%w: %s account %s: %w", domain.ErrPlatformData, platform, acc.AccountID, err)
	}

	key := domain.ReviewKey{ClientID: acc.ClientID, AccountRowID: acc.ID, Platform: platform, ReviewDate: day}
	existing, err := s.reviews.FindReview(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("find review: %w", err)
	}

	monthly := acc.MonthlyBudget
	if custom != nil {
		monthly = custom.Amount
	}
	ignored := existing.WarningIgnoredOn(day)
	rec := domain.Recommend(domain.RecommendationInput{
		MonthlyBudget:  monthly,
		SpentSoFar:     data.TotalSpent(),
		CurrentPace:    data.Pace(),
		CustomBudget:   custom,
		Date:           day,
		WarningIgnored: ignored,
		Threshold:      s.cfg.Threshold,
	})
	res.Recommendation = rec

	review := buildReview(key, acc, data, rec, monthly)
	review.ApplyCustomBudget(custom)
	if existing != nil {
		review.ID = existing.ID
		review.CreatedAt = existing.CreatedAt
	}
	if ignored {
		review.WarningIgnored = true
		review.WarningIgnoredDate = existing.WarningIgnoredDate
	}

	cache := domain.NewAccountCache(acc, data.AccountName(), res.Balance)
	if err = s.reviews.SaveReview(ctx, review, cache); err != nil {
		return nil, fmt.Errorf("save review: %w", err)
	}
	acc.ApplyCache(cache)
	res.Review = review

	log.InfoContext(ctx, "account reviewed",
		slog.Float64("ideal_daily_budget", rec.IdealDailyBudget),
		slog.Float64("difference", rec.Difference),
		slog.Bool("needs_adjustment", rec.NeedsAdjustment),
		slog.Bool("custom_budget", custom != nil),
	)

	s.scheduleHealth(ctx, fetcher, *acc, day)
	return res, nil
}

func buildReview(key domain.ReviewKey, acc *domain.ClientAccount, data domain.PlatformData, rec domain.Recommendation, monthly float64) *domain.BudgetReview {
	name := data.AccountName()
	if name == "" {
		name = acc.Name
	}
	recent := data.RecentSpend()
	return &domain.BudgetReview{
		ReviewKey:            key,
		AccountName:          name,
		CurrentDailyBudget:   data.DailyBudget(),
		TotalSpent:           data.TotalSpent(),
		MonthlyBudget:        monthly,
		IdealDailyBudget:     rec.IdealDailyBudget,
		Difference:           rec.Difference,
		RemainingDays:        rec.RemainingDays,
		NeedsAdjustment:      rec.NeedsAdjustment,
		LastFiveDaysSpend:    recent,
		WeightedAverageSpend: domain.WeightedAverage(recent),
	}
}

// IgnoreWarning sets or clears the warning-ignored flag of today's review
// of the account. Clearing it restores the adjustment flag from the stored
// difference.
func (s *ReviewService) IgnoreWarning(ctx context.Context, req port.IgnoreWarningRequest) (*domain.BudgetReview, error) {
	platform, err := domain.ParsePlatform(string(req.Platform))
	if err != nil {
		return nil, err
	}
	acc, err := s.resolveAccount(ctx, req.ClientID, req.AccountID, platform)
	if err != nil {
		return nil, err
	}
	today := s.clock.Today()
	key := domain.ReviewKey{ClientID: acc.ClientID, AccountRowID: acc.ID, Platform: platform, ReviewDate: today}
	review, err := s.reviews.FindReview(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("find review: %w", err)
	}
	if review == nil {
		return nil, &domain.NotFoundError{Entity: "review", ID: acc.AccountID + "@" + today.Format(domain.DateLayout)}
	}

	review.WarningIgnored = req.Ignored
	if req.Ignored {
		review.WarningIgnoredDate = &today
		review.NeedsAdjustment = false
	} else {
		review.WarningIgnoredDate = nil
		review.NeedsAdjustment = review.MonthlyBudget > 0 && domain.ExceedsThreshold(review.Difference, s.cfg.Threshold)
	}
	if err = s.reviews.UpdateWarning(ctx, review); err != nil {
		return nil, fmt.Errorf("update warning: %w", err)
	}
	s.logger.InfoContext(ctx, "review warning flag updated",
		slog.String("client_id", acc.ClientID),
		slog.String("account_id", acc.AccountID),
		slog.Bool("ignored", req.Ignored),
	)
	return review, nil
}

// Wait blocks until the background health snapshots finish or ctx ends.
func (s *ReviewService) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *ReviewService) fetcher(raw domain.Platform) (domain.Platform, port.PlatformFetcher, error) {
	platform, err := domain.ParsePlatform(string(raw))
	if err != nil {
		return "", nil, err
	}
	f, ok := s.fetchers[platform]
	if !ok {
		return "", nil, fmt.Errorf("%w: platform %s is not configured", domain.ErrInvalidRequest, platform)
	}
	return platform, f, nil
}

func (s *ReviewService) reviewDay(date time.Time) time.Time {
	if date.IsZero() {
		return s.clock.Today()
	}
	return domain.DateOnly(date)
}

// resolveAccount loads the active client and the requested account, or the
// client's primary account when accountID is empty.
func (s *ReviewService) resolveAccount(ctx context.Context, clientID, accountID string, platform domain.Platform) (*domain.ClientAccount, error) {
	client, err := s.accounts.GetClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}
	if client == nil || !client.Active {
		return nil, &domain.NotFoundError{Entity: "client", ID: clientID}
	}

	var acc *domain.ClientAccount
	if accountID != "" {
		acc, err = s.accounts.GetAccount(ctx, clientID, accountID, platform)
	} else {
		acc, err = s.accounts.GetPrimaryAccount(ctx, clientID, platform)
	}
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	if acc == nil {
		id := accountID
		if id == "" {
			id = clientID + "/" + string(platform)
		}
		return nil, &domain.NotFoundError{Entity: "account", ID: id}
	}
	return acc, nil
}

// scheduleHealth snapshots campaign health in the background. The
// snapshot outlives the request but keeps its context values.
func (s *ReviewService) scheduleHealth(ctx context.Context, fetcher port.PlatformFetcher, acc domain.ClientAccount, day time.Time) {
	if s.health == nil {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		hctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.HealthTimeout)
		defer cancel()
		defer func() {
			if r := recover(); r != nil {
				s.logger.ErrorContext(hctx, "health snapshot panicked",
					slog.String("account_id", acc.AccountID), slog.Any("panic", r))
			}
		}()
		if err := s.snapshotHealth(hctx, fetcher, &acc, day); err != nil {
			s.logger.ErrorContext(hctx, "health snapshot failed",
				slog.String("account_id", acc.AccountID), slog.Any("error", err))
		}
	}()
}

func (s *ReviewService) snapshotHealth(ctx context.Context, fetcher port.PlatformFetcher, acc *domain.ClientAccount, day time.Time) error {
	campaigns, err := fetcher.FetchCampaigns(ctx, acc.AccountID, day)
	reachable := err == nil
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		s.logger.WarnContext(ctx, "campaign fetch failed, recording no_data",
			slog.String("account_id", acc.AccountID), slog.Any("error", err))
	}
	snap := domain.NewHealthSnapshot(acc, day, campaigns, reachable)
	if err = s.health.SaveHealthSnapshot(ctx, &snap); err != nil {
		return fmt.Errorf("save health snapshot: %w", err)
	}
	s.logger.DebugContext(ctx, "health snapshot saved",
		slog.String("account_id", acc.AccountID), slog.String("status", string(snap.Status)))
	return nil
}

var _ port.ReviewUseCase = (*ReviewService)(nil)
