package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"budget-review/internal/core/domain"
	"budget-review/internal/core/port"
)

const (
	DefaultWorkers = 10
	auditKindBatch = "budget_review_batch"
)

// BatchDeps groups the collaborators of BatchService.
type BatchDeps struct {
	Accounts port.AccountRepository
	Reviews  port.ReviewRepository
	Audit    port.AuditRepository
	Reviewer port.ReviewUseCase
	Clock    port.Clock
	Logger   *slog.Logger
}

// BatchService implements port.BatchUseCase.
type BatchService struct {
	accounts port.AccountRepository
	reviews  port.ReviewRepository
	audit    port.AuditRepository
	reviewer port.ReviewUseCase
	clock    port.Clock
	workers  int
	logger   *slog.Logger
}

// NewBatchService wires a batch service running at most workers reviews
// at a time.
func NewBatchService(deps BatchDeps, workers int) *BatchService {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &BatchService{
		accounts: deps.Accounts,
		reviews:  deps.Reviews,
		audit:    deps.Audit,
		reviewer: deps.Reviewer,
		clock:    deps.Clock,
		workers:  workers,
		logger:   logger,
	}
}

// RunBatch reviews every active account of the requested clients on the
// platform. Stale and same-day reviews in scope are removed before any
// task starts. Tasks run on a bounded pool and never cancel each other; a
// failed task is reported in the result. The batch runs to completion even
// if ctx is cancelled.
func (s *BatchService) RunBatch(ctx context.Context, req port.BatchRequest) (*port.BatchResult, error) {
	platform, err := domain.ParsePlatform(string(req.Platform))
	if err != nil {
		return nil, err
	}
	clientIDs := uniqueIDs(req.ClientIDs)
	if len(clientIDs) == 0 {
		return nil, fmt.Errorf("%w: no client ids", domain.ErrInvalidRequest)
	}
	day := s.clock.Today()
	if !req.Date.IsZero() {
		day = domain.DateOnly(req.Date)
	}
	ctx = context.WithoutCancel(ctx)
	start := time.Now()
	log := s.logger.With(slog.String("platform", string(platform)), slog.String("review_date", day.Format(domain.DateLayout)))

	accounts, err := s.accounts.ListActiveAccounts(ctx, clientIDs, platform)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	cleanup, err := s.reviews.CleanupStale(ctx, platform, day, domain.ReviewScope{ClientIDs: clientIDs})
	if err != nil {
		return nil, fmt.Errorf("cleanup stale reviews: %w", err)
	}
	log.InfoContext(ctx, "batch started",
		slog.Int("clients", len(clientIDs)),
		slog.Int("accounts", len(accounts)),
		slog.Int64("stale_deleted", cleanup.StaleDeleted),
		slog.Int64("duplicates_deleted", cleanup.DuplicatesDeleted),
	)

	results := make([]port.TaskResult, len(accounts))
	g := new(errgroup.Group)
	g.SetLimit(s.workers)
	for i, acc := range accounts {
		g.Go(func() error {
			results[i] = s.runTask(ctx, acc, platform, day)
			return nil
		})
	}
	_ = g.Wait()

	out := &port.BatchResult{
		Summary: summarize(results),
		Results: results,
	}
	out.Summary.RunID = uuid.New()
	out.Summary.Platform = platform
	out.Summary.ReviewDate = day
	out.Summary.Elapsed = time.Since(start)
	out.Summary.Cleanup = cleanup
	for _, r := range results {
		if r.Status == port.TaskError {
			out.Errors = append(out.Errors, r)
		}
	}

	s.record(ctx, log, out.Summary)
	return out, nil
}

// runTask reviews one account. Panics are reported as task errors and a
// dangling custom budget reference as a warning.
func (s *BatchService) runTask(ctx context.Context, acc domain.ClientAccount, platform domain.Platform, day time.Time) (res port.TaskResult) {
	res = port.TaskResult{ClientID: acc.ClientID, AccountID: acc.AccountID}
	defer func() {
		if r := recover(); r != nil {
			s.logger.ErrorContext(ctx, "review task panicked",
				slog.String("client_id", acc.ClientID),
				slog.String("account_id", acc.AccountID),
				slog.Any("panic", r),
			)
			res.Status = port.TaskError
			res.Result = nil
			res.Error = fmt.Sprintf("panic: %v", r)
		}
	}()

	rr, err := s.reviewer.ReviewAccount(ctx, port.ReviewRequest{
		ClientID:  acc.ClientID,
		AccountID: acc.AccountID,
		Platform:  platform,
		Date:      day,
	})
	switch {
	case err == nil:
		res.Status = port.TaskSuccess
		res.Result = rr
	case errors.Is(err, domain.ErrCustomBudgetReference):
		res.Status = port.TaskWarning
		res.Error = err.Error()
	default:
		res.Status = port.TaskError
		res.Error = err.Error()
		s.logger.WarnContext(ctx, "review task failed",
			slog.String("client_id", acc.ClientID),
			slog.String("account_id", acc.AccountID),
			slog.Any("error", err),
		)
	}
	return res
}

func summarize(results []port.TaskResult) port.BatchSummary {
	sum := port.BatchSummary{Total: len(results)}
	for _, r := range results {
		switch r.Status {
		case port.TaskSuccess:
			sum.SuccessCount++
		case port.TaskWarning:
			sum.WarningCount++
		default:
			sum.ErrorCount++
		}
	}
	if sum.Total > 0 {
		sum.SuccessRate = decimal.NewFromInt(int64(sum.SuccessCount * 100)).
			Div(decimal.NewFromInt(int64(sum.Total))).
			Round(2).
			InexactFloat64()
	}
	return sum
}

// record writes the batch run row and its audit entry. Failures are logged
// only; the batch outcome is already final.
func (s *BatchService) record(ctx context.Context, log *slog.Logger, sum port.BatchSummary) {
	run := &domain.BatchRun{
		ID:           sum.RunID,
		Platform:     sum.Platform,
		RunDate:      sum.ReviewDate,
		Total:        sum.Total,
		SuccessCount: sum.SuccessCount,
		WarningCount: sum.WarningCount,
		FailureCount: sum.ErrorCount,
		Duration:     sum.Elapsed,
	}
	if err := s.audit.SaveBatchRun(ctx, run); err != nil {
		log.ErrorContext(ctx, "save batch run failed", slog.Any("error", err))
	}

	entry := domain.AuditLog{
		Kind: auditKindBatch,
		Message: fmt.Sprintf("%s budget review for %s: %d/%d succeeded, %d warnings, %d errors",
			sum.Platform, sum.ReviewDate.Format(domain.DateLayout),
			sum.SuccessCount, sum.Total, sum.WarningCount, sum.ErrorCount),
		Details: map[string]any{
			"run_id":             sum.RunID.String(),
			"success_rate":       sum.SuccessRate,
			"elapsed_ms":         sum.Elapsed.Milliseconds(),
			"stale_deleted":      sum.Cleanup.StaleDeleted,
			"duplicates_deleted": sum.Cleanup.DuplicatesDeleted,
		},
	}
	if err := s.audit.AppendAuditLog(ctx, entry); err != nil {
		log.ErrorContext(ctx, "append audit log failed", slog.Any("error", err))
	}
	log.InfoContext(ctx, "batch finished",
		slog.String("run_id", sum.RunID.String()),
		slog.Int("total", sum.Total),
		slog.Int("success", sum.SuccessCount),
		slog.Int("warning", sum.WarningCount),
		slog.Int("error", sum.ErrorCount),
		slog.Duration("elapsed", sum.Elapsed),
	)
}

// uniqueIDs drops empty and repeated ids, keeping first-seen order.
func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok || id == "" {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

var _ port.BatchUseCase = (*BatchService)(nil)
