package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"budget-review/internal/core/domain"
)

const reviewColumns = `id, client_id, account_row_id, platform, review_date, account_name,
	current_daily_budget, total_spent, monthly_budget, ideal_daily_budget, difference,
	remaining_days, needs_adjustment, using_custom_budget, custom_budget_id,
	custom_budget_amount, custom_budget_start, custom_budget_end, last_five_days_spend,
	weighted_average_spend, warning_ignored, warning_ignored_date, created_at, updated_at`

// ReviewRepository implements port.ReviewRepository.
type ReviewRepository struct {
	db TxDB
}

// NewReviewRepository returns a new repository instance.
func NewReviewRepository(db TxDB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// FindReview returns the review with the given identity, or nil.
func (r *ReviewRepository) FindReview(ctx context.Context, key domain.ReviewKey) (*domain.BudgetReview, error) {
	row := r.db.QueryRow(ctx, `SELECT `+reviewColumns+` FROM budget_reviews
		WHERE client_id = $1 AND account_row_id = $2 AND platform = $3 AND review_date = $4`,
		key.ClientID, key.AccountRowID, string(key.Platform), sqlDate(key.ReviewDate))
	rev, err := scanReview(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rev, nil
}

// SaveReview writes the review in place when its identity already exists
// and inserts it otherwise, then refreshes the account's cached fields.
// Both writes share one transaction. A dangling custom budget reference is
// reported as domain.ErrCustomBudgetReference.
func (r *ReviewRepository) SaveReview(ctx context.Context, review *domain.BudgetReview, cache domain.AccountCache) error {
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := upsertReview(ctx, tx, review); err != nil {
			return err
		}
		return updateAccountCache(ctx, tx, cache)
	})
	if isForeignKeyViolation(err, customBudgetConstraint) {
		return fmt.Errorf("%w: %w", domain.ErrCustomBudgetReference, err)
	}
	return err
}

func upsertReview(ctx context.Context, tx pgx.Tx, rv *domain.BudgetReview) error {
	spend := rv.LastFiveDaysSpend
	if spend == nil {
		spend = []float64{}
	}
	err := tx.QueryRow(ctx, `INSERT INTO budget_reviews (
			client_id, account_row_id, platform, review_date, account_name,
			current_daily_budget, total_spent, monthly_budget, ideal_daily_budget, difference,
			remaining_days, needs_adjustment, using_custom_budget, custom_budget_id,
			custom_budget_amount, custom_budget_start, custom_budget_end, last_five_days_spend,
			weighted_average_spend, warning_ignored, warning_ignored_date)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21)
		ON CONFLICT ON CONSTRAINT budget_reviews_identity DO UPDATE SET
			account_name = EXCLUDED.account_name,
			current_daily_budget = EXCLUDED.current_daily_budget,
			total_spent = EXCLUDED.total_spent,
			monthly_budget = EXCLUDED.monthly_budget,
			ideal_daily_budget = EXCLUDED.ideal_daily_budget,
			difference = EXCLUDED.difference,
			remaining_days = EXCLUDED.remaining_days,
			needs_adjustment = EXCLUDED.needs_adjustment,
			using_custom_budget = EXCLUDED.using_custom_budget,
			custom_budget_id = EXCLUDED.custom_budget_id,
			custom_budget_amount = EXCLUDED.custom_budget_amount,
			custom_budget_start = EXCLUDED.custom_budget_start,
			custom_budget_end = EXCLUDED.custom_budget_end,
			last_five_days_spend = EXCLUDED.last_five_days_spend,
			weighted_average_spend = EXCLUDED.weighted_average_spend,
			warning_ignored = EXCLUDED.warning_ignored,
			warning_ignored_date = EXCLUDED.warning_ignored_date,
			updated_at = now()
		RETURNING id, created_at, updated_at`,
		rv.ClientID,
		rv.AccountRowID,
		string(rv.Platform),
		sqlDate(rv.ReviewDate),
		rv.AccountName,
		rv.CurrentDailyBudget,
		rv.TotalSpent,
		rv.MonthlyBudget,
		rv.IdealDailyBudget,
		rv.Difference,
		rv.RemainingDays,
		rv.NeedsAdjustment,
		rv.UsingCustomBudget,
		rv.CustomBudgetID,
		rv.CustomBudgetAmount,
		sqlDatePtr(rv.CustomBudgetStart),
		sqlDatePtr(rv.CustomBudgetEnd),
		spend,
		rv.WeightedAverageSpend,
		rv.WarningIgnored,
		sqlDatePtr(rv.WarningIgnoredDate),
	).Scan(&rv.ID, &rv.CreatedAt, &rv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert review: %w", err)
	}
	return nil
}

// updateAccountCache leaves a column untouched when its cache value is nil.
func updateAccountCache(ctx context.Context, tx pgx.Tx, c domain.AccountCache) error {
	_, err := tx.Exec(ctx, `UPDATE client_accounts SET
			name = COALESCE(NULLIF($2, ''), name),
			remaining_balance = COALESCE($3, remaining_balance),
			is_prepay = COALESCE($4, is_prepay),
			last_funding_at = COALESCE($5, last_funding_at),
			last_funding_amount = COALESCE($6, last_funding_amount),
			updated_at = now()
		WHERE id = $1`,
		c.AccountRowID, c.Name, c.RemainingBalance, c.IsPrepay, c.LastFundingAt, c.LastFundingAmount)
	if err != nil {
		return fmt.Errorf("update account cache: %w", err)
	}
	return nil
}

// CleanupStale removes reviews of platform dated before day, then the
// reviews dated day, both restricted to scope. Same-day rows whose warning
// was ignored on day are kept so the flag outlives a batch re-run.
func (r *ReviewRepository) CleanupStale(ctx context.Context, platform domain.Platform, day time.Time, scope domain.ReviewScope) (domain.CleanupResult, error) {
	filter, args := scopeFilter(scope, string(platform), sqlDate(day))

	var res domain.CleanupResult
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM budget_reviews
			WHERE platform = $1 AND review_date < $2`+filter, args...)
		if err != nil {
			return fmt.Errorf("delete stale reviews: %w", err)
		}
		res.StaleDeleted = tag.RowsAffected()

		tag, err = tx.Exec(ctx, `DELETE FROM budget_reviews
			WHERE platform = $1 AND review_date = $2
			AND NOT (warning_ignored AND warning_ignored_date IS NOT DISTINCT FROM $2)`+filter, args...)
		if err != nil {
			return fmt.Errorf("delete same-day reviews: %w", err)
		}
		res.DuplicatesDeleted = tag.RowsAffected()
		return nil
	})
	return res, err
}

func scopeFilter(scope domain.ReviewScope, args ...any) (string, []any) {
	var filter string
	if len(scope.ClientIDs) > 0 {
		args = append(args, scope.ClientIDs)
		filter += fmt.Sprintf(" AND client_id = ANY($%d)", len(args))
	}
	if scope.AccountRowID != nil {
		args = append(args, *scope.AccountRowID)
		filter += fmt.Sprintf(" AND account_row_id = $%d", len(args))
	}
	return filter, args
}

// UpdateWarning writes the warning flags of the review identified by
// review.ID.
func (r *ReviewRepository) UpdateWarning(ctx context.Context, review *domain.BudgetReview) error {
	err := r.db.QueryRow(ctx, `UPDATE budget_reviews SET
			warning_ignored = $2,
			warning_ignored_date = $3,
			needs_adjustment = $4,
			updated_at = now()
		WHERE id = $1
		RETURNING updated_at`,
		review.ID, review.WarningIgnored, sqlDatePtr(review.WarningIgnoredDate), review.NeedsAdjustment).
		Scan(&review.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return &domain.NotFoundError{Entity: "review", ID: fmt.Sprint(review.ID)}
	}
	return err
}

func scanReview(row pgx.Row) (*domain.BudgetReview, error) {
	var rv domain.BudgetReview
	err := row.Scan(
		&rv.ID,
		&rv.ClientID,
		&rv.AccountRowID,
		&rv.Platform,
		&rv.ReviewDate,
		&rv.AccountName,
		&rv.CurrentDailyBudget,
		&rv.TotalSpent,
		&rv.MonthlyBudget,
		&rv.IdealDailyBudget,
		&rv.Difference,
		&rv.RemainingDays,
		&rv.NeedsAdjustment,
		&rv.UsingCustomBudget,
		&rv.CustomBudgetID,
		&rv.CustomBudgetAmount,
		&rv.CustomBudgetStart,
		&rv.CustomBudgetEnd,
		&rv.LastFiveDaysSpend,
		&rv.WeightedAverageSpend,
		&rv.WarningIgnored,
		&rv.WarningIgnoredDate,
		&rv.CreatedAt,
		&rv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rv, nil
}
