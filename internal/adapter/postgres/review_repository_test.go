package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"budget-review/internal/core/domain"
)

var saoPaulo = time.FixedZone("BRT", -3*60*60)

func testReview() *domain.BudgetReview {
	ignoredOn := time.Date(2025, time.September, 20, 0, 0, 0, 0, saoPaulo)
	return &domain.BudgetReview{
		ReviewKey: domain.ReviewKey{
			ClientID:     "c1",
			AccountRowID: 7,
			Platform:     domain.PlatformMeta,
			ReviewDate:   time.Date(2025, time.September, 20, 0, 0, 0, 0, saoPaulo),
		},
		AccountName:        "Acme",
		CurrentDailyBudget: 150,
		MonthlyBudget:      3000,
		IdealDailyBudget:   163.64,
		WarningIgnored:     true,
		WarningIgnoredDate: &ignoredOn,
	}
}

func TestReviewRepository_SaveReview_CommitsBothWrites(t *testing.T) {
	db := new(mockDBTX)
	repo := NewReviewRepository(db)
	ctx := context.Background()
	created := time.Date(2025, time.September, 20, 12, 0, 0, 0, time.UTC)

	var upsertArgs []any
	db.On("QueryRow", ctx, sqlContaining("INSERT INTO budget_reviews"), mock.Anything).
		Run(func(args mock.Arguments) { upsertArgs = args.Get(2).([]any) }).
		Return(&mockRow{scanFn: func(dest ...any) error {
			*dest[0].(*int64) = 42
			*dest[1].(*time.Time) = created
			*dest[2].(*time.Time) = created
			return nil
		}})
	db.On("Exec", ctx, sqlContaining("UPDATE client_accounts"), mock.Anything).
		Return(pgconn.NewCommandTag("UPDATE 1"), nil)

	balance := 250.0
	review := testReview()
	err := repo.SaveReview(ctx, review, domain.AccountCache{AccountRowID: 7, Name: "Acme", RemainingBalance: &balance})
	require.NoError(t, err)

	assert.Equal(t, int64(42), review.ID)
	assert.Equal(t, created, review.CreatedAt)
	assert.True(t, db.tx.committed)
	assert.False(t, db.tx.rolledBack)

	// Civil dates are sent as UTC midnight regardless of the clock's zone.
	assert.Equal(t, time.Date(2025, time.September, 20, 0, 0, 0, 0, time.UTC), upsertArgs[3])
	assert.Equal(t, []float64{}, upsertArgs[17], "nil spend history is stored as an empty array")
	db.AssertExpectations(t)
}

func TestReviewRepository_SaveReview_CustomBudgetViolation(t *testing.T) {
	db := new(mockDBTX)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	fk := &pgconn.PgError{Code: "23503", ConstraintName: "budget_reviews_custom_budget_fk"}
	db.On("QueryRow", ctx, sqlContaining("INSERT INTO budget_reviews"), mock.Anything).
		Return(&mockRow{scanErr: fk})

	err := repo.SaveReview(ctx, testReview(), domain.AccountCache{AccountRowID: 7})
	require.ErrorIs(t, err, domain.ErrCustomBudgetReference)

	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr)
	assert.True(t, db.tx.rolledBack)
	assert.False(t, db.tx.committed)
	db.AssertNotCalled(t, "Exec", mock.Anything, mock.Anything, mock.Anything)
}

func TestReviewRepository_SaveReview_OtherForeignKeyIsPlainError(t *testing.T) {
	db := new(mockDBTX)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	fk := &pgconn.PgError{Code: "23503", ConstraintName: "budget_reviews_account_row_id_fkey"}
	db.On("QueryRow", ctx, sqlContaining("INSERT INTO budget_reviews"), mock.Anything).
		Return(&mockRow{scanErr: fk})

	err := repo.SaveReview(ctx, testReview(), domain.AccountCache{AccountRowID: 7})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrCustomBudgetReference)
}

func TestReviewRepository_SaveReview_CacheFailureRollsBack(t *testing.T) {
	db := new(mockDBTX)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	db.On("QueryRow", ctx, sqlContaining("INSERT INTO budget_reviews"), mock.Anything).
		Return(&mockRow{scanFn: func(dest ...any) error { return nil }})
	db.On("Exec", ctx, sqlContaining("UPDATE client_accounts"), mock.Anything).
		Return(pgconn.CommandTag{}, errors.New("connection reset"))

	err := repo.SaveReview(ctx, testReview(), domain.AccountCache{AccountRowID: 7})
	require.ErrorContains(t, err, "update account cache")
	assert.True(t, db.tx.rolledBack)
}

func TestReviewRepository_FindReview_NotFound(t *testing.T) {
	db := new(mockDBTX)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	db.On("QueryRow", ctx, sqlContaining("FROM budget_reviews"), mock.Anything).
		Return(&mockRow{scanErr: pgx.ErrNoRows})

	got, err := repo.FindReview(ctx, testReview().ReviewKey)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestReviewRepository_CleanupStale_Scoped(t *testing.T) {
	db := new(mockDBTX)
	repo := NewReviewRepository(db)
	ctx := context.Background()
	day := time.Date(2025, time.September, 20, 0, 0, 0, 0, saoPaulo)
	utcDay := time.Date(2025, time.September, 20, 0, 0, 0, 0, time.UTC)
	clients := []string{"c1", "c2"}
	wantArgs := []any{"meta", utcDay, clients}

	db.On("Exec", ctx, sqlContaining("review_date < $2 AND client_id = ANY($3)"), wantArgs).
		Return(pgconn.NewCommandTag("DELETE 3"), nil).Once()
	db.On("Exec", ctx, sqlContaining("review_date = $2"), wantArgs).
		Return(pgconn.NewCommandTag("DELETE 1"), nil).Once()

	res, err := repo.CleanupStale(ctx, domain.PlatformMeta, day, domain.ReviewScope{ClientIDs: clients})
	require.NoError(t, err)
	assert.Equal(t, domain.CleanupResult{StaleDeleted: 3, DuplicatesDeleted: 1}, res)
	assert.True(t, db.tx.committed)
	db.AssertExpectations(t)
}

func TestScopeFilter(t *testing.T) {
	row := int64(9)
	filter, args := scopeFilter(domain.ReviewScope{ClientIDs: []string{"c1"}, AccountRowID: &row}, "google", "d")
	assert.Equal(t, " AND client_id = ANY($3) AND account_row_id = $4", filter)
	assert.Equal(t, []any{"google", "d", []string{"c1"}, int64(9)}, args)

	filter, args = scopeFilter(domain.ReviewScope{}, "meta", "d")
	assert.Empty(t, filter)
	assert.Len(t, args, 2)
}

func TestReviewRepository_UpdateWarning_NotFound(t *testing.T) {
	db := new(mockDBTX)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	db.On("QueryRow", ctx, sqlContaining("UPDATE budget_reviews"), mock.Anything).
		Return(&mockRow{scanErr: pgx.ErrNoRows})

	err := repo.UpdateWarning(ctx, &domain.BudgetReview{ID: 5})
	assert.True(t, domain.IsNotFound(err))
}
