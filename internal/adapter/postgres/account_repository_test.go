package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"budget-review/internal/core/domain"
)

func TestAccountRepository_GetClient(t *testing.T) {
	db := new(mockDBTX)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	db.On("QueryRow", ctx, mock.AnythingOfType("string"), []any{"c1"}).
		Return(&mockRow{scanFn: func(dest ...any) error {
			*dest[0].(*string) = "c1"
			*dest[1].(*string) = "Acme"
			*dest[2].(*bool) = true
			return nil
		}})
	db.On("QueryRow", ctx, mock.AnythingOfType("string"), []any{"missing"}).
		Return(&mockRow{scanErr: pgx.ErrNoRows})

	c, err := repo.GetClient(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, &domain.Client{ID: "c1", Name: "Acme", Active: true}, c)

	c, err = repo.GetClient(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestAccountRepository_GetAccountSkipsInactive(t *testing.T) {
	db := new(mockDBTX)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	db.On("QueryRow", ctx, sqlContaining("a.platform = $3 AND a.is_active"), []any{"c1", "act_old", "meta"}).
		Return(&mockRow{scanErr: pgx.ErrNoRows})

	acc, err := repo.GetAccount(ctx, "c1", "act_old", domain.PlatformMeta)
	require.NoError(t, err)
	assert.Nil(t, acc)
	db.AssertExpectations(t)
}

func TestAccountRepository_GetPrimaryAccount(t *testing.T) {
	db := new(mockDBTX)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	db.On("QueryRow", ctx, sqlContaining("ORDER BY a.is_primary DESC"), []any{"c1", "google"}).
		Return(&mockRow{scanFn: func(dest ...any) error {
			*dest[0].(*int64) = 3
			*dest[1].(*string) = "c1"
			*dest[2].(*domain.Platform) = domain.PlatformGoogle
			*dest[3].(*string) = "1234567890"
			*dest[5].(*float64) = 900
			*dest[6].(*bool) = true
			*dest[7].(*bool) = true
			return nil
		}})

	acc, err := repo.GetPrimaryAccount(ctx, "c1", domain.PlatformGoogle)
	require.NoError(t, err)
	assert.Equal(t, int64(3), acc.ID)
	assert.Equal(t, domain.PlatformGoogle, acc.Platform)
	assert.Equal(t, 900.0, acc.MonthlyBudget)
	assert.Nil(t, acc.RemainingBalance)
}

func TestAccountRepository_FindActiveCustomBudget(t *testing.T) {
	db := new(mockDBTX)
	repo := NewAccountRepository(db)
	ctx := context.Background()
	day := time.Date(2025, time.September, 20, 23, 30, 0, 0, time.FixedZone("BRT", -3*60*60))

	db.On("QueryRow", ctx, sqlContaining("ORDER BY created_at DESC"),
		[]any{"c1", time.Date(2025, time.September, 20, 0, 0, 0, 0, time.UTC)}).
		Return(&mockRow{scanErr: pgx.ErrNoRows})

	b, err := repo.FindActiveCustomBudget(ctx, "c1", day)
	require.NoError(t, err)
	assert.Nil(t, b)
	db.AssertExpectations(t)
}
