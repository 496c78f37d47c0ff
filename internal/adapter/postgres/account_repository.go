package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"budget-review/internal/core/domain"
)

const accountColumns = `a.id, a.client_id, a.platform, a.account_id, a.name, a.monthly_budget,
	a.is_primary, a.is_active, a.remaining_balance, a.is_prepay, a.last_funding_at,
	a.last_funding_amount, a.updated_at`

// AccountRepository implements port.AccountRepository.
type AccountRepository struct {
	db DBTX
}

// NewAccountRepository returns a new repository instance.
func NewAccountRepository(db DBTX) *AccountRepository {
	return &AccountRepository{db: db}
}

// GetClient returns a client by id.
func (r *AccountRepository) GetClient(ctx context.Context, clientID string) (*domain.Client, error) {
	var c domain.Client
	err := r.db.QueryRow(ctx, `SELECT id, name, active FROM clients WHERE id = $1`, clientID).
		Scan(&c.ID, &c.Name, &c.Active)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetAccount returns the client's active account with the given platform
// id.
func (r *AccountRepository) GetAccount(ctx context.Context, clientID, accountID string, platform domain.Platform) (*domain.ClientAccount, error) {
	row := r.db.QueryRow(ctx, `SELECT `+accountColumns+`
		FROM client_accounts a
		WHERE a.client_id = $1 AND a.account_id = $2 AND a.platform = $3 AND a.is_active`,
		clientID, accountID, string(platform))
	return oneAccount(row)
}

// GetPrimaryAccount returns the client's active primary account on
// platform, falling back to its oldest active account when none is marked
// primary.
func (r *AccountRepository) GetPrimaryAccount(ctx context.Context, clientID string, platform domain.Platform) (*domain.ClientAccount, error) {
	row := r.db.QueryRow(ctx, `SELECT `+accountColumns+`
		FROM client_accounts a
		WHERE a.client_id = $1 AND a.platform = $2 AND a.is_active
		ORDER BY a.is_primary DESC, a.id
		LIMIT 1`,
		clientID, string(platform))
	return oneAccount(row)
}

// ListActiveAccounts returns the active accounts of the given active
// clients on platform.
func (r *AccountRepository) ListActiveAccounts(ctx context.Context, clientIDs []string, platform domain.Platform) ([]domain.ClientAccount, error) {
	rows, err := r.db.Query(ctx, `SELECT `+accountColumns+`
		FROM client_accounts a
		JOIN clients c ON c.id = a.client_id AND c.active
		WHERE a.client_id = ANY($1) AND a.platform = $2 AND a.is_active
		ORDER BY a.client_id, a.id`,
		clientIDs, string(platform))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ClientAccount, error) {
		acc, err := scanAccount(row)
		if err != nil {
			return domain.ClientAccount{}, err
		}
		return *acc, nil
	})
}

// FindActiveCustomBudget returns the most recently created active custom
// budget whose window covers day.
func (r *AccountRepository) FindActiveCustomBudget(ctx context.Context, clientID string, day time.Time) (*domain.CustomBudget, error) {
	var b domain.CustomBudget
	err := r.db.QueryRow(ctx, `SELECT id, client_id, amount, start_date, end_date, active, created_at
		FROM custom_budgets
		WHERE client_id = $1 AND active AND start_date <= $2 AND end_date >= $2
		ORDER BY created_at DESC, id DESC
		LIMIT 1`,
		clientID, sqlDate(day)).
		Scan(&b.ID, &b.ClientID, &b.Amount, &b.StartDate, &b.EndDate, &b.Active, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func oneAccount(row pgx.Row) (*domain.ClientAccount, error) {
	acc, err := scanAccount(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return acc, nil
}

func scanAccount(row pgx.Row) (*domain.ClientAccount, error) {
	var a domain.ClientAccount
	err := row.Scan(
		&a.ID,
		&a.ClientID,
		&a.Platform,
		&a.AccountID,
		&a.Name,
		&a.MonthlyBudget,
		&a.IsPrimary,
		&a.IsActive,
		&a.RemainingBalance,
		&a.IsPrepay,
		&a.LastFundingAt,
		&a.LastFundingAmount,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
