package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type seedAccount struct {
	client    string
	platform  string
	accountID string
	name      string
	monthly   float64
	primary   bool
}

var (
	seedClients = map[string]string{
		"acme":    "Acme Outdoor",
		"globex":  "Globex Foods",
		"initech": "Initech Software",
	}
	seedAccounts = []seedAccount{
		{client: "acme", platform: "meta", accountID: "act_1001", name: "Acme BR", monthly: 3000, primary: true},
		{client: "acme", platform: "google", accountID: "1234567890", name: "Acme Search", monthly: 4500, primary: true},
		{client: "globex", platform: "meta", accountID: "act_2002", name: "Globex", monthly: 1500, primary: true},
		{client: "initech", platform: "meta", accountID: "act_3003", name: "Initech Leads", monthly: 800, primary: true},
		{client: "initech", platform: "meta", accountID: "act_3004", name: "Initech Brand", monthly: 400},
	}
)

// Seed inserts demo clients, accounts and a custom budget covering the
// 10th to the 25th of today's month. Existing rows are left untouched.
func Seed(ctx context.Context, db *pgxpool.Pool, today time.Time) error {
	for id, name := range seedClients {
		_, err := db.Exec(ctx, `INSERT INTO clients (id, name) VALUES ($1, $2) ON CONFLICT DO NOTHING`, id, name)
		if err != nil {
			return fmt.Errorf("seed client %s: %w", id, err)
		}
	}

	for _, a := range seedAccounts {
		_, err := db.Exec(ctx, `INSERT INTO client_accounts
    (client_id, platform, account_id, name, monthly_budget, is_primary)
VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT DO NOTHING`,
			a.client, a.platform, a.accountID, a.name, a.monthly, a.primary)
		if err != nil {
			return fmt.Errorf("seed account %s: %w", a.accountID, err)
		}
	}

	start := time.Date(today.Year(), today.Month(), 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(today.Year(), today.Month(), 25, 0, 0, 0, 0, time.UTC)
	// ON CONFLICT DO NOTHING also absorbs the no-overlap exclusion constraint.
	_, err := db.Exec(ctx, `INSERT INTO custom_budgets (client_id, amount, start_date, end_date)
VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING`, "globex", 900.0, start, end)
	if err != nil {
		return fmt.Errorf("seed custom budget: %w", err)
	}
	return nil
}
