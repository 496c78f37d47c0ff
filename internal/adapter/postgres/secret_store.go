package postgres

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/jackc/pgx/v5"
)

// SecretStore implements port.SecretStore on the app_secrets table.
type SecretStore struct {
	db TxDB
}

// NewSecretStore returns a new store instance.
func NewSecretStore(db TxDB) *SecretStore {
	return &SecretStore{db: db}
}

// GetSecret returns the named secret, or "" when it is not set.
func (s *SecretStore) GetSecret(ctx context.Context, name string) (string, error) {
	var value string
	err := s.db.QueryRow(ctx, `SELECT value FROM app_secrets WHERE name = $1`, name).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get secret %s: %w", name, err)
	}
	return value, nil
}

// PutSecrets upserts every secret in one transaction.
func (s *SecretStore) PutSecrets(ctx context.Context, secrets map[string]string) error {
	if len(secrets) == 0 {
		return nil
	}
	return inTx(ctx, s.db, func(tx pgx.Tx) error {
		for _, name := range slices.Sorted(maps.Keys(secrets)) {
			_, err := tx.Exec(ctx, `INSERT INTO app_secrets (name, value) VALUES ($1, $2)
				ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
				name, secrets[name])
			if err != nil {
				return fmt.Errorf("put secret %s: %w", name, err)
			}
		}
		return nil
	})
}
