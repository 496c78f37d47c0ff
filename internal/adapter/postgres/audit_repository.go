package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"budget-review/internal/core/domain"
)

// AuditRepository implements port.AuditRepository.
type AuditRepository struct {
	db DBTX
}

// NewAuditRepository returns a new repository instance.
func NewAuditRepository(db DBTX) *AuditRepository {
	return &AuditRepository{db: db}
}

// SaveBatchRun inserts the batch run record.
func (r *AuditRepository) SaveBatchRun(ctx context.Context, run *domain.BatchRun) error {
	err := r.db.QueryRow(ctx, `INSERT INTO batch_runs
			(id, platform, run_date, total, success_count, warning_count, failure_count, duration_ms)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING created_at`,
		run.ID,
		string(run.Platform),
		sqlDate(run.RunDate),
		run.Total,
		run.SuccessCount,
		run.WarningCount,
		run.FailureCount,
		run.Duration.Milliseconds(),
	).Scan(&run.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert batch run: %w", err)
	}
	return nil
}

// AppendAuditLog inserts a free-text audit entry.
func (r *AuditRepository) AppendAuditLog(ctx context.Context, entry domain.AuditLog) error {
	details := entry.Details
	if details == nil {
		details = map[string]any{}
	}
	raw, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("encode audit details: %w", err)
	}
	if _, err = r.db.Exec(ctx, `INSERT INTO audit_logs (kind, message, details) VALUES ($1, $2, $3)`,
		entry.Kind, entry.Message, raw); err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}
