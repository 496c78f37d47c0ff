package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"budget-review/internal/core/domain"
)

// HealthRepository implements port.HealthRepository.
type HealthRepository struct {
	db DBTX
}

// NewHealthRepository returns a new repository instance.
func NewHealthRepository(db DBTX) *HealthRepository {
	return &HealthRepository{db: db}
}

// SaveHealthSnapshot upserts the snapshot on (client, account, platform,
// date). The per-campaign breakdown is stored as JSONB.
func (r *HealthRepository) SaveHealthSnapshot(ctx context.Context, s *domain.CampaignHealthSnapshot) error {
	campaigns := s.Campaigns
	if campaigns == nil {
		campaigns = []domain.CampaignMetrics{}
	}
	raw, err := json.Marshal(campaigns)
	if err != nil {
		return fmt.Errorf("encode campaigns: %w", err)
	}
	err = r.db.QueryRow(ctx, `INSERT INTO campaign_health_snapshots (
			client_id, account_row_id, platform, snapshot_date, status, active_campaigns,
			unserved_campaigns, total_cost, total_impressions, campaigns)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (client_id, account_row_id, platform, snapshot_date) DO UPDATE SET
			status = EXCLUDED.status,
			active_campaigns = EXCLUDED.active_campaigns,
			unserved_campaigns = EXCLUDED.unserved_campaigns,
			total_cost = EXCLUDED.total_cost,
			total_impressions = EXCLUDED.total_impressions,
			campaigns = EXCLUDED.campaigns,
			updated_at = now()
		RETURNING id, created_at, updated_at`,
		s.ClientID,
		s.AccountRowID,
		string(s.Platform),
		sqlDate(s.SnapshotDate),
		string(s.Status),
		s.ActiveCampaigns,
		s.UnservedCampaigns,
		s.TotalCost,
		s.TotalImpressions,
		raw,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert health snapshot: %w", err)
	}
	return nil
}
