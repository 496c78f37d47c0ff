package postgres

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"budget-review/internal/core/domain"
)

func TestHealthRepository_SaveHealthSnapshot(t *testing.T) {
	db := new(mockDBTX)
	repo := NewHealthRepository(db)
	ctx := context.Background()

	var args []any
	db.On("QueryRow", ctx, sqlContaining("ON CONFLICT (client_id, account_row_id, platform, snapshot_date)"), mock.Anything).
		Run(func(a mock.Arguments) { args = a.Get(2).([]any) }).
		Return(&mockRow{scanFn: func(dest ...any) error {
			*dest[0].(*int64) = 11
			return nil
		}})

	acc := &domain.ClientAccount{ID: 7, ClientID: "c1", Platform: domain.PlatformMeta}
	snap := domain.NewHealthSnapshot(acc, time.Date(2025, time.September, 20, 0, 0, 0, 0, time.UTC),
		[]domain.CampaignMetrics{{ID: "x", Cost: 1, Impressions: 10}}, true)
	require.NoError(t, repo.SaveHealthSnapshot(ctx, &snap))

	assert.Equal(t, int64(11), snap.ID)
	assert.Equal(t, "all_running", args[4])

	var stored []domain.CampaignMetrics
	require.NoError(t, json.Unmarshal(args[9].([]byte), &stored))
	assert.Equal(t, snap.Campaigns, stored)
}
