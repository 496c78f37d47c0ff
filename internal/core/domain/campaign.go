package domain

import "time"

// CampaignMetrics is one active campaign's delivery on a given day.
// Amounts are in major currency units.
type CampaignMetrics struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Status      string  `json:"status"`
	DailyBudget float64 `json:"daily_budget"`
	Cost        float64 `json:"cost"`
	Impressions int64   `json:"impressions"`
}

// Unserved reports whether the campaign neither spent nor delivered. A
// campaign spending without impressions is a different problem and does
// not count.
func (c CampaignMetrics) Unserved() bool {
	return c.Impressions == 0 && c.Cost == 0
}

// HealthStatus classifies the delivery of an account's active campaigns.
type HealthStatus string

const (
	HealthNoData         HealthStatus = "no_data"
	HealthNoCampaigns    HealthStatus = "no_campaigns"
	HealthAllRunning     HealthStatus = "all_running"
	HealthNoneRunning    HealthStatus = "none_running"
	HealthPartialRunning HealthStatus = "partial_running"
)

// ClassifyHealth evaluates campaigns afresh. reachable is false when the
// campaign list could not be fetched at all.
func ClassifyHealth(campaigns []CampaignMetrics, reachable bool) HealthStatus {
	if !reachable {
		return HealthNoData
	}
	if len(campaigns) == 0 {
		return HealthNoCampaigns
	}
	unserved := countUnserved(campaigns)
	switch {
	case unserved == 0:
		return HealthAllRunning
	case unserved == len(campaigns):
		return HealthNoneRunning
	default:
		return HealthPartialRunning
	}
}

func countUnserved(campaigns []CampaignMetrics) int {
	n := 0
	for _, c := range campaigns {
		if c.Unserved() {
			n++
		}
	}
	return n
}

// CampaignHealthSnapshot is the per-day health record of an account.
// Identity is (ClientID, AccountRowID, Platform, SnapshotDate).
type CampaignHealthSnapshot struct {
	ID                int64
	ClientID          string
	AccountRowID      int64
	Platform          Platform
	SnapshotDate      time.Time
	Status            HealthStatus
	ActiveCampaigns   int
	UnservedCampaigns int
	TotalCost         float64
	TotalImpressions  int64
	Campaigns         []CampaignMetrics
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewHealthSnapshot aggregates campaigns into a snapshot for day.
func NewHealthSnapshot(acc *ClientAccount, day time.Time, campaigns []CampaignMetrics, reachable bool) CampaignHealthSnapshot {
	s := CampaignHealthSnapshot{
		ClientID:     acc.ClientID,
		AccountRowID: acc.ID,
		Platform:     acc.Platform,
		SnapshotDate: DateOnly(day),
		Status:       ClassifyHealth(campaigns, reachable),
		Campaigns:    campaigns,
	}
	if s.Campaigns == nil {
		s.Campaigns = []CampaignMetrics{}
	}
	s.ActiveCampaigns = len(campaigns)
	s.UnservedCampaigns = countUnserved(campaigns)
	for _, c := range campaigns {
		s.TotalCost += c.Cost
		s.TotalImpressions += c.Impressions
	}
	return s
}
