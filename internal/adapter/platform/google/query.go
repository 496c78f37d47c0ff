package google

import (
	"fmt"
	"time"

	"budget-review/internal/core/domain"
)

const enabledCampaignsQuery = `SELECT campaign.id, campaign.name, campaign.status, ` +
	`campaign_budget.resource_name, campaign_budget.amount_micros ` +
	`FROM campaign WHERE campaign.status = 'ENABLED'`

const nameQuery = `SELECT customer.descriptive_name FROM customer LIMIT 1`

func dayMetricsQuery(day time.Time) string {
	return fmt.Sprintf(`SELECT campaign.id, metrics.cost_micros, metrics.impressions `+
		`FROM campaign WHERE campaign.status = 'ENABLED' AND segments.date = '%s'`,
		day.Format(domain.DateLayout))
}

func spendQuery(w domain.DateWindow) string {
	return fmt.Sprintf(`SELECT metrics.cost_micros FROM customer `+
		`WHERE segments.date BETWEEN '%s' AND '%s'`,
		w.Start.Format(domain.DateLayout), w.End.Format(domain.DateLayout))
}

func dailySpendQuery(w domain.DateWindow) string {
	return fmt.Sprintf(`SELECT segments.date, metrics.cost_micros FROM customer `+
		`WHERE segments.date BETWEEN '%s' AND '%s'`,
		w.Start.Format(domain.DateLayout), w.End.Format(domain.DateLayout))
}

type searchRequest struct {
	Query     string `json:"query"`
	PageToken string `json:"pageToken,omitempty"`
}

type searchResponse struct {
	Results       []searchRow `json:"results"`
	NextPageToken string      `json:"nextPageToken"`
}

// searchRow is one GoogleAdsRow. int64 fields are JSON strings on the wire.
type searchRow struct {
	Customer struct {
		DescriptiveName string `json:"descriptiveName"`
	} `json:"customer"`
	Campaign struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Status string `json:"status"`
	} `json:"campaign"`
	CampaignBudget struct {
		ResourceName string `json:"resourceName"`
		AmountMicros int64  `json:"amountMicros,string"`
	} `json:"campaignBudget"`
	Metrics struct {
		CostMicros  int64 `json:"costMicros,string"`
		Impressions int64 `json:"impressions,string"`
	} `json:"metrics"`
	Segments struct {
		Date string `json:"date"`
	} `json:"segments"`
}
