// Package google reads budgets, spend and campaign delivery from the
// Google Ads REST API using GAQL search queries.
package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"budget-review/internal/adapter/platform"
	"budget-review/internal/core/domain"
	"budget-review/internal/core/port"
)

const (
	DefaultBaseURL    = "https://googleads.googleapis.com"
	DefaultAPIVersion = "v21"

	micros = 1_000_000
)

// Config holds the Google Ads API settings.
type Config struct {
	BaseURL        string
	APIVersion     string
	DeveloperToken string
	// LoginCustomerID is the manager account the calls are made through.
	LoginCustomerID string
	MaxPages        int
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.APIVersion == "" {
		c.APIVersion = DefaultAPIVersion
	}
	if c.MaxPages <= 0 {
		c.MaxPages = 20
	}
	c.LoginCustomerID = customerID(c.LoginCustomerID)
	return c
}

// Fetcher implements port.PlatformFetcher for Google Ads.
type Fetcher struct {
	client *platform.Client
	creds  port.Credentials
	cfg    Config
	logger *slog.Logger
}

// NewFetcher returns a Google Ads fetcher.
func NewFetcher(client *platform.Client, creds port.Credentials, cfg Config, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{
		client: client,
		creds:  creds,
		cfg:    cfg.withDefaults(),
		logger: logger.With(slog.String("platform", string(domain.PlatformGoogle))),
	}
}

// Platform returns domain.PlatformGoogle.
func (f *Fetcher) Platform() domain.Platform {
	return domain.PlatformGoogle
}

// FetchAccountData reads the enabled campaigns' daily budgets, spend over
// the requested window and the last five days of spend.
// A non-2xx answer to any query leaves that figure at zero.
func (f *Fetcher) FetchAccountData(ctx context.Context, req port.FetchRequest) (domain.PlatformData, error) {
	header, err := f.authHeader(ctx)
	if err != nil {
		return nil, err
	}
	cid := customerID(req.AccountID)
	log := f.logger.With(slog.String("account_id", cid))
	data := &domain.GoogleData{}

	campaigns, err := f.enabledCampaigns(ctx, header, cid)
	if err = f.tolerate(ctx, log, "campaign budgets", err); err != nil {
		return nil, err
	}
	data.Budget = dailyBudget(campaigns)

	spend, err := f.search(ctx, header, cid, spendQuery(req.Spend))
	if err = f.tolerate(ctx, log, "window spend", err); err != nil {
		return nil, err
	}
	for _, r := range spend {
		data.Spent += fromMicros(r.Metrics.CostMicros)
	}
	data.Spent = domain.RoundMoney(data.Spent)

	recent := domain.LastDays(req.Day, 5)
	daily, err := f.search(ctx, header, cid, dailySpendQuery(recent))
	if err = f.tolerate(ctx, log, "recent spend", err); err != nil {
		return nil, err
	}
	data.LastFiveDays = spreadDaily(recent, daily)

	names, err := f.search(ctx, header, cid, nameQuery)
	if err != nil {
		log.DebugContext(ctx, "google account name unavailable", slog.Any("error", err))
	}
	if len(names) > 0 {
		data.Name = names[0].Customer.DescriptiveName
	}
	return data, nil
}

// FetchCampaigns returns the enabled campaigns joined with their cost and
// impressions on day. Campaigns absent from the metrics rows did not
// deliver. Any failure is returned so the caller can record no_data.
func (f *Fetcher) FetchCampaigns(ctx context.Context, accountID string, day time.Time) ([]domain.CampaignMetrics, error) {
	header, err := f.authHeader(ctx)
	if err != nil {
		return nil, err
	}
	cid := customerID(accountID)

	campaigns, err := f.enabledCampaigns(ctx, header, cid)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	rows, err := f.search(ctx, header, cid, dayMetricsQuery(day))
	if err != nil {
		return nil, fmt.Errorf("campaign metrics: %w", err)
	}
	type delivery struct {
		cost        float64
		impressions int64
	}
	byCampaign := make(map[string]delivery, len(rows))
	for _, r := range rows {
		d := byCampaign[r.Campaign.ID]
		d.cost += fromMicros(r.Metrics.CostMicros)
		d.impressions += r.Metrics.Impressions
		byCampaign[r.Campaign.ID] = d
	}

	out := make([]domain.CampaignMetrics, 0, len(campaigns))
	for _, c := range campaigns {
		d := byCampaign[c.Campaign.ID]
		out = append(out, domain.CampaignMetrics{
			ID:          c.Campaign.ID,
			Name:        c.Campaign.Name,
			Status:      c.Campaign.Status,
			DailyBudget: domain.RoundMoney(fromMicros(c.CampaignBudget.AmountMicros)),
			Cost:        domain.RoundMoney(d.cost),
			Impressions: d.impressions,
		})
	}
	return out, nil
}

func (f *Fetcher) enabledCampaigns(ctx context.Context, header http.Header, cid string) ([]searchRow, error) {
	return f.search(ctx, header, cid, enabledCampaignsQuery)
}

// tolerate swallows non-2xx platform answers, which count as zero data.
func (f *Fetcher) tolerate(ctx context.Context, log *slog.Logger, what string, err error) error {
	if err == nil {
		return nil
	}
	var se *platform.StatusError
	if errors.As(err, &se) {
		log.WarnContext(ctx, "google query rejected, using zero data",
			slog.String("query", what), slog.Int("status", se.StatusCode))
		return nil
	}
	return fmt.Errorf("%s: %w", what, err)
}

func (f *Fetcher) authHeader(ctx context.Context) (http.Header, error) {
	token, err := f.creds.SearchToken(ctx)
	if err != nil {
		return nil, err
	}
	h := http.Header{}
	h.Set("Authorization", "Bearer "+token)
	h.Set("developer-token", f.cfg.DeveloperToken)
	if f.cfg.LoginCustomerID != "" {
		h.Set("login-customer-id", f.cfg.LoginCustomerID)
	}
	return h, nil
}

// search runs a GAQL query and follows nextPageToken up to MaxPages.
func (f *Fetcher) search(ctx context.Context, header http.Header, cid, query string) ([]searchRow, error) {
	url := fmt.Sprintf("%s/%s/customers/%s/googleAds:search",
		strings.TrimRight(f.cfg.BaseURL, "/"), f.cfg.APIVersion, cid)

	var out []searchRow
	token := ""
	for pages := 0; pages < f.cfg.MaxPages; pages++ {
		var resp searchResponse
		if err := f.client.PostJSON(ctx, url, header, searchRequest{Query: query, PageToken: token}, &resp); err != nil {
			return nil, err
		}
		out = append(out, resp.Results...)
		if token = resp.NextPageToken; token == "" {
			return out, nil
		}
	}
	f.logger.WarnContext(ctx, "google search truncated at page limit", slog.Int("max_pages", f.cfg.MaxPages))
	return out, nil
}

// dailyBudget sums campaign budgets, counting a shared budget once.
func dailyBudget(rows []searchRow) float64 {
	seen := make(map[string]bool, len(rows))
	var sum float64
	for _, r := range rows {
		key := r.CampaignBudget.ResourceName
		if key == "" {
			key = "campaign/" + r.Campaign.ID
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		sum += fromMicros(r.CampaignBudget.AmountMicros)
	}
	return domain.RoundMoney(sum)
}

// spreadDaily lays the per-date rows over w, oldest first, zero-filling
// days without a row.
func spreadDaily(w domain.DateWindow, rows []searchRow) []float64 {
	byDay := make(map[string]float64, len(rows))
	for _, r := range rows {
		byDay[r.Segments.Date] += fromMicros(r.Metrics.CostMicros)
	}
	days := w.Days()
	out := make([]float64, len(days))
	for i, d := range days {
		out[i] = domain.RoundMoney(byDay[d.Format(domain.DateLayout)])
	}
	return out
}

func fromMicros(v int64) float64 {
	return float64(v) / micros
}

// customerID strips the dashes of the display form 123-456-7890.
func customerID(id string) string {
	return strings.ReplaceAll(strings.TrimSpace(id), "-", "")
}

var _ port.PlatformFetcher = (*Fetcher)(nil)
