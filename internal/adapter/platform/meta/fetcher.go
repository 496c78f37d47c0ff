// Package meta reads budgets, spend and campaign delivery from the Meta
// Graph API.
package meta

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"budget-review/internal/adapter/platform"
	"budget-review/internal/core/domain"
	"budget-review/internal/core/port"
)

const (
	DefaultBaseURL    = "https://graph.facebook.com"
	DefaultAPIVersion = "v21.0"

	maxPageSize = 500
	// adSetConcurrency bounds parallel ad-set listings per account.
	adSetConcurrency = 4
	statusActive     = "ACTIVE"
	// timeLayout is the Graph API timestamp format.
	timeLayout = "2006-01-02T15:04:05-0700"
)

// Config tunes the Graph API calls.
type Config struct {
	BaseURL    string
	APIVersion string
	// PageSize caps the number of items requested per page.
	PageSize int
	// MaxPages bounds how many pages of a listing are followed.
	MaxPages int
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.APIVersion == "" {
		c.APIVersion = DefaultAPIVersion
	}
	if c.PageSize <= 0 {
		c.PageSize = 100
	}
	c.PageSize = min(c.PageSize, maxPageSize)
	if c.MaxPages <= 0 {
		c.MaxPages = 20
	}
	return c
}

// Fetcher implements port.PlatformFetcher and port.BalanceFetcher for Meta.
type Fetcher struct {
	client *platform.Client
	creds  port.Credentials
	clock  port.Clock
	cfg    Config
	logger *slog.Logger
}

// NewFetcher returns a Meta fetcher.
func NewFetcher(client *platform.Client, creds port.Credentials, clock port.Clock, cfg Config, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{
		client: client,
		creds:  creds,
		clock:  clock,
		cfg:    cfg.withDefaults(),
		logger: logger.With(slog.String("platform", string(domain.PlatformMeta))),
	}
}

// Platform returns domain.PlatformMeta.
func (f *Fetcher) Platform() domain.Platform {
	return domain.PlatformMeta
}

// FetchAccountData sums the daily budgets of the active campaigns and reads
// spend for the requested window. Only a failed campaign listing is an
// error; spend, recent spend and the account name degrade to zero values.
func (f *Fetcher) FetchAccountData(ctx context.Context, req port.FetchRequest) (domain.PlatformData, error) {
	header, err := f.authHeader(ctx)
	if err != nil {
		return nil, err
	}
	log := f.logger.With(slog.String("account_id", req.AccountID))

	campaigns, err := f.activeCampaigns(ctx, header, req.AccountID)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}

	budgets := make([]float64, len(campaigns))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(adSetConcurrency)
	for i, c := range campaigns {
		g.Go(func() error {
			budgets[i] = f.campaignDailyBudget(gctx, header, c, log)
			return nil
		})
	}
	_ = g.Wait()

	data := &domain.MetaData{ActiveCampaigns: len(campaigns)}
	for _, b := range budgets {
		data.Budget += b
	}
	data.Budget = domain.RoundMoney(data.Budget)

	if data.Spent, err = f.accountSpend(ctx, header, req.AccountID, req.Spend); err != nil {
		log.WarnContext(ctx, "meta spend fetch failed", slog.Any("error", err))
	}
	if data.LastFiveDays, err = f.dailySpend(ctx, header, req.AccountID, domain.LastDays(req.Day, 5)); err != nil {
		log.WarnContext(ctx, "meta recent spend fetch failed", slog.Any("error", err))
	}
	if data.Name, err = f.accountName(ctx, header, req.AccountID); err != nil {
		log.DebugContext(ctx, "meta account name unavailable", slog.Any("error", err))
	}
	return data, nil
}

// campaignDailyBudget returns the campaign's own daily budget, or the sum
// of its running ad sets' budgets when the campaign budgets at ad-set
// level and reports none itself.
func (f *Fetcher) campaignDailyBudget(ctx context.Context, header http.Header, c campaign, log *slog.Logger) float64 {
	if b := minorUnits(c.DailyBudget); b > 0 {
		return b
	}
	sets, err := f.adSets(ctx, header, c.ID)
	if err != nil {
		log.WarnContext(ctx, "meta ad set fetch failed", slog.String("campaign_id", c.ID), slog.Any("error", err))
		return 0
	}
	now := f.clock.Now()
	var sum float64
	for _, s := range sets {
		if s.running(now) {
			sum += minorUnits(s.DailyBudget)
		}
	}
	return sum
}

// FetchCampaigns returns the active campaigns with their spend and
// impressions on day. Campaigns without an insights row did not deliver.
func (f *Fetcher) FetchCampaigns(ctx context.Context, accountID string, day time.Time) ([]domain.CampaignMetrics, error) {
	header, err := f.authHeader(ctx)
	if err != nil {
		return nil, err
	}
	campaigns, err := f.activeCampaigns(ctx, header, accountID)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}

	q := url.Values{}
	q.Set("level", "campaign")
	q.Set("fields", "campaign_id,spend,impressions")
	q.Set("time_range", timeRange(domain.DateWindow{Start: day, End: day}))
	q.Set("limit", strconv.Itoa(f.cfg.PageSize))
	rows, err := listAll[insight](ctx, f, header, f.endpoint(actID(accountID), "insights", q))
	if err != nil {
		return nil, fmt.Errorf("campaign insights: %w", err)
	}
	byCampaign := make(map[string]insight, len(rows))
	for _, r := range rows {
		byCampaign[r.CampaignID] = r
	}

	out := make([]domain.CampaignMetrics, 0, len(campaigns))
	for _, c := range campaigns {
		m := domain.CampaignMetrics{
			ID:          c.ID,
			Name:        c.Name,
			Status:      c.EffectiveStatus,
			DailyBudget: minorUnits(c.DailyBudget),
		}
		if r, ok := byCampaign[c.ID]; ok {
			m.Cost = majorUnits(r.Spend)
			m.Impressions, _ = strconv.ParseInt(r.Impressions, 10, 64)
		}
		out = append(out, m)
	}
	return out, nil
}

func (f *Fetcher) activeCampaigns(ctx context.Context, header http.Header, accountID string) ([]campaign, error) {
	q := url.Values{}
	q.Set("fields", "id,name,status,effective_status,daily_budget")
	q.Set("effective_status", `["ACTIVE"]`)
	q.Set("limit", strconv.Itoa(f.cfg.PageSize))
	all, err := listAll[campaign](ctx, f, header, f.endpoint(actID(accountID), "campaigns", q))
	if err != nil {
		return nil, err
	}
	active := all[:0]
	for _, c := range all {
		if isActive(c.Status, c.EffectiveStatus) {
			active = append(active, c)
		}
	}
	return active, nil
}

func (f *Fetcher) adSets(ctx context.Context, header http.Header, campaignID string) ([]adSet, error) {
	q := url.Values{}
	q.Set("fields", "id,name,status,effective_status,daily_budget,end_time")
	q.Set("limit", strconv.Itoa(f.cfg.PageSize))
	return listAll[adSet](ctx, f, header, f.endpoint(campaignID, "adsets", q))
}

func (f *Fetcher) accountSpend(ctx context.Context, header http.Header, accountID string, w domain.DateWindow) (float64, error) {
	q := url.Values{}
	q.Set("level", "account")
	q.Set("fields", "spend")
	q.Set("time_range", timeRange(w))
	var resp page[insight]
	if err := f.client.GetJSON(ctx, f.endpoint(actID(accountID), "insights", q), header, &resp); err != nil {
		return 0, err
	}
	var spent float64
	for _, r := range resp.Data {
		spent += majorUnits(r.Spend)
	}
	return domain.RoundMoney(spent), nil
}

// dailySpend returns the spend of each day of w, oldest first. Days
// without an insights row count as zero.
func (f *Fetcher) dailySpend(ctx context.Context, header http.Header, accountID string, w domain.DateWindow) ([]float64, error) {
	q := url.Values{}
	q.Set("level", "account")
	q.Set("fields", "spend")
	q.Set("time_increment", "1")
	q.Set("time_range", timeRange(w))
	rows, err := listAll[insight](ctx, f, header, f.endpoint(actID(accountID), "insights", q))
	if err != nil {
		return nil, err
	}
	byDay := make(map[string]float64, len(rows))
	for _, r := range rows {
		byDay[r.DateStart] += majorUnits(r.Spend)
	}
	days := w.Days()
	out := make([]float64, len(days))
	for i, d := range days {
		out[i] = byDay[d.Format(domain.DateLayout)]
	}
	return out, nil
}

func (f *Fetcher) accountName(ctx context.Context, header http.Header, accountID string) (string, error) {
	q := url.Values{}
	q.Set("fields", "name")
	var acc struct {
		Name string `json:"name"`
	}
	if err := f.client.GetJSON(ctx, f.endpoint(actID(accountID), "", q), header, &acc); err != nil {
		return "", err
	}
	return acc.Name, nil
}

func (f *Fetcher) authHeader(ctx context.Context) (http.Header, error) {
	token, err := f.creds.SocialToken(ctx)
	if err != nil {
		return nil, err
	}
	return http.Header{"Authorization": {"Bearer " + token}}, nil
}

func (f *Fetcher) endpoint(node, edge string, q url.Values) string {
	u := strings.TrimRight(f.cfg.BaseURL, "/") + "/" + f.cfg.APIVersion + "/" + node
	if edge != "" {
		u += "/" + edge
	}
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

// listAll follows paging.next until exhausted or MaxPages is reached.
func listAll[T any](ctx context.Context, f *Fetcher, header http.Header, first string) ([]T, error) {
	var out []T
	next := first
	for pages := 0; next != "" && pages < f.cfg.MaxPages; pages++ {
		var p page[T]
		if err := f.client.GetJSON(ctx, next, header, &p); err != nil {
			return nil, err
		}
		out = append(out, p.Data...)
		next = p.Paging.Next
	}
	if next != "" {
		f.logger.WarnContext(ctx, "meta listing truncated at page limit", slog.Int("max_pages", f.cfg.MaxPages))
	}
	return out, nil
}

type page[T any] struct {
	Data   []T `json:"data"`
	Paging struct {
		Next string `json:"next"`
	} `json:"paging"`
}

type campaign struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Status          string `json:"status"`
	EffectiveStatus string `json:"effective_status"`
	DailyBudget     string `json:"daily_budget"`
}

type adSet struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Status          string `json:"status"`
	EffectiveStatus string `json:"effective_status"`
	DailyBudget     string `json:"daily_budget"`
	EndTime         string `json:"end_time"`
}

// running reports whether the ad set is active and has not ended.
func (s adSet) running(now time.Time) bool {
	if !isActive(s.Status, s.EffectiveStatus) {
		return false
	}
	if s.EndTime == "" {
		return true
	}
	end, err := time.Parse(timeLayout, s.EndTime)
	if err != nil {
		return true
	}
	return end.After(now)
}

type insight struct {
	CampaignID  string `json:"campaign_id"`
	Spend       string `json:"spend"`
	Impressions string `json:"impressions"`
	DateStart   string `json:"date_start"`
}

func isActive(status, effective string) bool {
	if effective != "" {
		return effective == statusActive
	}
	return status == statusActive
}

func actID(accountID string) string {
	return "act_" + strings.TrimPrefix(accountID, "act_")
}

func timeRange(w domain.DateWindow) string {
	b, _ := json.Marshal(map[string]string{
		"since": w.Start.Format(domain.DateLayout),
		"until": w.End.Format(domain.DateLayout),
	})
	return string(b)
}

// minorUnits converts a budget in cents, as the Graph API reports budgets,
// to currency units.
func minorUnits(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v / 100
}

// majorUnits parses a spend figure already in currency units.
func majorUnits(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

var (
	_ port.PlatformFetcher = (*Fetcher)(nil)
	_ port.BalanceFetcher  = (*Fetcher)(nil)
)
