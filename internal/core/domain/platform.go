package domain

import "fmt"

// Platform identifies an advertising platform an account lives on.
type Platform string

const (
	// PlatformMeta is the social ad platform (Meta Graph API).
	PlatformMeta Platform = "meta"
	// PlatformGoogle is the search ad platform (Google Ads API).
	PlatformGoogle Platform = "google"
)

// ParsePlatform converts a raw value into a Platform. An empty value
// defaults to PlatformMeta.
func ParsePlatform(s string) (Platform, error) {
	switch Platform(s) {
	case "":
		return PlatformMeta, nil
	case PlatformMeta, PlatformGoogle:
		return Platform(s), nil
	default:
		return "", fmt.Errorf("%w: unknown platform %q", ErrInvalidRequest, s)
	}
}

func (p Platform) String() string { return string(p) }

// PlatformData is the narrow view of a platform fetch consumed by the
// budget calculator. Implementations are *MetaData and *GoogleData.
type PlatformData interface {
	Platform() Platform
	// DailyBudget is the current effective daily budget reported by the
	// platform, in major currency units.
	DailyBudget() float64
	// TotalSpent is the spend for the requested window.
	TotalSpent() float64
	AccountName() string
	// RecentSpend holds the spend of the last five days, oldest first.
	RecentSpend() []float64
	// Pace is the figure the ideal daily budget is compared against.
	Pace() float64
}

// MetaData is the result of a Meta account fetch.
type MetaData struct {
	Budget          float64
	Spent           float64
	Name            string
	LastFiveDays    []float64
	ActiveCampaigns int
}

func (d *MetaData) Platform() Platform {
	return PlatformMeta
}

func (d *MetaData) DailyBudget() float64 {
	return d.Budget
}

func (d *MetaData) TotalSpent() float64 {
	return d.Spent
}

func (d *MetaData) AccountName() string {
	return d.Name
}

func (d *MetaData) RecentSpend() []float64 {
	return d.LastFiveDays
}

// Pace for Meta accounts is the configured daily budget: campaigns on that
// platform spend close to it every day.
func (d *MetaData) Pace() float64 {
	return d.Budget
}

// GoogleData is the result of a Google Ads account fetch.
type GoogleData struct {
	Budget       float64
	Spent        float64
	Name         string
	LastFiveDays []float64
}

func (d *GoogleData) Platform() Platform {
	return PlatformGoogle
}

func (d *GoogleData) DailyBudget() float64 {
	return d.Budget
}

func (d *GoogleData) TotalSpent() float64 {
	return d.Spent
}

func (d *GoogleData) AccountName() string {
	return d.Name
}

func (d *GoogleData) RecentSpend() []float64 {
	return d.LastFiveDays
}

// Pace for Google accounts is the weighted average of recent spend, since
// search campaigns routinely under- or over-deliver their nominal budget.
func (d *GoogleData) Pace() float64 {
	return WeightedAverage(d.LastFiveDays)
}
