package domain

import "time"

// Client is an advertiser owning one or more platform accounts.
type Client struct {
	ID     string
	Name   string
	Active bool
}

// ClientAccount pairs a client with an account on one platform. The cached
// balance and funding fields are refreshed after every successful review.
type ClientAccount struct {
	ID            int64
	ClientID      string
	Platform      Platform
	AccountID     string // platform-side identifier
	Name          string
	MonthlyBudget float64
	IsPrimary     bool
	IsActive      bool

	RemainingBalance  *float64
	IsPrepay          *bool
	LastFundingAt     *time.Time
	LastFundingAmount *float64
	UpdatedAt         time.Time
}

// AccountBalance is the balance and billing metadata read from the
// platform. LastFunding* are nil unless the platform reported both values.
type AccountBalance struct {
	RemainingBalance  float64
	IsPrepay          bool
	LastFundingAt     *time.Time
	LastFundingAmount *float64
}

// AccountCache is the set of ClientAccount columns written alongside a
// review. Nil fields leave the stored value untouched.
type AccountCache struct {
	AccountRowID      int64
	Name              string
	RemainingBalance  *float64
	IsPrepay          *bool
	LastFundingAt     *time.Time
	LastFundingAmount *float64
}

// NewAccountCache builds the cache update from an optional balance fetch.
func NewAccountCache(acc *ClientAccount, name string, bal *AccountBalance) AccountCache {
	c := AccountCache{AccountRowID: acc.ID, Name: name}
	if bal == nil {
		return c
	}
	remaining, prepay := bal.RemainingBalance, bal.IsPrepay
	c.RemainingBalance = &remaining
	c.IsPrepay = &prepay
	if bal.LastFundingAt != nil && bal.LastFundingAmount != nil {
		c.LastFundingAt = bal.LastFundingAt
		c.LastFundingAmount = bal.LastFundingAmount
	}
	return c
}

// ApplyCache copies the non-nil cache fields onto the account.
func (a *ClientAccount) ApplyCache(c AccountCache) {
	if c.Name != "" {
		a.Name = c.Name
	}
	if c.RemainingBalance != nil {
		a.RemainingBalance = c.RemainingBalance
	}
	if c.IsPrepay != nil {
		a.IsPrepay = c.IsPrepay
	}
	if c.LastFundingAt != nil {
		a.LastFundingAt = c.LastFundingAt
	}
	if c.LastFundingAmount != nil {
		a.LastFundingAmount = c.LastFundingAmount
	}
}

// CustomBudget overrides a client's default monthly budget inside
// [StartDate, EndDate].
type CustomBudget struct {
	ID        int64
	ClientID  string
	Amount    float64
	StartDate time.Time
	EndDate   time.Time
	Active    bool
	CreatedAt time.Time
}

// Window returns the validity window of the budget.
func (b *CustomBudget) Window() DateWindow {
	return DateWindow{Start: b.StartDate, End: b.EndDate}
}

// AppliesOn reports whether the budget is active and covers day.
func (b *CustomBudget) AppliesOn(day time.Time) bool {
	return b != nil && b.Active && b.Window().Contains(day)
}
