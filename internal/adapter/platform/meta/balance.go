package meta

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"budget-review/internal/core/domain"
)

const fundingEvent = "funding_event_successful"

type accountBilling struct {
	Balance         string `json:"balance"`
	IsPrepayAccount bool   `json:"is_prepay_account"`
	SpendCap        string `json:"spend_cap"`
	AmountSpent     string `json:"amount_spent"`
}

type activity struct {
	EventType string `json:"event_type"`
	EventTime string `json:"event_time"`
	// ExtraData is a JSON document encoded as a string.
	ExtraData string `json:"extra_data"`
}

// FetchBalance reads the account's remaining funds and its latest
// successful funding event. Funding is best effort: a failure to read the
// activity log leaves the funding fields unset.
func (f *Fetcher) FetchBalance(ctx context.Context, accountID string) (*domain.AccountBalance, error) {
	header, err := f.authHeader(ctx)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("fields", "balance,is_prepay_account,spend_cap,amount_spent")
	var acc accountBilling
	if err := f.client.GetJSON(ctx, f.endpoint(actID(accountID), "", q), header, &acc); err != nil {
		return nil, fmt.Errorf("account billing: %w", err)
	}

	bal := &domain.AccountBalance{
		RemainingBalance: remainingFunds(acc),
		IsPrepay:         acc.IsPrepayAccount,
	}

	q = url.Values{}
	q.Set("fields", "event_type,event_time,extra_data")
	q.Set("event_type", fundingEvent)
	q.Set("limit", "25")
	var acts page[activity]
	if err := f.client.GetJSON(ctx, f.endpoint(actID(accountID), "activities", q), header, &acts); err != nil {
		f.logger.DebugContext(ctx, "meta funding history unavailable",
			slog.String("account_id", accountID), slog.Any("error", err))
		return bal, nil
	}
	if at, amount, ok := latestFunding(acts.Data); ok {
		bal.LastFundingAt = &at
		bal.LastFundingAmount = &amount
	}
	return bal, nil
}

// remainingFunds is what is left under the spend cap when one is set, or
// the reported balance otherwise. Both are in cents.
func remainingFunds(acc accountBilling) float64 {
	if capCents, _ := strconv.ParseFloat(acc.SpendCap, 64); capCents > 0 {
		spent, _ := strconv.ParseFloat(acc.AmountSpent, 64)
		return domain.RoundMoney(max(capCents-spent, 0) / 100)
	}
	return domain.RoundMoney(minorUnits(acc.Balance))
}

// latestFunding returns the most recent funding event that carries both a
// timestamp and an amount.
func latestFunding(acts []activity) (time.Time, float64, bool) {
	var (
		at     time.Time
		amount float64
		found  bool
	)
	for _, a := range acts {
		if a.EventType != fundingEvent {
			continue
		}
		t, err := time.Parse(timeLayout, a.EventTime)
		if err != nil {
			continue
		}
		var extra struct {
			Amount json.Number `json:"amount"`
		}
		if err := json.Unmarshal([]byte(a.ExtraData), &extra); err != nil || extra.Amount == "" {
			continue
		}
		cents, err := extra.Amount.Float64()
		if err != nil {
			continue
		}
		if !found || t.After(at) {
			at, amount, found = t, domain.RoundMoney(cents/100), true
		}
	}
	return at, amount, found
}
