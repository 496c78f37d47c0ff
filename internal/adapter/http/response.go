package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"budget-review/internal/core/domain"
	"budget-review/internal/core/port"
)

// envelope is the body of every response.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body envelope) {
	payload, err := json.Marshal(body)
	if err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
		status = http.StatusInternalServerError
		payload = []byte(`{"success":false,"error":"internal error"}`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}

func (h *Handler) ok(w http.ResponseWriter, data any) {
	h.writeJSON(w, http.StatusOK, envelope{Success: true, Data: data})
}

// fail maps err to a status code. Unexpected errors are logged and hidden
// from the caller.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	var reqErr *requestError
	switch {
	case errors.As(err, &reqErr):
		h.writeJSON(w, reqErr.status, envelope{Error: reqErr.msg})
	case errors.Is(err, domain.ErrInvalidRequest):
		h.writeJSON(w, http.StatusBadRequest, envelope{Error: err.Error()})
	case domain.IsNotFound(err):
		h.writeJSON(w, http.StatusNotFound, envelope{Error: err.Error()})
	case domain.IsCredentialError(err):
		h.logger.ErrorContext(r.Context(), "platform credentials unavailable", slog.Any("error", err))
		h.writeJSON(w, http.StatusBadGateway, envelope{Error: "platform credentials unavailable"})
	case errors.Is(err, domain.ErrPlatformData):
		h.logger.WarnContext(r.Context(), "platform data unavailable", slog.Any("error", err))
		h.writeJSON(w, http.StatusBadGateway, envelope{Error: domain.ErrPlatformData.Error()})
	default:
		h.logger.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path), slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, envelope{Error: "internal error"})
	}
}

type customBudgetView struct {
	ID        int64   `json:"id"`
	Amount    float64 `json:"amount"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
}

type reviewView struct {
	ID                   int64             `json:"id"`
	ClientID             string            `json:"clientId"`
	AccountID            string            `json:"accountId,omitempty"`
	AccountName          string            `json:"accountName"`
	Platform             domain.Platform   `json:"platform"`
	ReviewDate           string            `json:"reviewDate"`
	CurrentDailyBudget   float64           `json:"currentDailyBudget"`
	TotalSpent           float64           `json:"totalSpent"`
	MonthlyBudget        float64           `json:"monthlyBudget"`
	IdealDailyBudget     float64           `json:"idealDailyBudget"`
	Difference           float64           `json:"difference"`
	RemainingDays        int               `json:"remainingDays"`
	NeedsAdjustment      bool              `json:"needsAdjustment"`
	UsingCustomBudget    bool              `json:"usingCustomBudget"`
	CustomBudget         *customBudgetView `json:"customBudget,omitempty"`
	LastFiveDaysSpend    []float64         `json:"lastFiveDaysSpend"`
	WeightedAverageSpend float64           `json:"weightedAverageSpend"`
	WarningIgnored       bool              `json:"warningIgnored"`
	WarningIgnoredDate   string            `json:"warningIgnoredDate,omitempty"`
}

type balanceView struct {
	RemainingBalance  float64  `json:"remainingBalance"`
	IsPrepay          bool     `json:"isPrepay"`
	LastFundingAt     string   `json:"lastFundingAt,omitempty"`
	LastFundingAmount *float64 `json:"lastFundingAmount,omitempty"`
}

type reviewResultView struct {
	Review   reviewView   `json:"review"`
	Balance  *balanceView `json:"balance,omitempty"`
	Warnings []string     `json:"warnings,omitempty"`
}

type taskView struct {
	ClientID  string            `json:"clientId"`
	AccountID string            `json:"accountId"`
	Status    port.TaskStatus   `json:"status"`
	Result    *reviewResultView `json:"result,omitempty"`
	Error     string            `json:"error,omitempty"`
}

type summaryView struct {
	RunID             string          `json:"runId"`
	Platform          domain.Platform `json:"platform"`
	ReviewDate        string          `json:"reviewDate"`
	Total             int             `json:"total"`
	Success           int             `json:"success"`
	Warning           int             `json:"warning"`
	Error             int             `json:"error"`
	SuccessRate       float64         `json:"successRate"`
	ElapsedMs         int64           `json:"elapsedMs"`
	StaleDeleted      int64           `json:"staleDeleted"`
	DuplicatesDeleted int64           `json:"duplicatesDeleted"`
}

type batchView struct {
	Summary summaryView `json:"summary"`
	Results []taskView  `json:"results"`
	Errors  []taskView  `json:"errors"`
}

func newReviewView(r *domain.BudgetReview, accountID string) reviewView {
	v := reviewView{
		ID:                   r.ID,
		ClientID:             r.ClientID,
		AccountID:            accountID,
		AccountName:          r.AccountName,
		Platform:             r.Platform,
		ReviewDate:           r.ReviewDate.Format(domain.DateLayout),
		CurrentDailyBudget:   r.CurrentDailyBudget,
		TotalSpent:           r.TotalSpent,
		MonthlyBudget:        r.MonthlyBudget,
		IdealDailyBudget:     r.IdealDailyBudget,
		Difference:           r.Difference,
		RemainingDays:        r.RemainingDays,
		NeedsAdjustment:      r.NeedsAdjustment,
		UsingCustomBudget:    r.UsingCustomBudget,
		LastFiveDaysSpend:    r.LastFiveDaysSpend,
		WeightedAverageSpend: r.WeightedAverageSpend,
		WarningIgnored:       r.WarningIgnored,
	}
	if v.LastFiveDaysSpend == nil {
		v.LastFiveDaysSpend = []float64{}
	}
	if r.WarningIgnoredDate != nil {
		v.WarningIgnoredDate = r.WarningIgnoredDate.Format(domain.DateLayout)
	}
	if r.UsingCustomBudget && r.CustomBudgetID != nil && r.CustomBudgetAmount != nil &&
		r.CustomBudgetStart != nil && r.CustomBudgetEnd != nil {
		v.CustomBudget = &customBudgetView{
			ID:        *r.CustomBudgetID,
			Amount:    *r.CustomBudgetAmount,
			StartDate: r.CustomBudgetStart.Format(domain.DateLayout),
			EndDate:   r.CustomBudgetEnd.Format(domain.DateLayout),
		}
	}
	return v
}

func newReviewResultView(res *port.ReviewResult) *reviewResultView {
	if res == nil || res.Review == nil {
		return nil
	}
	accountID := ""
	if res.Account != nil {
		accountID = res.Account.AccountID
	}
	v := &reviewResultView{Review: newReviewView(res.Review, accountID), Warnings: res.Warnings}
	if b := res.Balance; b != nil {
		v.Balance = &balanceView{
			RemainingBalance:  b.RemainingBalance,
			IsPrepay:          b.IsPrepay,
			LastFundingAmount: b.LastFundingAmount,
		}
		if b.LastFundingAt != nil {
			v.Balance.LastFundingAt = b.LastFundingAt.UTC().Format(time.RFC3339)
		}
	}
	return v
}

func newTaskViews(tasks []port.TaskResult) []taskView {
	out := make([]taskView, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskView{
			ClientID:  t.ClientID,
			AccountID: t.AccountID,
			Status:    t.Status,
			Result:    newReviewResultView(t.Result),
			Error:     t.Error,
		})
	}
	return out
}

func newBatchView(res *port.BatchResult) batchView {
	s := res.Summary
	return batchView{
		Summary: summaryView{
			RunID:             s.RunID.String(),
			Platform:          s.Platform,
			ReviewDate:        s.ReviewDate.Format(domain.DateLayout),
			Total:             s.Total,
			Success:           s.SuccessCount,
			Warning:           s.WarningCount,
			Error:             s.ErrorCount,
			SuccessRate:       s.SuccessRate,
			ElapsedMs:         s.Elapsed.Milliseconds(),
			StaleDeleted:      s.Cleanup.StaleDeleted,
			DuplicatesDeleted: s.Cleanup.DuplicatesDeleted,
		},
		Results: newTaskViews(res.Results),
		Errors:  newTaskViews(res.Errors),
	}
}
