package meta

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budget-review/internal/adapter/platform"
	"budget-review/internal/clock"
	"budget-review/internal/core/domain"
	"budget-review/internal/core/port"
)

type staticCreds struct {
	token string
	err   error
}

func (c staticCreds) SocialToken(context.Context) (string, error) { return c.token, c.err }

func (c staticCreds) SearchToken(context.Context) (string, error) { return "", c.err }

var reviewDay = time.Date(2025, time.September, 20, 0, 0, 0, 0, time.UTC)

func newTestFetcher(t *testing.T, mux *http.ServeMux, creds port.Credentials) (*Fetcher, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	client := platform.NewClient(srv.Client(), "meta-test",
		platform.WithSleepFunc(func(context.Context, time.Duration) error { return nil }))
	f := NewFetcher(client, creds, clock.Fixed(reviewDay.Add(12*time.Hour)), Config{BaseURL: srv.URL}, nil)
	return f, srv
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

// accountMux serves one account with a campaign-level budget of 200, a
// campaign budgeted through ad sets and a paused campaign on a second page.
func accountMux(t *testing.T, srvURL *string, c1AdSetCalls *atomic.Int32) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v21.0/act_123/campaigns", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		if r.URL.Query().Get("after") == "p2" {
			writeJSON(w, `{"data":[{"id":"c3","name":"Paused","status":"PAUSED","effective_status":"PAUSED","daily_budget":"99900"}]}`)
			return
		}
		writeJSON(w, fmt.Sprintf(`{"data":[
			{"id":"c1","name":"Brand","status":"ACTIVE","effective_status":"ACTIVE","daily_budget":"20000"},
			{"id":"c2","name":"Prospecting","status":"ACTIVE","effective_status":"ACTIVE"}
		],"paging":{"next":"%s/v21.0/act_123/campaigns?after=p2"}}`, *srvURL))
	})
	mux.HandleFunc("GET /v21.0/c1/adsets", func(w http.ResponseWriter, r *http.Request) {
		c1AdSetCalls.Add(1)
		writeJSON(w, `{"data":[]}`)
	})
	mux.HandleFunc("GET /v21.0/c2/adsets", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"data":[
			{"id":"a1","status":"ACTIVE","effective_status":"ACTIVE","daily_budget":"5000"},
			{"id":"a2","status":"ACTIVE","effective_status":"ACTIVE","daily_budget":"7000","end_time":"2025-09-30T23:59:59-0300"},
			{"id":"a3","status":"ACTIVE","effective_status":"ACTIVE","daily_budget":"9000","end_time":"2025-09-01T00:00:00-0300"},
			{"id":"a4","status":"PAUSED","effective_status":"PAUSED","daily_budget":"3000"}
		]}`)
	})
	mux.HandleFunc("GET /v21.0/act_123/insights", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch {
		case q.Get("time_increment") == "1":
			assert.Equal(t, `{"since":"2025-09-15","until":"2025-09-19"}`, q.Get("time_range"))
			writeJSON(w, `{"data":[
				{"spend":"10","date_start":"2025-09-15"},
				{"spend":"30.5","date_start":"2025-09-17"},
				{"spend":"50","date_start":"2025-09-19"}
			]}`)
		case q.Get("level") == "campaign":
			writeJSON(w, `{"data":[{"campaign_id":"c1","spend":"12.5","impressions":"300"}]}`)
		default:
			assert.Equal(t, `{"since":"2025-09-01","until":"2025-09-20"}`, q.Get("time_range"))
			writeJSON(w, `{"data":[{"spend":"1234.56"}]}`)
		}
	})
	mux.HandleFunc("GET /v21.0/act_123", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"name":"Acme BR"}`)
	})
	return mux
}

func TestFetchAccountData(t *testing.T) {
	var srvURL string
	var c1Calls atomic.Int32
	f, srv := newTestFetcher(t, accountMux(t, &srvURL, &c1Calls), staticCreds{token: "tok"})
	srvURL = srv.URL

	data, err := f.FetchAccountData(context.Background(), port.FetchRequest{
		AccountID: "123",
		Spend:     domain.MonthToDate(reviewDay),
		Day:       reviewDay,
	})
	require.NoError(t, err)

	meta, ok := data.(*domain.MetaData)
	require.True(t, ok)
	assert.Equal(t, 320.0, meta.Budget, "200 from c1 plus 50+70 from c2's running ad sets")
	assert.Equal(t, 2, meta.ActiveCampaigns)
	assert.Equal(t, 1234.56, meta.Spent)
	assert.Equal(t, []float64{10, 0, 30.5, 0, 50}, meta.LastFiveDays)
	assert.Equal(t, "Acme BR", meta.Name)
	assert.Equal(t, 320.0, meta.Pace())
	assert.Zero(t, c1Calls.Load(), "campaign with its own budget must not fall back to ad sets")
}

func TestFetchAccountDataAcceptsPrefixedAccountID(t *testing.T) {
	var srvURL string
	var c1Calls atomic.Int32
	f, srv := newTestFetcher(t, accountMux(t, &srvURL, &c1Calls), staticCreds{token: "tok"})
	srvURL = srv.URL

	data, err := f.FetchAccountData(context.Background(), port.FetchRequest{
		AccountID: "act_123",
		Spend:     domain.MonthToDate(reviewDay),
		Day:       reviewDay,
	})
	require.NoError(t, err)
	assert.Equal(t, 320.0, data.DailyBudget())
}

func TestFetchAccountDataDegradesSpend(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v21.0/act_9/campaigns", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"data":[{"id":"c1","status":"ACTIVE","effective_status":"ACTIVE","daily_budget":"1050"}]}`)
	})
	mux.HandleFunc("GET /v21.0/act_9/insights", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		writeJSON(w, `{"error":{"message":"bad"}}`)
	})
	mux.HandleFunc("GET /v21.0/act_9", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	f, _ := newTestFetcher(t, mux, staticCreds{token: "tok"})

	data, err := f.FetchAccountData(context.Background(), port.FetchRequest{
		AccountID: "9",
		Spend:     domain.MonthToDate(reviewDay),
		Day:       reviewDay,
	})
	require.NoError(t, err)
	assert.Equal(t, 10.5, data.DailyBudget())
	assert.Zero(t, data.TotalSpent())
	assert.Empty(t, data.RecentSpend())
	assert.Empty(t, data.AccountName())
}

func TestFetchAccountDataCampaignFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v21.0/act_9/campaigns", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	f, _ := newTestFetcher(t, mux, staticCreds{token: "tok"})

	_, err := f.FetchAccountData(context.Background(), port.FetchRequest{AccountID: "9", Day: reviewDay})
	var se *platform.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusServiceUnavailable, se.StatusCode)
}

func TestFetchAccountDataMissingToken(t *testing.T) {
	f, _ := newTestFetcher(t, http.NewServeMux(), staticCreds{err: domain.ErrCredentialMissing})

	_, err := f.FetchAccountData(context.Background(), port.FetchRequest{AccountID: "9", Day: reviewDay})
	require.ErrorIs(t, err, domain.ErrCredentialMissing)
	assert.True(t, domain.IsCredentialError(err))
}

func TestFetchCampaigns(t *testing.T) {
	var srvURL string
	var c1Calls atomic.Int32
	f, srv := newTestFetcher(t, accountMux(t, &srvURL, &c1Calls), staticCreds{token: "tok"})
	srvURL = srv.URL

	got, err := f.FetchCampaigns(context.Background(), "123", reviewDay)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "c1", got[0].ID)
	assert.Equal(t, 12.5, got[0].Cost)
	assert.Equal(t, int64(300), got[0].Impressions)
	assert.Equal(t, 200.0, got[0].DailyBudget)
	assert.False(t, got[0].Unserved())

	assert.Equal(t, "c2", got[1].ID)
	assert.True(t, got[1].Unserved())
	assert.Equal(t, domain.HealthPartialRunning, domain.ClassifyHealth(got, true))
}
