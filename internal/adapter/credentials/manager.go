// Package credentials resolves platform access tokens from the secret
// store, renewing the Google Ads OAuth token when it nears expiry.
package credentials

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"budget-review/internal/core/domain"
	"budget-review/internal/core/port"
)

// Secret names in the store.
const (
	SecretMetaAccessToken    = "meta_access_token"
	SecretGoogleRefreshToken = "google_refresh_token"
	SecretGoogleClientID     = "google_client_id"
	SecretGoogleClientSecret = "google_client_secret"
	SecretGoogleAccessToken  = "google_access_token"
	SecretGoogleTokenExpiry  = "google_token_expiry"
)

const (
	// renewBefore is how close to expiry a cached token is still served.
	renewBefore = 5 * time.Minute
	// expirySafetyMargin is subtracted from the lifetime the token endpoint
	// reports.
	expirySafetyMargin = 60 * time.Second
	// defaultLifetime is assumed when the endpoint omits expires_in.
	defaultLifetime = time.Hour

	// DefaultTokenURL is Google's OAuth 2.0 token endpoint.
	DefaultTokenURL = "https://oauth2.googleapis.com/token"
)

// Manager implements port.Credentials on top of a port.SecretStore.
type Manager struct {
	store      port.SecretStore
	clock      port.Clock
	tokenURL   string
	httpClient *http.Client
	logger     *slog.Logger

	// mu serialises Google token renewal so concurrent batch tasks share
	// one refresh.
	mu sync.Mutex
}

// NewManager returns a Manager. An empty tokenURL selects Google's
// endpoint; a nil httpClient selects http.DefaultClient.
func NewManager(store port.SecretStore, clock port.Clock, tokenURL string, httpClient *http.Client, logger *slog.Logger) *Manager {
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		store:      store,
		clock:      clock,
		tokenURL:   tokenURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

// SocialToken returns the static Meta access token.
func (m *Manager) SocialToken(ctx context.Context) (string, error) {
	token, err := m.store.GetSecret(ctx, SecretMetaAccessToken)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", SecretMetaAccessToken, err)
	}
	if token == "" {
		return "", fmt.Errorf("%w: %s", domain.ErrCredentialMissing, SecretMetaAccessToken)
	}
	return token, nil
}

// SearchToken returns the cached Google Ads access token while it has more
// than five minutes left, and renews it through the refresh-token grant
// otherwise.
func (m *Manager) SearchToken(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock.Now()
	cached, expiry, err := m.cachedSearchToken(ctx)
	if err != nil {
		m.logger.WarnContext(ctx, "read cached google token", slog.Any("error", err))
	} else if cached != "" && expiry.Sub(now) > renewBefore {
		return cached, nil
	}

	secrets := make(map[string]string, 3)
	for _, name := range []string{SecretGoogleRefreshToken, SecretGoogleClientID, SecretGoogleClientSecret} {
		v, err := m.store.GetSecret(ctx, name)
		if err != nil {
			return "", &domain.TokenRefreshError{Reason: "read " + name, Err: err}
		}
		if v == "" {
			return "", &domain.TokenRefreshError{Reason: "missing " + name, Err: domain.ErrCredentialMissing}
		}
		secrets[name] = v
	}

	conf := &oauth2.Config{
		ClientID:     secrets[SecretGoogleClientID],
		ClientSecret: secrets[SecretGoogleClientSecret],
		Endpoint: oauth2.Endpoint{
			TokenURL:  m.tokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, m.httpClient)
	tok, err := conf.TokenSource(ctx, &oauth2.Token{RefreshToken: secrets[SecretGoogleRefreshToken]}).Token()
	if err != nil {
		return "", &domain.TokenRefreshError{Reason: refreshReason(err), Err: err}
	}

	expiresAt := tokenExpiry(now, tok)
	update := map[string]string{
		SecretGoogleAccessToken: tok.AccessToken,
		SecretGoogleTokenExpiry: expiresAt.UTC().Format(time.RFC3339),
	}
	if tok.RefreshToken != "" && tok.RefreshToken != secrets[SecretGoogleRefreshToken] {
		update[SecretGoogleRefreshToken] = tok.RefreshToken
	}
	if err = m.store.PutSecrets(ctx, update); err != nil {
		// The token is still usable for this call.
		m.logger.WarnContext(ctx, "persist google token", slog.Any("error", err))
	}
	m.logger.InfoContext(ctx, "google access token renewed", slog.Time("expires_at", expiresAt))
	return tok.AccessToken, nil
}

func (m *Manager) cachedSearchToken(ctx context.Context) (string, time.Time, error) {
	token, err := m.store.GetSecret(ctx, SecretGoogleAccessToken)
	if err != nil || token == "" {
		return "", time.Time{}, err
	}
	raw, err := m.store.GetSecret(ctx, SecretGoogleTokenExpiry)
	if err != nil {
		return "", time.Time{}, err
	}
	expiry, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("parse %s: %w", SecretGoogleTokenExpiry, err)
	}
	return token, expiry, nil
}

// tokenExpiry computes now + expires_in - 60s.
func tokenExpiry(now time.Time, tok *oauth2.Token) time.Time {
	lifetime := defaultLifetime
	switch {
	case tok.ExpiresIn > 0:
		lifetime = time.Duration(tok.ExpiresIn) * time.Second
	case !tok.Expiry.IsZero():
		lifetime = time.Until(tok.Expiry)
	}
	return now.Add(lifetime - expirySafetyMargin)
}

func refreshReason(err error) string {
	var re *oauth2.RetrieveError
	if errors.As(err, &re) {
		if re.ErrorCode != "" {
			return re.ErrorCode
		}
		if re.Response != nil {
			return fmt.Sprintf("token endpoint returned %d", re.Response.StatusCode)
		}
	}
	return "token request failed"
}

var _ port.Credentials = (*Manager)(nil)
