package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrCredentialMissing is returned when a required platform secret is
	// not configured.
	ErrCredentialMissing = errors.New("credential missing")
	// ErrCustomBudgetReference marks a persistence failure caused by the
	// review's custom budget reference (foreign key violation).
	ErrCustomBudgetReference = errors.New("custom budget reference violated")
	// ErrInvalidRequest marks caller input that cannot be processed.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrPlatformData marks a platform fetch that produced no budget figure
	// for the account.
	ErrPlatformData = errors.New("platform data unavailable")
)

// TokenRefreshError is returned when an OAuth access token could not be
// renewed.
type TokenRefreshError struct {
	Reason string
	Err    error
}

func (e *TokenRefreshError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("token refresh failed: %s: %v", e.Reason, e.Err)
	}
	return "token refresh failed: " + e.Reason
}

func (e *TokenRefreshError) Unwrap() error { return e.Err }

// NotFoundError reports a missing client or account.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

// IsCredentialError reports whether err stems from missing or unusable
// platform credentials.
func IsCredentialError(err error) bool {
	var tre *TokenRefreshError
	return errors.Is(err, ErrCredentialMissing) || errors.As(err, &tre)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
