// Package clock provides the service's notion of "today" in a fixed civil
// timezone.
package clock

import (
	"fmt"
	"time"

	"budget-review/internal/core/domain"
)

// DefaultTimezone is the civil timezone reviews are dated in.
const DefaultTimezone = "America/Sao_Paulo"

// Civil is a port.Clock reading the system time in a fixed location.
type Civil struct {
	loc *time.Location
	now func() time.Time
}

// New returns a Civil clock for the named IANA timezone.
func New(timezone string) (*Civil, error) {
	if timezone == "" {
		timezone = DefaultTimezone
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", timezone, err)
	}
	return &Civil{loc: loc, now: time.Now}, nil
}

// Fixed returns a clock frozen at t, read in t's location. Used by tests.
func Fixed(t time.Time) *Civil {
	return &Civil{loc: t.Location(), now: func() time.Time { return t }}
}

// Now returns the current instant in the clock's location.
func (c *Civil) Now() time.Time {
	return c.now().In(c.loc)
}

// Today returns midnight of the current civil date.
func (c *Civil) Today() time.Time {
	return domain.DateOnly(c.Now())
}

// Location returns the clock's timezone.
func (c *Civil) Location() *time.Location {
	return c.loc
}
