package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodayUsesCivilTimezone(t *testing.T) {
	c, err := New("America/Sao_Paulo")
	require.NoError(t, err)

	// 01:30 UTC on the 16th is still the 15th in São Paulo (UTC-3).
	instant := time.Date(2026, 10, 16, 1, 30, 0, 0, time.UTC)
	c.now = func() time.Time { return instant }

	today := c.Today()
	assert.Equal(t, 15, today.Day())
	assert.Equal(t, 0, today.Hour())
	assert.Equal(t, "America/Sao_Paulo", today.Location().String())
}

func TestNewRejectsUnknownTimezone(t *testing.T) {
	_, err := New("Mars/Olympus_Mons")
	assert.Error(t, err)
}

func TestFixed(t *testing.T) {
	at := time.Date(2026, 3, 20, 14, 0, 0, 0, time.UTC)
	c := Fixed(at)
	assert.Equal(t, at, c.Now())
	assert.Equal(t, time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC), c.Today())
}
