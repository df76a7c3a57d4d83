package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var eat = time.FixedZone("EAT", 3*60*60)

func TestToday_MidnightBoundary(t *testing.T) {
	// 22:30 UTC on May 31 is already June 1 in East Africa; a UTC "today"
	// here would put the status flip a day late
	now := time.Date(2024, 5, 31, 22, 30, 0, 0, time.UTC)

	today := Today(now, eat)

	assert.Equal(t, 2024, today.Year())
	assert.Equal(t, time.June, today.Month())
	assert.Equal(t, 1, today.Day())
}

func TestBeforeDay(t *testing.T) {
	tests := []struct {
		name     string
		a, b     time.Time
		expected bool
	}{
		{
			name:     "earlier calendar day",
			a:        time.Date(2024, 5, 31, 23, 59, 0, 0, eat),
			b:        time.Date(2024, 6, 1, 0, 0, 0, 0, eat),
			expected: true,
		},
		{
			name:     "same day, different hours",
			a:        time.Date(2024, 6, 1, 1, 0, 0, 0, eat),
			b:        time.Date(2024, 6, 1, 23, 0, 0, 0, eat),
			expected: false,
		},
		{
			name:     "UTC instant on the same EAT day",
			a:        time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			b:        time.Date(2024, 6, 1, 10, 0, 0, 0, eat),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BeforeDay(tt.a, tt.b, eat))
		})
	}
}

func TestLoadLocation_DefaultsToNairobi(t *testing.T) {
	loc, err := LoadLocation("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTimezone, loc.String())
}
