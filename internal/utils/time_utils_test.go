package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekBounds(t *testing.T) {
	tests := []struct {
		name      string
		in        time.Time
		wantStart time.Time
	}{
		{
			name:      "midweek",
			in:        time.Date(2026, 8, 26, 15, 30, 0, 0, time.UTC), // Wednesday
			wantStart: time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "monday maps to itself",
			in:        time.Date(2026, 8, 24, 0, 0, 1, 0, time.UTC),
			wantStart: time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "sunday belongs to the week started six days earlier",
			in:        time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC),
			wantStart: time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := WeekBounds(tt.in, time.UTC)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantStart.AddDate(0, 0, 7), end)
		})
	}
}

func TestMonthBounds(t *testing.T) {
	start, end := MonthBounds(2026, time.December, time.UTC)
	assert.Equal(t, time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2026, 8, 26, 23, 45, 12, 999, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC), StartOfDay(in, time.UTC))
}
