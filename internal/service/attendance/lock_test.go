package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsDateEditable(t *testing.T) {
	t.Parallel()

	today := day(2025, time.June, 10)
	cfg := LockConfig{GracePeriodDays: 3, MaxFutureDays: 0}

	tests := []struct {
		name   string
		target time.Time
		want   bool
	}{
		{"today", day(2025, time.June, 10), true},
		{"yesterday", day(2025, time.June, 9), true},
		{"grace boundary", day(2025, time.June, 7), true},
		{"one past grace", day(2025, time.June, 6), false},
		{"far past", day(2025, time.May, 1), false},
		{"tomorrow", day(2025, time.June, 11), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDateEditable(today, tt.target, cfg))
		})
	}
}

func TestIsDateEditable_FutureWindow(t *testing.T) {
	t.Parallel()

	today := day(2025, time.June, 10)
	cfg := LockConfig{GracePeriodDays: 3, MaxFutureDays: 2}

	assert.True(t, IsDateEditable(today, day(2025, time.June, 11), cfg))
	assert.True(t, IsDateEditable(today, day(2025, time.June, 12), cfg))
	assert.False(t, IsDateEditable(today, day(2025, time.June, 13), cfg))
}

func TestIsDateEditable_IgnoresTimeOfDay(t *testing.T) {
	t.Parallel()

	// Late evening against an early-morning target on the grace
	// boundary must still be editable.
	today := time.Date(2025, time.June, 10, 23, 59, 0, 0, time.UTC)
	target := time.Date(2025, time.June, 7, 1, 0, 0, 0, time.UTC)
	cfg := LockConfig{GracePeriodDays: 3, MaxFutureDays: 0}

	assert.True(t, IsDateEditable(today, target, cfg))
}

func TestIsDateEditable_ZeroGrace(t *testing.T) {
	t.Parallel()

	today := day(2025, time.June, 10)
	cfg := LockConfig{GracePeriodDays: 0, MaxFutureDays: 0}

	assert.True(t, IsDateEditable(today, day(2025, time.June, 10), cfg))
	assert.False(t, IsDateEditable(today, day(2025, time.June, 9), cfg))
	assert.False(t, IsDateEditable(today, day(2025, time.June, 11), cfg))
}
