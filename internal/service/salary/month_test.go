package salary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffledger/payroll-backend-go/internal/domain/salary"
)

func TestNormalizeMonth(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"canonical", "2025-03", "2025-03"},
		{"compact", "202503", "2025-03"},
		{"reversed", "3-2025", "2025-03"},
		{"reversed two digit", "11-2025", "2025-11"},
		{"bare month uses current year", "7", "2025-07"},
		{"bare month two digit", "12", "2025-12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeMonthAt(tt.input, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeMonth_Invalid(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"garbage", "march"},
		{"month zero", "2025-00"},
		{"month thirteen", "2025-13"},
		{"reversed month thirteen", "13-2025"},
		{"bare month out of range", "13"},
		{"year too old", "1999-05"},
		{"year too far", "2300-05"},
		{"date not month", "2025-03-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := normalizeMonthAt(tt.input, now)
			assert.ErrorIs(t, err, salary.ErrInvalidMonth)
		})
	}
}

func TestMonthBounds(t *testing.T) {
	t.Parallel()

	start, end, err := MonthBounds("2025-02")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestMonthBounds_DecemberRollsOver(t *testing.T) {
	t.Parallel()

	start, end, err := MonthBounds("2025-12")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestMonthBounds_Invalid(t *testing.T) {
	t.Parallel()

	_, _, err := MonthBounds("not-a-month")
	assert.ErrorIs(t, err, salary.ErrInvalidMonth)
}
