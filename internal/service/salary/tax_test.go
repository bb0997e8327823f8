package salary

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/staffledger/payroll-backend-go/internal/domain/salary"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// Three brackets: 0-250k at 0%, 250k-500k at 5%, 500k+ at 20%.
func testSlabs() []salary.TaxSlab {
	return []salary.TaxSlab{
		{MinIncome: dec("0"), MaxIncome: decPtr("250000"), RatePercent: dec("0")},
		{MinIncome: dec("250000"), MaxIncome: decPtr("500000"), RatePercent: dec("5")},
		{MinIncome: dec("500000"), MaxIncome: nil, RatePercent: dec("20")},
	}
}

func TestProgressiveTax(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		income string
		want   string
	}{
		{"below first bracket", "200000", "0"},
		{"exactly at free limit", "250000", "0"},
		{"inside second bracket", "400000", "7500"},
		{"at second bracket ceiling", "500000", "12500"},
		{"into unbounded bracket", "600000", "32500"},
		{"large income", "1200000", "152500"},
		{"zero income", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProgressiveTax(dec(tt.income), testSlabs())
			assert.True(t, dec(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestProgressiveTax_NoSlabs(t *testing.T) {
	t.Parallel()

	got := ProgressiveTax(dec("600000"), nil)
	assert.True(t, got.IsZero())
}

func TestProgressiveTax_NegativeIncome(t *testing.T) {
	t.Parallel()

	got := ProgressiveTax(dec("-1000"), testSlabs())
	assert.True(t, got.IsZero())
}

func TestProgressiveTax_UnsortedSlabs(t *testing.T) {
	t.Parallel()

	slabs := []salary.TaxSlab{
		{MinIncome: dec("500000"), MaxIncome: nil, RatePercent: dec("20")},
		{MinIncome: dec("0"), MaxIncome: decPtr("250000"), RatePercent: dec("0")},
		{MinIncome: dec("250000"), MaxIncome: decPtr("500000"), RatePercent: dec("5")},
	}

	got := ProgressiveTax(dec("600000"), slabs)
	assert.True(t, dec("32500").Equal(got), "got %s", got)
}

func TestProgressiveTax_OverlappingSlabs(t *testing.T) {
	t.Parallel()

	// The second bracket overlaps the first; the overlap must not be
	// taxed twice.
	slabs := []salary.TaxSlab{
		{MinIncome: dec("0"), MaxIncome: decPtr("300000"), RatePercent: dec("5")},
		{MinIncome: dec("250000"), MaxIncome: nil, RatePercent: dec("10")},
	}

	// 300000 at 5% = 15000, then (400000-300000) at 10% = 10000.
	got := ProgressiveTax(dec("400000"), slabs)
	assert.True(t, dec("25000").Equal(got), "got %s", got)
}
