package salary

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/staffledger/payroll-backend-go/internal/domain/salary"
)

// ProgressiveTax computes bracketed tax on an annual income. Slabs are
// sorted defensively by min income; callers usually pass sorted input but
// the function must not depend on it. An empty slab list means the
// company simply levies no tax.
func ProgressiveTax(annualIncome decimal.Decimal, slabs []salary.TaxSlab) decimal.Decimal {
	if annualIncome.Sign() <= 0 || len(slabs) == 0 {
		return decimal.Zero
	}

	sorted := make([]salary.TaxSlab, len(slabs))
	copy(sorted, slabs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MinIncome.LessThan(sorted[j].MinIncome)
	})

	total := decimal.Zero
	// Highest ceiling taxed so far; guards against overlapping brackets
	// double-taxing the same slice.
	prevCeiling := decimal.Zero

	for _, slab := range sorted {
		if annualIncome.LessThanOrEqual(slab.MinIncome) {
			break
		}

		upper := annualIncome
		if slab.MaxIncome != nil && slab.MaxIncome.LessThan(upper) {
			upper = *slab.MaxIncome
		}

		lower := slab.MinIncome
		if prevCeiling.GreaterThan(lower) {
			lower = prevCeiling
		}

		if slice := upper.Sub(lower); slice.IsPositive() {
			total = total.Add(slice.Mul(slab.RatePercent).Div(decimal.NewFromInt(100)))
		}

		if upper.GreaterThan(prevCeiling) {
			prevCeiling = upper
		}
		if slab.MaxIncome != nil && annualIncome.LessThanOrEqual(*slab.MaxIncome) {
			break
		}
	}

	return total.Round(2)
}
