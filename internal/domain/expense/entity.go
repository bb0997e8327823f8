package expense

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyExpense - aggregate payroll spend for one (company, month),
// recomputed from stored slips after every generation run.
type MonthlyExpense struct {
	ID         string
	CompanyID  string
	Month      string // canonical YYYY-MM
	TotalGross decimal.Decimal
	SlipCount  int
	UpdatedAt  time.Time
}
