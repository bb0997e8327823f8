package salary

import "errors"

var (
	ErrBasicSalaryNotConfigured = errors.New("basic salary not configured")
	ErrSalaryConfigNotFound     = errors.New("salary configuration not found")
	ErrSlipNotFound             = errors.New("salary slip not found")
	ErrSlipAlreadyExists        = errors.New("salary slip already exists for this month")
	ErrTaxSlabNotFound          = errors.New("tax slab not found")
	ErrInvalidMonth             = errors.New("invalid month format")
)
