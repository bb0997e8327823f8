package employee

import "time"

type EmploymentStatus string

const (
	StatusActive   EmploymentStatus = "active"
	StatusInactive EmploymentStatus = "inactive"
)

// Employee is owned by exactly one company; every payroll-side entity
// references it through the (company, employee) pair.
type Employee struct {
	ID           string
	CompanyID    string
	FullName     string
	EmployeeCode string
	Status       EmploymentStatus
	HireDate     time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
