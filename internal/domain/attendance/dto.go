package attendance

import (
	"github.com/staffledger/payroll-backend-go/internal/pkg/validator"
)

type MarkEntry struct {
	EmployeeID string `json:"employee_id"`
	Status     Status `json:"status"`
}

// MarkAttendanceRequest marks a whole roster for one date in one call.
type MarkAttendanceRequest struct {
	Date    string      `json:"date"`
	Entries []MarkEntry `json:"employees"`
}

func (r MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date is required"})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}

	if len(r.Entries) == 0 {
		errs = append(errs, validator.ValidationError{Field: "employees", Message: "at least one employee entry is required"})
	}
	for _, e := range r.Entries {
		if validator.IsEmpty(e.EmployeeID) {
			errs = append(errs, validator.ValidationError{Field: "employees", Message: "employee_id is required"})
			break
		}
		if !IsStorableStatus(e.Status) && e.Status != StatusUnmarked {
			errs = append(errs, validator.ValidationError{Field: "employees", Message: "invalid attendance status: " + string(e.Status)})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     Status `json:"status"`
	MarkedBy   string `json:"marked_by"`
}

type MarkAttendanceResponse struct {
	Marked  int `json:"marked"`
	Deleted int `json:"deleted"`
}

type AttendanceFilter struct {
	EmployeeID *string
	Month      *string // canonical YYYY-MM
}
