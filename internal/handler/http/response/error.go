package response

import (
	"errors"
	"net/http"

	"github.com/staffledger/payroll-backend-go/internal/domain/attendance"
	"github.com/staffledger/payroll-backend-go/internal/domain/employee"
	"github.com/staffledger/payroll-backend-go/internal/domain/expense"
	"github.com/staffledger/payroll-backend-go/internal/domain/holiday"
	"github.com/staffledger/payroll-backend-go/internal/domain/leave"
	"github.com/staffledger/payroll-backend-go/internal/domain/salary"
	"github.com/staffledger/payroll-backend-go/internal/domain/user"
	"github.com/staffledger/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Access errors
	case errors.Is(err, user.ErrOwnerAccessRequired):
		Forbidden(w, "Owner access required")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrDateLocked):
		Forbidden(w, "Attendance date is outside the editable window")
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Invalid attendance status", nil)
	case errors.Is(err, attendance.ErrUnknownEmployee):
		BadRequest(w, err.Error(), nil)

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "Holiday already exists for this date")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrLeaveSettingsNotFound):
		NotFound(w, "Leave settings not found")
	case errors.Is(err, leave.ErrLeaveBalanceNotFound):
		NotFound(w, "Leave balance not found")

	// Salary domain errors
	case errors.Is(err, salary.ErrSalaryConfigNotFound):
		NotFound(w, "Salary configuration not found")
	case errors.Is(err, salary.ErrBasicSalaryNotConfigured):
		BadRequest(w, "Basic salary not configured", nil)
	case errors.Is(err, salary.ErrSlipNotFound):
		NotFound(w, "Salary slip not found")
	case errors.Is(err, salary.ErrSlipAlreadyExists):
		Conflict(w, "Salary slip already exists for this month")
	case errors.Is(err, salary.ErrTaxSlabNotFound):
		NotFound(w, "Tax slab not found")
	case errors.Is(err, salary.ErrInvalidMonth):
		BadRequest(w, "Invalid month format", nil)

	// Expense domain errors
	case errors.Is(err, expense.ErrExpenseNotFound):
		NotFound(w, "Monthly expense entry not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
