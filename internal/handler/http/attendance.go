package http

import (
	"encoding/json"
	"net/http"

	"github.com/staffledger/payroll-backend-go/internal/domain/attendance"
	"github.com/staffledger/payroll-backend-go/internal/domain/user"
	"github.com/staffledger/payroll-backend-go/internal/handler/http/response"
	attendancesvc "github.com/staffledger/payroll-backend-go/internal/service/attendance"
)

type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService *attendancesvc.Service
}

func NewAttendanceHandler(attendanceService *attendancesvc.Service) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

func (h *attendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req attendance.MarkAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.attendanceService.Mark(r.Context(), claims.CompanyID, claims.UserID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance updated", result)
}

func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var filter attendance.AttendanceFilter
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if month := r.URL.Query().Get("month"); month != "" {
		filter.Month = &month
	}

	// Employees only ever see their own records.
	if claims.Role == user.RoleEmployee && claims.EmployeeID != "" {
		filter.EmployeeID = &claims.EmployeeID
	}

	result, err := h.attendanceService.List(r.Context(), claims.CompanyID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
