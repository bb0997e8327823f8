package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffledger/payroll-backend-go/internal/domain/leave"
	"github.com/staffledger/payroll-backend-go/internal/domain/user"
	"github.com/staffledger/payroll-backend-go/internal/handler/http/response"
	leavesvc "github.com/staffledger/payroll-backend-go/internal/service/leave"
)

type LeaveHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	ListRequests(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	GetBalances(w http.ResponseWriter, r *http.Request)
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService *leavesvc.Service
}

func NewLeaveHandler(leaveService *leavesvc.Service) LeaveHandler {
	return &leaveHandlerImpl{leaveService: leaveService}
}

// ========== REQUESTS ==========

func (h *leaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	if claims.EmployeeID == "" {
		response.Forbidden(w, "Leave requests require an employee account")
		return
	}

	var req leave.CreateLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.leaveService.CreateRequest(r.Context(), claims.CompanyID, claims.EmployeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", result)
}

func (h *leaveHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var filter leave.LeaveRequestFilter
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}

	// Employees only ever see their own requests.
	if claims.Role == user.RoleEmployee && claims.EmployeeID != "" {
		filter.EmployeeID = &claims.EmployeeID
	}

	result, err := h.leaveService.ListRequests(r.Context(), claims.CompanyID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *leaveHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	var req leave.UpdateLeaveStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if req.Status == string(leave.LeaveRequestStatusRejected) {
		if err := h.leaveService.Reject(r.Context(), claims.CompanyID, id, claims.UserID); err != nil {
			response.HandleError(w, err)
			return
		}
		response.SuccessWithMessage(w, "Leave request rejected", nil)
		return
	}

	result, err := h.leaveService.Approve(r.Context(), claims.CompanyID, id, claims.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved", result)
}

// ========== BALANCES ==========

func (h *leaveHandlerImpl) GetBalances(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	// Employees only ever see their own balances.
	if claims.Role == user.RoleEmployee && claims.EmployeeID != employeeID {
		response.Forbidden(w, "Cannot view another employee's leave balances")
		return
	}

	result, err := h.leaveService.GetBalances(r.Context(), claims.CompanyID, employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== SETTINGS ==========

func (h *leaveHandlerImpl) GetSettings(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	settings, err := h.leaveService.GetSettings(r.Context(), claims.CompanyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"default_monthly_paid_leaves": settings.DefaultMonthlyPaidLeaves,
	})
}

func (h *leaveHandlerImpl) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req leave.UpdateLeaveSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	settings, err := h.leaveService.UpdateSettings(r.Context(), claims.CompanyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave settings updated", map[string]interface{}{
		"default_monthly_paid_leaves": settings.DefaultMonthlyPaidLeaves,
	})
}
