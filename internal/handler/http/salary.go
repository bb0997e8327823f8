package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffledger/payroll-backend-go/internal/domain/salary"
	"github.com/staffledger/payroll-backend-go/internal/domain/user"
	"github.com/staffledger/payroll-backend-go/internal/handler/http/response"
	salarysvc "github.com/staffledger/payroll-backend-go/internal/service/salary"
)

type SalaryHandler interface {
	// Configuration
	UpsertConfiguration(w http.ResponseWriter, r *http.Request)
	GetConfiguration(w http.ResponseWriter, r *http.Request)

	// Tax slabs
	CreateTaxSlab(w http.ResponseWriter, r *http.Request)
	DeleteTaxSlab(w http.ResponseWriter, r *http.Request)
	ListTaxSlabs(w http.ResponseWriter, r *http.Request)

	// Slips
	GenerateSlip(w http.ResponseWriter, r *http.Request)
	PreviewSlip(w http.ResponseWriter, r *http.Request)
	GenerateForCompany(w http.ResponseWriter, r *http.Request)
	GetSlip(w http.ResponseWriter, r *http.Request)
	ListSlips(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	salaryService *salarysvc.Service
}

func NewSalaryHandler(salaryService *salarysvc.Service) SalaryHandler {
	return &salaryHandlerImpl{salaryService: salaryService}
}

// ========== CONFIGURATION ==========

func (h *salaryHandlerImpl) UpsertConfiguration(w http.ResponseWriter, r *http.Request) {
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

	var req salary.UpsertConfigurationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = employeeID

	result, err := h.salaryService.UpsertConfiguration(r.Context(), claims.CompanyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *salaryHandlerImpl) GetConfiguration(w http.ResponseWriter, r *http.Request) {
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

	result, err := h.salaryService.GetConfiguration(r.Context(), claims.CompanyID, employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== TAX SLABS ==========

func (h *salaryHandlerImpl) CreateTaxSlab(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req salary.CreateTaxSlabRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.salaryService.CreateTaxSlab(r.Context(), claims.CompanyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Tax slab created", result)
}

func (h *salaryHandlerImpl) DeleteTaxSlab(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Tax slab ID is required", nil)
		return
	}

	if err := h.salaryService.DeleteTaxSlab(r.Context(), claims.CompanyID, id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Tax slab deleted", nil)
}

func (h *salaryHandlerImpl) ListTaxSlabs(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	result, err := h.salaryService.ListTaxSlabs(r.Context(), claims.CompanyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== SLIPS ==========

func (h *salaryHandlerImpl) GenerateSlip(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req salary.GenerateSlipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.salaryService.GenerateSlip(r.Context(), claims.CompanyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary slip generated", result)
}

func (h *salaryHandlerImpl) PreviewSlip(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req salary.GenerateSlipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.salaryService.PreviewSlip(r.Context(), claims.CompanyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *salaryHandlerImpl) GenerateForCompany(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req salary.BulkGenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.salaryService.GenerateForCompany(r.Context(), claims.CompanyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bulk generation completed", result)
}

func (h *salaryHandlerImpl) GetSlip(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Slip ID is required", nil)
		return
	}

	result, err := h.salaryService.GetSlip(r.Context(), claims.CompanyID, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *salaryHandlerImpl) ListSlips(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var filter salary.SlipFilter
	if month := r.URL.Query().Get("month"); month != "" {
		filter.Month = &month
	}
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}

	// Employees only ever see their own slips.
	if claims.Role == user.RoleEmployee && claims.EmployeeID != "" {
		filter.EmployeeID = &claims.EmployeeID
	}

	result, err := h.salaryService.ListSlips(r.Context(), claims.CompanyID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
