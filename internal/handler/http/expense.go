package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffledger/payroll-backend-go/internal/handler/http/response"
	expensesvc "github.com/staffledger/payroll-backend-go/internal/service/expense"
)

type ExpenseHandler interface {
	GetByMonth(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type expenseHandlerImpl struct {
	expenseService *expensesvc.Service
}

func NewExpenseHandler(expenseService *expensesvc.Service) ExpenseHandler {
	return &expenseHandlerImpl{expenseService: expenseService}
}

func (h *expenseHandlerImpl) GetByMonth(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	month := chi.URLParam(r, "month")
	if month == "" {
		response.BadRequest(w, "Month is required", nil)
		return
	}

	result, err := h.expenseService.GetByMonth(r.Context(), claims.CompanyID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *expenseHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	result, err := h.expenseService.ListByCompany(r.Context(), claims.CompanyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
