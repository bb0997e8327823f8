package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/staffledger/payroll-backend-go/internal/domain/holiday"
	"github.com/staffledger/payroll-backend-go/internal/handler/http/response"
	holidaysvc "github.com/staffledger/payroll-backend-go/internal/service/holiday"
)

type HolidayHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type holidayHandlerImpl struct {
	holidayService *holidaysvc.Service
}

func NewHolidayHandler(holidayService *holidaysvc.Service) HolidayHandler {
	return &holidayHandlerImpl{holidayService: holidayService}
}

func (h *holidayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req holiday.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.holidayService.Create(r.Context(), claims.CompanyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday created", result)
}

func (h *holidayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Holiday ID is required", nil)
		return
	}

	if err := h.holidayService.Delete(r.Context(), claims.CompanyID, id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday deleted", nil)
}

func (h *holidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	year := time.Now().Year()
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			response.BadRequest(w, "Invalid year", nil)
			return
		}
		year = parsed
	}

	result, err := h.holidayService.ListByYear(r.Context(), claims.CompanyID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
