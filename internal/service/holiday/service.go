package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/staffledger/payroll-backend-go/internal/domain/holiday"
)

type Service struct {
	holidayRepo holiday.HolidayRepository
}

func NewService(holidayRepo holiday.HolidayRepository) *Service {
	return &Service{holidayRepo: holidayRepo}
}

func (s *Service) Create(ctx context.Context, companyID string, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	created, err := s.holidayRepo.Create(ctx, holiday.Holiday{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Date:      date,
		Name:      req.Name,
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	return toResponse(created), nil
}

func (s *Service) Delete(ctx context.Context, companyID, holidayID string) error {
	return s.holidayRepo.Delete(ctx, holidayID, companyID)
}

func (s *Service) ListByYear(ctx context.Context, companyID string, year int) ([]holiday.HolidayResponse, error) {
	holidays, err := s.holidayRepo.ListByYear(ctx, companyID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, toResponse(h))
	}
	return responses, nil
}

func toResponse(h holiday.Holiday) holiday.HolidayResponse {
	return holiday.HolidayResponse{
		ID:   h.ID,
		Date: h.Date.Format("2006-01-02"),
		Name: h.Name,
	}
}
