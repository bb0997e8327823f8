package salary

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/staffledger/payroll-backend-go/internal/domain/attendance"
	"github.com/staffledger/payroll-backend-go/internal/domain/employee"
	"github.com/staffledger/payroll-backend-go/internal/domain/expense"
	"github.com/staffledger/payroll-backend-go/internal/domain/holiday"
	"github.com/staffledger/payroll-backend-go/internal/domain/salary"
)

type Service struct {
	configRepo     salary.SalaryConfigRepository
	taxSlabRepo    salary.TaxSlabRepository
	slipRepo       salary.SlipRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	holidayRepo    holiday.HolidayRepository
	expenseRepo    expense.ExpenseRepository
}

func NewService(
	configRepo salary.SalaryConfigRepository,
	taxSlabRepo salary.TaxSlabRepository,
	slipRepo salary.SlipRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	holidayRepo holiday.HolidayRepository,
	expenseRepo expense.ExpenseRepository,
) *Service {
	return &Service{
		configRepo:     configRepo,
		taxSlabRepo:    taxSlabRepo,
		slipRepo:       slipRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		holidayRepo:    holidayRepo,
		expenseRepo:    expenseRepo,
	}
}

// ========== CONFIGURATION ==========

func (s *Service) UpsertConfiguration(ctx context.Context, companyID string, req salary.UpsertConfigurationRequest) (salary.ConfigurationResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.ConfigurationResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID); err != nil {
		return salary.ConfigurationResponse{}, fmt.Errorf("failed to verify employee: %w", err)
	}

	heads := make([]salary.SalaryHead, 0, len(req.Heads))
	for _, h := range req.Heads {
		head := salary.SalaryHead{
			HeadID:    uuid.New().String(),
			Name:      h.Name,
			Kind:      salary.HeadKind(h.Kind),
			Component: salary.ComponentType(h.Component),
		}
		if head.Kind == salary.HeadKindBasic {
			head.Component = salary.ComponentTypeEarning
		}
		if h.Value != nil {
			head.Value = *h.Value
		}
		if h.Percentage != nil {
			head.Percentage = *h.Percentage
		}
		heads = append(heads, head)
	}

	config, err := s.configRepo.Upsert(ctx, salary.SalaryConfiguration{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		EmployeeID:    req.EmployeeID,
		Heads:         heads,
		TaxApplicable: req.TaxApplicable,
	})
	if err != nil {
		return salary.ConfigurationResponse{}, fmt.Errorf("failed to save salary configuration: %w", err)
	}

	return salary.ConfigurationResponse{
		EmployeeID:    config.EmployeeID,
		Heads:         config.Heads,
		TaxApplicable: config.TaxApplicable,
	}, nil
}

func (s *Service) GetConfiguration(ctx context.Context, companyID, employeeID string) (salary.ConfigurationResponse, error) {
	config, err := s.configRepo.GetByEmployee(ctx, employeeID, companyID)
	if err != nil {
		return salary.ConfigurationResponse{}, err
	}
	return salary.ConfigurationResponse{
		EmployeeID:    config.EmployeeID,
		Heads:         config.Heads,
		TaxApplicable: config.TaxApplicable,
	}, nil
}

// ========== TAX SLABS ==========

func (s *Service) CreateTaxSlab(ctx context.Context, companyID string, req salary.CreateTaxSlabRequest) (salary.TaxSlabResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.TaxSlabResponse{}, err
	}

	effectiveFrom, _ := time.Parse("2006-01-02", req.EffectiveFrom)
	slab, err := s.taxSlabRepo.Create(ctx, salary.TaxSlab{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		MinIncome:     req.MinIncome,
		MaxIncome:     req.MaxIncome,
		RatePercent:   req.RatePercent,
		EffectiveFrom: effectiveFrom,
	})
	if err != nil {
		return salary.TaxSlabResponse{}, fmt.Errorf("failed to create tax slab: %w", err)
	}

	return toTaxSlabResponse(slab), nil
}

func (s *Service) DeleteTaxSlab(ctx context.Context, companyID, slabID string) error {
	return s.taxSlabRepo.Delete(ctx, slabID, companyID)
}

func (s *Service) ListTaxSlabs(ctx context.Context, companyID string) ([]salary.TaxSlabResponse, error) {
	slabs, err := s.taxSlabRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tax slabs: %w", err)
	}

	responses := make([]salary.TaxSlabResponse, 0, len(slabs))
	for _, slab := range slabs {
		responses = append(responses, toTaxSlabResponse(slab))
	}
	return responses, nil
}

func toTaxSlabResponse(slab salary.TaxSlab) salary.TaxSlabResponse {
	return salary.TaxSlabResponse{
		ID:            slab.ID,
		MinIncome:     slab.MinIncome,
		MaxIncome:     slab.MaxIncome,
		RatePercent:   slab.RatePercent,
		EffectiveFrom: slab.EffectiveFrom.Format("2006-01-02"),
	}
}

// ========== SLIPS ==========

// GenerateSlip computes and persists one employee's slip. A slip already
// on record for the month is a conflict; it is never overwritten.
func (s *Service) GenerateSlip(ctx context.Context, companyID string, req salary.GenerateSlipRequest) (salary.SlipResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.SlipResponse{}, err
	}

	month, err := NormalizeMonth(req.Month)
	if err != nil {
		return salary.SlipResponse{}, err
	}

	exists, err := s.slipRepo.Exists(ctx, companyID, req.EmployeeID, month)
	if err != nil {
		return salary.SlipResponse{}, fmt.Errorf("failed to check existing slip: %w", err)
	}
	if exists {
		return salary.SlipResponse{}, salary.ErrSlipAlreadyExists
	}

	slip, err := s.computeForEmployee(ctx, companyID, req.EmployeeID, month)
	if err != nil {
		return salary.SlipResponse{}, err
	}

	created, err := s.slipRepo.Create(ctx, slip)
	if err != nil {
		return salary.SlipResponse{}, fmt.Errorf("failed to save slip: %w", err)
	}

	if _, err := s.expenseRepo.RecomputeFromSlips(ctx, companyID, month); err != nil {
		return salary.SlipResponse{}, fmt.Errorf("failed to update monthly expense: %w", err)
	}

	return toSlipResponse(created), nil
}

// PreviewSlip runs the same computation without persisting anything.
func (s *Service) PreviewSlip(ctx context.Context, companyID string, req salary.GenerateSlipRequest) (salary.SlipResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.SlipResponse{}, err
	}

	month, err := NormalizeMonth(req.Month)
	if err != nil {
		return salary.SlipResponse{}, err
	}

	slip, err := s.computeForEmployee(ctx, companyID, req.EmployeeID, month)
	if err != nil {
		return salary.SlipResponse{}, err
	}
	return toSlipResponse(slip), nil
}

func (s *Service) computeForEmployee(ctx context.Context, companyID, employeeID, month string) (salary.SalarySlip, error) {
	from, to, err := MonthBounds(month)
	if err != nil {
		return salary.SalarySlip{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID, companyID); err != nil {
		return salary.SalarySlip{}, fmt.Errorf("failed to verify employee: %w", err)
	}

	config, err := s.configRepo.GetByEmployee(ctx, employeeID, companyID)
	if err != nil {
		return salary.SalarySlip{}, err
	}

	dayStatus, err := s.attendanceRepo.GetEmployeeMonthMap(ctx, companyID, employeeID, from, to)
	if err != nil {
		return salary.SalarySlip{}, fmt.Errorf("failed to load attendance: %w", err)
	}

	holidaySet, err := s.holidayRepo.GetDateSet(ctx, companyID, from, to)
	if err != nil {
		return salary.SalarySlip{}, fmt.Errorf("failed to load holidays: %w", err)
	}

	slabs, err := s.taxSlabRepo.ListEffective(ctx, companyID, from)
	if err != nil {
		return salary.SalarySlip{}, fmt.Errorf("failed to load tax slabs: %w", err)
	}

	result, err := ComputeSlip(ComputeInput{
		Config:     config,
		Month:      month,
		TaxSlabs:   slabs,
		HolidaySet: holidaySet,
		DayStatus:  dayStatus,
	})
	if err != nil {
		return salary.SalarySlip{}, err
	}

	return buildSlip(companyID, employeeID, month, result), nil
}

func buildSlip(companyID, employeeID, month string, result SlipResult) salary.SalarySlip {
	return salary.SalarySlip{
		ID:                uuid.New().String(),
		CompanyID:         companyID,
		EmployeeID:        employeeID,
		Month:             month,
		Earnings:          result.Earnings,
		Deductions:        result.Deductions,
		TotalEarnings:     result.TotalEarnings,
		TotalDeductions:   result.TotalDeductions,
		GrossSalary:       result.GrossSalary,
		TaxAmount:         result.TaxAmount,
		NetSalary:         result.NetSalary,
		AttendanceSummary: result.AttendanceSummary,
	}
}

func (s *Service) GetSlip(ctx context.Context, companyID, slipID string) (salary.SlipResponse, error) {
	slip, err := s.slipRepo.GetByID(ctx, slipID, companyID)
	if err != nil {
		return salary.SlipResponse{}, err
	}
	return toSlipResponse(slip), nil
}

func (s *Service) ListSlips(ctx context.Context, companyID string, filter salary.SlipFilter) ([]salary.SlipResponse, error) {
	if filter.Month != nil {
		month, err := NormalizeMonth(*filter.Month)
		if err != nil {
			return nil, err
		}
		filter.Month = &month
	}

	slips, err := s.slipRepo.List(ctx, companyID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list slips: %w", err)
	}

	responses := make([]salary.SlipResponse, 0, len(slips))
	for _, slip := range slips {
		responses = append(responses, toSlipResponse(slip))
	}
	return responses, nil
}

func toSlipResponse(slip salary.SalarySlip) salary.SlipResponse {
	resp := salary.SlipResponse{
		ID:                slip.ID,
		EmployeeID:        slip.EmployeeID,
		Month:             slip.Month,
		Earnings:          slip.Earnings,
		Deductions:        slip.Deductions,
		TotalEarnings:     slip.TotalEarnings,
		TotalDeductions:   slip.TotalDeductions,
		GrossSalary:       slip.GrossSalary,
		TaxAmount:         slip.TaxAmount,
		NetSalary:         slip.NetSalary,
		AttendanceSummary: slip.AttendanceSummary,
	}
	if slip.EmployeeName != nil {
		resp.EmployeeName = *slip.EmployeeName
	}
	return resp
}

// ========== BULK GENERATION ==========

// bulkPrefetch holds the company-wide reads the bulk run shares across
// employees.
type bulkPrefetch struct {
	employees  []employee.Employee
	configs    map[string]salary.SalaryConfiguration
	dayStatus  attendance.CompanyStatusMap
	holidaySet holiday.DateSet
	slabs      []salary.TaxSlab
	existing   map[string]bool
}

// GenerateForCompany produces slips for every active employee missing one
// for the month. Per-employee failures are collected, not fatal: one
// unconfigured employee must not block the rest of the company's payroll.
func (s *Service) GenerateForCompany(ctx context.Context, companyID string, req salary.BulkGenerateRequest) (salary.BulkGenerateResult, error) {
	if err := req.Validate(); err != nil {
		return salary.BulkGenerateResult{}, err
	}

	month, err := NormalizeMonth(req.Month)
	if err != nil {
		return salary.BulkGenerateResult{}, err
	}
	from, to, err := MonthBounds(month)
	if err != nil {
		return salary.BulkGenerateResult{}, err
	}

	pre, err := s.prefetchCompanyMonth(ctx, companyID, month, from, to)
	if err != nil {
		return salary.BulkGenerateResult{}, err
	}

	result := salary.BulkGenerateResult{Month: month}

	// Deterministic processing order for stable error reports.
	employees := make([]employee.Employee, len(pre.employees))
	copy(employees, pre.employees)
	sort.Slice(employees, func(i, j int) bool { return employees[i].ID < employees[j].ID })

	slips := make([]salary.SalarySlip, 0, len(employees))
	for _, emp := range employees {
		if pre.existing[emp.ID] {
			result.Skipped++
			continue
		}

		config, ok := pre.configs[emp.ID]
		if !ok {
			result.Errors = append(result.Errors, salary.EmployeeError{
				EmployeeID: emp.ID,
				Reason:     salary.ErrSalaryConfigNotFound.Error(),
			})
			continue
		}

		computed, err := ComputeSlip(ComputeInput{
			Config:     config,
			Month:      month,
			TaxSlabs:   pre.slabs,
			HolidaySet: pre.holidaySet,
			DayStatus:  pre.dayStatus[emp.ID],
		})
		if err != nil {
			result.Errors = append(result.Errors, salary.EmployeeError{
				EmployeeID: emp.ID,
				Reason:     err.Error(),
			})
			continue
		}

		slips = append(slips, buildSlip(companyID, emp.ID, month, computed))
	}

	if len(slips) > 0 {
		inserted, err := s.slipRepo.BulkInsert(ctx, slips)
		if err != nil {
			return salary.BulkGenerateResult{}, fmt.Errorf("failed to insert slips: %w", err)
		}
		result.Processed = inserted
		// Rows lost to a concurrent run surface as skips.
		result.Skipped += len(slips) - inserted
	}

	if result.Processed > 0 {
		if _, err := s.expenseRepo.RecomputeFromSlips(ctx, companyID, month); err != nil {
			return salary.BulkGenerateResult{}, fmt.Errorf("failed to update monthly expense: %w", err)
		}
	}

	return result, nil
}

func (s *Service) prefetchCompanyMonth(ctx context.Context, companyID, month string, from, to time.Time) (bulkPrefetch, error) {
	var pre bulkPrefetch

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pre.employees, err = s.employeeRepo.GetActiveByCompanyID(gctx, companyID)
		if err != nil {
			return fmt.Errorf("failed to load employees: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		pre.dayStatus, err = s.attendanceRepo.GetCompanyMonthMap(gctx, companyID, from, to)
		if err != nil {
			return fmt.Errorf("failed to load attendance: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		pre.holidaySet, err = s.holidayRepo.GetDateSet(gctx, companyID, from, to)
		if err != nil {
			return fmt.Errorf("failed to load holidays: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		pre.slabs, err = s.taxSlabRepo.ListEffective(gctx, companyID, from)
		if err != nil {
			return fmt.Errorf("failed to load tax slabs: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		pre.existing, err = s.slipRepo.EmployeeIDsWithSlip(gctx, companyID, month)
		if err != nil {
			return fmt.Errorf("failed to load existing slips: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return bulkPrefetch{}, err
	}

	employeeIDs := make([]string, 0, len(pre.employees))
	for _, emp := range pre.employees {
		employeeIDs = append(employeeIDs, emp.ID)
	}
	configs, err := s.configRepo.GetByEmployeeIDs(ctx, employeeIDs, companyID)
	if err != nil {
		return bulkPrefetch{}, fmt.Errorf("failed to load salary configurations: %w", err)
	}
	pre.configs = configs

	return pre, nil
}
