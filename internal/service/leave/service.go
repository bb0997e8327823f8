package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/staffledger/payroll-backend-go/internal/domain/attendance"
	"github.com/staffledger/payroll-backend-go/internal/domain/holiday"
	"github.com/staffledger/payroll-backend-go/internal/domain/leave"
	"github.com/staffledger/payroll-backend-go/internal/pkg/database"
	"github.com/staffledger/payroll-backend-go/internal/repository/postgresql"
)

type Service struct {
	db             *database.DB
	requestRepo    leave.LeaveRequestRepository
	balanceRepo    leave.LeaveBalanceRepository
	settingsRepo   leave.LeaveSettingsRepository
	holidayRepo    holiday.HolidayRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewService(
	db *database.DB,
	requestRepo leave.LeaveRequestRepository,
	balanceRepo leave.LeaveBalanceRepository,
	settingsRepo leave.LeaveSettingsRepository,
	holidayRepo holiday.HolidayRepository,
	attendanceRepo attendance.AttendanceRepository,
) *Service {
	return &Service{
		db:             db,
		requestRepo:    requestRepo,
		balanceRepo:    balanceRepo,
		settingsRepo:   settingsRepo,
		holidayRepo:    holidayRepo,
		attendanceRepo: attendanceRepo,
	}
}

// ========== REQUESTS ==========

func (l *Service) CreateRequest(ctx context.Context, companyID, employeeID string, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	from, _ := time.Parse("2006-01-02", req.FromDate)
	to, _ := time.Parse("2006-01-02", req.ToDate)

	created, err := l.requestRepo.Create(ctx, leave.LeaveRequest{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		EmployeeID: employeeID,
		FromDate:   from,
		ToDate:     to,
		LeaveType:  req.LeaveType,
		Reason:     req.Reason,
		Status:     leave.LeaveRequestStatusPending,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return toRequestResponse(created), nil
}

func (l *Service) ListRequests(ctx context.Context, companyID string, filter leave.LeaveRequestFilter) ([]leave.LeaveRequestResponse, error) {
	requests, err := l.requestRepo.List(ctx, companyID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, toRequestResponse(r))
	}
	return responses, nil
}

// Approve reconciles the leave span into attendance and the balance
// ledger. Everything runs in one transaction: a half-applied approval
// would disagree with the payroll engine's view of the month.
func (l *Service) Approve(ctx context.Context, companyID, requestID, approverID string) (leave.ApprovalResult, error) {
	request, err := l.requestRepo.GetByID(ctx, requestID, companyID)
	if err != nil {
		return leave.ApprovalResult{}, err
	}
	if request.Status != leave.LeaveRequestStatusPending {
		return leave.ApprovalResult{}, leave.ErrLeaveAlreadyProcessed
	}

	allocation := l.currentAllocation(ctx, companyID)

	holidaySet, err := l.holidayRepo.GetDateSet(ctx, companyID, request.FromDate, request.ToDate.AddDate(0, 0, 1))
	if err != nil {
		return leave.ApprovalResult{}, fmt.Errorf("failed to load holidays: %w", err)
	}

	var result leave.ApprovalResult
	err = postgresql.WithTransaction(ctx, l.db, func(tx pgx.Tx) error {
		txCtx := postgresql.InjectTx(ctx, tx)

		balances := make(map[string]leave.LeaveBalance)
		for _, month := range monthsSpanned(request.FromDate, request.ToDate) {
			balance, err := l.balanceRepo.GetOrCreate(txCtx, companyID, request.EmployeeID, month, allocation)
			if err != nil {
				return fmt.Errorf("failed to load leave balance: %w", err)
			}
			if balance.SyncAllocation(allocation) {
				if err := l.balanceRepo.Save(txCtx, balance); err != nil {
					return fmt.Errorf("failed to sync leave balance: %w", err)
				}
			}
			balances[month] = balance
		}

		plan := PlanApproval(request.FromDate, request.ToDate, holidaySet, balances)
		result = plan.Result

		if len(plan.Days) > 0 {
			records := make([]attendance.Attendance, 0, len(plan.Days))
			for _, day := range plan.Days {
				records = append(records, attendance.Attendance{
					ID:         uuid.New().String(),
					CompanyID:  companyID,
					EmployeeID: request.EmployeeID,
					Date:       day.Date,
					Status:     day.Status,
					MarkedBy:   approverID,
				})
			}
			if err := l.attendanceRepo.BulkUpsert(txCtx, records); err != nil {
				return fmt.Errorf("failed to write attendance: %w", err)
			}
		}

		for _, balance := range plan.Balances {
			if err := l.balanceRepo.Save(txCtx, balance); err != nil {
				return fmt.Errorf("failed to save leave balance: %w", err)
			}
		}

		now := time.Now()
		request.Status = leave.LeaveRequestStatusApproved
		request.ApprovedBy = &approverID
		request.ApprovedAt = &now
		if err := l.requestRepo.UpdateStatus(txCtx, request); err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.ApprovalResult{}, err
	}

	return result, nil
}

func (l *Service) Reject(ctx context.Context, companyID, requestID, approverID string) error {
	request, err := l.requestRepo.GetByID(ctx, requestID, companyID)
	if err != nil {
		return err
	}
	if request.Status != leave.LeaveRequestStatusPending {
		return leave.ErrLeaveAlreadyProcessed
	}

	now := time.Now()
	request.Status = leave.LeaveRequestStatusRejected
	request.ApprovedBy = &approverID
	request.ApprovedAt = &now
	if err := l.requestRepo.UpdateStatus(ctx, request); err != nil {
		return fmt.Errorf("failed to update leave request: %w", err)
	}
	return nil
}

// ========== BALANCES ==========

// GetBalances returns the employee's ledger, re-synchronized against the
// current company allocation. Drift correction happens here, lazily,
// instead of fanning out writes when the setting changes.
func (l *Service) GetBalances(ctx context.Context, companyID, employeeID string) ([]leave.LeaveBalanceResponse, error) {
	allocation := l.currentAllocation(ctx, companyID)

	balances, err := l.balanceRepo.ListByEmployee(ctx, companyID, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave balances: %w", err)
	}

	responses := make([]leave.LeaveBalanceResponse, 0, len(balances))
	for _, balance := range balances {
		if balance.SyncAllocation(allocation) {
			if err := l.balanceRepo.Save(ctx, balance); err != nil {
				return nil, fmt.Errorf("failed to sync leave balance: %w", err)
			}
		}
		responses = append(responses, leave.LeaveBalanceResponse{
			Month:          balance.Month,
			TotalAllocated: balance.TotalAllocated,
			Used:           balance.Used,
			Remaining:      balance.Remaining,
		})
	}
	return responses, nil
}

// GetOrCreateBalance exposes the monthly row for one employee, creating
// it at the current allocation when absent.
func (l *Service) GetOrCreateBalance(ctx context.Context, companyID, employeeID, month string) (leave.LeaveBalanceResponse, error) {
	allocation := l.currentAllocation(ctx, companyID)

	balance, err := l.balanceRepo.GetOrCreate(ctx, companyID, employeeID, month, allocation)
	if err != nil {
		return leave.LeaveBalanceResponse{}, fmt.Errorf("failed to load leave balance: %w", err)
	}
	if balance.SyncAllocation(allocation) {
		if err := l.balanceRepo.Save(ctx, balance); err != nil {
			return leave.LeaveBalanceResponse{}, fmt.Errorf("failed to sync leave balance: %w", err)
		}
	}

	return leave.LeaveBalanceResponse{
		Month:          balance.Month,
		TotalAllocated: balance.TotalAllocated,
		Used:           balance.Used,
		Remaining:      balance.Remaining,
	}, nil
}

// ========== SETTINGS ==========

func (l *Service) GetSettings(ctx context.Context, companyID string) (leave.GlobalLeaveSettings, error) {
	settings, err := l.settingsRepo.Get(ctx, companyID)
	if err != nil {
		return leave.GlobalLeaveSettings{}, err
	}
	return settings, nil
}

func (l *Service) UpdateSettings(ctx context.Context, companyID string, req leave.UpdateLeaveSettingsRequest) (leave.GlobalLeaveSettings, error) {
	if err := req.Validate(); err != nil {
		return leave.GlobalLeaveSettings{}, err
	}

	settings, err := l.settingsRepo.Upsert(ctx, leave.GlobalLeaveSettings{
		ID:                       uuid.New().String(),
		CompanyID:                companyID,
		DefaultMonthlyPaidLeaves: *req.DefaultMonthlyPaidLeaves,
	})
	if err != nil {
		return leave.GlobalLeaveSettings{}, fmt.Errorf("failed to update leave settings: %w", err)
	}
	return settings, nil
}

// currentAllocation reads the company setting, falling back to the
// default when none was ever saved.
func (l *Service) currentAllocation(ctx context.Context, companyID string) float64 {
	settings, err := l.settingsRepo.Get(ctx, companyID)
	if err != nil {
		return leave.DefaultMonthlyPaidLeaves
	}
	return settings.DefaultMonthlyPaidLeaves
}

func toRequestResponse(r leave.LeaveRequest) leave.LeaveRequestResponse {
	return leave.LeaveRequestResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		FromDate:   r.FromDate.Format("2006-01-02"),
		ToDate:     r.ToDate.Format("2006-01-02"),
		LeaveType:  r.LeaveType,
		Reason:     r.Reason,
		Status:     string(r.Status),
		ApprovedBy: r.ApprovedBy,
	}
}
