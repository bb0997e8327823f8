package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/staffledger/payroll-backend-go/internal/domain/attendance"
	"github.com/staffledger/payroll-backend-go/internal/domain/employee"
)

type Service struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	lockCfg        LockConfig

	// now is swappable for lock-window tests.
	now func() time.Time
}

func NewService(attendanceRepo attendance.AttendanceRepository, employeeRepo employee.EmployeeRepository, lockCfg LockConfig) *Service {
	return &Service{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		lockCfg:        lockCfg,
		now:            time.Now,
	}
}

// Mark applies a whole day's roster in one call. The request is rejected
// wholesale when the date is locked or any entry references an employee
// outside the company; partial application would leave the day in a state
// nobody asked for.
func (s *Service) Mark(ctx context.Context, companyID, markedBy string, req attendance.MarkAttendanceRequest) (attendance.MarkAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MarkAttendanceResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	if !IsDateEditable(s.now(), date, s.lockCfg) {
		return attendance.MarkAttendanceResponse{}, attendance.ErrDateLocked
	}

	ids := make([]string, 0, len(req.Entries))
	for _, e := range req.Entries {
		ids = append(ids, e.EmployeeID)
	}
	known, err := s.employeeRepo.FilterExisting(ctx, ids, companyID)
	if err != nil {
		return attendance.MarkAttendanceResponse{}, fmt.Errorf("failed to verify employees: %w", err)
	}
	for _, e := range req.Entries {
		if !known[e.EmployeeID] {
			return attendance.MarkAttendanceResponse{}, fmt.Errorf("%w: %s", attendance.ErrUnknownEmployee, e.EmployeeID)
		}
	}

	var upserts []attendance.Attendance
	var deletions []string
	for _, e := range req.Entries {
		if e.Status == attendance.StatusUnmarked {
			deletions = append(deletions, e.EmployeeID)
			continue
		}
		upserts = append(upserts, attendance.Attendance{
			ID:         uuid.New().String(),
			CompanyID:  companyID,
			EmployeeID: e.EmployeeID,
			Date:       date,
			Status:     e.Status,
			MarkedBy:   markedBy,
		})
	}

	if len(upserts) > 0 {
		if err := s.attendanceRepo.BulkUpsert(ctx, upserts); err != nil {
			return attendance.MarkAttendanceResponse{}, fmt.Errorf("failed to save attendance: %w", err)
		}
	}
	for _, employeeID := range deletions {
		if err := s.attendanceRepo.Delete(ctx, companyID, employeeID, date); err != nil {
			return attendance.MarkAttendanceResponse{}, fmt.Errorf("failed to unmark attendance: %w", err)
		}
	}

	return attendance.MarkAttendanceResponse{
		Marked:  len(upserts),
		Deleted: len(deletions),
	}, nil
}

func (s *Service) List(ctx context.Context, companyID string, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, error) {
	records, err := s.attendanceRepo.List(ctx, companyID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, attendance.AttendanceResponse{
			ID:         r.ID,
			EmployeeID: r.EmployeeID,
			Date:       r.Date.Format("2006-01-02"),
			Status:     r.Status,
			MarkedBy:   r.MarkedBy,
		})
	}
	return responses, nil
}
