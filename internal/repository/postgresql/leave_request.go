package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/staffledger/payroll-backend-go/internal/domain/leave"
	"github.com/staffledger/payroll-backend-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

func (r *leaveRequestRepository) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (id, company_id, employee_id, from_date, to_date, leave_type, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, company_id, employee_id, from_date, to_date, leave_type, reason, status,
			approved_by, approved_at, created_at, updated_at
	`

	var created leave.LeaveRequest
	err := q.QueryRow(ctx, query,
		req.ID, req.CompanyID, req.EmployeeID, req.FromDate, req.ToDate, req.LeaveType, req.Reason, req.Status,
	).Scan(
		&created.ID, &created.CompanyID, &created.EmployeeID, &created.FromDate, &created.ToDate,
		&created.LeaveType, &created.Reason, &created.Status,
		&created.ApprovedBy, &created.ApprovedAt, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return created, nil
}

func (r *leaveRequestRepository) GetByID(ctx context.Context, id string, companyID string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, employee_id, from_date, to_date, leave_type, reason, status,
			approved_by, approved_at, created_at, updated_at
		FROM leave_requests
		WHERE id = $1 AND company_id = $2
	`

	var req leave.LeaveRequest
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&req.ID, &req.CompanyID, &req.EmployeeID, &req.FromDate, &req.ToDate,
		&req.LeaveType, &req.Reason, &req.Status,
		&req.ApprovedBy, &req.ApprovedAt, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return req, nil
}

func (r *leaveRequestRepository) List(ctx context.Context, companyID string, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, employee_id, from_date, to_date, leave_type, reason, status,
			approved_by, approved_at, created_at, updated_at
		FROM leave_requests
		WHERE company_id = $1
	`
	args := []interface{}{companyID}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		query += fmt.Sprintf(" AND employee_id = $%d", len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		if err := rows.Scan(
			&req.ID, &req.CompanyID, &req.EmployeeID, &req.FromDate, &req.ToDate,
			&req.LeaveType, &req.Reason, &req.Status,
			&req.ApprovedBy, &req.ApprovedAt, &req.CreatedAt, &req.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

func (r *leaveRequestRepository) UpdateStatus(ctx context.Context, req leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, approved_by = $2, approved_at = $3, updated_at = NOW()
		WHERE id = $4 AND company_id = $5
	`

	tag, err := q.Exec(ctx, query, req.Status, req.ApprovedBy, req.ApprovedAt, req.ID, req.CompanyID)
	if err != nil {
		return fmt.Errorf("failed to update leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}
