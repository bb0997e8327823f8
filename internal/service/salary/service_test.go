package salary

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffledger/payroll-backend-go/internal/domain/attendance"
	"github.com/staffledger/payroll-backend-go/internal/domain/employee"
	"github.com/staffledger/payroll-backend-go/internal/domain/expense"
	"github.com/staffledger/payroll-backend-go/internal/domain/holiday"
	"github.com/staffledger/payroll-backend-go/internal/domain/salary"
)

// ========== IN-MEMORY REPOSITORIES ==========

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id, companyID string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetActiveByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) FilterExisting(ctx context.Context, ids []string, companyID string) (map[string]bool, error) {
	known := make(map[string]bool)
	for _, e := range f.employees {
		known[e.ID] = true
	}
	existing := make(map[string]bool)
	for _, id := range ids {
		if known[id] {
			existing[id] = true
		}
	}
	return existing, nil
}

type fakeConfigRepo struct {
	configs map[string]salary.SalaryConfiguration
}

func (f *fakeConfigRepo) Upsert(ctx context.Context, config salary.SalaryConfiguration) (salary.SalaryConfiguration, error) {
	f.configs[config.EmployeeID] = config
	return config, nil
}

func (f *fakeConfigRepo) GetByEmployee(ctx context.Context, employeeID, companyID string) (salary.SalaryConfiguration, error) {
	config, ok := f.configs[employeeID]
	if !ok {
		return salary.SalaryConfiguration{}, salary.ErrSalaryConfigNotFound
	}
	return config, nil
}

func (f *fakeConfigRepo) GetByEmployeeIDs(ctx context.Context, employeeIDs []string, companyID string) (map[string]salary.SalaryConfiguration, error) {
	out := make(map[string]salary.SalaryConfiguration)
	for _, id := range employeeIDs {
		if config, ok := f.configs[id]; ok {
			out[id] = config
		}
	}
	return out, nil
}

type fakeTaxSlabRepo struct {
	slabs []salary.TaxSlab
}

func (f *fakeTaxSlabRepo) Create(ctx context.Context, slab salary.TaxSlab) (salary.TaxSlab, error) {
	f.slabs = append(f.slabs, slab)
	return slab, nil
}

func (f *fakeTaxSlabRepo) Delete(ctx context.Context, id, companyID string) error { return nil }

func (f *fakeTaxSlabRepo) ListByCompany(ctx context.Context, companyID string) ([]salary.TaxSlab, error) {
	return f.slabs, nil
}

func (f *fakeTaxSlabRepo) ListEffective(ctx context.Context, companyID string, asOf time.Time) ([]salary.TaxSlab, error) {
	return f.slabs, nil
}

// fakeSlipRepo distinguishes what a prefetch sees (preexisting) from
// what insertion collides with (stored), so a concurrent writer landing
// between the two can be simulated.
type fakeSlipRepo struct {
	preexisting map[string]bool
	stored      map[string]bool
	inserted    []salary.SalarySlip
}

func (f *fakeSlipRepo) Create(ctx context.Context, slip salary.SalarySlip) (salary.SalarySlip, error) {
	if f.stored[slip.EmployeeID] {
		return salary.SalarySlip{}, salary.ErrSlipAlreadyExists
	}
	f.stored[slip.EmployeeID] = true
	f.inserted = append(f.inserted, slip)
	return slip, nil
}

func (f *fakeSlipRepo) GetByID(ctx context.Context, id, companyID string) (salary.SalarySlip, error) {
	return salary.SalarySlip{}, salary.ErrSlipNotFound
}

func (f *fakeSlipRepo) Exists(ctx context.Context, companyID, employeeID, month string) (bool, error) {
	return f.stored[employeeID], nil
}

func (f *fakeSlipRepo) List(ctx context.Context, companyID string, filter salary.SlipFilter) ([]salary.SalarySlip, error) {
	return f.inserted, nil
}

func (f *fakeSlipRepo) EmployeeIDsWithSlip(ctx context.Context, companyID, month string) (map[string]bool, error) {
	out := make(map[string]bool, len(f.preexisting))
	for id := range f.preexisting {
		out[id] = true
	}
	return out, nil
}

func (f *fakeSlipRepo) BulkInsert(ctx context.Context, slips []salary.SalarySlip) (int, error) {
	inserted := 0
	for _, slip := range slips {
		if f.stored[slip.EmployeeID] {
			continue
		}
		f.stored[slip.EmployeeID] = true
		f.inserted = append(f.inserted, slip)
		inserted++
	}
	return inserted, nil
}

type fakeAttendanceRepo struct {
	byEmployee attendance.CompanyStatusMap
}

func (f *fakeAttendanceRepo) BulkUpsert(ctx context.Context, records []attendance.Attendance) error {
	return nil
}

func (f *fakeAttendanceRepo) Delete(ctx context.Context, companyID, employeeID string, date time.Time) error {
	return nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, companyID string, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) GetEmployeeMonthMap(ctx context.Context, companyID, employeeID string, from, to time.Time) (attendance.DayStatusMap, error) {
	return f.byEmployee[employeeID], nil
}

func (f *fakeAttendanceRepo) GetCompanyMonthMap(ctx context.Context, companyID string, from, to time.Time) (attendance.CompanyStatusMap, error) {
	return f.byEmployee, nil
}

type fakeHolidayRepo struct {
	dates holiday.DateSet
}

func (f *fakeHolidayRepo) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	return h, nil
}

func (f *fakeHolidayRepo) Delete(ctx context.Context, id, companyID string) error { return nil }

func (f *fakeHolidayRepo) ListByYear(ctx context.Context, companyID string, year int) ([]holiday.Holiday, error) {
	return nil, nil
}

func (f *fakeHolidayRepo) GetDateSet(ctx context.Context, companyID string, from, to time.Time) (holiday.DateSet, error) {
	return f.dates, nil
}

type fakeExpenseRepo struct {
	recomputes int
}

func (f *fakeExpenseRepo) RecomputeFromSlips(ctx context.Context, companyID, month string) (expense.MonthlyExpense, error) {
	f.recomputes++
	return expense.MonthlyExpense{CompanyID: companyID, Month: month}, nil
}

func (f *fakeExpenseRepo) GetByMonth(ctx context.Context, companyID, month string) (expense.MonthlyExpense, error) {
	return expense.MonthlyExpense{}, expense.ErrExpenseNotFound
}

func (f *fakeExpenseRepo) ListByCompany(ctx context.Context, companyID string) ([]expense.MonthlyExpense, error) {
	return nil, nil
}

func (f *fakeExpenseRepo) CompanyIDsWithSlips(ctx context.Context, month string) ([]string, error) {
	return nil, nil
}

// ========== FIXTURE ==========

type bulkFixture struct {
	slips    *fakeSlipRepo
	configs  *fakeConfigRepo
	expenses *fakeExpenseRepo
	svc      *Service
}

func newBulkFixture(employeeIDs ...string) *bulkFixture {
	employees := make([]employee.Employee, 0, len(employeeIDs))
	configs := make(map[string]salary.SalaryConfiguration, len(employeeIDs))
	for _, id := range employeeIDs {
		employees = append(employees, employee.Employee{
			ID:        id,
			CompanyID: "company-1",
			FullName:  "Employee " + id,
			Status:    employee.StatusActive,
		})
		config := testConfig(false)
		config.EmployeeID = id
		configs[id] = config
	}

	fx := &bulkFixture{
		slips:    &fakeSlipRepo{preexisting: map[string]bool{}, stored: map[string]bool{}},
		configs:  &fakeConfigRepo{configs: configs},
		expenses: &fakeExpenseRepo{},
	}
	fx.svc = NewService(
		fx.configs,
		&fakeTaxSlabRepo{},
		fx.slips,
		&fakeEmployeeRepo{employees: employees},
		&fakeAttendanceRepo{},
		&fakeHolidayRepo{},
		fx.expenses,
	)
	return fx
}

// ========== BULK GENERATION ==========

func TestGenerateForCompany_UnconfiguredEmployeeDoesNotBlockRest(t *testing.T) {
	t.Parallel()

	fx := newBulkFixture("emp-1", "emp-2", "emp-3", "emp-4", "emp-5")
	delete(fx.configs.configs, "emp-3")

	result, err := fx.svc.GenerateForCompany(context.Background(), "company-1", salary.BulkGenerateRequest{Month: "2025-06"})
	require.NoError(t, err)

	assert.Equal(t, "2025-06", result.Month)
	assert.Equal(t, 4, result.Processed)
	assert.Equal(t, 0, result.Skipped)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "emp-3", result.Errors[0].EmployeeID)
	assert.Equal(t, salary.ErrSalaryConfigNotFound.Error(), result.Errors[0].Reason)

	require.Len(t, fx.slips.inserted, 4)
	for _, slip := range fx.slips.inserted {
		assert.NotEqual(t, "emp-3", slip.EmployeeID)
		assert.Equal(t, "2025-06", slip.Month)
	}
	assert.Equal(t, 1, fx.expenses.recomputes)
}

func TestGenerateForCompany_RerunSkipsEveryone(t *testing.T) {
	t.Parallel()

	fx := newBulkFixture("emp-1", "emp-2", "emp-3")

	first, err := fx.svc.GenerateForCompany(context.Background(), "company-1", salary.BulkGenerateRequest{Month: "2025-06"})
	require.NoError(t, err)
	assert.Equal(t, 3, first.Processed)
	assert.Equal(t, 0, first.Skipped)

	// The second run's prefetch sees what the first one wrote.
	for id := range fx.slips.stored {
		fx.slips.preexisting[id] = true
	}

	second, err := fx.svc.GenerateForCompany(context.Background(), "company-1", salary.BulkGenerateRequest{Month: "2025-06"})
	require.NoError(t, err)

	assert.Equal(t, 0, second.Processed)
	assert.Equal(t, 3, second.Skipped)
	assert.Empty(t, second.Errors)
	assert.Len(t, fx.slips.inserted, 3)
	assert.Equal(t, 1, fx.expenses.recomputes, "nothing landed, ledger untouched")
}

func TestGenerateForCompany_ConcurrentInsertCountsAsSkip(t *testing.T) {
	t.Parallel()

	// emp-2's slip lands between the prefetch and the batch insert.
	fx := newBulkFixture("emp-1", "emp-2", "emp-3")
	fx.slips.stored["emp-2"] = true

	result, err := fx.svc.GenerateForCompany(context.Background(), "company-1", salary.BulkGenerateRequest{Month: "2025-06"})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 1, result.Skipped)
	assert.Empty(t, result.Errors)
}

func TestGenerateForCompany_InvalidMonth(t *testing.T) {
	t.Parallel()

	fx := newBulkFixture("emp-1")

	_, err := fx.svc.GenerateForCompany(context.Background(), "company-1", salary.BulkGenerateRequest{Month: "junk"})
	assert.ErrorIs(t, err, salary.ErrInvalidMonth)
}
