package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/staffledger/payroll-backend-go/internal/config"
	appHTTP "github.com/staffledger/payroll-backend-go/internal/handler/http"
	"github.com/staffledger/payroll-backend-go/internal/pkg/cron"
	"github.com/staffledger/payroll-backend-go/internal/pkg/database"
	"github.com/staffledger/payroll-backend-go/internal/pkg/jwt"
	"github.com/staffledger/payroll-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffledger/payroll-backend-go/internal/service/attendance"
	expenseService "github.com/staffledger/payroll-backend-go/internal/service/expense"
	holidayService "github.com/staffledger/payroll-backend-go/internal/service/holiday"
	leaveService "github.com/staffledger/payroll-backend-go/internal/service/leave"
	salaryService "github.com/staffledger/payroll-backend-go/internal/service/salary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	leaveSettingsRepo := postgresql.NewLeaveSettingsRepository(db)
	salaryConfigRepo := postgresql.NewSalaryConfigRepository(db)
	taxSlabRepo := postgresql.NewTaxSlabRepository(db)
	slipRepo := postgresql.NewSlipRepository(db)
	expenseRepo := postgresql.NewExpenseRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	attendanceSvc := attendanceService.NewService(attendanceRepo, employeeRepo, attendanceService.LockConfig{
		GracePeriodDays: cfg.Attendance.GracePeriodDays,
		MaxFutureDays:   cfg.Attendance.MaxFutureDays,
	})
	holidaySvc := holidayService.NewService(holidayRepo)
	leaveSvc := leaveService.NewService(db, leaveRequestRepo, leaveBalanceRepo, leaveSettingsRepo, holidayRepo, attendanceRepo)
	salarySvc := salaryService.NewService(salaryConfigRepo, taxSlabRepo, slipRepo, employeeRepo, attendanceRepo, holidayRepo, expenseRepo)
	expenseSvc := expenseService.NewService(expenseRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	salaryHandler := appHTTP.NewSalaryHandler(salarySvc)
	expenseHandler := appHTTP.NewExpenseHandler(expenseSvc)

	scheduler := cron.NewScheduler()
	expenseJob := cron.NewExpenseReconciliationJob(expenseRepo)
	scheduler.AddJob("expense-reconciliation", 6*time.Hour, expenseJob.Run)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		JWTService,
		salaryHandler,
		attendanceHandler,
		holidayHandler,
		leaveHandler,
		expenseHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
