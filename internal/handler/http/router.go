package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/staffledger/payroll-backend-go/internal/handler/http/middleware"
	"github.com/staffledger/payroll-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	salaryHandler SalaryHandler,
	attendanceHandler AttendanceHandler,
	holidayHandler HolidayHandler,
	leaveHandler LeaveHandler,
	expenseHandler ExpenseHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staffledger-payroll"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", attendanceHandler.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/mark", attendanceHandler.Mark)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", holidayHandler.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", holidayHandler.Create)
					r.Delete("/{id}", holidayHandler.Delete)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Route("/requests", func(r chi.Router) {
					r.Post("/", leaveHandler.CreateRequest)
					r.Get("/", leaveHandler.ListRequests)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireManager)
						r.Patch("/{id}/status", leaveHandler.UpdateStatus)
					})
				})

				r.Get("/balances/{employeeID}", leaveHandler.GetBalances)

				r.Route("/settings", func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", leaveHandler.GetSettings)
					r.Put("/", leaveHandler.UpdateSettings)
				})
			})

			r.Route("/salary", func(r chi.Router) {
				r.Route("/configurations", func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Put("/{employeeID}", salaryHandler.UpsertConfiguration)
					r.Get("/{employeeID}", salaryHandler.GetConfiguration)
				})

				r.Route("/tax-slabs", func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", salaryHandler.ListTaxSlabs)
					r.Post("/", salaryHandler.CreateTaxSlab)
					r.Delete("/{id}", salaryHandler.DeleteTaxSlab)
				})

				r.Route("/slips", func(r chi.Router) {
					r.Get("/", salaryHandler.ListSlips)
					r.Get("/{id}", salaryHandler.GetSlip)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireManager)
						r.Post("/", salaryHandler.GenerateSlip)
						r.Post("/preview", salaryHandler.PreviewSlip)
						r.Post("/bulk", salaryHandler.GenerateForCompany)
					})
				})
			})

			r.Route("/expenses", func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Get("/", expenseHandler.List)
				r.Get("/{month}", expenseHandler.GetByMonth)
			})
		})
	})
	return r
}
