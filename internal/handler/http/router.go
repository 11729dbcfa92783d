package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"github.com/peopledesk/hr-backend-go/internal/config"
)

type Handlers struct {
	Employee    EmployeeHandler
	Payroll     PayrollHandler
	Attendance  AttendanceHandler
	Leave       LeaveHandler
	Performance PerformanceHandler
	Recruitment RecruitmentHandler
	Onboarding  OnboardingHandler
	Master      MasterHandler
	Analytics   AnalyticsHandler
}

func NewRouter(appConfig config.AppConfig, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       logLevel(appConfig.LogLevel),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "peopledesk"),
		slog.String("version", "v1.0.0"),
		slog.String("env", appConfig.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   appConfig.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.Employee.List)
			r.Post("/", h.Employee.Create)
			r.Get("/{id}", h.Employee.Get)
			r.Put("/{id}", h.Employee.Update)
			r.Delete("/{id}", h.Employee.Delete)
		})

		r.Route("/payroll", func(r chi.Router) {
			r.Get("/", h.Payroll.List)
			r.Post("/", h.Payroll.Create)
			r.Get("/{id}", h.Payroll.Get)
			r.Put("/{id}", h.Payroll.Update)
			r.Delete("/{id}", h.Payroll.Delete)

			r.Post("/{id}/process", h.Payroll.Process)
			r.Post("/{id}/pay", h.Payroll.MarkPaid)
			r.Post("/{id}/cancel", h.Payroll.Cancel)

			r.Post("/{id}/deductions", h.Payroll.AddDeduction)
			r.Delete("/{id}/deductions/{deductionID}", h.Payroll.RemoveDeduction)
			r.Post("/{id}/bonuses", h.Payroll.AddBonus)
			r.Delete("/{id}/bonuses/{bonusID}", h.Payroll.RemoveBonus)

			r.Get("/{id}/payslip", h.Payroll.Payslip)
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", h.Attendance.List)
			r.Post("/", h.Attendance.Create)
			r.Get("/{id}", h.Attendance.Get)
			r.Put("/{id}", h.Attendance.Update)
			r.Delete("/{id}", h.Attendance.Delete)
		})

		r.Route("/leaves", func(r chi.Router) {
			r.Get("/", h.Leave.List)
			r.Post("/", h.Leave.Create)
			r.Get("/{id}", h.Leave.Get)
			r.Put("/{id}", h.Leave.Update)
			r.Delete("/{id}", h.Leave.Delete)

			r.Post("/{id}/approve", h.Leave.Approve)
			r.Post("/{id}/reject", h.Leave.Reject)
			r.Post("/{id}/cancel", h.Leave.Cancel)
		})

		r.Route("/performance", func(r chi.Router) {
			r.Get("/", h.Performance.List)
			r.Post("/", h.Performance.Create)
			r.Get("/{id}", h.Performance.Get)
			r.Put("/{id}", h.Performance.Update)
			r.Delete("/{id}", h.Performance.Delete)
		})

		r.Route("/recruitment", func(r chi.Router) {
			r.Route("/jobs", func(r chi.Router) {
				r.Get("/", h.Recruitment.ListJobs)
				r.Post("/", h.Recruitment.CreateJob)
				r.Get("/{id}", h.Recruitment.GetJob)
				r.Put("/{id}", h.Recruitment.UpdateJob)
				r.Delete("/{id}", h.Recruitment.DeleteJob)
			})

			r.Route("/applicants", func(r chi.Router) {
				r.Get("/", h.Recruitment.ListApplicants)
				r.Post("/", h.Recruitment.CreateApplicant)
				r.Get("/{id}", h.Recruitment.GetApplicant)
				r.Put("/{id}", h.Recruitment.UpdateApplicant)
				r.Delete("/{id}", h.Recruitment.DeleteApplicant)
				r.Post("/{id}/stage", h.Recruitment.ChangeApplicantStage)
			})
		})

		r.Route("/onboarding", func(r chi.Router) {
			r.Get("/", h.Onboarding.ListProcesses)
			r.Post("/", h.Onboarding.CreateProcess)
			r.Get("/{id}", h.Onboarding.GetProcess)
			r.Delete("/{id}", h.Onboarding.DeleteProcess)

			r.Post("/{id}/tasks", h.Onboarding.AddTask)
			r.Put("/{id}/tasks/{taskID}", h.Onboarding.UpdateTask)
			r.Delete("/{id}/tasks/{taskID}", h.Onboarding.DeleteTask)
		})

		r.Route("/banks", func(r chi.Router) {
			r.Get("/", h.Master.ListBanks)
			r.Get("/{code}", h.Master.GetBank)
		})

		r.Get("/analytics/dashboard", h.Analytics.Dashboard)
	})

	return r
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
