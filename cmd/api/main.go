package main

import (
	"fmt"
	"net/http"

	"github.com/peopledesk/hr-backend-go/internal/config"
	appHTTP "github.com/peopledesk/hr-backend-go/internal/handler/http"
	"github.com/peopledesk/hr-backend-go/internal/pkg/database"
	"github.com/peopledesk/hr-backend-go/internal/repository/postgresql"
	attendanceService "github.com/peopledesk/hr-backend-go/internal/service/attendance"
	employeeService "github.com/peopledesk/hr-backend-go/internal/service/employee"
	leaveService "github.com/peopledesk/hr-backend-go/internal/service/leave"
	onboardingService "github.com/peopledesk/hr-backend-go/internal/service/onboarding"
	payrollService "github.com/peopledesk/hr-backend-go/internal/service/payroll"
	performanceService "github.com/peopledesk/hr-backend-go/internal/service/performance"
	recruitmentService "github.com/peopledesk/hr-backend-go/internal/service/recruitment"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	shift, err := cfg.ShiftWindow()
	if err != nil {
		fmt.Println("Error building shift window:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	performanceRepo := postgresql.NewPerformanceRepository(db)
	recruitmentRepo := postgresql.NewRecruitmentRepository(db)
	onboardingRepo := postgresql.NewOnboardingRepository(db)
	bankRepo := postgresql.NewBankRepository(db)
	analyticsRepo := postgresql.NewAnalyticsRepository(db)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, shift)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo)
	performanceSvc := performanceService.NewPerformanceService(performanceRepo, employeeRepo)
	recruitmentSvc := recruitmentService.NewRecruitmentService(recruitmentRepo)
	onboardingSvc := onboardingService.NewOnboardingService(db, onboardingRepo, employeeRepo)

	router := appHTTP.NewRouter(cfg.App, appHTTP.Handlers{
		Employee:    appHTTP.NewEmployeeHandler(employeeSvc),
		Payroll:     appHTTP.NewPayrollHandler(payrollSvc),
		Attendance:  appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:       appHTTP.NewLeaveHandler(leaveSvc),
		Performance: appHTTP.NewPerformanceHandler(performanceSvc),
		Recruitment: appHTTP.NewRecruitmentHandler(recruitmentSvc),
		Onboarding:  appHTTP.NewOnboardingHandler(onboardingSvc),
		Master:      appHTTP.NewMasterHandler(bankRepo),
		Analytics:   appHTTP.NewAnalyticsHandler(analyticsRepo),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
