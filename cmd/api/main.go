package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/seika-clinic/attendance-backend-go/internal/config"
	appHTTP "github.com/seika-clinic/attendance-backend-go/internal/handler/http"
	"github.com/seika-clinic/attendance-backend-go/internal/pkg/cron"
	"github.com/seika-clinic/attendance-backend-go/internal/pkg/database"
	"github.com/seika-clinic/attendance-backend-go/internal/pkg/jwt"
	"github.com/seika-clinic/attendance-backend-go/internal/pkg/oauth"
	"github.com/seika-clinic/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/seika-clinic/attendance-backend-go/internal/service/attendance"
	authService "github.com/seika-clinic/attendance-backend-go/internal/service/auth"
	dashboardService "github.com/seika-clinic/attendance-backend-go/internal/service/dashboard"
	payrollService "github.com/seika-clinic/attendance-backend-go/internal/service/payroll"
	reportService "github.com/seika-clinic/attendance-backend-go/internal/service/report"
	settingsService "github.com/seika-clinic/attendance-backend-go/internal/service/settings"
	staffService "github.com/seika-clinic/attendance-backend-go/internal/service/staff"
	userService "github.com/seika-clinic/attendance-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	staffRepo := postgresql.NewStaffRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	settingsSvc := settingsService.NewSettingsService(settingsRepo)
	staffSvc := staffService.NewStaffService(staffRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, staffRepo, settingsSvc)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, attendanceRepo, staffRepo, settingsSvc, slog.Default())
	reportSvc := reportService.NewReportService(payrollRepo, attendanceRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)
	authSvc := authService.NewAuthService(userRepo, jwtService)
	userSvc := userService.NewUserService(userRepo)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc, googleService, cfg.App.FrontendURL),
		Staff:      appHTTP.NewStaffHandler(staffSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Settings:   appHTTP.NewSettingsHandler(settingsSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		User:       appHTTP.NewUserHandler(userSvc),
	}

	router := appHTTP.NewRouter(jwtService, handlers, cfg.App.CORSAllowedOrigins)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo, payrollRepo, payrollSvc, settingsSvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Server shutdown error:", err)
	}
}
