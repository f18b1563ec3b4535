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

	"github.com/seika-clinic/attendance-backend-go/internal/domain/user"
	"github.com/seika-clinic/attendance-backend-go/internal/handler/http/middleware"
	"github.com/seika-clinic/attendance-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Staff      StaffHandler
	Attendance AttendanceHandler
	Settings   SettingsHandler
	Payroll    PayrollHandler
	Dashboard  DashboardHandler
	Report     ReportHandler
	User       UserHandler
}

func NewRouter(jwtService jwt.Service, h Handlers, corsAllowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "seika-attendance"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsAllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
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

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Route("/login/oauth", func(r chi.Router) {
				r.Get("/google", h.Auth.LoginWithGoogle)
			})
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", h.Auth.OAuthCallbackGoogle)
			})

			// Requires authentication
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

				r.Get("/me", h.Auth.Me)
				r.Post("/change-password", h.Auth.ChangePassword)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/dashboard", h.Dashboard.GetDashboard)

			r.Route("/staff", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionStaffView))
					r.Get("/", h.Staff.List)
					r.Get("/{id}", h.Staff.GetByID)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionStaffManage))
					r.Post("/", h.Staff.Create)
					r.Put("/{id}", h.Staff.Update)
					r.Delete("/{id}", h.Staff.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAttendanceView))
					r.Get("/", h.Attendance.ListByDate)
					r.Get("/range", h.Attendance.ListByRange)
					r.Get("/staff/{staffId}", h.Attendance.ListByStaffMonth)
					r.Post("/analyze", h.Attendance.Analyze)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAttendanceManage))
					r.Post("/", h.Attendance.Save)
					r.Post("/bulk", h.Attendance.BulkSave)
					r.Delete("/staff/{staffId}/{date}", h.Attendance.Delete)
				})
			})

			// Admin only
			r.Route("/payroll", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Route("/{month}", func(r chi.Router) {
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequirePermission(user.PermissionPayrollView))
						r.Get("/", h.Payroll.ListByMonth)
					})

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequirePermission(user.PermissionPayrollManage))
						r.Post("/calculate", h.Payroll.CalculateAll)
					})

					r.Route("/staff/{staffId}", func(r chi.Router) {
						r.Group(func(r chi.Router) {
							r.Use(middleware.RequirePermission(user.PermissionPayrollView))
							r.Get("/", h.Payroll.Get)
						})

						r.Group(func(r chi.Router) {
							r.Use(middleware.RequirePermission(user.PermissionPayrollManage))
							r.Post("/calculate", h.Payroll.Calculate)
							r.Post("/", h.Payroll.Save)
							r.Put("/items", h.Payroll.SetCustomItems)
							r.Delete("/", h.Payroll.Delete)
						})
					})
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionReportsView))
				r.Get("/payroll", h.Report.ExportPayroll)
				r.Get("/attendance", h.Report.ExportAttendance)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionSettingsView))
					r.Get("/", h.Settings.Get)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionSettingsManage))
					r.Put("/", h.Settings.Update)
				})
			})

			// System admin only
			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequireSystemAdmin)
				r.Get("/", h.User.List)
				r.Post("/", h.User.Create)
				r.Put("/{id}/role", h.User.UpdateRole)
				r.Delete("/{id}", h.User.Delete)
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	return r
}
