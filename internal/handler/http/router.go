package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/worklog-id/worklog-backend-go/internal/config"
	"github.com/worklog-id/worklog-backend-go/internal/handler/http/middleware"
	"github.com/worklog-id/worklog-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg config.AppConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	dailyLogHandler DailyLogHandler,
	verificationHandler VerificationHandler,
	employeeHandler EmployeeHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "worklog-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.SlogLevel(),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Route("/auth", func(r chi.Router) {
				r.Get("/me", authHandler.Me)
				r.Post("/logout", authHandler.Logout)
			})

			r.Route("/daily-logs", func(r chi.Router) {
				r.Get("/", dailyLogHandler.List)
				r.Post("/", dailyLogHandler.Create)
				r.Get("/statistics", dailyLogHandler.Statistics)
				r.Get("/{id}", dailyLogHandler.Get)
				r.Put("/{id}", dailyLogHandler.Update)
				r.Delete("/{id}", dailyLogHandler.Delete)
			})

			r.Route("/verification", func(r chi.Router) {
				r.Get("/subordinates", verificationHandler.Subordinates)
				r.Get("/pending-logs", verificationHandler.PendingLogs)
				r.Get("/statistics", verificationHandler.Statistics)
				r.Post("/bulk-approve", verificationHandler.BulkApprove)
				r.Post("/approve/{id}", verificationHandler.Approve)
				r.Post("/reject/{id}", verificationHandler.Reject)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/organization", employeeHandler.OrganizationTree)
				r.Get("/{id}", employeeHandler.Get)
			})
		})
	})
	return r
}
