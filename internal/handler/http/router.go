package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/scanpoint/attendance-backend-go/internal/handler/http/middleware"
	"github.com/scanpoint/attendance-backend-go/internal/pkg/jwt"
)

func NewRouter(
	env string,
	jwtService jwt.Service,
	authHandler AuthHandler,
	scanHandler ScanHandler,
	attendanceHandler AttendanceHandler,
	scheduleHandler ScheduleHandler,
	holidayHandler HolidayHandler,
	userHandler UserHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", attendanceHandler.List)
				r.Get("/daily", attendanceHandler.DailyReport)
				r.Get("/{id}", attendanceHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/{id}", attendanceHandler.Update)
					r.Post("/reconcile", attendanceHandler.Reconcile)
				})
			})

			// Admin only: the scanner device authenticates with an admin
			// token, and all management surfaces are console-facing.
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Post("/scan", scanHandler.Scan)

				r.Route("/schedules", func(r chi.Router) {
					r.Post("/", scheduleHandler.Create)
					r.Get("/{id}", scheduleHandler.Get)
					r.Put("/{id}", scheduleHandler.Update)
					r.Delete("/{id}", scheduleHandler.Delete)
					r.Get("/user/{userID}", scheduleHandler.ListByUser)
				})

				r.Route("/holidays", func(r chi.Router) {
					r.Get("/", holidayHandler.List)
					r.Post("/", holidayHandler.Create)
					r.Get("/{id}", holidayHandler.Get)
					r.Put("/{id}", holidayHandler.Update)
					r.Delete("/{id}", holidayHandler.Delete)
				})

				r.Route("/users", func(r chi.Router) {
					r.Get("/", userHandler.List)
					r.Post("/", userHandler.Create)
					r.Get("/{id}", userHandler.Get)
					r.Put("/{id}", userHandler.Update)
					r.Delete("/{id}", userHandler.Delete)
					r.Post("/{id}/token", userHandler.RegenerateToken)
				})
			})
		})
	})

	return r
}
