package main

import (
	"fmt"
	"net/http"

	"github.com/scanpoint/attendance-backend-go/internal/config"
	appHTTP "github.com/scanpoint/attendance-backend-go/internal/handler/http"
	"github.com/scanpoint/attendance-backend-go/internal/pkg/cron"
	"github.com/scanpoint/attendance-backend-go/internal/pkg/database"
	"github.com/scanpoint/attendance-backend-go/internal/pkg/jwt"
	"github.com/scanpoint/attendance-backend-go/internal/repository/postgresql"
	authService "github.com/scanpoint/attendance-backend-go/internal/service/auth"
	holidayService "github.com/scanpoint/attendance-backend-go/internal/service/holiday"
	"github.com/scanpoint/attendance-backend-go/internal/service/notification"
	"github.com/scanpoint/attendance-backend-go/internal/service/reconcile"
	"github.com/scanpoint/attendance-backend-go/internal/service/reminder"
	"github.com/scanpoint/attendance-backend-go/internal/service/report"
	"github.com/scanpoint/attendance-backend-go/internal/service/scan"
	scheduleService "github.com/scanpoint/attendance-backend-go/internal/service/schedule"
	userService "github.com/scanpoint/attendance-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}
	loc := cfg.Location()

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	txManager := postgresql.NewTxManager(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	dispatcher := notification.NewLogDispatcher()

	authSvc := authService.NewAuthService(userRepo, jwtService)
	userSvc := userService.NewUserService(userRepo)
	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo, userRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	scanSvc := scan.NewScanService(txManager, userRepo, scheduleRepo, attendanceRepo, loc)
	reconcileSvc := reconcile.NewReconcileService(scheduleRepo, attendanceRepo, holidayRepo, loc)
	reportSvc := report.NewReportService(attendanceRepo, scheduleRepo, loc)
	reminderSvc := reminder.NewService(scheduleRepo, attendanceRepo, holidayRepo, dispatcher, loc)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	scanHandler := appHTTP.NewScanHandler(scanSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(reportSvc, reconcileSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	userHandler := appHTTP.NewUserHandler(userSvc)

	scheduler := cron.NewScheduler()
	cron.RegisterAttendanceJobs(scheduler, reconcileSvc, reminderSvc, loc)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg.App.Env,
		jwtService,
		authHandler,
		scanHandler,
		attendanceHandler,
		scheduleHandler,
		holidayHandler,
		userHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
