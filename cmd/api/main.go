package main

import (
	"fmt"
	"net/http"

	"github.com/dylanbyc/hi-fifty/internal/config"
	appHTTP "github.com/dylanbyc/hi-fifty/internal/handler/http"
	"github.com/dylanbyc/hi-fifty/internal/pkg/cron"
	"github.com/dylanbyc/hi-fifty/internal/pkg/database"
	"github.com/dylanbyc/hi-fifty/internal/repository/holidayfile"
	"github.com/dylanbyc/hi-fifty/internal/repository/postgresql"
	attendanceService "github.com/dylanbyc/hi-fifty/internal/service/attendance"
	holidayService "github.com/dylanbyc/hi-fifty/internal/service/holiday"
	patternService "github.com/dylanbyc/hi-fifty/internal/service/pattern"
	reportService "github.com/dylanbyc/hi-fifty/internal/service/report"
	settingsService "github.com/dylanbyc/hi-fifty/internal/service/settings"
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

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	patternRepo := postgresql.NewPatternRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	holidayRepo, err := holidayfile.New(cfg.Holiday.DataPath)
	if err != nil {
		fmt.Println("Error loading holiday calendar:", err)
		return
	}

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	settingsSvc := settingsService.NewSettingsService(settingsRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo, settingsRepo)
	patternSvc := patternService.NewPatternService(db, patternRepo, attendanceSvc, patternService.NewExpander())
	reportSvc := reportService.NewReportService(attendanceRepo, holidayRepo, settingsRepo, reportService.NewCalculator())

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	patternHandler := appHTTP.NewPatternHandler(patternSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	settingsHandler := appHTTP.NewSettingsHandler(settingsSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)

	scheduler := cron.NewScheduler()
	autoPopulateJobs := cron.NewAutoPopulateJobs(patternSvc, attendanceSvc, holidayRepo, settingsRepo)
	autoPopulateJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg.App.FrontendURL,
		attendanceHandler,
		patternHandler,
		reportHandler,
		settingsHandler,
		holidayHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
