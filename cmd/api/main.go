package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/jwalitptl/clinic-api/pkg/logger"

	"github.com/jwalitptl/clinic-api/internal/config"
	"github.com/jwalitptl/clinic-api/internal/handler"
	doctorHandler "github.com/jwalitptl/clinic-api/internal/handler/doctor"
	medicalRecordHandler "github.com/jwalitptl/clinic-api/internal/handler/medicalrecord"
	patientHandler "github.com/jwalitptl/clinic-api/internal/handler/patient"
	timetableHandler "github.com/jwalitptl/clinic-api/internal/handler/timetable"
	"github.com/jwalitptl/clinic-api/internal/middleware"
	"github.com/jwalitptl/clinic-api/internal/repository/postgres"
	"github.com/jwalitptl/clinic-api/internal/router"
	doctorService "github.com/jwalitptl/clinic-api/internal/service/doctor"
	medicalRecordService "github.com/jwalitptl/clinic-api/internal/service/medicalrecord"
	patientService "github.com/jwalitptl/clinic-api/internal/service/patient"
	timetableService "github.com/jwalitptl/clinic-api/internal/service/timetable"
)

func main() {
	appLog := logger.NewLogger(nil)

	cfg, err := config.LoadConfig()
	if err != nil {
		appLog.Fatal(err, "failed to load configuration")
	}

	zerolog.SetGlobalLevel(logger.ParseLevel(cfg.Log.Level))

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		appLog.Fatal(err, "failed to connect to database")
	}
	defer db.Close()

	// Repositories
	doctorRepo := postgres.NewDoctorRepository(db)
	patientRepo := postgres.NewPatientRepository(db)
	medicalRecordRepo := postgres.NewMedicalRecordRepository(db)
	timetableRepo := postgres.NewTimetableRepository(db)

	// Services
	doctorSvc := doctorService.NewService(doctorRepo)
	patientSvc := patientService.NewService(patientRepo)
	medicalRecordSvc := medicalRecordService.NewService(medicalRecordRepo)
	timetableSvc := timetableService.NewService(timetableRepo)

	// Handlers
	h := handler.NewHandler()
	doctorH := doctorHandler.NewHandler(doctorSvc)
	patientH := patientHandler.NewHandler(patientSvc)
	medicalRecordH := medicalRecordHandler.NewHandler(medicalRecordSvc)
	timetableH := timetableHandler.NewHandler(timetableSvc)

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.CORS.AllowOrigins
	corsConfig.AllowCredentials = cfg.CORS.AllowCredentials

	r := router.NewRouter(
		router.Config{
			CORS:          corsConfig,
			RateLimitRPS:  cfg.RateLimit.RPS,
			RateBurst:     cfg.RateLimit.Burst,
			MetricsPrefix: "clinic_api",
		},
		h,
		doctorH,
		patientH,
		medicalRecordH,
		timetableH,
	)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		appLog.Info("starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal(err, "failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLog.Fatal(err, "server forced to shutdown")
	}

	appLog.Info("server exited properly")
}
