package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"acuity-dashboard/internal/app/config"
	"acuity-dashboard/internal/app/delivery/http/controllers"
	"acuity-dashboard/internal/app/delivery/http/middlewares"
	"acuity-dashboard/internal/app/delivery/http/routers"
	"acuity-dashboard/internal/app/drivers/logger"
	"acuity-dashboard/internal/app/services/backend"
	"acuity-dashboard/internal/app/services/core/acuity"
	"acuity-dashboard/internal/app/services/core/schedule"
	"acuity-dashboard/internal/app/services/core/snapshot"
	"acuity-dashboard/internal/app/services/shared/poller"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()
	accessLog := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		accessLog.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(&bootstrap, location)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			accessLog.Fatalf("Server failed to start: %v", err)
		}
	}()
	log.Info("server listening", zap.String("address", internalConfig.App.Port))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	if bootstrap.PollerStop != nil {
		bootstrap.PollerStop()
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		accessLog.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap, location *time.Location) {
	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Backend clients
	scheduleClient := backend.NewScheduleBackendClient(bootstrap.InternalConfig.Backend, bootstrap.Logger)
	acuityClient := backend.NewAcuityBackendClient(bootstrap.InternalConfig.Backend, bootstrap.Logger)

	// Schedule
	scheduleUsecase := schedule.NewScheduleUsecase(scheduleClient, snapshot.DefaultOpeningHours(), location, bootstrap.Logger)
	scheduleController := controllers.NewScheduleController(scheduleUsecase, bootstrap.Logger)

	// Acuity
	acuityUsecase := acuity.NewAcuityUsecase(acuityClient, location, bootstrap.Logger)
	acuityController := controllers.NewAcuityController(acuityUsecase, validator.New(), bootstrap.Logger)

	// Background diff polling
	pollInterval := time.Second * time.Duration(bootstrap.InternalConfig.Backend.DiffPollIntervalInSeconds)
	bootstrap.PollerStop = poller.New(scheduleUsecase, pollInterval, bootstrap.Logger).Start(context.Background())

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, scheduleController, acuityController)
}
