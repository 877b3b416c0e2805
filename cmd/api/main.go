package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/docvisit/practice-api/internal/config"
	"github.com/docvisit/practice-api/internal/handler"
	doctorHandler "github.com/docvisit/practice-api/internal/handler/doctor"
	patientHandler "github.com/docvisit/practice-api/internal/handler/patient"
	visitHandler "github.com/docvisit/practice-api/internal/handler/visit"
	"github.com/docvisit/practice-api/internal/repository/postgres"
	"github.com/docvisit/practice-api/internal/router"
	doctorService "github.com/docvisit/practice-api/internal/service/doctor"
	eventService "github.com/docvisit/practice-api/internal/service/event"
	patientService "github.com/docvisit/practice-api/internal/service/patient"
	visitService "github.com/docvisit/practice-api/internal/service/visit"
	"github.com/docvisit/practice-api/internal/tenant"
	"github.com/docvisit/practice-api/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	registry := tenant.NewRegistry(cfg.Tenants)

	pools, err := postgres.NewTenantPools(registry)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open tenant pools")
	}
	defer pools.Close()

	doctorRepo := postgres.NewDoctorRepository(pools)
	patientRepo := postgres.NewPatientRepository(pools)
	visitRepo := postgres.NewVisitRepository(pools)
	outboxRepo := postgres.NewOutboxRepository(pools)

	eventSvc := eventService.NewService(outboxRepo)
	doctorSvc := doctorService.NewService(doctorRepo, visitRepo, pools, eventSvc)
	patientSvc := patientService.NewService(patientRepo, visitRepo, pools, eventSvc)
	visitSvc := visitService.NewService(visitRepo, pools, eventSvc)

	r := router.NewRouter(
		registry,
		handler.NewHealthHandler(pools),
		cfg.RateLimit,
		doctorHandler.NewHandler(doctorSvc),
		patientHandler.NewHandler(patientSvc),
		visitHandler.NewHandler(visitSvc),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Outbox.Enabled {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid redis URL")
		}
		broker := redis.NewClient(opts)
		defer broker.Close()

		processor := worker.NewOutboxProcessor(outboxRepo, registry, broker, cfg.Outbox)
		go processor.Start(ctx)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Strs("tenants", registry.IDs()).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server exited properly")
}
