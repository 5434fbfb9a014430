package main

import (
	"context"
	"net/http"
	"os"

	"github.com/grocerly/appcore/api/routes"
	"github.com/grocerly/appcore/internal/backoffice"
	"github.com/grocerly/appcore/pkg/config"
	"github.com/grocerly/appcore/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "mockapi"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "mockapi",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	db, err := backoffice.Open(context.Background(), cfg.MockAPI, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	if cfg.MockAPI.Seed {
		if err := backoffice.Seed(context.Background(), db, logg); err != nil {
			logg.Error(context.Background(), "failed to seed catalog", err)
			os.Exit(1)
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	repo := backoffice.NewRepository(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.MockAPI.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting mock storefront api")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, repo, registry),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "mock api stopped unexpectedly", err)
		os.Exit(1)
	}
}
