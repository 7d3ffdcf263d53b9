package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/tansuasici/countrystatecity-go/internal/api"
	"github.com/tansuasici/countrystatecity-go/internal/config"
	"github.com/tansuasici/countrystatecity-go/internal/export"
	"github.com/tansuasici/countrystatecity-go/internal/service"
	"github.com/tansuasici/countrystatecity-go/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	st := store.New(cfg.Data.Dir, logger)
	svc := service.NewService(st)
	exporter := export.New(st, logger)

	// Forces the lazy loads up front so a broken dataset shows at startup
	stats := svc.Stats()
	logger.Info("Loaded reference dataset",
		zap.String("dir", cfg.Data.Dir),
		zap.Int("countries", stats.Countries),
		zap.Int("states", stats.States),
		zap.Int("cities", stats.Cities),
	)

	router := api.NewRouter(svc, exporter, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSec) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
