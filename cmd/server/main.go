package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	h "github.com/veranemoloko/resumatch/internal/api/http"
	cfgpkg "github.com/veranemoloko/resumatch/internal/config"
	repo "github.com/veranemoloko/resumatch/internal/repository"
	"github.com/veranemoloko/resumatch/internal/results"
	svc "github.com/veranemoloko/resumatch/internal/service"
	"github.com/veranemoloko/resumatch/internal/session"
	"github.com/veranemoloko/resumatch/internal/upload"
	"github.com/veranemoloko/resumatch/internal/validation"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := cfgpkg.Load()
	if err != nil {
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			return fmt.Errorf("configuration file not found: %w", err)
		}
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := cfgpkg.SetupLogger(cfg)
	logger.Info("configuration loaded successfully")

	fixtures, err := results.LoadFixtures(cfg.FixturesFile)
	if err != nil {
		return fmt.Errorf("failed to load result fixtures: %w", err)
	}

	sessionService := svc.NewSessionService(repo.NewSessionStorage(), session.Config{
		UploadDelay:    cfg.UploadDelay,
		AnalysisDelay:  cfg.AnalysisDelay,
		JobSearchDelay: cfg.JobSearchDelay,
		Validator:      validation.NewUploadValidator(cfg.MaxUploadSize, cfg.AllowedExtensions),
		Sink:           upload.SimulatedSink{},
		Fixtures:       fixtures,
	}, cfg.SessionTTL, logger)

	router := h.NewRouter(sessionService, cfg.MaxUploadSize, logger)
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPTimeout,
		WriteTimeout: cfg.HTTPTimeout,
		IdleTimeout:  cfg.HTTPTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return sessionService.RunJanitor(gctx, cfg.JanitorInterval)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", "error", err)
		} else {
			logger.Info("server stopped gracefully")
		}
		return sessionService.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
