package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"airing-today/internal/config"
	"airing-today/internal/handler"
	"airing-today/internal/logger"
	"airing-today/internal/metrics"
	"airing-today/internal/notify"
	"airing-today/internal/service"
	"airing-today/internal/tmdb"
)

// app holds the wired components shared by the subcommands.
type app struct {
	cfg      *config.Config
	log      *logger.Logger
	metrics  *metrics.Metrics
	trending *service.TrendingService
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.New(cfg.Logging)
	if !cfg.HasAPIKey() {
		log.Warn().Msg("TMDB_API_KEY not set; the home page will report the missing key")
	}

	m := metrics.New()
	client := tmdb.NewClient(cfg.TMDB, log.Logger)

	return &app{
		cfg:      cfg,
		log:      log,
		metrics:  m,
		trending: service.NewTrendingService(client, m, log.Logger),
	}, nil
}

func runServe(parent context.Context) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.log.Close()

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.cfg.Telegram.Enabled() {
		notifier, err := notify.NewTelegramNotifier(a.cfg.Telegram, "", a.log.Logger)
		if err != nil {
			return err
		}
		scheduler := service.NewScheduler(a.trending, notifier, a.cfg.Telegram.ReportTime, a.log.Logger)
		if err := scheduler.Start(); err != nil {
			return fmt.Errorf("failed to start scheduler: %w", err)
		}
		defer scheduler.Stop()
	}

	router := handler.NewRouter(handler.NewHTTPHandler(a.trending, a.metrics, a.cfg.TMDB.APIKey), a.log.Logger)
	server := &http.Server{
		Addr:        a.cfg.Server.Address(),
		Handler:     router,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		a.log.Info().Str("addr", server.Addr).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		a.log.Info().Msg("Shutting down...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func runReport(parent context.Context) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.log.Close()

	if !a.cfg.HasAPIKey() {
		return tmdb.ErrAPIKeyMissing
	}

	notifier, err := notify.NewTelegramNotifier(a.cfg.Telegram, "", a.log.Logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(parent, 5*time.Minute)
	defer cancel()

	scheduler := service.NewScheduler(a.trending, notifier, a.cfg.Telegram.ReportTime, a.log.Logger)
	if err := scheduler.RunDailyReport(ctx); err != nil {
		return fmt.Errorf("failed to send daily report: %w", err)
	}
	fmt.Println("Daily report sent successfully!")
	return nil
}
