package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"

	"airing-today/internal/config"
)

const reportTimeout = 5 * time.Minute

// Scheduler sends the daily trending report at a fixed local time.
type Scheduler struct {
	trending   TrendingProvider
	sender     ReportSender
	reportTime string // Format: "HH:MM"
	logger     zerolog.Logger

	cron gocron.Scheduler
	job  gocron.Job
}

// NewScheduler creates a new Scheduler
func NewScheduler(trending TrendingProvider, sender ReportSender, reportTime string, logger zerolog.Logger) *Scheduler {
	return &Scheduler{
		trending:   trending,
		sender:     sender,
		reportTime: reportTime,
		logger:     logger.With().Str("component", "scheduler").Logger(),
	}
}

// Start registers the daily report job and starts the scheduler.
func (s *Scheduler) Start() error {
	hour, minute, err := config.ParseReportTime(s.reportTime)
	if err != nil {
		return err
	}

	cron, err := gocron.NewScheduler(gocron.WithLocation(time.Local))
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	job, err := cron.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(uint(hour), uint(minute), 0))),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
			defer cancel()
			if err := s.RunDailyReport(ctx); err != nil {
				s.logger.Error().Err(err).Msg("Failed to send daily report")
			}
		}),
		gocron.WithName("daily-report"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		cron.Shutdown()
		return fmt.Errorf("failed to schedule daily report: %w", err)
	}

	s.cron = cron
	s.job = job
	cron.Start()

	if next, err := job.NextRun(); err == nil {
		s.logger.Info().
			Str("report_time", s.reportTime).
			Time("next_run", next).
			Msg("Scheduler started")
	}
	return nil
}

// NextRun returns when the daily report fires next.
func (s *Scheduler) NextRun() (time.Time, error) {
	if s.job == nil {
		return time.Time{}, fmt.Errorf("scheduler not started")
	}
	return s.job.NextRun()
}

// Stop stops the scheduler, waiting for a running report to finish.
func (s *Scheduler) Stop() error {
	if s.cron == nil {
		return nil
	}
	return s.cron.Shutdown()
}

// RunDailyReport runs the trending pipeline once and sends the result.
func (s *Scheduler) RunDailyReport(ctx context.Context) error {
	report := s.trending.TrendingToday(ctx)
	if err := s.sender.SendDailyReport(report); err != nil {
		return err
	}
	s.logger.Info().Str("date", report.Date).Msg("Daily report delivered")
	return nil
}
