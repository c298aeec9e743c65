package service

import (
	"context"

	"airing-today/internal/models"
)

// ReportSender defines capability to send daily reports.
type ReportSender interface {
	SendDailyReport(report models.TrendingReport) error
}

// TrendingProvider produces today's ranked episodes.
type TrendingProvider interface {
	TrendingToday(ctx context.Context) models.TrendingReport
}
