package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airing-today/internal/models"
)

type stubTrending struct {
	report models.TrendingReport
	calls  int
}

func (s *stubTrending) TrendingToday(ctx context.Context) models.TrendingReport {
	s.calls++
	return s.report
}

type recordingSender struct {
	sent []models.TrendingReport
	err  error
}

func (r *recordingSender) SendDailyReport(report models.TrendingReport) error {
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, report)
	return nil
}

func TestScheduler_RunDailyReport(t *testing.T) {
	trending := &stubTrending{report: models.TrendingReport{Date: "2024-05-01"}}
	sender := &recordingSender{}

	s := NewScheduler(trending, sender, "08:00", zerolog.Nop())
	require.NoError(t, s.RunDailyReport(context.Background()))

	assert.Equal(t, 1, trending.calls)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "2024-05-01", sender.sent[0].Date)
}

func TestScheduler_RunDailyReport_SendError(t *testing.T) {
	sender := &recordingSender{err: errors.New("telegram down")}

	s := NewScheduler(&stubTrending{}, sender, "08:00", zerolog.Nop())
	assert.EqualError(t, s.RunDailyReport(context.Background()), "telegram down")
}

func TestScheduler_StartStop(t *testing.T) {
	s := NewScheduler(&stubTrending{}, &recordingSender{}, "03:15", zerolog.Nop())
	require.NoError(t, s.Start())
	defer s.Stop()

	next, err := s.NextRun()
	require.NoError(t, err)

	local := next.In(time.Local)
	assert.Equal(t, 3, local.Hour())
	assert.Equal(t, 15, local.Minute())
	assert.True(t, next.After(time.Now()))
	assert.False(t, next.After(time.Now().Add(25*time.Hour)))
}

func TestScheduler_InvalidReportTime(t *testing.T) {
	s := NewScheduler(&stubTrending{}, &recordingSender{}, "noon", zerolog.Nop())
	assert.Error(t, s.Start())
	assert.NoError(t, s.Stop())

	_, err := s.NextRun()
	assert.Error(t, err)
}
