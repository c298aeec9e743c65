package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRequest(t *testing.T) {
	m := New()

	m.ObserveRequest(EndpointAiringToday, nil)
	m.ObserveRequest(EndpointTVDetails, errors.New("boom"))
	m.ObserveRequest(EndpointTVDetails, errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.TMDBRequests.WithLabelValues(EndpointAiringToday, OutcomeOK)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.TMDBRequests.WithLabelValues(EndpointTVDetails, OutcomeError)))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveRequest(EndpointAiringToday, nil)
	m.SetTrending(3)
}

func TestSetTrending(t *testing.T) {
	m := New()
	m.SetTrending(4)
	assert.Equal(t, 4.0, testutil.ToFloat64(m.TrendingEpisodes))
}
