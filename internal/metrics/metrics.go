package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Endpoint labels.
const (
	EndpointAiringToday = "airing_today"
	EndpointTVDetails   = "tv_details"
)

// Outcome labels.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics holds the collectors exported on /metrics.
type Metrics struct {
	Registry         *prometheus.Registry
	TMDBRequests     *prometheus.CounterVec
	TrendingEpisodes prometheus.Gauge
}

// New creates the collectors and registers them on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		TMDBRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "airing_today",
			Name:      "tmdb_requests_total",
			Help:      "TMDB API requests by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		TrendingEpisodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "airing_today",
			Name:      "trending_episodes",
			Help:      "Number of episodes in the last ranked list.",
		}),
	}
	m.Registry.MustRegister(m.TMDBRequests, m.TrendingEpisodes)
	return m
}

// ObserveRequest counts one TMDB call.
func (m *Metrics) ObserveRequest(endpoint string, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	m.TMDBRequests.WithLabelValues(endpoint, outcome).Inc()
}

// SetTrending records the size of the latest ranked list.
func (m *Metrics) SetTrending(n int) {
	if m == nil {
		return
	}
	m.TrendingEpisodes.Set(float64(n))
}
