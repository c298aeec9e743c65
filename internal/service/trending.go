package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/mo"

	"airing-today/internal/metrics"
	"airing-today/internal/models"
	"airing-today/internal/timeutil"
	"airing-today/internal/tmdb"
)

// MetadataSource is the part of the TMDB client the pipeline needs.
type MetadataSource interface {
	GetAiringToday(ctx context.Context) ([]tmdb.ShowSummary, error)
	GetTVDetails(ctx context.Context, tmdbID int) (*tmdb.TVDetails, error)
}

// TrendingService builds the ranked list of episodes airing today.
type TrendingService struct {
	source  MetadataSource
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

// NewTrendingService creates a new TrendingService. m may be nil.
func NewTrendingService(source MetadataSource, m *metrics.Metrics, logger zerolog.Logger) *TrendingService {
	return &TrendingService{
		source:  source,
		metrics: m,
		logger:  logger.With().Str("component", "trending").Logger(),
	}
}

// FetchAiringToday returns the first page of shows airing today. A failed
// fetch is logged and returned as an error result; callers that only render
// treat it as an empty listing.
func (s *TrendingService) FetchAiringToday(ctx context.Context) mo.Result[[]tmdb.ShowSummary] {
	shows, err := s.source.GetAiringToday(ctx)
	s.metrics.ObserveRequest(metrics.EndpointAiringToday, err)
	if err != nil {
		event := s.logger.Error().Err(err)
		var apiErr *tmdb.APIError
		if errors.As(err, &apiErr) {
			event = event.Int("status_code", apiErr.StatusCode)
		}
		event.Msg("Error fetching shows airing today")
		return mo.Err[[]tmdb.ShowSummary](err)
	}
	return mo.Ok(shows)
}

// ResolveEpisode returns the episode of showID that airs today, if any.
// Detail fetch failures are logged with the show id and yield no episode.
func (s *TrendingService) ResolveEpisode(ctx context.Context, showID int) mo.Option[tmdb.EpisodeInfo] {
	return s.resolveEpisodeAt(ctx, showID, timeutil.Now())
}

func (s *TrendingService) resolveEpisodeAt(ctx context.Context, showID int, today time.Time) mo.Option[tmdb.EpisodeInfo] {
	details, err := s.source.GetTVDetails(ctx, showID)
	s.metrics.ObserveRequest(metrics.EndpointTVDetails, err)
	if err != nil {
		event := s.logger.Error().Err(err).Int("show_id", showID)
		var apiErr *tmdb.APIError
		if errors.As(err, &apiErr) {
			event = event.Int("status_code", apiErr.StatusCode)
		}
		event.Msg("Error fetching show details")
		return mo.None[tmdb.EpisodeInfo]()
	}
	return EpisodeForDate(details, today)
}

// EpisodeForDate picks the candidate episode airing on today's calendar day.
// The next episode takes precedence over the last aired one.
func EpisodeForDate(details *tmdb.TVDetails, today time.Time) mo.Option[tmdb.EpisodeInfo] {
	if details == nil {
		return mo.None[tmdb.EpisodeInfo]()
	}
	if next := details.NextEpisodeToAir; next != nil && timeutil.IsSameDay(next.AirDate, today) {
		return mo.Some(*next)
	}
	if last := details.LastEpisodeToAir; last != nil && timeutil.IsSameDay(last.AirDate, today) {
		return mo.Some(*last)
	}
	return mo.None[tmdb.EpisodeInfo]()
}

// RankTrending resolves today's episode for each show, in listing order,
// and returns the matches sorted by popularity, highest first. Shows with
// equal popularity keep their listing order.
func (s *TrendingService) RankTrending(ctx context.Context, shows []tmdb.ShowSummary) []models.TrendingEpisode {
	return s.rankAt(ctx, shows, timeutil.Now())
}

func (s *TrendingService) rankAt(ctx context.Context, shows []tmdb.ShowSummary, today time.Time) []models.TrendingEpisode {
	episodes := make([]models.TrendingEpisode, 0, len(shows))
	for _, show := range shows {
		episode, ok := s.resolveEpisodeAt(ctx, show.ID, today).Get()
		if !ok {
			continue
		}
		episodes = append(episodes, models.TrendingEpisode{
			ShowID:     show.ID,
			ShowName:   show.Name,
			Popularity: show.Popularity,
			Episode:    episode,
		})
	}

	SortByPopularity(episodes)
	return episodes
}

// SortByPopularity stable-sorts episodes by popularity, descending.
func SortByPopularity(episodes []models.TrendingEpisode) {
	sort.SliceStable(episodes, func(i, j int) bool {
		return episodes[i].Popularity > episodes[j].Popularity
	})
}

// TrendingToday runs the whole pipeline: listing, per-show resolution, ranking.
func (s *TrendingService) TrendingToday(ctx context.Context) models.TrendingReport {
	now := timeutil.Now()
	report := models.TrendingReport{Date: now.Format(timeutil.DateLayout)}

	listing := s.FetchAiringToday(ctx)
	report.ListingFailed = listing.IsError()

	report.Episodes = s.rankAt(ctx, listing.OrElse(nil), now)
	s.metrics.SetTrending(len(report.Episodes))

	s.logger.Info().
		Str("date", report.Date).
		Int("episodes", len(report.Episodes)).
		Bool("listing_failed", report.ListingFailed).
		Msg("Trending episodes ranked")

	return report
}
