package models

import "airing-today/internal/tmdb"

// TrendingEpisode pairs a show from the airing-today listing with the
// episode of that show that airs today.
type TrendingEpisode struct {
	ShowID     int              `json:"show_id"`
	ShowName   string           `json:"show_name"`
	Popularity float64          `json:"popularity"`
	Episode    tmdb.EpisodeInfo `json:"episode"`
}

// TrendingReport is the outcome of one pipeline run.
type TrendingReport struct {
	Date          string            `json:"date"` // YYYY-MM-DD, local
	Episodes      []TrendingEpisode `json:"episodes"`
	ListingFailed bool              `json:"listing_failed"`
}
