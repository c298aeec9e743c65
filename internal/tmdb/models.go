package tmdb

import "fmt"

// ShowSummary is one entry of the airing_today listing.
type ShowSummary struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Popularity float64 `json:"popularity"`
}

// EpisodeInfo represents episode information from TMDB
type EpisodeInfo struct {
	ID            int     `json:"id"`
	AirDate       string  `json:"air_date"`
	EpisodeNumber int     `json:"episode_number"`
	SeasonNumber  int     `json:"season_number"`
	Name          string  `json:"name"`
	Overview      string  `json:"overview"`
	StillPath     string  `json:"still_path,omitempty"`
	Runtime       int     `json:"runtime,omitempty"`
	VoteAverage   float64 `json:"vote_average,omitempty"`
}

// TVDetails is the subset of /tv/{id} used to pick today's episode.
type TVDetails struct {
	ID               int          `json:"id"`
	Name             string       `json:"name"`
	Status           string       `json:"status"`
	Popularity       float64      `json:"popularity"`
	NextEpisodeToAir *EpisodeInfo `json:"next_episode_to_air"`
	LastEpisodeToAir *EpisodeInfo `json:"last_episode_to_air"`
}

// airingTodayResponse wraps the TMDB airing_today API response
type airingTodayResponse struct {
	Page         int           `json:"page"`
	Results      []ShowSummary `json:"results"`
	TotalPages   int           `json:"total_pages"`
	TotalResults int           `json:"total_results"`
}

// Label formats the episode as "SxxExx - Name".
func (e EpisodeInfo) Label() string {
	label := fmt.Sprintf("S%02dE%02d", e.SeasonNumber, e.EpisodeNumber)
	if e.Name != "" {
		label += " - " + e.Name
	}
	return label
}
