package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"airing-today/internal/config"
)

// ErrAPIKeyMissing is returned when the client has no credential to send.
var ErrAPIKeyMissing = errors.New("TMDB API key is not configured")

// Client handles all interactions with the TMDB API
type Client struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
	logger     zerolog.Logger
}

// maxErrorBody caps how much of a failed response is kept in an APIError.
const maxErrorBody = 4 << 10

// APIError is a non-2xx TMDB response. StatusCode is the HTTP status;
// TMDBCode is TMDB's own numeric code from the body (7 = invalid key,
// 34 = not found), zero when the body carried none.
type APIError struct {
	StatusCode    int    `json:"-"`
	TMDBCode      int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}

func (e *APIError) Error() string {
	if e.TMDBCode != 0 {
		return fmt.Sprintf("TMDB API error (HTTP %d, code %d): %s", e.StatusCode, e.TMDBCode, e.StatusMessage)
	}
	return fmt.Sprintf("TMDB API error (HTTP %d): %s", e.StatusCode, e.StatusMessage)
}

// NewClient creates a new TMDB API client
func NewClient(cfg config.TMDBConfig, logger zerolog.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultTMDBBaseURL
	}
	language := cfg.Language
	if language == "" {
		language = config.DefaultTMDBLanguage
	}

	return &Client{
		apiKey:   cfg.APIKey,
		baseURL:  baseURL,
		language: language,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger.With().Str("component", "tmdb").Logger(),
	}
}

// SetBaseURL allows overriding the base URL (useful for testing)
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// GetAiringToday fetches the first page of shows airing today.
// Calls TMDB /tv/airing_today
func (c *Client) GetAiringToday(ctx context.Context) ([]ShowSummary, error) {
	params := url.Values{}
	params.Set("page", "1")

	var result airingTodayResponse
	if err := c.get(ctx, "/tv/airing_today", params, &result); err != nil {
		return nil, err
	}

	if result.Results == nil {
		result.Results = []ShowSummary{}
	}

	c.logger.Debug().
		Int("results", len(result.Results)).
		Msg("Fetched shows airing today")

	return result.Results, nil
}

// GetTVDetails fetches detailed information for a TV show
// Calls TMDB /tv/{id}
func (c *Client) GetTVDetails(ctx context.Context, tmdbID int) (*TVDetails, error) {
	if tmdbID <= 0 {
		return nil, fmt.Errorf("invalid TMDB ID: %d", tmdbID)
	}

	var details TVDetails
	if err := c.get(ctx, "/tv/"+strconv.Itoa(tmdbID), url.Values{}, &details); err != nil {
		return nil, err
	}

	return &details, nil
}

// get issues a GET against path with the credential and language attached and
// decodes the JSON body into result.
func (c *Client) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	if c.apiKey == "" {
		return ErrAPIKeyMissing
	}

	params.Set("api_key", c.apiKey)
	params.Set("language", c.language)
	endpoint := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("TMDB request %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if err := c.checkResponse(resp); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}

	return nil
}

// checkResponse turns a non-2xx response into an *APIError. TMDB's JSON error
// body supplies the message and TMDB code; anything else is quoted verbatim.
func (c *Client) checkResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	switch {
	case err != nil:
		apiErr.StatusMessage = "failed to read error response"
	case json.Unmarshal(body, apiErr) != nil:
		apiErr.StatusMessage = strings.TrimSpace(string(body))
	}
	if apiErr.StatusMessage == "" {
		apiErr.StatusMessage = http.StatusText(resp.StatusCode)
	}

	c.logger.Debug().
		Int("status", apiErr.StatusCode).
		Int("tmdb_code", apiErr.TMDBCode).
		Str("message", apiErr.StatusMessage).
		Msg("TMDB API error")

	return apiErr
}
