package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"airing-today/internal/metrics"
	"airing-today/internal/service"
)

// MissingAPIKeyMessage is shown in place of the page when no credential is set.
const MissingAPIKeyMessage = "Error: TMDB API key is not set."

// HTTPHandler handles HTTP requests for the web interface
type HTTPHandler struct {
	trending service.TrendingProvider
	metrics  *metrics.Metrics
	apiKey   string
}

// NewHTTPHandler creates a new HTTPHandler. m may be nil, which disables /metrics.
func NewHTTPHandler(trending service.TrendingProvider, m *metrics.Metrics, apiKey string) *HTTPHandler {
	return &HTTPHandler{
		trending: trending,
		metrics:  m,
		apiKey:   strings.TrimSpace(apiKey),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *HTTPHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Home)

	api := r.Group("/api")
	api.GET("/today", h.GetToday)
	api.GET("/health", h.Health)

	if h.metrics != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(h.metrics.Registry, promhttp.HandlerOpts{})))
	}
}

// Home renders today's trending episodes.
// GET /
func (h *HTTPHandler) Home(c *gin.Context) {
	if h.apiKey == "" {
		c.String(http.StatusOK, MissingAPIKeyMessage)
		return
	}

	report := h.trending.TrendingToday(c.Request.Context())
	c.HTML(http.StatusOK, "home.html", report)
}

// GetToday returns today's trending episodes as JSON.
// GET /api/today
func (h *HTTPHandler) GetToday(c *gin.Context) {
	if h.apiKey == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "TMDB_API_KEY not set"})
		return
	}

	c.JSON(http.StatusOK, h.trending.TrendingToday(c.Request.Context()))
}

// Health returns health status
func (h *HTTPHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
