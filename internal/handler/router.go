package handler

import (
	"embed"
	"html/template"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templateFS embed.FS

const stillBaseURL = "https://image.tmdb.org/t/p/w300"

// NewRouter builds the gin engine with logging, recovery and templates loaded.
func NewRouter(h *HTTPHandler, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger))
	r.SetHTMLTemplate(loadTemplates())
	h.RegisterRoutes(r)
	return r
}

func loadTemplates() *template.Template {
	funcs := template.FuncMap{
		"inc":      func(i int) int { return i + 1 },
		"stillURL": func(path string) string { return stillBaseURL + path },
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}

// requestLogger logs one line per request.
func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	log := logger.With().Str("component", "http").Logger()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Str("remote_addr", c.ClientIP()).
			Msg("HTTP request")
	}
}
