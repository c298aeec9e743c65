package notify

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airing-today/internal/config"
	"airing-today/internal/models"
	"airing-today/internal/tmdb"
)

func sampleReport() models.TrendingReport {
	return models.TrendingReport{
		Date: "2024-05-01",
		Episodes: []models.TrendingEpisode{
			{ShowName: "Law & Order", Popularity: 90.5, Episode: tmdb.EpisodeInfo{SeasonNumber: 24, EpisodeNumber: 3, Name: "Pilot"}},
			{ShowName: "Quiet Show", Popularity: 12, Episode: tmdb.EpisodeInfo{SeasonNumber: 1, EpisodeNumber: 10}},
		},
	}
}

func TestFormatDailyReport(t *testing.T) {
	text := FormatDailyReport(sampleReport())

	assert.Contains(t, text, "(2024-05-01)")
	assert.Contains(t, text, "1. <b>Law &amp; Order</b>")
	assert.Contains(t, text, "S24E03 - Pilot")
	assert.Contains(t, text, "Popularity: 90.5")
	assert.Contains(t, text, "2. <b>Quiet Show</b>")
}

func TestFormatDailyReport_Empty(t *testing.T) {
	text := FormatDailyReport(models.TrendingReport{Date: "2024-05-01"})
	assert.Contains(t, text, "No episodes airing today.")

	text = FormatDailyReport(models.TrendingReport{Date: "2024-05-01", ListingFailed: true})
	assert.Contains(t, text, "Could not fetch")
}

func TestNewTelegramNotifier_NotConfigured(t *testing.T) {
	_, err := NewTelegramNotifier(config.TelegramConfig{BotToken: "x"}, "", zerolog.Nop())
	assert.ErrorIs(t, err, ErrNotConfigured)

	var n *TelegramNotifier
	assert.ErrorIs(t, n.SendDailyReport(sampleReport()), ErrNotConfigured)
}

func TestSendDailyReport(t *testing.T) {
	var got map[string]interface{}
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":1714550400,"chat":{"id":42,"type":"private"},"text":"ok"}}`))
	}))
	defer server.Close()

	n, err := NewTelegramNotifier(config.TelegramConfig{BotToken: "123:abc", ChatID: 42}, server.URL, zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, n.SendDailyReport(sampleReport()))

	assert.Equal(t, "/bot123:abc/sendMessage", path)
	assert.Equal(t, "42", fmt.Sprint(got["chat_id"]))
	assert.Contains(t, fmt.Sprint(got["text"]), "Law &amp; Order")
	assert.Equal(t, "HTML", fmt.Sprint(got["parse_mode"]))
}
