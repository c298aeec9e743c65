package notify

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	tele "gopkg.in/telebot.v3"

	"airing-today/internal/config"
	"airing-today/internal/models"
)

// ErrNotConfigured is returned when no bot token or chat is set.
var ErrNotConfigured = errors.New("telegram notifier not configured: missing bot token or chat ID")

// TelegramNotifier sends the daily trending report to a Telegram chat.
type TelegramNotifier struct {
	bot    *tele.Bot
	chat   tele.ChatID
	logger zerolog.Logger
}

// NewTelegramNotifier creates a new TelegramNotifier. apiURL overrides the
// Telegram Bot API endpoint when non-empty.
func NewTelegramNotifier(cfg config.TelegramConfig, apiURL string, logger zerolog.Logger) (*TelegramNotifier, error) {
	if !cfg.Enabled() {
		return nil, ErrNotConfigured
	}

	bot, err := tele.NewBot(tele.Settings{
		URL:     apiURL,
		Token:   cfg.BotToken,
		Offline: true, // send-only; no getMe or polling
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	return &TelegramNotifier{
		bot:    bot,
		chat:   tele.ChatID(cfg.ChatID),
		logger: logger.With().Str("component", "telegram").Logger(),
	}, nil
}

// SendDailyReport formats and sends the ranked episodes for report.Date.
func (n *TelegramNotifier) SendDailyReport(report models.TrendingReport) error {
	if n == nil || n.bot == nil {
		return ErrNotConfigured
	}

	if _, err := n.bot.Send(n.chat, FormatDailyReport(report), tele.ModeHTML); err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}

	n.logger.Info().
		Str("date", report.Date).
		Int("episodes", len(report.Episodes)).
		Msg("Daily report sent")
	return nil
}

// FormatDailyReport renders the report as Telegram HTML.
func FormatDailyReport(report models.TrendingReport) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("📺 <b>Trending episodes airing today</b> (%s)\n\n", report.Date))

	if report.ListingFailed {
		sb.WriteString("Could not fetch today's listing from TMDB.")
		return sb.String()
	}
	if len(report.Episodes) == 0 {
		sb.WriteString("No episodes airing today.")
		return sb.String()
	}

	entries := lo.Map(report.Episodes, func(ep models.TrendingEpisode, i int) string {
		return fmt.Sprintf("%d. <b>%s</b>\n   📍 %s\n   🔥 Popularity: %.1f",
			i+1, html.EscapeString(ep.ShowName), html.EscapeString(ep.Episode.Label()), ep.Popularity)
	})
	sb.WriteString(strings.Join(entries, "\n\n"))

	return sb.String()
}
