package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultTMDBBaseURL  = "https://api.themoviedb.org/3"
	DefaultTMDBLanguage = "en-US"
)

// Config holds the application configuration. It is built once at startup
// and handed to the components that need it.
type Config struct {
	TMDB     TMDBConfig
	Server   ServerConfig
	Logging  LoggingConfig
	Telegram TelegramConfig
}

// TMDBConfig holds the metadata API settings.
type TMDBConfig struct {
	APIKey   string
	BaseURL  string
	Language string
	Timeout  time.Duration
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host string
	Port int
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string
	Format string // "console" or "json"
	Path   string // directory for rotated log files, empty disables
}

// TelegramConfig holds the daily report settings.
type TelegramConfig struct {
	BotToken   string
	ChatID     int64
	ReportTime string // HH:MM
}

// Enabled reports whether the daily report can be sent.
func (t TelegramConfig) Enabled() bool {
	return t.BotToken != "" && t.ChatID != 0
}

// Address returns the server listen address.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// HasAPIKey reports whether a TMDB credential is configured.
func (c *Config) HasAPIKey() bool {
	return strings.TrimSpace(c.TMDB.APIKey) != ""
}

// Load reads configuration from the environment, after loading a .env file
// from the working directory if one exists.
// Priority: environment variables > .env file > defaults
func Load() (*Config, error) {
	// godotenv never overrides variables that are already set.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("TMDB_BASE_URL", DefaultTMDBBaseURL)
	v.SetDefault("TMDB_LANGUAGE", DefaultTMDBLanguage)
	v.SetDefault("TMDB_TIMEOUT_SECONDS", 10)

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 5000)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("REPORT_TIME", "08:00")
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		TMDB: TMDBConfig{
			APIKey:   strings.TrimSpace(v.GetString("TMDB_API_KEY")),
			BaseURL:  strings.TrimRight(v.GetString("TMDB_BASE_URL"), "/"),
			Language: v.GetString("TMDB_LANGUAGE"),
			Timeout:  time.Duration(v.GetInt("TMDB_TIMEOUT_SECONDS")) * time.Second,
		},
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
			Path:   v.GetString("LOG_PATH"),
		},
		Telegram: TelegramConfig{
			BotToken:   v.GetString("TELEGRAM_BOT_TOKEN"),
			ChatID:     v.GetInt64("TELEGRAM_CHAT_ID"),
			ReportTime: v.GetString("REPORT_TIME"),
		},
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("invalid SERVER_PORT: %d", cfg.Server.Port)
	}
	if cfg.TMDB.Timeout <= 0 {
		return nil, fmt.Errorf("TMDB_TIMEOUT_SECONDS must be positive")
	}
	if _, _, err := ParseReportTime(cfg.Telegram.ReportTime); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ParseReportTime parses an HH:MM clock time.
func ParseReportTime(s string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid REPORT_TIME %q: expected HH:MM", s)
	}
	return t.Hour(), t.Minute(), nil
}
