package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airing-today/internal/config"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(" WARNING "))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("bogus"))
}

func TestNew_WritesRotatedFile(t *testing.T) {
	dir := t.TempDir()
	log := New(config.LoggingConfig{Level: "info", Format: "json", Path: dir})

	log.Info().Str("component", "test").Msg("hello")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(filepath.Join(dir, "airing-today.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
}
