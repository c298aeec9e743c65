package tmdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEpisodeInfo_Label(t *testing.T) {
	assert.Equal(t, "S01E05 - Name", EpisodeInfo{SeasonNumber: 1, EpisodeNumber: 5, Name: "Name"}.Label())
	assert.Equal(t, "S10E12", EpisodeInfo{SeasonNumber: 10, EpisodeNumber: 12}.Label())
}
