package cfb

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheFileNames(t *testing.T) {
	c := Cache{Dir: "cfb_cache"}
	assert.Equal(t, filepath.Join("cfb_cache", "sp_2025.json"), c.RatingsPath(2025))
	assert.Equal(t, filepath.Join("cfb_cache", "lines_2025_regular_wk14.json"), c.LinesPath(2025, 14, "regular"))
	assert.Equal(t, filepath.Join("cfb_cache", "lines_2025_postseason_wk2.json"), c.LinesPath(2025, 2, "postseason"))
}

func TestCacheRoundTrip(t *testing.T) {
	c := Cache{Dir: filepath.Join(t.TempDir(), "cache")}

	_, ok := c.Ratings(2025)
	assert.False(t, ok, "empty cache must miss")

	payload := []byte(`[{"team":"Ohio State","year":2025,"rating":30.1}]`)
	require.NoError(t, c.PutRatings(2025, payload))

	got, ok := c.Ratings(2025)
	require.True(t, ok)
	assert.Equal(t, payload, got, "cache must return the raw payload verbatim")

	_, ok = c.Ratings(2024)
	assert.False(t, ok, "other seasons must not hit")
}

func TestCacheLinesKeyedBySeasonWeekType(t *testing.T) {
	c := Cache{Dir: t.TempDir()}

	regular := []byte(`[{"id":1}]`)
	postseason := []byte(`[{"id":2}]`)
	require.NoError(t, c.PutLines(2025, 1, "regular", regular))
	require.NoError(t, c.PutLines(2025, 1, "postseason", postseason))

	got, ok := c.Lines(2025, 1, "regular")
	require.True(t, ok)
	assert.Equal(t, regular, got)

	got, ok = c.Lines(2025, 1, "postseason")
	require.True(t, ok)
	assert.Equal(t, postseason, got)

	_, ok = c.Lines(2025, 2, "regular")
	assert.False(t, ok)
}
