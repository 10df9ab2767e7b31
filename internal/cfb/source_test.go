package cfb

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider serves canned payloads and counts calls.
type fakeProvider struct {
	ratings      []byte
	lines        []byte
	err          error
	ratingsCalls int
	linesCalls   int
}

func (f *fakeProvider) FetchRatings(ctx context.Context, season int) ([]byte, error) {
	f.ratingsCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.ratings, nil
}

func (f *fakeProvider) FetchLines(ctx context.Context, season, week int, seasonType string) ([]byte, error) {
	f.linesCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.lines, nil
}

const ratingsPayload = `[
	{"team":"Ohio State","year":2025,"rating":30.1},
	{"team":"Michigan","year":2025,"rating":25.2},
	{"team":"No Rating U","year":2025,"rating":null}
]`

const linesPayload = `[
	{
		"id": 401628455,
		"season": 2025, "seasonType": "regular", "week": 14,
		"homeTeam": "Michigan", "awayTeam": "Ohio State",
		"lines": [
			{"provider": "DraftKings", "spread": -10.0},
			{"provider": "Consensus", "spread": -10.5},
			{"provider": "Bovada", "spread": null}
		]
	},
	{
		"id": 0,
		"season": 2025, "seasonType": "regular", "week": 14,
		"homeTeam": "Rutgers", "awayTeam": "Indiana",
		"lines": [{"provider": "Bovada", "spread": 14.5}]
	},
	{
		"id": 401628999,
		"season": 2025, "seasonType": "regular", "week": 14,
		"homeTeam": "Penn State", "awayTeam": "Maryland",
		"lines": []
	}
]`

func TestRatingsSource_FetchThenCache(t *testing.T) {
	provider := &fakeProvider{ratings: []byte(ratingsPayload)}
	cache := Cache{Dir: t.TempDir()}
	source := &RatingsSource{Provider: provider, Cache: cache}

	fresh, err := source.Ratings(context.Background(), 2025)
	require.NoError(t, err)
	require.Len(t, fresh, 2, "null ratings must be dropped")
	assert.Equal(t, TeamRating{Team: "Ohio State", Season: 2025, Rating: 30.1}, fresh[0])

	cached, err := source.Ratings(context.Background(), 2025)
	require.NoError(t, err)
	assert.Equal(t, fresh, cached, "cache round trip must reproduce the fetched records")
	assert.Equal(t, 1, provider.ratingsCalls, "second read must be served from cache")
}

func TestRatingsSource_Unavailable(t *testing.T) {
	provider := &fakeProvider{err: errors.New("dial tcp: connection refused")}
	source := &RatingsSource{Provider: provider, Cache: Cache{Dir: t.TempDir()}}

	_, err := source.Ratings(context.Background(), 2025)
	require.Error(t, err)

	var unavailable *SourceUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "SP+ ratings", unavailable.Resource)
}

func TestRatingsSource_CacheWriteFailureIsNonFatal(t *testing.T) {
	// a regular file where the cache dir should be makes every write fail
	dir := filepath.Join(t.TempDir(), "blocked")
	require.NoError(t, os.WriteFile(dir, []byte("x"), 0o644))

	provider := &fakeProvider{ratings: []byte(ratingsPayload)}
	source := &RatingsSource{Provider: provider, Cache: Cache{Dir: dir}}

	ratings, err := source.Ratings(context.Background(), 2025)
	require.NoError(t, err)
	assert.Len(t, ratings, 2)
}

func TestLinesSource_ProviderPreference(t *testing.T) {
	provider := &fakeProvider{lines: []byte(linesPayload)}
	source := &LinesSource{Provider: provider, Cache: Cache{Dir: t.TempDir()}, Preferred: "consensus"}

	lines, err := source.Lines(context.Background(), 2025, 14, "regular")
	require.NoError(t, err)
	require.Len(t, lines, 2, "the game with no usable spread must be dropped")

	// preferred book matched case-insensitively
	assert.Equal(t, "Consensus", lines[0].Provider)
	assert.Equal(t, -10.5, lines[0].Spread)
	assert.Equal(t, "401628455", lines[0].GameID)

	// no consensus line posted: first usable book wins
	assert.Equal(t, "Bovada", lines[1].Provider)
	assert.Equal(t, 14.5, lines[1].Spread)
	assert.NotEmpty(t, lines[1].GameID, "missing provider ID must fall back to a hash")
}

func TestLinesSource_FetchThenCache(t *testing.T) {
	provider := &fakeProvider{lines: []byte(linesPayload)}
	source := &LinesSource{Provider: provider, Cache: Cache{Dir: t.TempDir()}, Preferred: "consensus"}

	fresh, err := source.Lines(context.Background(), 2025, 14, "regular")
	require.NoError(t, err)

	cached, err := source.Lines(context.Background(), 2025, 14, "regular")
	require.NoError(t, err)
	assert.Equal(t, fresh, cached)
	assert.Equal(t, 1, provider.linesCalls)
}

func TestLinesSource_Unavailable(t *testing.T) {
	provider := &fakeProvider{err: errors.New("status 503")}
	source := &LinesSource{Provider: provider, Cache: Cache{Dir: t.TempDir()}, Preferred: "consensus"}

	_, err := source.Lines(context.Background(), 2025, 14, "regular")
	var unavailable *SourceUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "betting lines", unavailable.Resource)
}

func TestLinesSource_CachePreemptsProviderError(t *testing.T) {
	cache := Cache{Dir: t.TempDir()}
	require.NoError(t, cache.PutLines(2025, 14, "regular", []byte(linesPayload)))

	provider := &fakeProvider{err: errors.New("network down")}
	source := &LinesSource{Provider: provider, Cache: cache, Preferred: "consensus"}

	lines, err := source.Lines(context.Background(), 2025, 14, "regular")
	require.NoError(t, err)
	assert.Len(t, lines, 2)
	assert.Zero(t, provider.linesCalls, "a warm cache must not touch the network")
}

func TestGameIDHashIsStable(t *testing.T) {
	g := bettingGame{HomeTeam: "Rutgers", AwayTeam: "Indiana"}
	assert.Equal(t, gameID(g), gameID(g))
	assert.NotEqual(t, gameID(g), gameID(bettingGame{HomeTeam: "Indiana", AwayTeam: "Rutgers"}))
}
