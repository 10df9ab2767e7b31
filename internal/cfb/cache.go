package cfb

import (
	"fmt"
	"os"
	"path/filepath"
)

// Cache stores raw provider responses as flat files under one directory,
// one file per season (ratings) or season+week (lines). There is no expiry:
// a file that exists is served.
type Cache struct {
	Dir string
}

// Ratings returns the cached raw ratings payload for a season.
func (c Cache) Ratings(season int) ([]byte, bool) {
	return c.read(c.RatingsPath(season))
}

// PutRatings caches a raw ratings payload for a season.
func (c Cache) PutRatings(season int, raw []byte) error {
	return c.write(c.RatingsPath(season), raw)
}

// Lines returns the cached raw lines payload for a season and week.
func (c Cache) Lines(season, week int, seasonType string) ([]byte, bool) {
	return c.read(c.LinesPath(season, week, seasonType))
}

// PutLines caches a raw lines payload for a season and week.
func (c Cache) PutLines(season, week int, seasonType string, raw []byte) error {
	return c.write(c.LinesPath(season, week, seasonType), raw)
}

// RatingsPath names the ratings cache file for a season.
func (c Cache) RatingsPath(season int) string {
	return filepath.Join(c.Dir, fmt.Sprintf("sp_%d.json", season))
}

// LinesPath names the lines cache file for a season and week.
func (c Cache) LinesPath(season, week int, seasonType string) string {
	return filepath.Join(c.Dir, fmt.Sprintf("lines_%d_%s_wk%d.json", season, seasonType, week))
}

func (c Cache) read(path string) ([]byte, bool) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	return raw, true
}

func (c Cache) write(path string, raw []byte) error {
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}
