package cfb

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/segmentio/fasthash/jody"
	"github.com/sirupsen/logrus"
)

// RatingsSource serves season-level SP+ ratings, preferring the local cache
// over a network fetch. The raw provider response is cached verbatim, so a
// cached read parses exactly what a fresh fetch would.
type RatingsSource struct {
	Provider Provider
	Cache    Cache
	Log      logrus.FieldLogger
}

// Ratings returns the SP+ ratings for a season. A cache miss triggers one
// fetch; a fetch failure with no cache is a SourceUnavailableError. Cache
// write failures are logged and ignored since the cache is an optimization.
func (s *RatingsSource) Ratings(ctx context.Context, season int) ([]TeamRating, error) {
	if raw, ok := s.Cache.Ratings(season); ok {
		s.logger().WithField("season", season).Debug("serving SP+ ratings from cache")
		return parseRatings(raw, season)
	}

	raw, err := s.Provider.FetchRatings(ctx, season)
	if err != nil {
		return nil, &SourceUnavailableError{Resource: "SP+ ratings", Err: err}
	}
	ratings, err := parseRatings(raw, season)
	if err != nil {
		return nil, &SourceUnavailableError{Resource: "SP+ ratings", Err: err}
	}

	if err := s.Cache.PutRatings(season, raw); err != nil {
		s.logger().WithError(err).Warn("could not cache SP+ ratings")
	}
	s.logger().WithFields(logrus.Fields{"season": season, "teams": len(ratings)}).Info("fetched SP+ ratings")
	return ratings, nil
}

func (s *RatingsSource) logger() logrus.FieldLogger {
	if s.Log != nil {
		return s.Log
	}
	return logrus.StandardLogger()
}

func parseRatings(raw []byte, season int) ([]TeamRating, error) {
	var entries []spRating
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parsing SP+ ratings: %w", err)
	}

	ratings := make([]TeamRating, 0, len(entries))
	for _, e := range entries {
		if e.Rating == nil {
			continue
		}
		ratings = append(ratings, TeamRating{Team: e.Team, Season: season, Rating: *e.Rating})
	}
	return ratings, nil
}

// LinesSource serves weekly market lines with the same cache-or-fetch policy
// as RatingsSource. When a game carries several sportsbook lines, the one
// whose provider matches Preferred (case-insensitive) wins, falling back to
// the first line with a usable spread. Games with no usable spread are
// dropped.
type LinesSource struct {
	Provider  Provider
	Cache     Cache
	Preferred string
	Log       logrus.FieldLogger
}

// Lines returns one MarketLine per game for a season and week.
func (s *LinesSource) Lines(ctx context.Context, season, week int, seasonType string) ([]MarketLine, error) {
	if raw, ok := s.Cache.Lines(season, week, seasonType); ok {
		s.logger().WithFields(logrus.Fields{"season": season, "week": week}).Debug("serving lines from cache")
		return s.parse(raw, season, week, seasonType)
	}

	raw, err := s.Provider.FetchLines(ctx, season, week, seasonType)
	if err != nil {
		return nil, &SourceUnavailableError{Resource: "betting lines", Err: err}
	}
	lines, err := s.parse(raw, season, week, seasonType)
	if err != nil {
		return nil, &SourceUnavailableError{Resource: "betting lines", Err: err}
	}

	if err := s.Cache.PutLines(season, week, seasonType, raw); err != nil {
		s.logger().WithError(err).Warn("could not cache betting lines")
	}
	s.logger().WithFields(logrus.Fields{"season": season, "week": week, "games": len(lines)}).Info("fetched betting lines")
	return lines, nil
}

func (s *LinesSource) parse(raw []byte, season, week int, seasonType string) ([]MarketLine, error) {
	var games []bettingGame
	if err := json.Unmarshal(raw, &games); err != nil {
		return nil, fmt.Errorf("parsing betting lines: %w", err)
	}

	lines := make([]MarketLine, 0, len(games))
	for _, g := range games {
		ln, ok := pickLine(g.Lines, s.Preferred)
		if !ok {
			s.logger().WithFields(logrus.Fields{"home": g.HomeTeam, "away": g.AwayTeam}).Debug("no usable spread for game")
			continue
		}
		lines = append(lines, MarketLine{
			GameID:     gameID(g),
			Season:     season,
			Week:       week,
			SeasonType: seasonType,
			HomeTeam:   g.HomeTeam,
			AwayTeam:   g.AwayTeam,
			Provider:   ln.Provider,
			Spread:     *ln.Spread,
		})
	}
	return lines, nil
}

func (s *LinesSource) logger() logrus.FieldLogger {
	if s.Log != nil {
		return s.Log
	}
	return logrus.StandardLogger()
}

// pickLine chooses among a game's sportsbook lines: the preferred provider
// if it posted a spread, otherwise the first line with a spread.
func pickLine(lines []bettingLine, preferred string) (bettingLine, bool) {
	for _, ln := range lines {
		if ln.Spread != nil && strings.EqualFold(ln.Provider, preferred) {
			return ln, true
		}
	}
	for _, ln := range lines {
		if ln.Spread != nil {
			return ln, true
		}
	}
	return bettingLine{}, false
}

// gameID prefers the provider's numeric game ID, hashing the matchup into a
// stable identifier when the provider omits one.
func gameID(g bettingGame) string {
	if g.ID != 0 {
		return strconv.FormatInt(g.ID, 10)
	}
	hash := jody.HashString64(g.AwayTeam)
	hash = jody.AddString64(hash, "@")
	hash = jody.AddString64(hash, g.HomeTeam)
	return strconv.FormatUint(hash, 16)
}
