package cfb

import (
	"fmt"
	"math"

	"github.com/atgjack/prob"
	"github.com/sirupsen/logrus"
)

// NoEdge marks a pick where the model and the market agree exactly.
const NoEdge = "NO EDGE"

// Tier cutoffs on the backed side's cover probability.
const (
	tierA = 0.60
	tierB = 0.55
	tierC = 0.52
)

// SpreadModel computes model spreads from SP+ ratings and compares them to
// market lines. Scoring-margin error is modeled as a zero-mean normal with
// the configured standard deviation, so the edge in points converts to a
// cover probability through the normal CDF.
type SpreadModel struct {
	HomeFieldAdvantage float64
	SpreadStdDev       float64
	Log                logrus.FieldLogger
}

// NewSpreadModel makes a model.
func NewSpreadModel(homeField, stdDev float64) *SpreadModel {
	return &SpreadModel{HomeFieldAdvantage: homeField, SpreadStdDev: stdDev}
}

// ComputePicks builds one Pick per market line. Spreads are home-relative
// with negative meaning the home team is favored, and the edge is always
// model spread minus market spread. Games referencing a team absent from
// the ratings are skipped with a warning; the rest of the run proceeds.
func (m *SpreadModel) ComputePicks(ratings []TeamRating, lines []MarketLine) []Pick {
	dist := prob.Normal{Mu: 0, Sigma: m.SpreadStdDev}

	table := make(map[string]float64, len(ratings))
	for _, r := range ratings {
		table[r.Team] = r.Rating
	}

	picks := make([]Pick, 0, len(lines))
	for _, ln := range lines {
		homeRating, homeOK := table[ln.HomeTeam]
		awayRating, awayOK := table[ln.AwayTeam]
		if !homeOK || !awayOK {
			m.logger().WithFields(logrus.Fields{
				"home": ln.HomeTeam,
				"away": ln.AwayTeam,
			}).Warn("skipping game with unrated team")
			continue
		}

		modelSpread := (awayRating - homeRating) + m.HomeFieldAdvantage
		edge := modelSpread - ln.Spread
		cover := dist.Cdf(edge)
		side, sideProb := pickSide(ln, edge, cover)

		picks = append(picks, Pick{
			GameID:           ln.GameID,
			HomeTeam:         ln.HomeTeam,
			AwayTeam:         ln.AwayTeam,
			ModelSpread:      modelSpread,
			MarketSpread:     ln.Spread,
			Edge:             edge,
			CoverProbability: cover,
			Side:             side,
			SideProbability:  sideProb,
			Tier:             classifyTier(sideProb),
		})
	}
	return picks
}

func (m *SpreadModel) logger() logrus.FieldLogger {
	if m.Log != nil {
		return m.Log
	}
	return logrus.StandardLogger()
}

// pickSide names the team the model backs against the market. A positive
// edge means the market favors the home side more than the model does, so
// the value is on the away team.
func pickSide(ln MarketLine, edge, cover float64) (string, float64) {
	switch {
	case edge > 0:
		return fmt.Sprintf("AWAY (%s)", ln.AwayTeam), cover
	case edge < 0:
		return fmt.Sprintf("HOME (%s)", ln.HomeTeam), 1 - cover
	}
	return NoEdge, 0.5
}

// classifyTier buckets a pick by the backed side's cover probability.
func classifyTier(p float64) string {
	switch {
	case p >= tierA:
		return "A"
	case p >= tierB:
		return "B"
	case p >= tierC:
		return "C"
	}
	return "Pass"
}

// StrongPicks filters to picks worth a bet: at least minEdge points of edge,
// at least minProb on the backed side, and a tier above Pass.
func StrongPicks(picks []Pick, minEdge, minProb float64) []Pick {
	strong := make([]Pick, 0)
	for _, p := range picks {
		if math.Abs(p.Edge) >= minEdge && p.SideProbability >= minProb && p.Tier != "Pass" {
			strong = append(strong, p)
		}
	}
	return strong
}
