package cfb

import "math"

// TeamRating is one team's SP+ rating for a season. SP+ measures points
// better than an average team on a neutral field.
type TeamRating struct {
	Team   string
	Season int
	Rating float64
}

// MarketLine is a sportsbook point spread for one game. The spread is
// relative to the home team: negative means the home team is favored.
type MarketLine struct {
	GameID     string
	Season     int
	Week       int
	SeasonType string
	HomeTeam   string
	AwayTeam   string
	Provider   string
	Spread     float64
}

// Pick is one game's model-versus-market comparison. ModelSpread uses the
// same home-relative sign convention as MarketLine, Edge is
// ModelSpread - MarketSpread, and CoverProbability is the normal transform
// of Edge (0.5 at zero edge).
type Pick struct {
	GameID           string
	HomeTeam         string
	AwayTeam         string
	ModelSpread      float64
	MarketSpread     float64
	Edge             float64
	CoverProbability float64
	Side             string
	SideProbability  float64
	Tier             string
}

// PickList implements the sort.Interface interface, ordering picks by
// absolute edge descending with ties broken by game ID ascending.
type PickList []Pick

// Len calculates the length of the PickList (implements sort.Interface interface)
func (p PickList) Len() int {
	return len(p)
}

// Less reports whether (implements sort.Interface interface)
func (p PickList) Less(i, j int) bool {
	ei := math.Abs(p[i].Edge)
	ej := math.Abs(p[j].Edge)
	if ei != ej {
		return ei > ej
	}
	return p[i].GameID < p[j].GameID
}

// Swap swaps the elements with indexes i and j (implements sort.Interface interface)
func (p PickList) Swap(i, j int) {
	p[i], p[j] = p[j], p[i]
}
