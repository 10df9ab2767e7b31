package cfb

import (
	"math"
	"sort"
)

// Parlay is a set of picks backed together. JointProb is the product of the
// legs' side cover probabilities, treating games as independent.
type Parlay struct {
	Legs      []Pick
	JointProb float64
}

// The candidate pool holds a few more picks than a parlay has legs so that
// near-miss combinations are still considered.
const parlayPoolExtra = 4

// BuildParlays enumerates every legs-sized combination of the strongest
// tier A and B picks and returns the top parlays by joint probability.
// Fewer than two legs, or too small a pool, yields nothing.
func BuildParlays(picks []Pick, legs, top int) []Parlay {
	if legs < 2 {
		return nil
	}
	pool := parlayPool(picks, legs+parlayPoolExtra)
	if len(pool) < legs {
		return nil
	}

	parlays := make([]Parlay, 0)
	indexes := make([]int, legs)
	var walk func(start, depth int)
	walk = func(start, depth int) {
		if depth == legs {
			combo := make([]Pick, legs)
			joint := 1.0
			for i, j := range indexes {
				combo[i] = pool[j]
				joint *= pool[j].SideProbability
			}
			parlays = append(parlays, Parlay{Legs: combo, JointProb: joint})
			return
		}
		for i := start; i <= len(pool)-(legs-depth); i++ {
			indexes[depth] = i
			walk(i+1, depth+1)
		}
	}
	walk(0, 0)

	sort.SliceStable(parlays, func(i, j int) bool {
		return parlays[i].JointProb > parlays[j].JointProb
	})
	if top > 0 && len(parlays) > top {
		parlays = parlays[:top]
	}
	return parlays
}

// parlayPool selects up to size tier A/B picks with a definite side, the
// most confident first.
func parlayPool(picks []Pick, size int) []Pick {
	pool := make([]Pick, 0, size)
	for _, p := range picks {
		if (p.Tier == "A" || p.Tier == "B") && p.Side != NoEdge {
			pool = append(pool, p)
		}
	}
	sort.Slice(pool, func(i, j int) bool {
		if pool[i].SideProbability != pool[j].SideProbability {
			return pool[i].SideProbability > pool[j].SideProbability
		}
		return pool[i].GameID < pool[j].GameID
	})
	if len(pool) > size {
		pool = pool[:size]
	}
	return pool
}

// PayoutMultiple is the decimal payout of a legs-leg parlay at -110 a leg.
func PayoutMultiple(legs int) float64 {
	return math.Pow(100.0/110.0+1.0, float64(legs))
}
