package cfb

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"
)

var csvHeader = []string{
	"game_id", "home_team", "away_team",
	"model_spread", "market_spread", "edge", "cover_probability",
	"side", "tier",
}

// Ranked returns a copy of picks sorted by absolute edge descending, ties
// broken by game ID ascending.
func Ranked(picks []Pick) []Pick {
	out := make(PickList, len(picks))
	copy(out, picks)
	sort.Sort(out)
	return out
}

// WriteTable prints the ranked pick table under a title.
func WriteTable(w io.Writer, picks []Pick, title string) error {
	fmt.Fprintf(w, "\n=== %s ===\n", title)
	if len(picks) == 0 {
		_, err := fmt.Fprintln(w, "None.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "HOME\tAWAY\tMODEL\tMARKET\tEDGE\tCOVER\tTIER\tPICK")
	for _, p := range Ranked(picks) {
		fmt.Fprintf(tw, "%s\t%s\t%+.2f\t%+.2f\t%+.2f\t%.3f\t%s\t%s\n",
			p.HomeTeam, p.AwayTeam,
			p.ModelSpread, p.MarketSpread, p.Edge, p.CoverProbability,
			p.Tier, p.Side)
	}
	return tw.Flush()
}

// WriteCSV writes the ranked picks to path, overwriting any existing file.
// One row per pick, header row first, same order as WriteTable.
func WriteCSV(picks []Pick, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing picks CSV: %w", err)
	}

	cw := csv.NewWriter(f)
	records := [][]string{csvHeader}
	for _, p := range Ranked(picks) {
		records = append(records, []string{
			p.GameID, p.HomeTeam, p.AwayTeam,
			formatPoints(p.ModelSpread),
			formatPoints(p.MarketSpread),
			formatPoints(p.Edge),
			strconv.FormatFloat(p.CoverProbability, 'f', 3, 64),
			p.Side, p.Tier,
		})
	}
	if err := cw.WriteAll(records); err != nil {
		f.Close()
		return fmt.Errorf("writing picks CSV: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing picks CSV: %w", err)
	}
	return nil
}

// WriteParlays prints the top parlays with their joint cover probability
// and the payout multiple at -110 per leg.
func WriteParlays(w io.Writer, parlays []Parlay, legs int) {
	fmt.Fprintf(w, "\n=== TOP %d-LEG PARLAYS ===\n", legs)
	if len(parlays) == 0 {
		fmt.Fprintln(w, "Not enough tier A/B picks.")
		return
	}
	payout := PayoutMultiple(legs)
	for i, parlay := range parlays {
		fmt.Fprintf(w, "#%d  joint probability %.1f%%  payout ~%.2fx\n", i+1, parlay.JointProb*100, payout)
		for _, leg := range parlay.Legs {
			fmt.Fprintf(w, "    %s ATS (%s @ %s)  p=%.3f  edge %+.1f  tier %s\n",
				leg.Side, leg.AwayTeam, leg.HomeTeam, leg.SideProbability, leg.Edge, leg.Tier)
		}
	}
}

// formatPoints renders spreads and edges to two decimal places.
func formatPoints(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
