package cfb

import (
	"fmt"
	"time"
)

// Display weeks 1 through 15 are the regular season; 16 and up map to
// postseason weeks starting over at 1.
const postseasonStart = 16

// RegularSeasonType and PostseasonType are the season type names the API expects.
const (
	RegularSeasonType = "regular"
	PostseasonType    = "postseason"
)

// CurrentWeek guesses the season and display week from a date. The season
// is taken to start September 1; before that date the previous season is
// assumed at week 1, and the week number caps at 15.
func CurrentWeek(now time.Time) (season, week int) {
	seasonStart := time.Date(now.Year(), time.September, 1, 0, 0, 0, 0, now.Location())
	if now.Before(seasonStart) {
		return now.Year() - 1, 1
	}
	week = int(now.Sub(seasonStart).Hours()/(24*7)) + 1
	if week > 15 {
		week = 15
	}
	return now.Year(), week
}

// TranslateWeek maps a display week to the season type and week number the
// API expects.
func TranslateWeek(displayWeek int) (seasonType string, apiWeek int) {
	if displayWeek < postseasonStart {
		return RegularSeasonType, displayWeek
	}
	return PostseasonType, displayWeek - postseasonStart + 1
}

var postseasonLabels = map[int]string{
	1: "Bowls - Early",
	2: "Bowls / CFP Quarters",
	3: "CFP Semifinals",
	4: "CFP National Championship",
	5: "Bowls - Late",
}

// WeekLabel names a display week for output headers.
func WeekLabel(displayWeek int) string {
	if displayWeek < postseasonStart {
		return fmt.Sprintf("Week %d", displayWeek)
	}
	psWeek := displayWeek - postseasonStart + 1
	if label, ok := postseasonLabels[psWeek]; ok {
		return "Postseason: " + label
	}
	return fmt.Sprintf("Postseason Week %d", psWeek)
}
