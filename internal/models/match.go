// Package models holds the plain data types shared across the prediction
// backend.
package models

import "time"

// Result is a match outcome from the home side's perspective.
type Result string

const (
	HomeWin Result = "Home Win"
	Draw    Result = "Draw"
	AwayWin Result = "Away Win"
)

// ResultLabels is the fixed classifier output order. Probability vectors are
// positional against this slice.
var ResultLabels = []string{string(HomeWin), string(Draw), string(AwayWin)}

// MatchRecord is one completed match from the historical corpus, with team
// names already canonical.
type MatchRecord struct {
	HomeTeam  string
	AwayTeam  string
	HomeGoals int
	AwayGoals int
	Date      time.Time
	Season    string
	Matchday  int
}

// Result derives the outcome from the score line.
func (r MatchRecord) Result() Result {
	switch {
	case r.HomeGoals > r.AwayGoals:
		return HomeWin
	case r.HomeGoals < r.AwayGoals:
		return AwayWin
	default:
		return Draw
	}
}

// TeamStrength is a team's per-match scoring rate and concession rate, both
// rounded to 2 decimals.
type TeamStrength struct {
	OffenseStrength float64 `json:"offense_strength"`
	DefenseWeakness float64 `json:"defense_weakness"`
}

// NeutralStrength is the rating assigned to teams absent from every corpus
// tier.
var NeutralStrength = TeamStrength{OffenseStrength: 1.0, DefenseWeakness: 1.0}

// FormEntry summarizes one completed match from a single team's perspective.
type FormEntry struct {
	GoalsFor      int     `json:"goals_for"`
	GoalsAgainst  int     `json:"goals_against"`
	ExpectedGoals float64 `json:"expected_goals"`
	Points        int     `json:"points"`
	Matchday      int     `json:"matchday"`
}

// GoalDiff returns the entry's goal differential.
func (e FormEntry) GoalDiff() int {
	return e.GoalsFor - e.GoalsAgainst
}

// H2HRecord tallies historical outcomes of one ordered (home, away) pairing.
type H2HRecord struct {
	HomeWins int `json:"home_wins"`
	AwayWins int `json:"away_wins"`
	Draws    int `json:"draws"`
}
