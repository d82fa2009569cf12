// Package features implements the feature-engineering pipeline shared by the
// offline training run and online inference: team strength ratings, bounded
// recent-form windows, head-to-head tallies, team encoding, the
// matchday-aware strength boost, and final feature vector assembly.
package features

import (
	"github.com/shopspring/decimal"

	"github.com/yourusername/matchcast/internal/models"
)

// StrengthEstimator computes per-team offense/defense ratings from a corpus
// of completed matches, with a recent-seasons subset preferred over the
// all-time aggregate.
type StrengthEstimator struct {
	recent  map[string]models.TeamStrength
	allTime map[string]models.TeamStrength
}

// NewStrengthEstimator aggregates the corpus once. recentSeasons selects the
// subset used for the preferred tier; an empty set disables the recent tier.
func NewStrengthEstimator(records []models.MatchRecord, recentSeasons []string) *StrengthEstimator {
	recentSet := make(map[string]bool, len(recentSeasons))
	for _, s := range recentSeasons {
		recentSet[s] = true
	}

	var recentRecords []models.MatchRecord
	for _, r := range records {
		if recentSet[r.Season] {
			recentRecords = append(recentRecords, r)
		}
	}

	return &StrengthEstimator{
		recent:  computeStrengths(recentRecords),
		allTime: computeStrengths(records),
	}
}

// Estimate resolves a team's rating through the three-tier fallback:
// recent-seasons rating, then all-time rating, then the neutral default.
// Total: every input yields a rating.
func (e *StrengthEstimator) Estimate(team string) models.TeamStrength {
	if s, ok := e.recent[team]; ok {
		return s
	}
	if s, ok := e.allTime[team]; ok {
		return s
	}
	return models.NeutralStrength
}

// Table materializes the resolved rating for every team seen anywhere in the
// corpus. The result is the read-only strength table persisted per league.
func (e *StrengthEstimator) Table() map[string]models.TeamStrength {
	table := make(map[string]models.TeamStrength, len(e.allTime))
	for team := range e.allTime {
		table[team] = e.Estimate(team)
	}
	return table
}

// computeStrengths aggregates goals for/against per team over every match
// the team played, home or away, and rounds each average to 2 decimals.
func computeStrengths(records []models.MatchRecord) map[string]models.TeamStrength {
	type tally struct {
		played, scored, conceded int
	}
	tallies := make(map[string]*tally)

	add := func(team string, scored, conceded int) {
		t := tallies[team]
		if t == nil {
			t = &tally{}
			tallies[team] = t
		}
		t.played++
		t.scored += scored
		t.conceded += conceded
	}

	for _, r := range records {
		add(r.HomeTeam, r.HomeGoals, r.AwayGoals)
		add(r.AwayTeam, r.AwayGoals, r.HomeGoals)
	}

	strengths := make(map[string]models.TeamStrength, len(tallies))
	for team, t := range tallies {
		strengths[team] = models.TeamStrength{
			OffenseStrength: roundRate(t.scored, t.played),
			DefenseWeakness: roundRate(t.conceded, t.played),
		}
	}
	return strengths
}

// roundRate divides total by count and rounds half-up to 2 decimal places.
func roundRate(total, count int) float64 {
	if count == 0 {
		return 0
	}
	rate := decimal.NewFromInt(int64(total)).Div(decimal.NewFromInt(int64(count)))
	return rate.Round(2).InexactFloat64()
}
