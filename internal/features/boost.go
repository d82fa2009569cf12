package features

import "github.com/yourusername/matchcast/internal/models"

// Boost decay parameters. At matchday 1 strength carries double weight
// because no current-season form exists yet; the amplification decays
// linearly and floors at 1.0 from matchday 5 on.
const (
	boostCeiling = 2.0
	boostDecay   = 0.3
	boostFloor   = 1.0
)

// MatchdayBoost returns the strength amplification factor for a fixture at
// the given 1-indexed matchday: max(1.0, 2.0 - 0.3*(matchday-1)). A
// non-positive matchday means the round could not be resolved upstream and
// yields the neutral factor 1.0.
func MatchdayBoost(matchday int) float64 {
	if matchday <= 0 {
		return boostFloor
	}
	boost := boostCeiling - boostDecay*float64(matchday-1)
	if boost < boostFloor {
		return boostFloor
	}
	return boost
}

// ExpectedGoals computes the boosted expected-goal pair for a fixture.
// Both ratings are amplified before multiplying, so
// home_xg = (home_offense*boost) * (away_defense*boost) / 2 and
// symmetrically for the away side.
func ExpectedGoals(home, away models.TeamStrength, boost float64) (homeXG, awayXG float64) {
	homeXG = (home.OffenseStrength * boost) * (away.DefenseWeakness * boost) / 2
	awayXG = (away.OffenseStrength * boost) * (home.DefenseWeakness * boost) / 2
	return homeXG, awayXG
}

// TrainingExpectedGoals is the boost-free form used when building training
// rows, where the heuristic amplification does not apply.
func TrainingExpectedGoals(home, away models.TeamStrength) (homeXG, awayXG float64) {
	return ExpectedGoals(home, away, boostFloor)
}
