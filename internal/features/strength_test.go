package features

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/matchcast/internal/models"
)

func record(home, away string, hg, ag int, season string, day int) models.MatchRecord {
	return models.MatchRecord{
		HomeTeam:  home,
		AwayTeam:  away,
		HomeGoals: hg,
		AwayGoals: ag,
		Season:    season,
		Matchday:  day,
		Date:      time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, day*7),
	}
}

// TestStrengthAverages tests offense/defense aggregation over home and away
// appearances with 2dp rounding
func TestStrengthAverages(t *testing.T) {
	records := []models.MatchRecord{
		record("Barcelona", "Sevilla", 3, 1, "2023_24", 1),
		record("Getafe", "Barcelona", 0, 2, "2023_24", 2),
		record("Barcelona", "Valencia", 1, 1, "2023_24", 3),
	}

	est := NewStrengthEstimator(records, []string{"2023_24"})
	s := est.Estimate("Barcelona")

	// 6 goals scored, 2 conceded over 3 matches
	assert.Equal(t, 2.0, s.OffenseStrength)
	assert.InDelta(t, 0.67, s.DefenseWeakness, 1e-9)
}

// TestStrengthThreeTierFallback tests recent -> all-time -> neutral resolution
func TestStrengthThreeTierFallback(t *testing.T) {
	records := []models.MatchRecord{
		record("Barcelona", "Sevilla", 2, 0, "2023_24", 1),
		record("Huesca", "Eibar", 1, 3, "2019_20", 1),
	}

	est := NewStrengthEstimator(records, []string{"2023_24"})

	// Recent tier
	assert.Equal(t, 2.0, est.Estimate("Barcelona").OffenseStrength)

	// No recent matches, all-time tier applies
	huesca := est.Estimate("Huesca")
	assert.Equal(t, 1.0, huesca.OffenseStrength)
	assert.Equal(t, 3.0, huesca.DefenseWeakness)

	// Absent everywhere: exact neutral default
	assert.Equal(t, models.NeutralStrength, est.Estimate("Nonexistent FC"))
}

// TestStrengthTableTotality tests that every corpus team resolves to a rating
func TestStrengthTableTotality(t *testing.T) {
	records := []models.MatchRecord{
		record("Barcelona", "Sevilla", 2, 0, "2023_24", 1),
		record("Huesca", "Eibar", 1, 3, "2019_20", 1),
	}

	table := NewStrengthEstimator(records, []string{"2023_24"}).Table()

	for _, team := range []string{"Barcelona", "Sevilla", "Huesca", "Eibar"} {
		s, ok := table[team]
		assert.True(t, ok, "missing rating for %s", team)
		assert.GreaterOrEqual(t, s.OffenseStrength, 0.0)
		assert.GreaterOrEqual(t, s.DefenseWeakness, 0.0)
	}
}

// TestStrengthRounding tests half-up rounding at 2 decimal places
func TestStrengthRounding(t *testing.T) {
	// 1 goal over 3 matches = 0.333... -> 0.33; 5 over 3 = 1.666... -> 1.67
	records := []models.MatchRecord{
		record("A", "B", 1, 2, "s", 1),
		record("A", "B", 0, 2, "s", 2),
		record("A", "B", 0, 1, "s", 3),
	}

	est := NewStrengthEstimator(records, nil)
	a := est.Estimate("A")
	assert.Equal(t, 0.33, a.OffenseStrength)
	assert.Equal(t, 1.67, a.DefenseWeakness)
}
