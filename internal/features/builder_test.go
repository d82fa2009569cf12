package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/matchcast/internal/models"
)

func toyBuilder() *Builder {
	strengths := map[string]models.TeamStrength{
		"A": {OffenseStrength: 2.0, DefenseWeakness: 0.5},
		"B": {OffenseStrength: 0.5, DefenseWeakness: 2.0},
	}
	return NewBuilder(
		strengths,
		NewFormTracker(),
		NewH2HLedger(nil),
		FitLabelEncoder([]string{"A", "B"}),
	)
}

// TestBuilderVectorOrder tests the fixed 17-feature layout on a toy league
func TestBuilderVectorOrder(t *testing.T) {
	b := toyBuilder()

	result, err := b.Build("A", "B", 1)
	require.NoError(t, err)

	v := result.Vector
	assert.InDelta(t, 8.0, v[0], 1e-9) // home_xg at matchday 1 boost
	assert.InDelta(t, 0.5, v[1], 1e-9) // away_xg
	assert.Equal(t, 0.0, v[2])         // "A" encodes to 0
	assert.Equal(t, 1.0, v[3])         // "B" encodes to 1
	assert.Equal(t, 1.0, v[4])         // matchday

	// Empty form windows: zero points/gd, xg default = fixture estimate
	assert.Equal(t, 0.0, v[5])
	assert.Equal(t, 0.0, v[6])
	assert.InDelta(t, 8.0, v[7], 1e-9)
	assert.Equal(t, 0.0, v[8])
	assert.Equal(t, 0.0, v[9])
	assert.InDelta(t, 0.5, v[10], 1e-9)

	// No head-to-head history
	assert.Equal(t, 0.0, v[11])
	assert.Equal(t, 0.0, v[12])

	// Raw strengths close the vector
	assert.Equal(t, 2.0, v[13])
	assert.Equal(t, 0.5, v[14])
	assert.Equal(t, 0.5, v[15])
	assert.Equal(t, 2.0, v[16])

	assert.InDelta(t, 8.0, result.HomeXG, 1e-9)
	assert.InDelta(t, 0.5, result.AwayXG, 1e-9)
}

// TestBuilderFormSurvivesEarlyMatchday tests that a persisted form window is
// used in full at inference even when the fixture's matchday is lower than
// the matchdays stored on the entries: those entries come from completed
// matches, so they are always in an upcoming fixture's past
func TestBuilderFormSurvivesEarlyMatchday(t *testing.T) {
	strengths := map[string]models.TeamStrength{
		"A": {OffenseStrength: 2.0, DefenseWeakness: 0.5},
		"B": {OffenseStrength: 0.5, DefenseWeakness: 2.0},
	}
	form := NewFormTrackerFromTable(map[string][]models.FormEntry{
		"A": {
			{GoalsFor: 3, GoalsAgainst: 1, ExpectedGoals: 1.5, Points: 3, Matchday: 36},
			{GoalsFor: 2, GoalsAgainst: 1, ExpectedGoals: 2.0, Points: 3, Matchday: 37},
			{GoalsFor: 1, GoalsAgainst: 1, ExpectedGoals: 2.3, Points: 1, Matchday: 38},
		},
	})
	b := NewBuilder(strengths, form, NewH2HLedger(nil), FitLabelEncoder([]string{"A", "B"}))

	result, err := b.Build("A", "B", 5)
	require.NoError(t, err)

	v := result.Vector
	assert.Equal(t, 7.0, v[5])                    // points from the stored window
	assert.Equal(t, 3.0, v[6])                    // goal diff likewise
	assert.InDelta(t, 5.8/3.0, v[7], 1e-9)        // avg xg from entries, not fallback
	assert.InDelta(t, result.AwayXG, v[10], 1e-9) // B has no window, fallback
}

// TestBuilderUnknownTeam tests the tagged unknown-team error
func TestBuilderUnknownTeam(t *testing.T) {
	b := toyBuilder()

	_, err := b.Build("A", "Nonexistent FC", 1)
	assert.ErrorIs(t, err, models.ErrUnknownTeam)
}

// TestBuilderCovers tests league membership checks
func TestBuilderCovers(t *testing.T) {
	b := toyBuilder()

	assert.True(t, b.Covers("A", "B"))
	assert.False(t, b.Covers("A", "C"))
	assert.False(t, b.Covers("X", "Y"))
}

// TestBuilderH2HOrientation tests that h2h features honor key orientation
func TestBuilderH2HOrientation(t *testing.T) {
	strengths := map[string]models.TeamStrength{
		"A": {OffenseStrength: 1.0, DefenseWeakness: 1.0},
		"B": {OffenseStrength: 1.0, DefenseWeakness: 1.0},
	}
	ledger := NewH2HLedger([]models.MatchRecord{
		record("A", "B", 2, 0, "s", 1), // A home win
		record("B", "A", 0, 1, "s", 2), // A away win at B
	})
	b := NewBuilder(strengths, NewFormTracker(), ledger, FitLabelEncoder([]string{"A", "B"}))

	result, err := b.Build("A", "B", 0)
	require.NoError(t, err)

	assert.Equal(t, 1.0, result.Vector[11]) // home_wins_vs_away from (A,B)
	assert.Equal(t, 1.0, result.Vector[12]) // away_wins_vs_home from (B,A)
}
