package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/matchcast/internal/models"
)

func flatXG(models.MatchRecord, bool) float64 { return 1.0 }

// TestFormWindowBound tests that histories hold exactly the 3 latest entries
func TestFormWindowBound(t *testing.T) {
	tracker := NewFormTracker()

	records := []models.MatchRecord{
		record("A", "B", 1, 0, "s", 1),
		record("A", "B", 2, 0, "s", 2),
		record("A", "B", 0, 3, "s", 3),
		record("A", "B", 1, 1, "s", 4),
		record("A", "B", 4, 0, "s", 5),
	}
	tracker.Ingest(records, flatXG)

	history := tracker.History("A")
	require.Len(t, history, 3)

	// The 3 chronologically latest matchdays survive, oldest first
	assert.Equal(t, 3, history[0].Matchday)
	assert.Equal(t, 4, history[1].Matchday)
	assert.Equal(t, 5, history[2].Matchday)
}

// TestFormIngestOutOfOrderInput tests that ingest sorts by date before
// appending
func TestFormIngestOutOfOrderInput(t *testing.T) {
	tracker := NewFormTracker()

	// Deliberately shuffled
	records := []models.MatchRecord{
		record("A", "B", 4, 0, "s", 5),
		record("A", "B", 1, 0, "s", 1),
		record("A", "B", 1, 1, "s", 4),
		record("A", "B", 2, 0, "s", 2),
		record("A", "B", 0, 3, "s", 3),
	}
	tracker.Ingest(records, flatXG)

	history := tracker.History("A")
	require.Len(t, history, 3)
	assert.Equal(t, []int{3, 4, 5}, []int{history[0].Matchday, history[1].Matchday, history[2].Matchday})
}

// TestRecentStatsAggregation tests points, goal diff and xg averaging over
// the window
func TestRecentStatsAggregation(t *testing.T) {
	tracker := NewFormTracker()
	tracker.Ingest([]models.MatchRecord{
		record("A", "B", 2, 0, "s", 1), // win, +2
		record("A", "B", 1, 1, "s", 2), // draw, 0
		record("A", "B", 0, 1, "s", 3), // loss, -1
	}, flatXG)

	stats := tracker.RecentStats("A", 0, 0)
	assert.Equal(t, 4, stats.Points)
	assert.Equal(t, 1, stats.GoalDiff)
	assert.InDelta(t, 1.0, stats.AvgExpectedGoals, 1e-9)
}

// TestRecentStatsAsOfMatchday tests that the inference window excludes
// entries from the fixture's matchday onward
func TestRecentStatsAsOfMatchday(t *testing.T) {
	tracker := NewFormTracker()
	tracker.Ingest([]models.MatchRecord{
		record("A", "B", 2, 0, "s", 1),
		record("A", "B", 0, 1, "s", 2),
		record("A", "B", 3, 0, "s", 3),
	}, flatXG)

	// Predicting matchday 3: only matchdays 1 and 2 count
	stats := tracker.RecentStats("A", 3, 0)
	assert.Equal(t, 3, stats.Points)
	assert.Equal(t, 1, stats.GoalDiff)

	// Full window includes the matchday-3 win
	full := tracker.RecentStats("A", 0, 0)
	assert.Equal(t, 6, full.Points)
}

// TestRecentStatsEmptyWindowFallback tests the caller-supplied xg default
func TestRecentStatsEmptyWindowFallback(t *testing.T) {
	tracker := NewFormTracker()

	stats := tracker.RecentStats("Never Seen", 0, 1.85)
	assert.Equal(t, 0, stats.Points)
	assert.Equal(t, 0, stats.GoalDiff)
	assert.Equal(t, 1.85, stats.AvgExpectedGoals)
}

// TestFormTrackerFromTable tests artifact round-trip truncation
func TestFormTrackerFromTable(t *testing.T) {
	table := map[string][]models.FormEntry{
		"A": {
			{GoalsFor: 1, Points: 3, Matchday: 1},
			{GoalsFor: 2, Points: 3, Matchday: 2},
			{GoalsFor: 3, Points: 3, Matchday: 3},
			{GoalsFor: 4, Points: 3, Matchday: 4},
		},
	}

	tracker := NewFormTrackerFromTable(table)
	history := tracker.History("A")
	require.Len(t, history, 3)
	assert.Equal(t, 2, history[0].Matchday)
}

// TestPointsFor tests the 3/1/0 mapping
func TestPointsFor(t *testing.T) {
	assert.Equal(t, 3, pointsFor(2, 1))
	assert.Equal(t, 1, pointsFor(1, 1))
	assert.Equal(t, 0, pointsFor(0, 2))
}
