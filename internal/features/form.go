package features

import (
	"sort"

	"github.com/yourusername/matchcast/internal/models"
)

// formWindow is the bounded length of each team's recent-form history.
const formWindow = 3

// FormTracker maintains per-team sliding windows of recent match summaries.
// Records must be appended in chronological order; the window invariant
// (length <= 3, FIFO eviction) only holds under ordered ingestion.
type FormTracker struct {
	histories map[string][]models.FormEntry
}

// NewFormTracker returns an empty tracker.
func NewFormTracker() *FormTracker {
	return &FormTracker{histories: make(map[string][]models.FormEntry)}
}

// NewFormTrackerFromTable rebuilds a tracker from a persisted per-team table,
// re-truncating each history defensively.
func NewFormTrackerFromTable(table map[string][]models.FormEntry) *FormTracker {
	t := NewFormTracker()
	for team, entries := range table {
		if len(entries) > formWindow {
			entries = entries[len(entries)-formWindow:]
		}
		t.histories[team] = append([]models.FormEntry(nil), entries...)
	}
	return t
}

// Ingest sorts the records by date and appends each one to both sides'
// histories. Sorting here keeps the chronological-order requirement local
// instead of trusting every caller.
func (t *FormTracker) Ingest(records []models.MatchRecord, xg func(r models.MatchRecord, home bool) float64) {
	sorted := append([]models.MatchRecord(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	for _, r := range sorted {
		t.Append(r, xg(r, true), xg(r, false))
	}
}

// Append records one completed match for both teams, evicting the oldest
// entry once a history exceeds the window.
func (t *FormTracker) Append(r models.MatchRecord, homeXG, awayXG float64) {
	t.push(r.HomeTeam, models.FormEntry{
		GoalsFor:      r.HomeGoals,
		GoalsAgainst:  r.AwayGoals,
		ExpectedGoals: homeXG,
		Points:        pointsFor(r.HomeGoals, r.AwayGoals),
		Matchday:      r.Matchday,
	})
	t.push(r.AwayTeam, models.FormEntry{
		GoalsFor:      r.AwayGoals,
		GoalsAgainst:  r.HomeGoals,
		ExpectedGoals: awayXG,
		Points:        pointsFor(r.AwayGoals, r.HomeGoals),
		Matchday:      r.Matchday,
	})
}

func (t *FormTracker) push(team string, e models.FormEntry) {
	h := append(t.histories[team], e)
	if len(h) > formWindow {
		h = h[len(h)-formWindow:]
	}
	t.histories[team] = h
}

// History returns the team's current window, oldest first.
func (t *FormTracker) History(team string) []models.FormEntry {
	return t.histories[team]
}

// Table exposes the underlying per-team windows for artifact persistence.
func (t *FormTracker) Table() map[string][]models.FormEntry {
	return t.histories
}

// FormStats is the aggregated short-term momentum signal for one team.
type FormStats struct {
	Points           int
	GoalDiff         int
	AvgExpectedGoals float64
}

// RecentStats aggregates a team's window. With beforeMatchday > 0 only
// entries from strictly earlier matchdays count, so a training row at
// matchday M never sees form the team had not yet produced; the filter is
// meaningful only when beforeMatchday and the stored entries share the same
// season-local numbering. beforeMatchday <= 0 uses the whole window. An
// empty window yields zero points and goal diff, with defaultXG standing in
// for the expected-goals average.
func (t *FormTracker) RecentStats(team string, beforeMatchday int, defaultXG float64) FormStats {
	var window []models.FormEntry
	for _, e := range t.histories[team] {
		if beforeMatchday > 0 && e.Matchday >= beforeMatchday {
			continue
		}
		window = append(window, e)
	}
	if len(window) > formWindow {
		window = window[len(window)-formWindow:]
	}

	if len(window) == 0 {
		return FormStats{AvgExpectedGoals: defaultXG}
	}

	var stats FormStats
	var xgSum float64
	for _, e := range window {
		stats.Points += e.Points
		stats.GoalDiff += e.GoalDiff()
		xgSum += e.ExpectedGoals
	}
	stats.AvgExpectedGoals = xgSum / float64(len(window))
	return stats
}

// pointsFor maps a score line to league points: 3 for a win, 1 for a draw.
func pointsFor(scored, conceded int) int {
	switch {
	case scored > conceded:
		return 3
	case scored == conceded:
		return 1
	default:
		return 0
	}
}
