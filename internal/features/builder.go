package features

import (
	"github.com/yourusername/matchcast/internal/models"
)

// Builder assembles fixed-order feature vectors from a league's fitted
// tables. All inputs are read-only after construction; Build is safe for
// concurrent use.
type Builder struct {
	strengths map[string]models.TeamStrength
	form      *FormTracker
	h2h       *H2HLedger
	encoder   *LabelEncoder
}

// NewBuilder wires a builder over one league's tables.
func NewBuilder(strengths map[string]models.TeamStrength, form *FormTracker, h2h *H2HLedger, encoder *LabelEncoder) *Builder {
	return &Builder{strengths: strengths, form: form, h2h: h2h, encoder: encoder}
}

// Covers reports whether both canonical team names are present in the
// league's strength table. The predictor uses this to pick which league's
// tables apply to a fixture.
func (b *Builder) Covers(home, away string) bool {
	_, homeOK := b.strengths[home]
	_, awayOK := b.strengths[away]
	return homeOK && awayOK
}

// Strength resolves a rating from the builder's table, falling back to the
// neutral default for teams outside it.
func (b *Builder) Strength(team string) models.TeamStrength {
	if s, ok := b.strengths[team]; ok {
		return s
	}
	return models.NeutralStrength
}

// BuildResult carries the assembled vector along with the intermediate
// values the caller surfaces (expected goals).
type BuildResult struct {
	Vector models.FeatureVector
	HomeXG float64
	AwayXG float64
}

// Build assembles the feature vector for a fixture between two canonical
// team names at the given matchday (0 when unresolved). It returns
// models.ErrUnknownTeam when either name was not seen by the encoder; a
// tagged error rather than a sentinel row, so the predictor decides how to
// degrade.
func (b *Builder) Build(home, away string, matchday int) (BuildResult, error) {
	homeCode := b.encoder.Encode(home)
	awayCode := b.encoder.Encode(away)
	if homeCode == UnknownTeamCode || awayCode == UnknownTeamCode {
		return BuildResult{}, models.ErrUnknownTeam
	}

	homeStrength := b.Strength(home)
	awayStrength := b.Strength(away)

	boost := MatchdayBoost(matchday)
	homeXG, awayXG := ExpectedGoals(homeStrength, awayStrength, boost)

	// Persisted windows hold the teams' most recent completed matches, all
	// of which predate an upcoming fixture regardless of its matchday, so
	// the as-of filter stays off here. It only applies during training,
	// where entry matchdays and the row's matchday share one numbering.
	homeForm := b.form.RecentStats(home, 0, homeXG)
	awayForm := b.form.RecentStats(away, 0, awayXG)

	h2h := b.h2h.Lookup(home, away)
	reverse := b.h2h.Lookup(away, home)

	vector := models.FeatureVector{
		homeXG,
		awayXG,
		float64(homeCode),
		float64(awayCode),
		float64(matchday),
		float64(homeForm.Points),
		float64(homeForm.GoalDiff),
		homeForm.AvgExpectedGoals,
		float64(awayForm.Points),
		float64(awayForm.GoalDiff),
		awayForm.AvgExpectedGoals,
		float64(h2h.HomeWins),
		float64(reverse.AwayWins),
		homeStrength.OffenseStrength,
		homeStrength.DefenseWeakness,
		awayStrength.OffenseStrength,
		awayStrength.DefenseWeakness,
	}

	return BuildResult{Vector: vector, HomeXG: homeXG, AwayXG: awayXG}, nil
}
