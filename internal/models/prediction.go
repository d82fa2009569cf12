package models

// FeatureCount is the width of the classifier input vector.
const FeatureCount = 17

// FeatureVector is the fixed-order numeric input consumed by the classifier.
// Index layout:
//
//	0  home_xg                 9  away_recent_goal_diff
//	1  away_xg                10  away_recent_avg_xg
//	2  home_team_encoded      11  home_wins_vs_away
//	3  away_team_encoded      12  away_wins_vs_home
//	4  matchday               13  home_offense_strength
//	5  home_recent_points     14  home_defense_weakness
//	6  home_recent_goal_diff  15  away_offense_strength
//	7  home_recent_avg_xg     16  away_defense_weakness
//	8  away_recent_points
type FeatureVector [FeatureCount]float64

// Prediction is the outcome of a single predict call. When Known is false the
// teams could not be resolved against any league's tables and the remaining
// fields hold the sentinel values.
type Prediction struct {
	Known      bool      `json:"-"`
	Result     string    `json:"result"`
	Confidence []float64 `json:"confidence"`
	HomeXG     float64   `json:"home_xg"`
	AwayXG     float64   `json:"away_xg"`
}

// UnknownPrediction returns the sentinel prediction for unresolvable teams.
func UnknownPrediction() Prediction {
	return Prediction{
		Known:      false,
		Result:     "Unknown",
		Confidence: []float64{0, 0, 0},
	}
}

// TopLabel selects the label with the highest probability, given labels and
// probabilities in matching positions.
func TopLabel(labels []string, probs []float64) string {
	if len(labels) == 0 || len(labels) != len(probs) {
		return "Unknown"
	}
	best := 0
	for i := 1; i < len(probs); i++ {
		if probs[i] > probs[best] {
			best = i
		}
	}
	return labels[best]
}
