package ml

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/matchcast/internal/models"
)

// trainingRows builds a linearly separable toy set: strong home sides win,
// strong away sides lose, balanced sides draw.
func trainingRows() ([]models.FeatureVector, []int) {
	var rows []models.FeatureVector
	var labels []int

	add := func(homeXG, awayXG float64, label int, times int) {
		for i := 0; i < times; i++ {
			var v models.FeatureVector
			v[0] = homeXG + float64(i)*0.01
			v[1] = awayXG + float64(i)*0.01
			v[13] = homeXG
			v[16] = awayXG
			rows = append(rows, v)
			labels = append(labels, label)
		}
	}

	add(3.0, 0.5, 0, 30) // Home Win
	add(1.2, 1.2, 1, 30) // Draw
	add(0.4, 2.8, 2, 30) // Away Win
	return rows, labels
}

// TestSoftmaxFitAndPredict tests that training separates the toy classes
func TestSoftmaxFitAndPredict(t *testing.T) {
	clf := NewSoftmaxClassifier()
	rows, labels := trainingRows()
	require.NoError(t, clf.Fit(rows, labels))

	var homeDominant models.FeatureVector
	homeDominant[0], homeDominant[1] = 3.2, 0.4
	homeDominant[13], homeDominant[16] = 3.2, 0.4

	probs, err := clf.PredictProba(homeDominant)
	require.NoError(t, err)
	require.Len(t, probs, 3)

	assert.Equal(t, "Home Win", models.TopLabel(clf.Classes(), probs))

	var sum float64
	for _, p := range probs {
		assert.GreaterOrEqual(t, p, 0.0)
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

// TestSoftmaxDeterminism tests that two identical fits agree exactly
func TestSoftmaxDeterminism(t *testing.T) {
	rows, labels := trainingRows()

	a := NewSoftmaxClassifier()
	b := NewSoftmaxClassifier()
	require.NoError(t, a.Fit(rows, labels))
	require.NoError(t, b.Fit(rows, labels))

	probsA, err := a.PredictProba(rows[0])
	require.NoError(t, err)
	probsB, err := b.PredictProba(rows[0])
	require.NoError(t, err)
	assert.Equal(t, probsA, probsB)
}

// TestSoftmaxUntrained tests the not-trained guard
func TestSoftmaxUntrained(t *testing.T) {
	clf := NewSoftmaxClassifier()
	_, err := clf.PredictProba(models.FeatureVector{})
	assert.ErrorIs(t, err, ErrNotTrained)
}

// TestSoftmaxEmptyTrainingSet tests the empty-fit guard
func TestSoftmaxEmptyTrainingSet(t *testing.T) {
	clf := NewSoftmaxClassifier()
	assert.ErrorIs(t, clf.Fit(nil, nil), ErrEmptyTrainingSet)
}

// TestArtifactsRoundTrip tests save/load of a full league bundle
func TestArtifactsRoundTrip(t *testing.T) {
	clf := NewSoftmaxClassifier()
	rows, labels := trainingRows()
	require.NoError(t, clf.Fit(rows, labels))

	a := NewArtifacts("laliga")
	a.Strengths = map[string]models.TeamStrength{
		"Barcelona": {OffenseStrength: 2.1, DefenseWeakness: 0.8},
	}
	a.RecentForm = map[string][]models.FormEntry{
		"Barcelona": {{GoalsFor: 2, GoalsAgainst: 0, Points: 3, Matchday: 4}},
	}
	a.HeadToHead = map[string]models.H2HRecord{
		"Barcelona|Sevilla": {HomeWins: 5, Draws: 1},
	}
	a.Encoder = []string{"Barcelona", "Sevilla"}
	a.Model = clf

	path := filepath.Join(t.TempDir(), "laliga.json")
	require.NoError(t, a.Save(path))

	loaded, err := LoadArtifacts(path)
	require.NoError(t, err)

	assert.Equal(t, a.ID, loaded.ID)
	assert.Equal(t, "laliga", loaded.League)
	assert.Equal(t, a.Strengths, loaded.Strengths)
	assert.Equal(t, a.HeadToHead, loaded.HeadToHead)
	assert.Equal(t, models.ResultLabels, loaded.Model.Classes())

	// The loaded model scores identically
	want, err := clf.PredictProba(rows[0])
	require.NoError(t, err)
	got, err := loaded.Model.PredictProba(rows[0])
	require.NoError(t, err)
	assert.InDeltaSlice(t, want, got, 1e-12)
}

// TestLoadArtifactsCorrupt tests shape validation on load
func TestLoadArtifactsCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"league":"laliga"}`), 0o644))

	_, err := LoadArtifacts(path)
	assert.ErrorIs(t, err, ErrArtifactCorrupt)
}
