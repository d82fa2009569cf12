// Package ml provides the trained match-outcome classifier and the
// persistence of per-league model artifacts.
package ml

import (
	"errors"

	"github.com/yourusername/matchcast/internal/models"
)

var (
	// ErrNotTrained indicates PredictProba was called before Fit or Load
	ErrNotTrained = errors.New("classifier not trained")

	// ErrDimensionMismatch indicates a feature vector of the wrong width
	ErrDimensionMismatch = errors.New("feature vector dimension mismatch")

	// ErrEmptyTrainingSet indicates Fit received no rows
	ErrEmptyTrainingSet = errors.New("empty training set")

	// ErrArtifactCorrupt indicates a model bundle failed to decode or
	// failed its shape checks
	ErrArtifactCorrupt = errors.New("model artifact corrupt")
)

// Classifier is the opaque supervised-learning capability the predictor
// depends on: a probability distribution over the outcome labels for a
// feature vector. Implementations must be safe for concurrent PredictProba
// calls once trained.
type Classifier interface {
	// PredictProba returns class probabilities positionally aligned with
	// Classes().
	PredictProba(vector models.FeatureVector) ([]float64, error)

	// Classes returns the ordered label list matching probability positions.
	Classes() []string
}
