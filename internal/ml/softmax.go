package ml

import (
	"math"

	"github.com/yourusername/matchcast/internal/models"
)

// Training hyperparameters. Deterministic by construction: zero-initialized
// weights, full-batch gradient descent, no sampling.
const (
	defaultEpochs       = 400
	defaultLearningRate = 0.05
	defaultL2           = 1e-4
)

// SoftmaxClassifier is a multinomial logistic regression over standardized
// features. Classes are fixed to the canonical outcome labels.
type SoftmaxClassifier struct {
	classes []string
	// Weights[c] holds the per-class weight row; the final element is the
	// bias term.
	Weights [][]float64 `json:"weights"`
	// Means and Stds standardize inputs before scoring.
	Means []float64 `json:"means"`
	Stds  []float64 `json:"stds"`
}

// NewSoftmaxClassifier returns an untrained classifier with the canonical
// label order.
func NewSoftmaxClassifier() *SoftmaxClassifier {
	return &SoftmaxClassifier{classes: append([]string(nil), models.ResultLabels...)}
}

// Classes returns the ordered label list matching probability positions.
func (c *SoftmaxClassifier) Classes() []string {
	return c.classes
}

// Fit trains the classifier with full-batch gradient descent. labels must
// hold, per row, an index into Classes().
func (c *SoftmaxClassifier) Fit(rows []models.FeatureVector, labels []int) error {
	if len(rows) == 0 || len(rows) != len(labels) {
		return ErrEmptyTrainingSet
	}

	c.fitScaler(rows)
	scaled := make([][]float64, len(rows))
	for i, row := range rows {
		scaled[i] = c.standardize(row)
	}

	nClasses := len(c.classes)
	dim := models.FeatureCount + 1 // bias slot
	c.Weights = make([][]float64, nClasses)
	for k := range c.Weights {
		c.Weights[k] = make([]float64, dim)
	}

	n := float64(len(scaled))
	grads := make([][]float64, nClasses)
	for k := range grads {
		grads[k] = make([]float64, dim)
	}

	for epoch := 0; epoch < defaultEpochs; epoch++ {
		for k := range grads {
			for j := range grads[k] {
				grads[k][j] = 0
			}
		}

		for i, x := range scaled {
			probs := c.scores(x)
			for k := 0; k < nClasses; k++ {
				delta := probs[k]
				if labels[i] == k {
					delta -= 1
				}
				for j := 0; j < models.FeatureCount; j++ {
					grads[k][j] += delta * x[j]
				}
				grads[k][models.FeatureCount] += delta
			}
		}

		for k := 0; k < nClasses; k++ {
			for j := 0; j < dim; j++ {
				grad := grads[k][j]/n + defaultL2*c.Weights[k][j]
				c.Weights[k][j] -= defaultLearningRate * grad
			}
		}
	}

	return nil
}

// PredictProba returns class probabilities for a feature vector.
func (c *SoftmaxClassifier) PredictProba(vector models.FeatureVector) ([]float64, error) {
	if len(c.Weights) == 0 {
		return nil, ErrNotTrained
	}
	if len(c.Means) != models.FeatureCount {
		return nil, ErrDimensionMismatch
	}
	return c.scores(c.standardize(vector)), nil
}

// scores applies the linear model to a standardized input and normalizes
// with a numerically stable softmax.
func (c *SoftmaxClassifier) scores(x []float64) []float64 {
	logits := make([]float64, len(c.Weights))
	maxLogit := math.Inf(-1)
	for k, w := range c.Weights {
		var z float64
		for j := 0; j < models.FeatureCount; j++ {
			z += w[j] * x[j]
		}
		z += w[models.FeatureCount]
		logits[k] = z
		if z > maxLogit {
			maxLogit = z
		}
	}

	var sum float64
	for k, z := range logits {
		logits[k] = math.Exp(z - maxLogit)
		sum += logits[k]
	}
	for k := range logits {
		logits[k] /= sum
	}
	return logits
}

func (c *SoftmaxClassifier) fitScaler(rows []models.FeatureVector) {
	c.Means = make([]float64, models.FeatureCount)
	c.Stds = make([]float64, models.FeatureCount)

	n := float64(len(rows))
	for _, row := range rows {
		for j, v := range row {
			c.Means[j] += v
		}
	}
	for j := range c.Means {
		c.Means[j] /= n
	}

	for _, row := range rows {
		for j, v := range row {
			d := v - c.Means[j]
			c.Stds[j] += d * d
		}
	}
	for j := range c.Stds {
		c.Stds[j] = math.Sqrt(c.Stds[j] / n)
		if c.Stds[j] == 0 {
			// Constant columns pass through unscaled
			c.Stds[j] = 1
		}
	}
}

func (c *SoftmaxClassifier) standardize(vector models.FeatureVector) []float64 {
	x := make([]float64, models.FeatureCount)
	for j, v := range vector {
		x[j] = (v - c.Means[j]) / c.Stds[j]
	}
	return x
}
