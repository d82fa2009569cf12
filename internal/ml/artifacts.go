package ml

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/matchcast/internal/models"
)

// Artifacts is the persisted model bundle for one league: every read-only
// lookup table the predictor needs, plus the trained classifier. Written by
// the training run, loaded once at server startup.
type Artifacts struct {
	ID         uuid.UUID                      `json:"id"`
	League     string                         `json:"league"`
	TrainedAt  time.Time                      `json:"trained_at"`
	Accuracy   float64                        `json:"accuracy"`
	Strengths  map[string]models.TeamStrength `json:"strengths"`
	RecentForm map[string][]models.FormEntry  `json:"recent_form"`
	HeadToHead map[string]models.H2HRecord    `json:"head_to_head"`
	Encoder    []string                       `json:"encoder_classes"`
	Model      *SoftmaxClassifier             `json:"model"`
}

// NewArtifacts stamps a fresh bundle for a league.
func NewArtifacts(league string) *Artifacts {
	return &Artifacts{
		ID:        uuid.New(),
		League:    league,
		TrainedAt: time.Now().UTC(),
	}
}

// Save writes the bundle atomically: temp file in the target directory, then
// rename.
func (a *Artifacts) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create artifact directory: %w", err)
	}

	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode artifacts: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".artifacts-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp artifact file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write artifacts: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close artifact file: %w", err)
	}

	return os.Rename(tmp.Name(), path)
}

// LoadArtifacts reads and validates a league bundle from disk.
func LoadArtifacts(path string) (*Artifacts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifacts %s: %w", path, err)
	}

	a := &Artifacts{}
	if err := json.Unmarshal(data, a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArtifactCorrupt, err)
	}
	if err := a.validate(); err != nil {
		return nil, err
	}

	// JSON round-trips lose unexported fields; restore the label order.
	a.Model.classes = append([]string(nil), models.ResultLabels...)
	return a, nil
}

func (a *Artifacts) validate() error {
	if a.League == "" || a.Model == nil {
		return fmt.Errorf("%w: missing league or model", ErrArtifactCorrupt)
	}
	if len(a.Model.Weights) != len(models.ResultLabels) {
		return fmt.Errorf("%w: expected %d weight rows, got %d",
			ErrArtifactCorrupt, len(models.ResultLabels), len(a.Model.Weights))
	}
	for _, row := range a.Model.Weights {
		if len(row) != models.FeatureCount+1 {
			return fmt.Errorf("%w: weight row width %d", ErrArtifactCorrupt, len(row))
		}
	}
	if len(a.Model.Means) != models.FeatureCount || len(a.Model.Stds) != models.FeatureCount {
		return fmt.Errorf("%w: scaler dimension mismatch", ErrArtifactCorrupt)
	}
	return nil
}
