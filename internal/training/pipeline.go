package training

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/matchcast/internal/config"
	"github.com/yourusername/matchcast/internal/features"
	"github.com/yourusername/matchcast/internal/metrics"
	"github.com/yourusername/matchcast/internal/ml"
	"github.com/yourusername/matchcast/internal/models"
	"github.com/yourusername/matchcast/internal/normalizer"
	"github.com/yourusername/matchcast/internal/repository"
)

// holdoutShare is the chronological tail reserved for accuracy reporting.
const holdoutShare = 0.2

// Pipeline runs a full training pass for one league and produces its model
// artifacts.
type Pipeline struct {
	repo   repository.MatchRepository
	norm   *normalizer.Normalizer
	logger *logrus.Logger
}

// NewPipeline wires a training pipeline.
func NewPipeline(repo repository.MatchRepository, norm *normalizer.Normalizer, logger *logrus.Logger) *Pipeline {
	return &Pipeline{repo: repo, norm: norm, logger: logger}
}

// Run loads the league's corpus, engineers features, trains the classifier
// and assembles the persisted model bundle.
func (p *Pipeline) Run(ctx context.Context, league *config.LeagueConfig) (*ml.Artifacts, error) {
	corpus, err := p.loadCorpus(ctx, league)
	if err != nil {
		return nil, err
	}
	if len(corpus.Records) == 0 {
		return nil, fmt.Errorf("no usable records for league %s", league.Code)
	}

	p.logger.WithFields(logrus.Fields{
		"league":  league.Code,
		"records": len(corpus.Records),
		"dropped": corpus.Dropped,
	}).Info("Corpus loaded")

	estimator := features.NewStrengthEstimator(corpus.Records, league.RecentSeasons)
	strengths := estimator.Table()

	var teamNames []string
	for team := range strengths {
		teamNames = append(teamNames, team)
	}
	encoder := features.FitLabelEncoder(teamNames)

	h2h := features.NewH2HLedger(corpus.Records)

	rows, labels, form := p.buildTrainingRows(corpus.Records, estimator, encoder, h2h)

	clf := ml.NewSoftmaxClassifier()
	split := len(rows) - int(float64(len(rows))*holdoutShare)
	if split < 1 {
		split = len(rows)
	}

	if err := clf.Fit(rows[:split], labels[:split]); err != nil {
		return nil, fmt.Errorf("failed to train classifier: %w", err)
	}
	accuracy := p.evaluate(clf, rows[split:], labels[split:])

	p.logger.WithFields(logrus.Fields{
		"league":   league.Code,
		"rows":     len(rows),
		"holdout":  len(rows) - split,
		"accuracy": fmt.Sprintf("%.2f", accuracy),
	}).Info("Classifier trained")

	artifacts := ml.NewArtifacts(league.Code)
	artifacts.Accuracy = accuracy
	artifacts.Strengths = strengths
	artifacts.RecentForm = form.Table()
	artifacts.HeadToHead = h2h.Table()
	artifacts.Encoder = encoder.Classes()
	artifacts.Model = clf

	metrics.TrainingRunsTotal.WithLabelValues(league.Code).Inc()
	return artifacts, nil
}

func (p *Pipeline) loadCorpus(ctx context.Context, league *config.LeagueConfig) (repository.CleanedCorpus, error) {
	var raw []repository.RawSeasonRow
	for _, season := range league.Seasons {
		rows, err := p.repo.SeasonRows(ctx, league.Code, season)
		if err != nil {
			return repository.CleanedCorpus{}, fmt.Errorf("failed to load season %s: %w", season, err)
		}
		raw = append(raw, rows...)
	}
	return CleanRows(raw, p.norm), nil
}

// buildTrainingRows walks the corpus chronologically, assembling one feature
// row per record with form stats as of that record's matchday. The running
// tracker is updated after each row, so no row sees its own outcome, and the
// tracker's final windows become the persisted per-team form table.
func (p *Pipeline) buildTrainingRows(
	records []models.MatchRecord,
	estimator *features.StrengthEstimator,
	encoder *features.LabelEncoder,
	h2h *features.H2HLedger,
) ([]models.FeatureVector, []int, *features.FormTracker) {
	labelIndex := make(map[models.Result]int, len(models.ResultLabels))
	for i, label := range models.ResultLabels {
		labelIndex[models.Result(label)] = i
	}

	form := features.NewFormTracker()
	rows := make([]models.FeatureVector, 0, len(records))
	labels := make([]int, 0, len(records))

	for _, r := range records {
		homeStrength := estimator.Estimate(r.HomeTeam)
		awayStrength := estimator.Estimate(r.AwayTeam)
		homeXG, awayXG := features.TrainingExpectedGoals(homeStrength, awayStrength)

		homeForm := form.RecentStats(r.HomeTeam, r.Matchday, homeXG)
		awayForm := form.RecentStats(r.AwayTeam, r.Matchday, awayXG)

		forward := h2h.Lookup(r.HomeTeam, r.AwayTeam)
		reverse := h2h.Lookup(r.AwayTeam, r.HomeTeam)

		rows = append(rows, models.FeatureVector{
			homeXG,
			awayXG,
			float64(encoder.Encode(r.HomeTeam)),
			float64(encoder.Encode(r.AwayTeam)),
			float64(r.Matchday),
			float64(homeForm.Points),
			float64(homeForm.GoalDiff),
			homeForm.AvgExpectedGoals,
			float64(awayForm.Points),
			float64(awayForm.GoalDiff),
			awayForm.AvgExpectedGoals,
			float64(forward.HomeWins),
			float64(reverse.AwayWins),
			homeStrength.OffenseStrength,
			homeStrength.DefenseWeakness,
			awayStrength.OffenseStrength,
			awayStrength.DefenseWeakness,
		})
		labels = append(labels, labelIndex[r.Result()])

		form.Append(r, homeXG, awayXG)
	}

	return rows, labels, form
}

func (p *Pipeline) evaluate(clf *ml.SoftmaxClassifier, rows []models.FeatureVector, labels []int) float64 {
	if len(rows) == 0 {
		return 0
	}
	correct := 0
	for i, row := range rows {
		probs, err := clf.PredictProba(row)
		if err != nil {
			continue
		}
		best := 0
		for k := range probs {
			if probs[k] > probs[best] {
				best = k
			}
		}
		if best == labels[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(rows))
}
