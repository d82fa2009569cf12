// Package service implements the prediction and fixture operations exposed to
// the API layer.
package service

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/matchcast/internal/config"
	"github.com/yourusername/matchcast/internal/features"
	"github.com/yourusername/matchcast/internal/metrics"
	"github.com/yourusername/matchcast/internal/ml"
	"github.com/yourusername/matchcast/internal/models"
	"github.com/yourusername/matchcast/internal/normalizer"
)

// League bundles one league's fitted tables and classifier. Read-only after
// construction, safe for concurrent use.
type League struct {
	Config  *config.LeagueConfig
	Builder *features.Builder
	Model   ml.Classifier
}

// NewLeague assembles a league from its loaded model bundle.
func NewLeague(cfg *config.LeagueConfig, artifacts *ml.Artifacts) *League {
	builder := features.NewBuilder(
		artifacts.Strengths,
		features.NewFormTrackerFromTable(artifacts.RecentForm),
		features.NewH2HLedgerFromTable(artifacts.HeadToHead),
		features.NewLabelEncoderFromClasses(artifacts.Encoder),
	)
	return &League{Config: cfg, Builder: builder, Model: artifacts.Model}
}

// Predictor resolves fixtures against the loaded leagues and produces outcome
// predictions. Unknown teams degrade to the sentinel prediction, never an
// error.
type Predictor struct {
	leagues []*League
	norm    *normalizer.Normalizer
	logger  *logrus.Logger
}

// NewPredictor creates a predictor over the loaded leagues.
func NewPredictor(leagues []*League, norm *normalizer.Normalizer, logger *logrus.Logger) *Predictor {
	return &Predictor{leagues: leagues, norm: norm, logger: logger}
}

// Leagues returns the loaded leagues.
func (p *Predictor) Leagues() []*League {
	return p.leagues
}

// Predict normalizes both team names, picks the first league whose tables
// cover both, and runs the classifier over the assembled feature vector.
// Matchday 0 means unknown and disables the early-season boost. Teams no
// league covers yield the unknown sentinel.
func (p *Predictor) Predict(homeTeam, awayTeam string, matchday int) models.Prediction {
	start := time.Now()
	defer func() {
		metrics.PredictionDuration.Observe(time.Since(start).Seconds())
	}()

	home := p.norm.Normalize(homeTeam)
	away := p.norm.Normalize(awayTeam)

	for _, league := range p.leagues {
		if !league.Builder.Covers(home, away) {
			continue
		}

		built, err := league.Builder.Build(home, away, matchday)
		if err != nil {
			if errors.Is(err, models.ErrUnknownTeam) {
				break
			}
			p.logger.WithError(err).WithFields(logrus.Fields{
				"home": home,
				"away": away,
			}).Error("Feature assembly failed")
			return models.UnknownPrediction()
		}

		probs, err := league.Model.PredictProba(built.Vector)
		if err != nil {
			p.logger.WithError(err).WithField("league", league.Config.Code).
				Error("Classifier rejected feature vector")
			return models.UnknownPrediction()
		}

		result := models.TopLabel(league.Model.Classes(), probs)
		metrics.PredictionsTotal.WithLabelValues(league.Config.Code, result).Inc()

		return models.Prediction{
			Known:      true,
			Result:     result,
			Confidence: probs,
			HomeXG:     built.HomeXG,
			AwayXG:     built.AwayXG,
		}
	}

	metrics.UnknownTeamTotal.Inc()
	p.logger.WithFields(logrus.Fields{
		"home": home,
		"away": away,
	}).Debug("No league covers fixture, returning unknown prediction")
	return models.UnknownPrediction()
}
