package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/matchcast/internal/cache"
	"github.com/yourusername/matchcast/internal/config"
	"github.com/yourusername/matchcast/internal/datasource"
	"github.com/yourusername/matchcast/internal/models"
)

// fixtureLimit caps per-team fixture listings, matching the upstream query.
const fixtureLimit = 5

// scorePlaceholder fills the score of an unplayed fixture.
const scorePlaceholder = "-"

// FixtureService serves decorated fixture lists: upstream match data filtered
// to the configured competition, annotated with predictions and cached under
// the configured TTLs. Upstream failures degrade to empty lists so the API
// stays up while the provider is down.
type FixtureService struct {
	source    datasource.FixtureSource
	cache     *cache.FixtureCache
	predictor *Predictor
	cfg       *config.Config
	logger    *logrus.Logger
}

// NewFixtureService wires the fixture service.
func NewFixtureService(
	source datasource.FixtureSource,
	fixtureCache *cache.FixtureCache,
	predictor *Predictor,
	cfg *config.Config,
	logger *logrus.Logger,
) *FixtureService {
	return &FixtureService{
		source:    source,
		cache:     fixtureCache,
		predictor: predictor,
		cfg:       cfg,
		logger:    logger,
	}
}

// GetTeams returns the static team list of a league, or ErrUnknownLeague.
func (s *FixtureService) GetTeams(leagueCode string) ([]models.TeamEntry, error) {
	league, ok := s.cfg.League(leagueCode)
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrUnknownLeague, leagueCode)
	}
	return league.Teams, nil
}

// GetNextFixtures returns a team's upcoming fixtures with predictions,
// cached under the team-fixtures TTL.
func (s *FixtureService) GetNextFixtures(ctx context.Context, teamID int, leagueCode string) []models.Fixture {
	return s.teamFixtures(ctx, teamID, leagueCode, "next", datasource.StatusScheduled)
}

// GetLastFixtures returns a team's most recent results with predictions,
// newest first, cached under the team-fixtures TTL.
func (s *FixtureService) GetLastFixtures(ctx context.Context, teamID int, leagueCode string) []models.Fixture {
	return s.teamFixtures(ctx, teamID, leagueCode, "last", datasource.StatusFinished)
}

func (s *FixtureService) teamFixtures(
	ctx context.Context,
	teamID int,
	leagueCode, direction string,
	status datasource.MatchStatus,
) []models.Fixture {
	league, ok := s.cfg.League(leagueCode)
	if !ok {
		s.logger.WithField("league", leagueCode).Warn("Fixture request for unknown league")
		return []models.Fixture{}
	}

	key := cache.Key{Entity: strconv.Itoa(teamID), Direction: direction, League: leagueCode}
	data, err := s.cache.GetOrCompute(key, s.cfg.TeamFixturesTTL(), func() (any, error) {
		matches, err := s.source.ListTeamMatches(ctx, teamID, status, fixtureLimit)
		if err != nil {
			return nil, err
		}
		return s.decorate(matches, league, status == datasource.StatusFinished), nil
	})
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"team_id": teamID,
			"league":  leagueCode,
		}).Warn("Upstream fixture fetch failed, returning empty list")
		return []models.Fixture{}
	}

	return data.([]models.Fixture)
}

// GetLatestMatchdayFixtures discovers the league's latest matchday and
// returns its fixtures, cached under the shorter matchday TTL because scores
// change while a round is in play.
func (s *FixtureService) GetLatestMatchdayFixtures(ctx context.Context, leagueCode string) models.MatchdayFixtures {
	empty := models.MatchdayFixtures{Fixtures: []models.Fixture{}}

	league, ok := s.cfg.League(leagueCode)
	if !ok {
		s.logger.WithField("league", leagueCode).Warn("Matchday request for unknown league")
		return empty
	}

	key := cache.Key{Entity: "matchday", Direction: "latest", League: leagueCode}
	data, err := s.cache.GetOrCompute(key, s.cfg.MatchdayTTL(), func() (any, error) {
		matchday, err := s.source.CurrentMatchday(ctx, league.CompetitionID)
		if err != nil {
			return nil, err
		}
		matches, err := s.source.ListCompetitionMatches(ctx, league.CompetitionID, matchday)
		if err != nil {
			return nil, err
		}
		return models.MatchdayFixtures{
			Matchday: matchday,
			Fixtures: s.decorate(matches, league, true),
		}, nil
	})
	if err != nil {
		s.logger.WithError(err).WithField("league", leagueCode).
			Warn("Upstream matchday fetch failed, returning empty list")
		return empty
	}

	return data.(models.MatchdayFixtures)
}

// decorate filters matches to the league's competition and builds the
// outward fixture representation, prediction included.
func (s *FixtureService) decorate(matches []datasource.Match, league *config.LeagueConfig, withScore bool) []models.Fixture {
	fixtures := make([]models.Fixture, 0, len(matches))
	for _, m := range matches {
		if m.Competition != league.CompetitionName {
			continue
		}

		matchday := 0
		if m.Matchday != nil {
			matchday = *m.Matchday
		}

		fixture := models.Fixture{
			UTCDate:       m.UTCDate,
			HomeTeam:      m.HomeTeam,
			AwayTeam:      m.AwayTeam,
			Prediction:    s.predictor.Predict(m.HomeTeam, m.AwayTeam, matchday),
			FormattedDate: formatNiceDate(m.UTCDate),
			Matchday:      matchday,
		}
		if withScore {
			fixture.Score = fullTimeScore(m.FullTime)
		}
		fixtures = append(fixtures, fixture)
	}
	return fixtures
}

// fullTimeScore maps the upstream full-time score, substituting dashes for
// fixtures that have not been played.
func fullTimeScore(ft datasource.FullTime) *models.FixtureScore {
	score := &models.FixtureScore{Home: scorePlaceholder, Away: scorePlaceholder}
	if ft.Home != nil {
		score.Home = *ft.Home
	}
	if ft.Away != nil {
		score.Away = *ft.Away
	}
	return score
}

// formatNiceDate renders an upstream UTC timestamp as "25th May". Unparseable
// dates render empty rather than failing the fixture.
func formatNiceDate(utcDate string) string {
	t, err := time.Parse(time.RFC3339, utcDate)
	if err != nil {
		return ""
	}

	day := t.Day()
	suffix := "th"
	if day < 11 || day > 13 {
		switch day % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s %s", day, suffix, t.Month().String())
}
