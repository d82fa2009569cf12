package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/matchcast/internal/metrics"
)

const sourceName = "football_data"

// FootballDataClient implements FixtureSource against the football-data.org
// v4 API.
type FootballDataClient struct {
	httpClient *RateLimitedHTTPClient
	baseURL    string
	apiToken   string
	logger     *logrus.Logger
}

// footballDataMatch mirrors the relevant slice of the upstream match schema.
type footballDataMatch struct {
	UTCDate     string `json:"utcDate"`
	Matchday    *int   `json:"matchday"`
	Competition struct {
		Name string `json:"name"`
	} `json:"competition"`
	HomeTeam struct {
		Name string `json:"name"`
	} `json:"homeTeam"`
	AwayTeam struct {
		Name string `json:"name"`
	} `json:"awayTeam"`
	Score struct {
		FullTime struct {
			Home *int `json:"home"`
			Away *int `json:"away"`
		} `json:"fullTime"`
	} `json:"score"`
}

type footballDataMatchList struct {
	Matches []footballDataMatch `json:"matches"`
}

// NewFootballDataClient creates a client for the v4 API. baseURL is
// overridable for tests.
func NewFootballDataClient(httpClient *RateLimitedHTTPClient, baseURL, apiToken string, logger *logrus.Logger) *FootballDataClient {
	if baseURL == "" {
		baseURL = "https://api.football-data.org/v4"
	}
	return &FootballDataClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiToken:   apiToken,
		logger:     logger,
	}
}

// ListTeamMatches retrieves a team's matches filtered by status. FINISHED
// listings come back newest first.
func (c *FootballDataClient) ListTeamMatches(ctx context.Context, teamID int, status MatchStatus, limit int) ([]Match, error) {
	url := fmt.Sprintf("%s/teams/%d/matches?status=%s&limit=%d", c.baseURL, teamID, status, limit)
	matches, err := c.fetchMatches(ctx, url)
	if err != nil {
		return nil, err
	}
	if status == StatusFinished {
		sort.SliceStable(matches, func(i, j int) bool { return matches[i].UTCDate > matches[j].UTCDate })
	}
	return matches, nil
}

// ListCompetitionMatches retrieves a competition's matches, optionally for a
// single matchday.
func (c *FootballDataClient) ListCompetitionMatches(ctx context.Context, competitionID, matchday int) ([]Match, error) {
	url := fmt.Sprintf("%s/competitions/%d/matches", c.baseURL, competitionID)
	if matchday > 0 {
		url = fmt.Sprintf("%s?matchday=%d", url, matchday)
	}
	return c.fetchMatches(ctx, url)
}

// CurrentMatchday scans the full competition listing for the highest
// non-null matchday number.
func (c *FootballDataClient) CurrentMatchday(ctx context.Context, competitionID int) (int, error) {
	matches, err := c.ListCompetitionMatches(ctx, competitionID, 0)
	if err != nil {
		return 0, err
	}

	latest := 0
	for _, m := range matches {
		if m.Matchday != nil && *m.Matchday > latest {
			latest = *m.Matchday
		}
	}
	if latest == 0 {
		return 0, NewDataSourceError(sourceName, ErrCodeInvalidData, "no matchday numbers in competition listing", ErrInvalidData)
	}
	return latest, nil
}

func (c *FootballDataClient) fetchMatches(ctx context.Context, url string) ([]Match, error) {
	start := time.Now()
	defer func() {
		metrics.UpstreamRequestDuration.Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, NewDataSourceError(sourceName, ErrCodeNetworkError, "failed to create request", err)
	}
	req.Header.Set("X-Auth-Token", c.apiToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues(ErrCodeNetworkError).Inc()
		return nil, NewDataSourceError(sourceName, ErrCodeNetworkError, "request failed", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		metrics.UpstreamErrorsTotal.WithLabelValues(ErrCodeAuthenticationFailed).Inc()
		return nil, NewDataSourceError(sourceName, ErrCodeAuthenticationFailed, "invalid API token", ErrAuthenticationFailed)
	case resp.StatusCode == http.StatusTooManyRequests:
		metrics.UpstreamErrorsTotal.WithLabelValues(ErrCodeRateLimitExceeded).Inc()
		return nil, NewDataSourceError(sourceName, ErrCodeRateLimitExceeded, "rate limit exceeded", ErrRateLimitExceeded)
	case resp.StatusCode == http.StatusNotFound:
		metrics.UpstreamErrorsTotal.WithLabelValues(ErrCodeNotFound).Inc()
		return nil, NewDataSourceError(sourceName, ErrCodeNotFound, "resource not found", ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		metrics.UpstreamErrorsTotal.WithLabelValues(ErrCodeServerError).Inc()
		return nil, NewDataSourceError(sourceName, ErrCodeServerError,
			fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, string(body)), ErrServerError)
	}

	var list footballDataMatchList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues(ErrCodeInvalidData).Inc()
		return nil, NewDataSourceError(sourceName, ErrCodeInvalidData, "failed to parse response", err)
	}

	matches := make([]Match, 0, len(list.Matches))
	for _, m := range list.Matches {
		matches = append(matches, Match{
			UTCDate:     m.UTCDate,
			Matchday:    m.Matchday,
			Competition: m.Competition.Name,
			HomeTeam:    m.HomeTeam.Name,
			AwayTeam:    m.AwayTeam.Name,
			FullTime: FullTime{
				Home: m.Score.FullTime.Home,
				Away: m.Score.FullTime.Away,
			},
		})
	}
	return matches, nil
}
