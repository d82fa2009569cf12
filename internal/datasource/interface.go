// Package datasource fetches fixture data from the upstream football-data
// provider.
package datasource

import (
	"context"
	"errors"
)

// MatchStatus filters upstream match listings.
type MatchStatus string

const (
	StatusScheduled MatchStatus = "SCHEDULED"
	StatusFinished  MatchStatus = "FINISHED"
)

// FixtureSource defines the capability the services need from the upstream
// provider: structured match listings and the current round number.
type FixtureSource interface {
	// ListTeamMatches retrieves a team's matches filtered by status,
	// newest scheduling first for FINISHED listings.
	ListTeamMatches(ctx context.Context, teamID int, status MatchStatus, limit int) ([]Match, error)

	// ListCompetitionMatches retrieves every match of a competition,
	// optionally restricted to one matchday (0 = all).
	ListCompetitionMatches(ctx context.Context, competitionID, matchday int) ([]Match, error)

	// CurrentMatchday resolves the latest matchday number of a
	// competition from its match listing.
	CurrentMatchday(ctx context.Context, competitionID int) (int, error)
}

// Match is the normalized upstream fixture representation.
type Match struct {
	UTCDate     string   `json:"utcDate"`
	Matchday    *int     `json:"matchday"`
	Competition string   `json:"competition"`
	HomeTeam    string   `json:"home_team"`
	AwayTeam    string   `json:"away_team"`
	FullTime    FullTime `json:"full_time"`
}

// FullTime holds the final score; nil pointers mean the match has not been
// played.
type FullTime struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

// DataSourceError represents errors from upstream fetch operations
type DataSourceError struct {
	Source  string // Data source name
	Code    string // Error code (e.g. "rate_limit_exceeded")
	Message string // Error message
	Err     error  // Underlying error
}

func (e DataSourceError) Error() string {
	if e.Err != nil {
		return e.Source + ": " + e.Code + ": " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Source + ": " + e.Code + ": " + e.Message
}

func (e DataSourceError) Unwrap() error { return e.Err }

// Common error codes
const (
	ErrCodeRateLimitExceeded    = "rate_limit_exceeded"
	ErrCodeAuthenticationFailed = "authentication_failed"
	ErrCodeNotFound             = "not_found"
	ErrCodeInvalidData          = "invalid_data"
	ErrCodeNetworkError         = "network_error"
	ErrCodeServerError          = "server_error"
)

// Sentinel errors for errors.Is checks across the service layer
var (
	ErrRateLimitExceeded    = errors.New("rate limit exceeded")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrNotFound             = errors.New("data not found")
	ErrInvalidData          = errors.New("invalid data format")
	ErrNetworkError         = errors.New("network error")
	ErrServerError          = errors.New("server error")
)

// NewDataSourceError creates a new data source error
func NewDataSourceError(source, code, message string, err error) DataSourceError {
	return DataSourceError{Source: source, Code: code, Message: message, Err: err}
}
