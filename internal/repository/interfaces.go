// Package repository provides read access to the historical match corpus.
package repository

import (
	"context"

	"github.com/yourusername/matchcast/internal/models"
)

// RawSeasonRow is one stored match row before cleaning: scores live in a
// single string field as scraped ("2–1", en-dash tolerated) and dates may be
// absent. The training pipeline parses and filters these.
type RawSeasonRow struct {
	HomeTeam string
	AwayTeam string
	Score    string
	Date     string
	Season   string
}

// MatchRepository loads the historical corpus for a league.
type MatchRepository interface {
	// SeasonRows returns every stored row for one league season, in
	// insertion order.
	SeasonRows(ctx context.Context, league, season string) ([]RawSeasonRow, error)
}

// CleanedCorpus couples parsed match records with the count of rows dropped
// as malformed.
type CleanedCorpus struct {
	Records []models.MatchRecord
	Dropped int
}
