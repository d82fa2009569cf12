package repository

import (
	"context"
	"fmt"

	"github.com/yourusername/matchcast/internal/database"
)

// PostgresMatchRepository implements MatchRepository for PostgreSQL. The
// corpus lives in one table per league, one row per scraped match.
type PostgresMatchRepository struct {
	db *database.DB
}

// NewPostgresMatchRepository creates a new match repository
func NewPostgresMatchRepository(db *database.DB) MatchRepository {
	return &PostgresMatchRepository{db: db}
}

// SeasonRows returns every stored row for one league season.
func (r *PostgresMatchRepository) SeasonRows(ctx context.Context, league, season string) ([]RawSeasonRow, error) {
	query := `
		SELECT home_team, away_team, score, match_date, season
		FROM matches
		WHERE league = $1 AND season = $2
		ORDER BY id ASC
	`

	rows, err := r.db.Query(ctx, query, league, season)
	if err != nil {
		return nil, fmt.Errorf("failed to query season rows: %w", err)
	}
	defer rows.Close()

	var result []RawSeasonRow
	for rows.Next() {
		var row RawSeasonRow
		if err := rows.Scan(&row.HomeTeam, &row.AwayTeam, &row.Score, &row.Date, &row.Season); err != nil {
			return nil, fmt.Errorf("failed to scan season row: %w", err)
		}
		result = append(result, row)
	}

	return result, rows.Err()
}
