// Package training builds per-league model artifacts from the historical
// match corpus.
package training

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/yourusername/matchcast/internal/models"
	"github.com/yourusername/matchcast/internal/normalizer"
	"github.com/yourusername/matchcast/internal/repository"
)

// Scraped score strings use a mix of hyphen, en-dash and em-dash.
var scoreDashes = strings.NewReplacer("–", "-", "—", "-")

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02/01/2006",
}

// ParseScore splits a raw score string into home and away goals.
func ParseScore(raw string) (home, away int, err error) {
	parts := strings.SplitN(scoreDashes.Replace(strings.TrimSpace(raw)), "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: score %q", models.ErrMalformedData, raw)
	}

	home, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: score %q", models.ErrMalformedData, raw)
	}
	away, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: score %q", models.ErrMalformedData, raw)
	}
	return home, away, nil
}

// ParseDate tries the known corpus date layouts.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: date %q", models.ErrMalformedData, raw)
}

// CleanRows converts raw season rows into match records: scores and dates
// parsed, team names normalized, malformed rows dropped rather than
// miscounted. Output is sorted chronologically with matchdays estimated.
func CleanRows(rows []repository.RawSeasonRow, norm *normalizer.Normalizer) repository.CleanedCorpus {
	var corpus repository.CleanedCorpus
	for _, row := range rows {
		homeGoals, awayGoals, err := ParseScore(row.Score)
		if err != nil {
			corpus.Dropped++
			continue
		}
		date, err := ParseDate(row.Date)
		if err != nil {
			corpus.Dropped++
			continue
		}

		corpus.Records = append(corpus.Records, models.MatchRecord{
			HomeTeam:  norm.Normalize(row.HomeTeam),
			AwayTeam:  norm.Normalize(row.AwayTeam),
			HomeGoals: homeGoals,
			AwayGoals: awayGoals,
			Date:      date,
			Season:    row.Season,
		})
	}

	sort.SliceStable(corpus.Records, func(i, j int) bool {
		return corpus.Records[i].Date.Before(corpus.Records[j].Date)
	})
	estimateMatchdays(corpus.Records)
	return corpus
}

// estimateMatchdays assigns a season-local matchday to each chronologically
// sorted record: within a season, distinct dates are grouped in order and
// every ten date-groups advance one matchday, approximating a round of
// fixtures in a 20-team league. The counter restarts at every season
// boundary so matchdays stay in the 1..38 range the fixtures API uses.
func estimateMatchdays(records []models.MatchRecord) {
	group := -1
	var lastDate time.Time
	var season string
	for i := range records {
		if records[i].Season != season {
			season = records[i].Season
			group = -1
		}
		day := records[i].Date.Truncate(24 * time.Hour)
		if group < 0 || !day.Equal(lastDate) {
			group++
			lastDate = day
		}
		records[i].Matchday = group/10 + 1
	}
}
