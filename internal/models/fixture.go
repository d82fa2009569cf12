package models

// Fixture is the upward-facing representation of a scheduled or completed
// match, decorated with a prediction. Plain data only; handlers marshal it
// as-is.
type Fixture struct {
	UTCDate       string        `json:"utcDate"`
	HomeTeam      string        `json:"home"`
	AwayTeam      string        `json:"away"`
	Score         *FixtureScore `json:"score,omitempty"`
	Prediction    Prediction    `json:"prediction"`
	FormattedDate string        `json:"formatted_date,omitempty"`
	Matchday      int           `json:"matchday,omitempty"`
}

// FixtureScore carries the full-time score. Unplayed fixtures use the "-"
// placeholder on both sides.
type FixtureScore struct {
	Home any `json:"home"`
	Away any `json:"away"`
}

// MatchdayFixtures bundles the fixtures of one round with its number.
type MatchdayFixtures struct {
	Matchday int       `json:"matchday"`
	Fixtures []Fixture `json:"fixtures"`
}

// TeamEntry is one row of a league's static team list: the upstream API
// identifier plus the canonical display name.
type TeamEntry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
