package features

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yourusername/matchcast/internal/models"
)

// H2HLedger tallies historical outcomes per ordered (home, away) team pair.
// Orientation matters: (A,B) and (B,A) are independent keys.
type H2HLedger struct {
	records map[string]*models.H2HRecord
}

// NewH2HLedger builds the ledger from the full corpus, iterating in
// chronological order.
func NewH2HLedger(records []models.MatchRecord) *H2HLedger {
	sorted := append([]models.MatchRecord(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	l := &H2HLedger{records: make(map[string]*models.H2HRecord)}
	for _, r := range sorted {
		l.Record(r)
	}
	return l
}

// NewH2HLedgerFromTable rebuilds a ledger from a persisted table keyed by
// the serialized pair form.
func NewH2HLedgerFromTable(table map[string]models.H2HRecord) *H2HLedger {
	l := &H2HLedger{records: make(map[string]*models.H2HRecord, len(table))}
	for key, rec := range table {
		r := rec
		l.records[key] = &r
	}
	return l
}

// Record increments the tally for one completed match.
func (l *H2HLedger) Record(r models.MatchRecord) {
	key := pairKey(r.HomeTeam, r.AwayTeam)
	rec := l.records[key]
	if rec == nil {
		rec = &models.H2HRecord{}
		l.records[key] = rec
	}
	switch r.Result() {
	case models.HomeWin:
		rec.HomeWins++
	case models.AwayWin:
		rec.AwayWins++
	case models.Draw:
		rec.Draws++
	}
}

// Lookup returns the tally for the exact (home, away) orientation. A pairing
// never seen in that orientation returns the zero record.
func (l *H2HLedger) Lookup(home, away string) models.H2HRecord {
	if rec, ok := l.records[pairKey(home, away)]; ok {
		return *rec
	}
	return models.H2HRecord{}
}

// Table exposes the ledger for artifact persistence.
func (l *H2HLedger) Table() map[string]models.H2HRecord {
	table := make(map[string]models.H2HRecord, len(l.records))
	for key, rec := range l.records {
		table[key] = *rec
	}
	return table
}

// pairKey serializes an ordered pairing. The separator never appears in
// canonical team keys (the normalizer strips to trimmed ASCII names).
func pairKey(home, away string) string {
	return fmt.Sprintf("%s|%s", home, away)
}

// SplitPairKey is the inverse of the ledger's key serialization, used when
// inspecting persisted artifacts.
func SplitPairKey(key string) (home, away string, ok bool) {
	home, away, ok = strings.Cut(key, "|")
	return
}
