// Package normalizer collapses external API team name variants into the
// canonical identifiers used by every internal lookup table.
package normalizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalizer maps external team display names to canonical team keys.
// The zero value is not usable; construct with New.
type Normalizer struct {
	aliases map[string]string
	fold    transform.Transformer
}

// New creates a Normalizer seeded with the built-in alias table. Extra
// aliases (e.g. from league configuration) override the defaults.
func New(extra map[string]string) *Normalizer {
	aliases := make(map[string]string, len(defaultAliases)+len(extra))
	for k, v := range defaultAliases {
		aliases[k] = v
	}
	for k, v := range extra {
		aliases[k] = v
	}
	return &Normalizer{
		aliases: aliases,
		fold:    transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
	}
}

// Normalize resolves a display name to its canonical team key: alias lookup,
// NFKD decomposition with combining marks stripped to ASCII, whitespace trim,
// then a second alias lookup on the folded form. Idempotent: an
// already-canonical name comes back unchanged.
func (n *Normalizer) Normalize(name string) string {
	if mapped, ok := n.aliases[name]; ok {
		// Canonical map entries are already ASCII.
		return mapped
	}
	folded, _, err := transform.String(n.fold, name)
	if err != nil {
		folded = name
	}
	folded = strings.TrimSpace(stripNonASCII(folded))
	if mapped, ok := n.aliases[folded]; ok {
		return mapped
	}
	return folded
}

// stripNonASCII drops any byte outside the ASCII range that survived
// decomposition (e.g. non-Latin punctuation).
func stripNonASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 128 {
			b.WriteRune(r)
		}
	}
	return b.String()
}
