package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNormalizeKnownAliases tests API-name to canonical-name mapping
func TestNormalizeKnownAliases(t *testing.T) {
	n := New(nil)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"la liga accented alias", "Deportivo Alavés", "Alaves"},
		{"la liga ascii alias", "FC Barcelona", "Barcelona"},
		{"atletico with accents", "Club Atlético de Madrid", "Atletico Madrid"},
		{"real sociedad accented", "Real Sociedad de Fútbol", "Real Sociedad"},
		{"premier league suffix", "Manchester United FC", "Manchester Utd"},
		{"ampersand name", "Brighton & Hove Albion FC", "Brighton"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, n.Normalize(tt.input))
		})
	}
}

// TestNormalizeUnknownPassthrough tests that unmapped names fold to ASCII
// but otherwise pass through
func TestNormalizeUnknownPassthrough(t *testing.T) {
	n := New(nil)

	assert.Equal(t, "Borussia Monchengladbach", n.Normalize("Borussia Mönchengladbach"))
	assert.Equal(t, "Some Random FC", n.Normalize("Some Random FC"))
	assert.Equal(t, "Trimmed", n.Normalize("  Trimmed  "))
}

// TestNormalizeIdempotence tests normalize(normalize(x)) == normalize(x)
func TestNormalizeIdempotence(t *testing.T) {
	n := New(nil)

	inputs := []string{
		"Deportivo Alavés",
		"FC Barcelona",
		"Barcelona",
		"Borussia Mönchengladbach",
		"Nonexistent Team 123",
		"  Cádiz CF ",
	}

	for _, in := range inputs {
		once := n.Normalize(in)
		twice := n.Normalize(once)
		assert.Equal(t, once, twice, "normalize not idempotent for %q", in)
	}
}

// TestNormalizeVariantsCollapse tests that different external spellings of
// the same team converge on one identity
func TestNormalizeVariantsCollapse(t *testing.T) {
	n := New(nil)

	assert.Equal(t, n.Normalize("Club Atlético de Madrid"), n.Normalize("Club Atletico de Madrid"))
	assert.Equal(t, n.Normalize("CD Leganés"), n.Normalize("CD Leganes"))
	assert.Equal(t, "Alaves", n.Normalize("Deportivo Alaves"))
	assert.Equal(t, "Alaves", n.Normalize("Deportivo Alavés"))
}

// TestNormalizeExtraAliases tests config-supplied aliases override defaults
func TestNormalizeExtraAliases(t *testing.T) {
	n := New(map[string]string{
		"FC Barcelona": "Barca",
		"My Local XI":  "Locals",
	})

	assert.Equal(t, "Barca", n.Normalize("FC Barcelona"))
	assert.Equal(t, "Locals", n.Normalize("My Local XI"))
}
