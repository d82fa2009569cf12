package features

import "sort"

// UnknownTeamCode is returned for names the encoder was not fitted on.
// Callers must treat it as the unknown sentinel, never index with it.
const UnknownTeamCode = -1

// LabelEncoder assigns each canonical team name a stable integer code,
// mirroring a fitted scikit-style label encoder: classes sorted
// lexicographically, codes assigned by position.
type LabelEncoder struct {
	codes   map[string]int
	classes []string
}

// FitLabelEncoder fits the encoder on the unique names in the input.
func FitLabelEncoder(names []string) *LabelEncoder {
	seen := make(map[string]bool, len(names))
	var classes []string
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			classes = append(classes, n)
		}
	}
	sort.Strings(classes)

	codes := make(map[string]int, len(classes))
	for i, c := range classes {
		codes[c] = i
	}
	return &LabelEncoder{codes: codes, classes: classes}
}

// NewLabelEncoderFromClasses rebuilds an encoder from a persisted class list,
// preserving the stored order.
func NewLabelEncoderFromClasses(classes []string) *LabelEncoder {
	codes := make(map[string]int, len(classes))
	for i, c := range classes {
		codes[c] = i
	}
	return &LabelEncoder{codes: codes, classes: append([]string(nil), classes...)}
}

// Encode returns the code for a name, or UnknownTeamCode when unseen.
func (e *LabelEncoder) Encode(name string) int {
	if code, ok := e.codes[name]; ok {
		return code
	}
	return UnknownTeamCode
}

// Contains reports whether the encoder was fitted on the name.
func (e *LabelEncoder) Contains(name string) bool {
	_, ok := e.codes[name]
	return ok
}

// Classes returns the fitted class list in code order.
func (e *LabelEncoder) Classes() []string {
	return e.classes
}
