// Package quiz contains the question generator and the quiz state machine.
package quiz

import (
	"sort"

	"github.com/lbarroso/conjugar/internal/verbs"
)

// SpacedRepetitionSettings controls review scheduling.
type SpacedRepetitionSettings struct {
	Enabled            bool
	ReviewIntervalDays int
}

// Settings selects what the quiz may ask. The generator and engine only read
// it; ownership stays with the caller.
type Settings struct {
	Pronouns   map[string]bool
	Tenses     map[string]bool
	Regularity string

	// RegularIrregularRatio biases verb selection when Regularity is "all":
	// it is the probability of drawing a regular verb. Values outside [0, 1]
	// fall back to the default.
	RegularIrregularRatio float64

	SpacedRepetition SpacedRepetitionSettings
}

// DefaultRegularRatio is used when no valid ratio is configured.
const DefaultRegularRatio = 0.7

// DefaultSettings returns the out-of-the-box quiz configuration: all
// pronouns, present indicative only, every verb, spaced repetition on with a
// one-day review interval.
func DefaultSettings() Settings {
	return Settings{
		Pronouns: map[string]bool{
			"eu": true, "tu": true, "voce": true, "nos": true, "voces": true,
		},
		Tenses: map[string]bool{
			"presentIndicative":     true,
			"preteriteIndicative":   false,
			"imperfectIndicative":   false,
			"futureIndicative":      false,
			"conditionalIndicative": false,
			"presentSubjunctive":    false,
			"imperfectSubjunctive":  false,
			"futureSubjunctive":     false,
			"imperative":            false,
		},
		Regularity:            verbs.RegularityAll,
		RegularIrregularRatio: DefaultRegularRatio,
		SpacedRepetition: SpacedRepetitionSettings{
			Enabled:            true,
			ReviewIntervalDays: 1,
		},
	}
}

// EnabledPronouns returns the enabled pronouns, sorted for deterministic
// sampling under a seeded random source.
func (s Settings) EnabledPronouns() []string {
	return enabledKeys(s.Pronouns)
}

// EnabledTenses returns the enabled tenses, sorted.
func (s Settings) EnabledTenses() []string {
	return enabledKeys(s.Tenses)
}

func enabledKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key, enabled := range set {
		if enabled {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// Patch is a partial settings update; nil fields leave the current value
// unchanged. Pronoun and tense entries are merged per key.
type Patch struct {
	Pronouns              map[string]bool
	Tenses                map[string]bool
	Regularity            *string
	RegularIrregularRatio *float64
	SpacedRepetition      *SpacedRepetitionSettings
}

// Merge applies patch to a copy of the settings and returns it.
func (s Settings) Merge(patch Patch) Settings {
	merged := s
	merged.Pronouns = mergeSet(s.Pronouns, patch.Pronouns)
	merged.Tenses = mergeSet(s.Tenses, patch.Tenses)
	if patch.Regularity != nil {
		merged.Regularity = *patch.Regularity
	}
	if patch.RegularIrregularRatio != nil {
		merged.RegularIrregularRatio = *patch.RegularIrregularRatio
	}
	if patch.SpacedRepetition != nil {
		merged.SpacedRepetition = *patch.SpacedRepetition
	}
	return merged
}

func mergeSet(current, updates map[string]bool) map[string]bool {
	merged := make(map[string]bool, len(current))
	for key, enabled := range current {
		merged[key] = enabled
	}
	for key, enabled := range updates {
		merged[key] = enabled
	}
	return merged
}
