package quiz

import (
	"math"
	"math/rand"
	"time"

	"github.com/lbarroso/conjugar/internal/scheduler"
	"github.com/lbarroso/conjugar/internal/verbs"
)

// maxTrials bounds the random sampling loop; with spaced repetition enabled
// most of the pool can be retired, so a fixed budget keeps generation finite.
const maxTrials = 100

// Generator picks the next conjugation to ask, combining the verb dataset,
// the quiz settings, and the review ledger.
type Generator struct {
	verbs    []verbs.Verb
	settings Settings
	ledger   *scheduler.Ledger
	rng      *rand.Rand
}

func NewGenerator(verbList []verbs.Verb, settings Settings, ledger *scheduler.Ledger, rng *rand.Rand) *Generator {
	return &Generator{
		verbs:    verbList,
		settings: settings,
		ledger:   ledger,
		rng:      rng,
	}
}

// Generate returns the next question, or nil when no eligible conjugation
// exists. A nil question is a defined outcome, not an error: the caller
// renders it as a configuration prompt.
func (g *Generator) Generate(now time.Time) *Question {
	filtered := verbs.Filter(g.verbs, g.settings.Regularity)
	tenses := g.settings.EnabledTenses()
	pronouns := g.settings.EnabledPronouns()
	if len(filtered) == 0 || len(tenses) == 0 || len(pronouns) == 0 {
		return nil
	}

	// Due conjugations take strict priority over fresh sampling.
	if g.settings.SpacedRepetition.Enabled {
		if q := g.fromDue(filtered, now); q != nil {
			return q
		}
	}

	for trial := 0; trial < maxTrials; trial++ {
		verb := g.pickVerb(filtered)
		tense := tenses[g.rng.Intn(len(tenses))]
		pronoun := pronouns[g.rng.Intn(len(pronouns))]

		form, ok := verb.Conjugation(tense, pronoun)
		if !ok {
			continue
		}
		question := &Question{Verb: verb, Pronoun: pronoun, Tense: tense, Answer: form}
		// Re-excludes retired conjugations: their next review is a year out.
		if g.settings.SpacedRepetition.Enabled && !g.ledger.IsDue(question.Key(), now) {
			continue
		}
		return question
	}
	return nil
}

func (g *Generator) fromDue(filtered []verbs.Verb, now time.Time) *Question {
	due := g.ledger.ListDue(now)
	if len(due) == 0 {
		return nil
	}
	key := due[g.rng.Intn(len(due))]
	for _, verb := range filtered {
		if verb.Infinitive != key.Verb {
			continue
		}
		form, ok := verb.Conjugation(key.Tense, key.Pronoun)
		if !ok {
			return nil
		}
		return &Question{Verb: verb, Pronoun: key.Pronoun, Tense: key.Tense, Answer: form}
	}
	return nil
}

// pickVerb biases between the regular and irregular pools when no regularity
// filter applies; the configured ratio is the probability of drawing a
// regular verb.
func (g *Generator) pickVerb(filtered []verbs.Verb) verbs.Verb {
	if g.settings.Regularity != verbs.RegularityAll {
		return filtered[g.rng.Intn(len(filtered))]
	}

	ratio := g.settings.RegularIrregularRatio
	if math.IsNaN(ratio) || ratio < 0 || ratio > 1 {
		ratio = DefaultRegularRatio
	}

	regular := verbs.Filter(filtered, verbs.RegularityRegular)
	irregular := verbs.Filter(filtered, verbs.RegularityIrregular)
	if len(regular) == 0 || len(irregular) == 0 {
		return filtered[g.rng.Intn(len(filtered))]
	}
	if g.rng.Float64() < ratio {
		return regular[g.rng.Intn(len(regular))]
	}
	return irregular[g.rng.Intn(len(irregular))]
}
