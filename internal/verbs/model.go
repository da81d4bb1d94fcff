// Package verbs models the Portuguese verb dataset that quiz questions are
// built from. The dataset is read-only: it is loaded once at startup and
// never mutated.
package verbs

// Regularity classification values.
const (
	RegularityAll       = "all"
	RegularityRegular   = "regular"
	RegularityIrregular = "irregular"
)

// Verb is one dictionary entry. Conjugations maps a tense name to a map from
// pronoun to the conjugated form.
type Verb struct {
	Verb                string                       `json:"verb"`
	Infinitive          string                       `json:"infinitive"`
	Translation         string                       `json:"translation"`
	Regularity          string                       `json:"regularity"`
	IrregularCategories []string                     `json:"irregular_category,omitempty"`
	Conjugations        map[string]map[string]string `json:"conjugations"`
}

// Conjugation returns the form for a tense and pronoun. The second result is
// false when the combination is absent from the conjugation table.
func (v Verb) Conjugation(tense, pronoun string) (string, bool) {
	forms, ok := v.Conjugations[tense]
	if !ok {
		return "", false
	}
	form, ok := forms[pronoun]
	if !ok || form == "" {
		return "", false
	}
	return form, true
}

// Filter returns the verbs whose regularity matches exactly. RegularityAll
// (or an empty filter) keeps every verb.
func Filter(all []Verb, regularity string) []Verb {
	if regularity == RegularityAll || regularity == "" {
		return all
	}
	filtered := make([]Verb, 0, len(all))
	for _, v := range all {
		if v.Regularity == regularity {
			filtered = append(filtered, v)
		}
	}
	return filtered
}
