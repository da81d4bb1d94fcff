package quiz

import (
	"github.com/lbarroso/conjugar/internal/scheduler"
	"github.com/lbarroso/conjugar/internal/verbs"
)

// Question is one prompt handed to the state machine. Answer is always the
// full conjugated form looked up from the verb table; answers are compared
// against the whole word, never against a stem and ending.
type Question struct {
	Verb    verbs.Verb
	Pronoun string
	Tense   string
	Answer  string
}

// Key returns the ledger identity for this question.
func (q Question) Key() scheduler.Key {
	return scheduler.Key{
		Verb:    q.Verb.Infinitive,
		Pronoun: q.Pronoun,
		Tense:   q.Tense,
	}
}
