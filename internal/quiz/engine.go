package quiz

import (
	"time"

	"github.com/lbarroso/conjugar/internal/scheduler"
	"github.com/lbarroso/conjugar/internal/wronglog"
)

// Engine drives the state machine and issues the persistence side effects
// that accompany transitions. The three effects of a checked answer (score
// counters, ledger write, wrong-answer append) are issued together within a
// single Check call; persistence itself is best-effort.
type Engine struct {
	state     State
	generator *Generator
	ledger    *scheduler.Ledger
	wrongLog  *wronglog.Log
	settings  Settings
	now       func() time.Time
}

func NewEngine(generator *Generator, ledger *scheduler.Ledger, wrongLog *wronglog.Log, settings Settings) *Engine {
	return &Engine{
		generator: generator,
		ledger:    ledger,
		wrongLog:  wrongLog,
		settings:  settings,
		now:       time.Now,
	}
}

// State returns the current session state.
func (e *Engine) State() State {
	return e.state
}

// SetAnswer stores the typed answer for the current question.
func (e *Engine) SetAnswer(text string) State {
	e.state = Reduce(e.state, SetAnswer{Text: text})
	return e.state
}

// Check evaluates the stored answer. When the transition applies, the review
// ledger is always updated, and an incorrect answer is also appended to the
// wrong-answer log. A check with no current question, or on an already
// answered question, is a no-op.
func (e *Engine) Check() State {
	before := e.state
	after := Reduce(before, Check{})
	e.state = after
	if after.Answered == before.Answered {
		return after
	}

	question := after.Question
	now := e.now()
	correct := after.IsCorrect()
	if !correct {
		e.wrongLog.Append(wronglog.Record{
			Verb:          question.Verb.Infinitive,
			Translation:   question.Verb.Translation,
			Pronoun:       question.Pronoun,
			Tense:         question.Tense,
			UserAnswer:    before.UserAnswer,
			CorrectAnswer: question.Answer,
			Timestamp:     now,
		})
	}
	e.ledger.RecordAnswer(question.Key(), correct, e.settings.SpacedRepetition.ReviewIntervalDays, now)
	return after
}

// Retry returns to the unanswered state after a wrong answer; the question
// will not be counted again when rechecked.
func (e *Engine) Retry() State {
	e.state = Reduce(e.state, Retry{})
	return e.state
}

// Next requests a new question from the generator. It applies when the
// current question has been answered or when there is no question yet; when
// the generator has nothing to offer the question stays nil so callers can
// present a configuration prompt.
func (e *Engine) Next() State {
	if e.state.Question != nil && !e.state.Answered {
		return e.state
	}
	question := e.generator.Generate(e.now())
	e.state = Reduce(e.state, SetQuestion{Question: question})
	return e.state
}

// Reset returns to the initial state with zeroed counters.
func (e *Engine) Reset() State {
	e.state = Reduce(e.state, Reset{})
	return e.state
}
