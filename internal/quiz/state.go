package quiz

// State is the quiz session state. It is mutated only through Reduce;
// Score never exceeds Total.
type State struct {
	Question   *Question
	UserAnswer string
	Answered   bool
	// Correct is nil until the current answer has been checked.
	Correct *bool
	// Retried is set after a retry and stays set until a new question is
	// assigned, so a resubmission never counts twice.
	Retried bool
	Score   int
	Total   int
}

// IsCorrect reports whether the current question was answered correctly.
func (s State) IsCorrect() bool {
	return s.Correct != nil && *s.Correct
}

// Action is one state machine input. Exactly one variant is applied per
// Reduce call.
type Action interface {
	isAction()
}

// SetQuestion assigns a new question (nil means no question is available)
// and clears all per-question state.
type SetQuestion struct {
	Question *Question
}

// SetAnswer stores the typed answer verbatim; trimming happens at
// comparison time.
type SetAnswer struct {
	Text string
}

// Check evaluates the current answer and updates the score counters.
type Check struct{}

// Retry returns to the unanswered state after a wrong answer.
type Retry struct{}

// Reset returns to the initial state with zeroed counters.
type Reset struct{}

func (SetQuestion) isAction() {}
func (SetAnswer) isAction()   {}
func (Check) isAction()       {}
func (Retry) isAction()       {}
func (Reset) isAction()       {}

// Reduce applies an action and returns the next state. Invalid transitions
// return the state unchanged rather than failing. Reduce is pure: callers
// issue the persistence side effects that accompany a Check transition.
func Reduce(state State, action Action) State {
	switch action := action.(type) {
	case SetQuestion:
		state.Question = action.Question
		state.UserAnswer = ""
		state.Answered = false
		state.Correct = nil
		state.Retried = false
		return state

	case SetAnswer:
		if state.Answered {
			return state
		}
		state.UserAnswer = action.Text
		return state

	case Check:
		if state.Answered || state.Question == nil {
			return state
		}
		correct := IsCorrectAnswer(state.UserAnswer, state.Question.Answer)
		state.Answered = true
		state.Correct = &correct
		// A retried question was already counted on its first submission.
		if !state.Retried {
			state.Total++
			if correct {
				state.Score++
			}
		}
		return state

	case Retry:
		if !state.Answered || state.IsCorrect() {
			return state
		}
		state.UserAnswer = ""
		state.Answered = false
		state.Correct = nil
		state.Retried = true
		return state

	case Reset:
		return State{}
	}
	return state
}
