package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lbarroso/conjugar/internal/quiz"
)

// tenseNames maps dataset tense keys to the labels shown in prompts and
// reports.
var tenseNames = map[string]string{
	"presentIndicative":     "present indicative",
	"preteriteIndicative":   "preterite indicative",
	"imperfectIndicative":   "imperfect indicative",
	"futureIndicative":      "future indicative",
	"conditionalIndicative": "conditional",
	"presentSubjunctive":    "present subjunctive",
	"imperfectSubjunctive":  "imperfect subjunctive",
	"futureSubjunctive":     "future subjunctive",
	"imperative":            "imperative",
}

// pronounNames restores the accents the dataset keys leave out.
var pronounNames = map[string]string{
	"voce":  "você",
	"nos":   "nós",
	"voces": "vocês",
}

func TenseName(key string) string {
	if name, ok := tenseNames[key]; ok {
		return name
	}
	return key
}

func PronounName(key string) string {
	if name, ok := pronounNames[key]; ok {
		return name
	}
	return key
}

// QuizSession manages the interactive CLI session for conjugation practice.
// Each Session call handles one prompt-and-answer exchange; after a retry the
// next call re-presents the same question.
type QuizSession struct {
	*InteractiveCLI
	engine *quiz.Engine
}

func NewQuizSession(engine *quiz.Engine) *QuizSession {
	return &QuizSession{
		InteractiveCLI: newInteractiveCLI(),
		engine:         engine,
	}
}

func (r *QuizSession) Session(ctx context.Context) error {
	state := r.engine.Next()
	if state.Question == nil {
		if _, err := fmt.Fprintf(r.stdoutWriter, "No conjugations to practice right now. Final score: %d/%d\n", state.Score, state.Total); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
		return errEnd
	}
	question := state.Question

	if _, err := fmt.Fprintf(r.stdoutWriter, "%s (%s), %s, %s: ",
		r.bold.Sprintf("%s", question.Verb.Infinitive),
		r.italic.Sprintf("%s", question.Verb.Translation),
		PronounName(question.Pronoun),
		TenseName(question.Tense),
	); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}

	input, err := r.stdinReader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("error reading answer input: %w", err)
	}
	answer := strings.TrimSpace(input)

	if answer == "quit" || answer == "exit" || errors.Is(err, io.EOF) {
		if _, err := fmt.Fprintf(r.stdoutWriter, "\nPractice session ended. Final score: %d/%d\n", state.Score, state.Total); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
		return errEnd
	}

	r.engine.SetAnswer(answer)
	state = r.engine.Check()

	if state.IsCorrect() {
		if err := r.displayResult(state, question.Answer); err != nil {
			return err
		}
		return nil
	}

	if err := r.displayResult(state, question.Answer); err != nil {
		return err
	}

	if _, err := fmt.Fprint(r.stdoutWriter, "Try again? (y/N): "); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	retryInput, err := r.stdinReader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("error reading retry input: %w", err)
	}
	if strings.EqualFold(strings.TrimSpace(retryInput), "y") {
		r.engine.Retry()
	}
	return nil
}

func (r *QuizSession) displayResult(state quiz.State, correctAnswer string) error {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	if state.IsCorrect() {
		if _, err := fmt.Fprint(r.stdoutWriter, "✅ "); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
		if _, err := green.Fprintf(r.stdoutWriter, `It's correct. The answer is "%s"`,
			r.italic.Sprintf("%s", correctAnswer),
		); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
	} else {
		if _, err := fmt.Fprint(r.stdoutWriter, "❌ "); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
		if _, err := red.Fprintf(r.stdoutWriter, `It's wrong. The answer is "%s"`,
			r.italic.Sprintf("%s", correctAnswer),
		); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
	}
	if _, err := fmt.Fprintf(r.stdoutWriter, "\nScore: %d/%d\n", state.Score, state.Total); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	return nil
}
