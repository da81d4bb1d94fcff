package stats

import (
	"sort"
	"time"

	"github.com/lbarroso/conjugar/internal/scheduler"
)

// Summary holds progress totals across the whole review ledger.
type Summary struct {
	Tracked        int // Conjugations seen at least once
	Mastered       int // Conjugations with 2+ correct answers
	Struggling     int // Conjugations with 2+ incorrect answers
	DueNow         int // Tracked conjugations whose next review has arrived
	TotalCorrect   int
	TotalIncorrect int
}

// Accuracy returns the share of correct answers, or 0 before any answer.
func (s Summary) Accuracy() float64 {
	answered := s.TotalCorrect + s.TotalIncorrect
	if answered == 0 {
		return 0
	}
	return float64(s.TotalCorrect) / float64(answered)
}

// TenseStatistics holds progress totals for a single tense.
type TenseStatistics struct {
	Tense     string
	Tracked   int
	Correct   int
	Incorrect int
}

func (t TenseStatistics) Accuracy() float64 {
	answered := t.Correct + t.Incorrect
	if answered == 0 {
		return 0
	}
	return float64(t.Correct) / float64(answered)
}

// Summarize calculates progress totals from review ledger entries.
func Summarize(entries []scheduler.Entry, now time.Time) Summary {
	var summary Summary
	for _, entry := range entries {
		summary.Tracked++
		summary.TotalCorrect += entry.CorrectCount
		summary.TotalIncorrect += entry.IncorrectCount
		if entry.Mastered() {
			summary.Mastered++
		}
		if entry.Struggling() {
			summary.Struggling++
		}
		if !entry.NextReview.After(now) {
			summary.DueNow++
		}
	}
	return summary
}

// ByTense groups ledger entries per tense, sorted by tense name.
func ByTense(entries []scheduler.Entry) []TenseStatistics {
	byTense := make(map[string]*TenseStatistics)
	for _, entry := range entries {
		tense := byTense[entry.Key.Tense]
		if tense == nil {
			tense = &TenseStatistics{Tense: entry.Key.Tense}
			byTense[entry.Key.Tense] = tense
		}
		tense.Tracked++
		tense.Correct += entry.CorrectCount
		tense.Incorrect += entry.IncorrectCount
	}

	result := make([]TenseStatistics, 0, len(byTense))
	for _, tense := range byTense {
		result = append(result, *tense)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Tense < result[j].Tense
	})
	return result
}
