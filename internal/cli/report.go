package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/lbarroso/conjugar/internal/stats"
	"github.com/lbarroso/conjugar/internal/wronglog"
)

// BuildProgressReport renders the practice progress as a markdown document.
// The same document backs the terminal report and the PDF export.
func BuildProgressReport(summary stats.Summary, byTense []stats.TenseStatistics, wrong []wronglog.Record, generatedAt time.Time) string {
	var sb strings.Builder

	sb.WriteString("# Conjugation practice report\n\n")
	sb.WriteString(fmt.Sprintf("Generated on %s.\n\n", generatedAt.Format("2006-01-02")))

	sb.WriteString("## Progress\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("| --- | --- |\n")
	sb.WriteString(fmt.Sprintf("| Conjugations practiced | %d |\n", summary.Tracked))
	sb.WriteString(fmt.Sprintf("| Mastered | %d |\n", summary.Mastered))
	sb.WriteString(fmt.Sprintf("| Struggling | %d |\n", summary.Struggling))
	sb.WriteString(fmt.Sprintf("| Due for review | %d |\n", summary.DueNow))
	sb.WriteString(fmt.Sprintf("| Correct answers | %d |\n", summary.TotalCorrect))
	sb.WriteString(fmt.Sprintf("| Incorrect answers | %d |\n", summary.TotalIncorrect))
	sb.WriteString(fmt.Sprintf("| Accuracy | %.0f%% |\n", summary.Accuracy()*100))
	sb.WriteString("\n")

	if len(byTense) > 0 {
		sb.WriteString("## Accuracy by tense\n\n")
		sb.WriteString("| Tense | Practiced | Correct | Incorrect | Accuracy |\n")
		sb.WriteString("| --- | --- | --- | --- | --- |\n")
		for _, tense := range byTense {
			sb.WriteString(fmt.Sprintf("| %s | %d | %d | %d | %.0f%% |\n",
				TenseName(tense.Tense), tense.Tracked, tense.Correct, tense.Incorrect, tense.Accuracy()*100))
		}
		sb.WriteString("\n")
	}

	if len(wrong) > 0 {
		sb.WriteString("## Wrong answers\n\n")
		sb.WriteString("| Verb | Pronoun | Tense | Your answer | Correct answer | When |\n")
		sb.WriteString("| --- | --- | --- | --- | --- | --- |\n")
		for _, record := range wrong {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s | %s |\n",
				record.Verb,
				PronounName(record.Pronoun),
				TenseName(record.Tense),
				record.UserAnswer,
				record.CorrectAnswer,
				record.Timestamp.Format("2006-01-02 15:04")))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
