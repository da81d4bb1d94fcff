package quiz

import "strings"

// IsCorrectAnswer compares a typed answer against the expected conjugation.
// Both sides are trimmed and lowercased, then compared for exact equality.
// Accented characters are significant: "e" is not accepted for "é". This is
// a deliberate product decision; the accent-stripping comparison that once
// existed was rejected because learners must type the correct diacritics.
func IsCorrectAnswer(userAnswer, correctAnswer string) bool {
	return normalizeAnswer(userAnswer) == normalizeAnswer(correctAnswer)
}

func normalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}
