// Package scheduler implements the spaced-repetition review ledger. It is a
// two-bucket scheduler: a correctly answered conjugation is retired from the
// active rotation for a year, an incorrectly answered one comes back after
// the configured review interval.
package scheduler

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/lbarroso/conjugar/internal/storage"
)

const collectionKey = "spaced_repetition_entries"

// retireInterval pushes a correctly answered conjugation out of the active
// rotation.
const retireInterval = 365 * 24 * time.Hour

const (
	masteredThreshold   = 2
	strugglingThreshold = 2
)

// Key identifies a single conjugation fact: one verb inflected for one
// pronoun in one tense.
type Key struct {
	Verb    string `json:"verb"`
	Pronoun string `json:"pronoun"`
	Tense   string `json:"tense"`
}

// Entry tracks the review schedule for one conjugation. Counts only ever
// increase; NextReview is overwritten on every answer.
type Entry struct {
	Key            Key       `json:"key"`
	LastSeen       time.Time `json:"last_seen"`
	CorrectCount   int       `json:"correct_count"`
	IncorrectCount int       `json:"incorrect_count"`
	NextReview     time.Time `json:"next_review"`
}

// Mastered reports whether the conjugation was answered correctly at least
// twice.
func (e Entry) Mastered() bool {
	return e.CorrectCount >= masteredThreshold
}

// Struggling reports whether the conjugation was answered incorrectly at
// least twice.
func (e Entry) Struggling() bool {
	return e.IncorrectCount >= strugglingThreshold
}

// Ledger persists entries in a Store under a single collection key. Every
// update is a full read-modify-write of the collection; concurrent writers
// lose updates (last write wins), which matches the single-session usage
// model. Storage failures are logged and swallowed: reads fall back to an
// empty ledger so the quiz stays usable without durability.
type Ledger struct {
	store storage.Store
}

func NewLedger(store storage.Store) *Ledger {
	return &Ledger{store: store}
}

// Entries loads every ledger entry.
func (l *Ledger) Entries() []Entry {
	value, ok, err := l.store.Get(collectionKey)
	if err != nil {
		slog.Default().Error("failed to load spaced repetition entries", "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	var entries []Entry
	if err := json.Unmarshal([]byte(value), &entries); err != nil {
		slog.Default().Error("failed to decode spaced repetition entries", "error", err)
		return nil
	}
	return entries
}

func (l *Ledger) save(entries []Entry) {
	value, err := json.Marshal(entries)
	if err != nil {
		slog.Default().Error("failed to encode spaced repetition entries", "error", err)
		return
	}
	if err := l.store.Set(collectionKey, string(value)); err != nil {
		slog.Default().Error("failed to save spaced repetition entries", "error", err)
	}
}

// RecordAnswer updates the entry for key after an answer, creating it on the
// first answer. A correct answer retires the conjugation; an incorrect one
// schedules it again after reviewIntervalDays.
func (l *Ledger) RecordAnswer(key Key, correct bool, reviewIntervalDays int, now time.Time) {
	entries := l.Entries()

	index := -1
	for i, entry := range entries {
		if entry.Key == key {
			index = i
			break
		}
	}
	if index < 0 {
		entries = append(entries, Entry{Key: key})
		index = len(entries) - 1
	}

	entry := &entries[index]
	if correct {
		entry.CorrectCount++
		entry.NextReview = now.Add(retireInterval)
	} else {
		entry.IncorrectCount++
		entry.NextReview = now.Add(time.Duration(reviewIntervalDays) * 24 * time.Hour)
	}
	entry.LastSeen = now

	l.save(entries)
}

// IsDue reports whether key should be shown: never seen, or past its next
// review time.
func (l *Ledger) IsDue(key Key, now time.Time) bool {
	for _, entry := range l.Entries() {
		if entry.Key == key {
			return !entry.NextReview.After(now)
		}
	}
	return true
}

// ListDue returns the keys whose review time has passed. Never-seen keys are
// not enumerable and are only surfaced through IsDue during generation.
func (l *Ledger) ListDue(now time.Time) []Key {
	var due []Key
	for _, entry := range l.Entries() {
		if !entry.NextReview.After(now) {
			due = append(due, entry.Key)
		}
	}
	return due
}

// Mastered returns entries answered correctly at least twice.
func (l *Ledger) Mastered() []Entry {
	var mastered []Entry
	for _, entry := range l.Entries() {
		if entry.Mastered() {
			mastered = append(mastered, entry)
		}
	}
	return mastered
}

// Struggling returns entries answered incorrectly at least twice.
func (l *Ledger) Struggling() []Entry {
	var struggling []Entry
	for _, entry := range l.Entries() {
		if entry.Struggling() {
			struggling = append(struggling, entry)
		}
	}
	return struggling
}

// Clear deletes all ledger state.
func (l *Ledger) Clear() {
	if err := l.store.Remove(collectionKey); err != nil {
		slog.Default().Error("failed to clear spaced repetition entries", "error", err)
	}
}

// Export serializes every entry as indented JSON for external delivery.
func (l *Ledger) Export() (string, error) {
	entries := l.Entries()
	if entries == nil {
		entries = []Entry{}
	}
	contents, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", err
	}
	return string(contents), nil
}
