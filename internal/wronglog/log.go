// Package wronglog keeps a bounded, append-only record of missed
// conjugations for later review.
package wronglog

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/lbarroso/conjugar/internal/storage"
)

const collectionKey = "wrong_answers"

// maxRecords caps the log; the oldest records are evicted first.
const maxRecords = 100

// Record is one missed conjugation.
type Record struct {
	Verb          string    `json:"verb"`
	Translation   string    `json:"translation,omitempty"`
	Pronoun       string    `json:"pronoun"`
	Tense         string    `json:"tense"`
	UserAnswer    string    `json:"user_answer"`
	CorrectAnswer string    `json:"correct_answer"`
	Timestamp     time.Time `json:"timestamp"`
}

// Log persists records in a Store under a single collection key, with the
// same fail-open storage model as the review ledger.
type Log struct {
	store storage.Store
}

func NewLog(store storage.Store) *Log {
	return &Log{store: store}
}

// List returns all records, oldest first.
func (l *Log) List() []Record {
	value, ok, err := l.store.Get(collectionKey)
	if err != nil {
		slog.Default().Error("failed to load wrong answers", "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	var records []Record
	if err := json.Unmarshal([]byte(value), &records); err != nil {
		slog.Default().Error("failed to decode wrong answers", "error", err)
		return nil
	}
	return records
}

// Append stores a record, evicting the oldest entries beyond the cap.
func (l *Log) Append(record Record) {
	records := append(l.List(), record)
	if len(records) > maxRecords {
		records = records[len(records)-maxRecords:]
	}

	value, err := json.Marshal(records)
	if err != nil {
		slog.Default().Error("failed to encode wrong answers", "error", err)
		return
	}
	if err := l.store.Set(collectionKey, string(value)); err != nil {
		slog.Default().Error("failed to save wrong answers", "error", err)
	}
}

// Clear deletes the log.
func (l *Log) Clear() {
	if err := l.store.Remove(collectionKey); err != nil {
		slog.Default().Error("failed to clear wrong answers", "error", err)
	}
}

// Export serializes the log as indented JSON for external delivery.
func (l *Log) Export() (string, error) {
	records := l.List()
	if records == nil {
		records = []Record{}
	}
	contents, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", err
	}
	return string(contents), nil
}
