// Package storage provides the durable key-value store that quiz progress
// collections are persisted in.
package storage

//go:generate mockgen -source=store.go -destination=../mocks/storage/mock_store.go -package=mock_storage

// Store is a synchronous string key-value store. A missing key is reported
// through the ok result, not through an error. Callers are expected to catch
// and log failures themselves; the quiz degrades to a non-persistent session
// when storage is unavailable.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
}
