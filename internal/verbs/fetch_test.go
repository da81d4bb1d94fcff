package verbs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Run("downloads and writes dataset", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(datasetFixture))
		}))
		defer server.Close()

		fetcher := NewFetcher()
		defer func() {
			require.NoError(t, fetcher.Close())
		}()

		path := filepath.Join(t.TempDir(), "data", "verbs.json")
		require.NoError(t, fetcher.Fetch(context.Background(), server.URL, path))

		contents, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, datasetFixture, string(contents))
	})

	t.Run("retries transient server errors", func(t *testing.T) {
		attempts := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attempts++
			if attempts < 3 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			_, _ = w.Write([]byte(datasetFixture))
		}))
		defer server.Close()

		fetcher := NewFetcher()
		defer func() {
			require.NoError(t, fetcher.Close())
		}()

		path := filepath.Join(t.TempDir(), "verbs.json")
		require.NoError(t, fetcher.Fetch(context.Background(), server.URL, path))
		assert.Equal(t, 3, attempts)
	})

	t.Run("rejects a body that is not a verb list", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"not": "a dataset"}`))
		}))
		defer server.Close()

		fetcher := NewFetcher()
		defer func() {
			require.NoError(t, fetcher.Close())
		}()

		path := filepath.Join(t.TempDir(), "verbs.json")
		err := fetcher.Fetch(context.Background(), server.URL, path)
		assert.Error(t, err)
		assert.NoFileExists(t, path)
	})

	t.Run("rejects an empty dataset", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		}))
		defer server.Close()

		fetcher := NewFetcher()
		defer func() {
			require.NoError(t, fetcher.Close())
		}()

		path := filepath.Join(t.TempDir(), "verbs.json")
		err := fetcher.Fetch(context.Background(), server.URL, path)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "empty")
	})
}
