package verbs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"
)

// Fetcher downloads a verb dataset JSON file over HTTP. The dataset itself is
// maintained elsewhere; this only delivers it to the configured local path.
type Fetcher struct {
	httpClient *resty.Client
}

func NewFetcher() *Fetcher {
	return &Fetcher{httpClient: resty.New()}
}

func (f *Fetcher) Close() error {
	return f.httpClient.Close()
}

// Fetch downloads the dataset from url and writes it to path. Transient HTTP
// failures are retried with backoff. The downloaded body must decode as a
// verb list before the existing file is replaced.
func (f *Fetcher) Fetch(ctx context.Context, url, path string) error {
	var body []byte
	err := retry.Do(
		func() error {
			response, err := f.httpClient.R().
				SetContext(ctx).
				Get(url)
			if err != nil {
				return fmt.Errorf("httpClient.R().Get(%s) > %w", url, err)
			}
			if response.IsError() {
				return fmt.Errorf("response error %d for %s", response.StatusCode(), url)
			}
			body = response.Bytes()
			return nil
		},
		retry.Attempts(3),
		retry.Delay(500*time.Millisecond),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
	)
	if err != nil {
		return err
	}

	var downloaded []Verb
	if err := json.Unmarshal(body, &downloaded); err != nil {
		return fmt.Errorf("json.Unmarshal(downloaded dataset) > %w", err)
	}
	if len(downloaded) == 0 {
		return fmt.Errorf("downloaded dataset from %s is empty", url)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
		}
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return nil
}
