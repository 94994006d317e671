package ephem

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"cloudeng.io/net/ratecontrol"
)

const (
	// DefaultFetchTimeout bounds a single download attempt.
	DefaultFetchTimeout = 20 * time.Second

	// Default exponential backoff between retries.
	defaultBackoffFirst = 500 * time.Millisecond
	defaultBackoffSteps = 3
)

// Fetcher downloads and caches ephemeris resources. A URL is fetched at most
// once; later calls are served from the on-disk cache.
type Fetcher struct {
	client       *http.Client
	cacheDir     string
	timeout      time.Duration
	backoffFirst time.Duration
	backoffSteps int
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithTimeout sets the per-attempt HTTP timeout.
func WithTimeout(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) FetcherOption {
	return func(f *Fetcher) {
		f.client = client
	}
}

// WithBackoff sets the retry schedule: an initial delay doubled for each of
// steps attempts.
func WithBackoff(first time.Duration, steps int) FetcherOption {
	return func(f *Fetcher) {
		f.backoffFirst = first
		f.backoffSteps = steps
	}
}

// NewFetcher creates a fetcher caching into cacheDir.
func NewFetcher(cacheDir string, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		cacheDir:     cacheDir,
		timeout:      DefaultFetchTimeout,
		backoffFirst: defaultBackoffFirst,
		backoffSteps: defaultBackoffSteps,
	}

	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{Timeout: f.timeout}
	}

	return f
}

// FetchOrCache returns a local path holding the resource at url, downloading
// it if no cached copy exists. Failures after retries are reported as
// ErrFetchFailed; the cache is never left with a partial file.
func (f *Fetcher) FetchOrCache(ctx context.Context, url string) (string, error) {
	path := f.cachePath(url)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	body, err := f.fetch(ctx, url)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(f.cacheDir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create cache dir: %v", ErrFetchFailed, err)
	}

	tmp, err := os.CreateTemp(f.cacheDir, "fetch-*")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	if _, err := tmp.Write(body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	tmp.Close()

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	return path, nil
}

func (f *Fetcher) fetch(ctx context.Context, url string) ([]byte, error) {
	backoff := ratecontrol.NewExpontentialBackoff(f.backoffFirst, f.backoffSteps)

	for {
		body, retryable, err := f.attempt(ctx, url)
		if err == nil {
			return body, nil
		}
		if !retryable {
			return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
		}
		if done, werr := backoff.Wait(ctx, nil); done {
			if werr != nil {
				return nil, fmt.Errorf("%w: %v", ErrFetchFailed, werr)
			}
			return nil, fmt.Errorf("%w after %d retries: %v", ErrFetchFailed, backoff.Retries(), err)
		}
	}
}

// attempt performs one download. The bool reports whether a retry makes
// sense (server errors and transport failures do, 4xx does not).
func (f *Fetcher) attempt(ctx context.Context, url string) ([]byte, bool, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "night-sky/"+userAgentVersion)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, ctx.Err() == nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		retryable := resp.StatusCode >= 500
		return nil, retryable, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("read response body: %w", err)
	}

	return body, false, nil
}

func (f *Fetcher) cachePath(url string) string {
	sum := sha256.Sum256([]byte(url))
	return filepath.Join(f.cacheDir, fmt.Sprintf("%x.eph", sum[:8]))
}

const userAgentVersion = "0.5"
