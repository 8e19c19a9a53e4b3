// Package update implements self-update for the loom binary: it polls a
// release feed, compares versions, downloads and verifies the release
// artifact, and swaps the running executable.
package update

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// maxFeedBytes bounds how much of a feed response is read. A real feed is
// a few kilobytes; anything near the cap is a misconfigured URL.
const maxFeedBytes = 1 << 20

// Client fetches release feeds and artifacts.
type Client struct {
	http *http.Client
}

// NewClient creates a client with the specified timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		http: &http.Client{
			Timeout: timeout,
		},
	}
}

// DefaultClient returns a client with a 5-minute timeout, enough for a
// release archive on a slow link.
func DefaultClient() *Client {
	return NewClient(5 * time.Minute)
}

func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch failed: %s returned %s", url, resp.Status)
	}
	return resp, nil
}

// fetchJSON reads a small JSON document, capped at maxFeedBytes.
func (c *Client) fetchJSON(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if len(body) > maxFeedBytes {
		return nil, fmt.Errorf("response from %s exceeds %d bytes", url, maxFeedBytes)
	}
	return body, nil
}

// FetchArtifact downloads art.URL to destPath, verifying its SHA256 against
// art.SHA256 as the bytes stream in. The file is written to a temporary
// name in the destination directory and only renamed into place once the
// checksum matches, so destPath never holds an unverified artifact.
func (c *Client) FetchArtifact(ctx context.Context, art Artifact, destPath string) error {
	if art.SHA256 == "" {
		return fmt.Errorf("artifact %s carries no checksum", art.URL)
	}

	dir := filepath.Dir(destPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmpFile, err := os.CreateTemp(dir, ".artifact-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			tmpFile.Close()
			os.Remove(tmpPath)
		}
	}()

	resp, err := c.get(ctx, art.URL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	h := sha256.New()
	if _, err := io.Copy(io.MultiWriter(tmpFile, h), resp.Body); err != nil {
		return fmt.Errorf("failed to write artifact: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	actual := hex.EncodeToString(h.Sum(nil))
	expected := strings.ToLower(strings.TrimSpace(art.SHA256))
	if actual != expected {
		return &ChecksumError{
			URL:      art.URL,
			Expected: expected,
			Actual:   actual,
		}
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	success = true
	return nil
}

// ChecksumError is returned when a downloaded artifact's checksum doesn't
// match the value published in the feed.
type ChecksumError struct {
	URL      string
	Expected string
	Actual   string
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("checksum mismatch for %s\nExpected: %s\nActual:   %s", e.URL, e.Expected, e.Actual)
}
