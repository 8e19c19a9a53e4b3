package update

import (
	"archive/zip"
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"v1.2.0", "v1.2.0"},
		{"1.2.0", "v1.2.0"},
		{"v1.2", "v1.2.0"},
		{"v0.3.0-rc1", "v0.3.0-rc1"},

		{"0.1.0-dev", ""},
		{"v0.2.1-0.20260122153045-abc123", ""},
		{"garbage", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Canonical(tt.input); got != tt.want {
			t.Errorf("Canonical(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNewer(t *testing.T) {
	tests := []struct {
		candidate string
		current   string
		want      bool
	}{
		{"v1.1.0", "v1.0.0", true},
		{"1.1.0", "v1.0.0", true},
		{"v1.0.0", "v1.0.0", false},
		{"v0.9.0", "v1.0.0", false},
		{"v1.1.0", "0.1.0-dev", false},
		{"bogus", "v1.0.0", false},
	}
	for _, tt := range tests {
		if got := Newer(tt.candidate, tt.current); got != tt.want {
			t.Errorf("Newer(%q, %q) = %v, want %v", tt.candidate, tt.current, got, tt.want)
		}
	}
}

func TestFetchFeed(t *testing.T) {
	key := runtime.GOOS + "/" + runtime.GOARCH
	feedJSON := fmt.Sprintf(`{
		"channels": {
			"stable": {
				"version": "v1.4.0",
				"builds": {%q: {"url": "https://example.com/loom.zip", "sha256": "abc"}}
			}
		}
	}`, key)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, feedJSON)
	}))
	defer srv.Close()

	c := NewClient(5 * time.Second)
	feed, err := c.FetchFeed(context.Background(), srv.URL)
	if err != nil {
		t.Fatal(err)
	}

	rel, err := feed.Latest("stable")
	if err != nil {
		t.Fatal(err)
	}
	if rel.Version != "v1.4.0" {
		t.Errorf("Version = %q", rel.Version)
	}

	art, err := rel.ArtifactFor()
	if err != nil {
		t.Fatal(err)
	}
	if art.URL != "https://example.com/loom.zip" {
		t.Errorf("URL = %q", art.URL)
	}

	if _, err := feed.Latest("nightly"); err == nil {
		t.Error("expected error for unknown channel")
	}
}

func TestFetchArtifact(t *testing.T) {
	payload := []byte("loom release payload")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer srv.Close()

	sum := sha256.Sum256(payload)
	art := Artifact{URL: srv.URL, SHA256: hex.EncodeToString(sum[:])}

	dest := filepath.Join(t.TempDir(), "dl", "loom.zip")
	c := NewClient(5 * time.Second)
	if err := c.FetchArtifact(context.Background(), art, dest); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("downloaded %q, want %q", got, payload)
	}
}

func TestFetchArtifactChecksumMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("tampered payload"))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "loom.zip")
	c := NewClient(5 * time.Second)
	err := c.FetchArtifact(context.Background(), Artifact{URL: srv.URL, SHA256: "deadbeef"}, dest)
	var ce *ChecksumError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ChecksumError, got %v", err)
	}
	if _, err := os.Stat(dest); err == nil {
		t.Error("mismatched artifact left a file at the destination")
	}
}

func TestFetchArtifactNoChecksum(t *testing.T) {
	c := NewClient(5 * time.Second)
	err := c.FetchArtifact(context.Background(), Artifact{URL: "https://example.com/loom.zip"}, filepath.Join(t.TempDir(), "loom.zip"))
	if err == nil {
		t.Fatal("expected error for artifact without checksum")
	}
}

func TestFetchArtifactServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "loom.zip")
	c := NewClient(5 * time.Second)
	if err := c.FetchArtifact(context.Background(), Artifact{URL: srv.URL, SHA256: "deadbeef"}, dest); err == nil {
		t.Fatal("expected error on HTTP 500")
	}
	if _, err := os.Stat(dest); err == nil {
		t.Error("failed download left a file behind")
	}
}

func TestFetchFeedTooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(bytes.Repeat([]byte("x"), maxFeedBytes+1))
	}))
	defer srv.Close()

	c := NewClient(5 * time.Second)
	if _, err := c.FetchFeed(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error for oversized feed")
	}
}

func TestExtractBinary(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "loom.zip")
	writeZip(t, archive, map[string][]byte{
		"loom-v1.4.0/README.md": []byte("readme"),
		"loom-v1.4.0/loom":      []byte("new binary"),
	})

	dest := filepath.Join(dir, "bin", "loom")
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dest, []byte("old binary"), 0o755); err != nil {
		t.Fatal(err)
	}

	if err := ExtractBinary(archive, "loom", dest); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "new binary" {
		t.Errorf("installed %q, want new binary", got)
	}
	old, err := os.ReadFile(dest + ".old")
	if err != nil {
		t.Fatal(err)
	}
	if string(old) != "old binary" {
		t.Errorf("kept %q as old binary", old)
	}
}

func TestExtractBinaryMissing(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "loom.zip")
	writeZip(t, archive, map[string][]byte{"README.md": []byte("readme")})

	err := ExtractBinary(archive, "loom", filepath.Join(dir, "loom"))
	if err == nil {
		t.Fatal("expected error for missing binary")
	}
}

func TestExtractBinaryRejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "loom.zip")
	writeZip(t, archive, map[string][]byte{"../loom": []byte("escape")})

	err := ExtractBinary(archive, "loom", filepath.Join(dir, "loom"))
	if err == nil {
		t.Fatal("expected error for path traversal")
	}
}

func writeZip(t *testing.T, path string, files map[string][]byte) {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, data := range files {
		f, err := w.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := f.Write(data); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}
