package update

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/mod/semver"
)

// Feed is the release feed document: the channels a binary can follow and
// the releases published on each.
type Feed struct {
	Channels map[string]Release `json:"channels"`
}

// Release describes one published version.
type Release struct {
	Version string              `json:"version"`
	Notes   string              `json:"notes,omitempty"`
	Builds  map[string]Artifact `json:"builds"`
}

// Artifact is one downloadable build, keyed in Builds by "<os>/<arch>".
type Artifact struct {
	URL    string `json:"url"`
	SHA256 string `json:"sha256"`
}

// FetchFeed downloads and parses the release feed.
func (c *Client) FetchFeed(ctx context.Context, url string) (*Feed, error) {
	body, err := c.fetchJSON(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch release feed: %w", err)
	}

	var feed Feed
	if err := json.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("failed to parse release feed: %w", err)
	}

	return &feed, nil
}

// Latest returns the release for the given channel.
func (f *Feed) Latest(channel string) (Release, error) {
	rel, ok := f.Channels[channel]
	if !ok {
		return Release{}, fmt.Errorf("release feed has no %q channel", channel)
	}
	if Canonical(rel.Version) == "" {
		return Release{}, fmt.Errorf("release feed advertises invalid version %q", rel.Version)
	}
	return rel, nil
}

// ArtifactFor returns the artifact matching the running OS and architecture.
func (r Release) ArtifactFor() (Artifact, error) {
	key := runtime.GOOS + "/" + runtime.GOARCH
	art, ok := r.Builds[key]
	if !ok {
		return Artifact{}, fmt.Errorf("release %s has no build for %s", r.Version, key)
	}
	return art, nil
}

// Canonical normalizes a version string to canonical semver ("1.2.0" and
// "v1.2.0" both become "v1.2.0"), or returns "" if it is not a release
// version. Dev builds and Go pseudo-versions are not releases.
func Canonical(version string) string {
	version = strings.TrimSpace(version)
	if strings.HasSuffix(version, "-dev") {
		return ""
	}
	if strings.Contains(version, "-0.") {
		return ""
	}
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	if !semver.IsValid(version) {
		return ""
	}
	return semver.Canonical(version)
}

// Newer reports whether candidate is a release version strictly newer than
// current. A non-release current (dev build) never updates automatically.
func Newer(candidate, current string) bool {
	cand := Canonical(candidate)
	cur := Canonical(current)
	if cand == "" || cur == "" {
		return false
	}
	return semver.Compare(cand, cur) > 0
}
