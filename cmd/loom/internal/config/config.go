// Package config resolves the optional loom.yaml workspace configuration.
//
// Priority order for the data directory: config file > LOOM_DATA_DIR env >
// ~/.loom default.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the optional loom.yaml configuration.
type Config struct {
	Workspace WorkspaceConfig `yaml:"workspace"`
	Service   ServiceConfig   `yaml:"service"`
	Update    UpdateConfig    `yaml:"update"`
}

// WorkspaceConfig contains workspace metadata.
type WorkspaceConfig struct {
	Name    string `yaml:"name,omitempty"`
	DataDir string `yaml:"data_dir,omitempty"`
}

// ServiceConfig points at the remote editor service, when one is used.
// Synchronization itself happens outside this binary; the endpoint is only
// resolved and handed to whatever shell embeds the workspace.
type ServiceConfig struct {
	Endpoint string `yaml:"endpoint,omitempty"`
}

// UpdateConfig contains self-update settings.
type UpdateConfig struct {
	Feed    string `yaml:"feed,omitempty"`
	Channel string `yaml:"channel,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root            string
	Name            string
	DataDir         string
	StorePath       string
	ServiceEndpoint string
	UpdateFeed      string
	UpdateChannel   string
}

// DefaultFeed is the release feed polled when loom.yaml does not set one.
const DefaultFeed = "https://releases.go-loom.dev/loom/feed.json"

// LoadOptional reads loom.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "loom.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read loom.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse loom.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads loom.yaml (if present) and fills in defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(cfg.Workspace.Name)
	if name == "" {
		name = filepath.Base(dir)
	}
	if err := validateName(name); err != nil {
		return nil, err
	}

	dataDir := strings.TrimSpace(cfg.Workspace.DataDir)
	if dataDir == "" {
		dataDir, err = defaultDataDir()
		if err != nil {
			return nil, err
		}
	} else if !filepath.IsAbs(dataDir) {
		dataDir = filepath.Join(dir, dataDir)
	}

	feed := strings.TrimSpace(cfg.Update.Feed)
	if feed == "" {
		feed = DefaultFeed
	}

	channel := strings.TrimSpace(cfg.Update.Channel)
	if channel == "" {
		channel = "stable"
	}

	return &Resolved{
		Root:            dir,
		Name:            name,
		DataDir:         dataDir,
		StorePath:       filepath.Join(dataDir, name+".db"),
		ServiceEndpoint: strings.TrimSpace(cfg.Service.Endpoint),
		UpdateFeed:      feed,
		UpdateChannel:   channel,
	}, nil
}

// FindWorkspaceRoot walks up from the current directory to find loom.yaml.
// When none exists, the current directory is the workspace.
func FindWorkspaceRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, "loom.yaml")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

func defaultDataDir() (string, error) {
	if envDir := os.Getenv("LOOM_DATA_DIR"); envDir != "" {
		return envDir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".loom"), nil
}

func validateName(name string) error {
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_' || r == '.':
		default:
			return fmt.Errorf("workspace.name contains invalid character %q in %q", r, name)
		}
	}
	if name == "" {
		return fmt.Errorf("workspace.name must not be empty")
	}
	return nil
}
