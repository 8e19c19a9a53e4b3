package cmd

import (
	"fmt"
	"os"

	"github.com/go-loom/loom/cmd/loom/internal/config"
	"github.com/go-loom/loom/pkg/store"
)

// resolveWorkspace locates the workspace (--workspace flag, else nearest
// loom.yaml, else the current directory) and resolves its configuration.
func resolveWorkspace() (*config.Resolved, error) {
	root := workspaceOverride
	if root == "" {
		var err error
		root, err = config.FindWorkspaceRoot()
		if err != nil {
			return nil, err
		}
	}
	return config.Resolve(root)
}

// openStore resolves the workspace and opens its backing store.
func openStore() (*config.Resolved, *store.Store, error) {
	cfg, err := resolveWorkspace()
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	st, err := store.Open(cfg.StorePath)
	if err != nil {
		return nil, nil, err
	}
	return cfg, st, nil
}
