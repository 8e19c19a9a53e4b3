package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-loom/loom/cmd/loom/internal/update"
)

func init() {
	RegisterCommand(&Command{
		Name:  "update",
		Short: "Update loom to the latest release",
		Long: `Check the release feed for a newer version and install it.

The downloaded archive is verified against the checksum published in the
feed before the running binary is replaced. Use --check to only report
whether an update is available.`,
		Usage: "loom update [--check]",
		Run:   runUpdate,
	})
}

func runUpdate(args []string) error {
	checkOnly := false
	for _, arg := range args {
		switch arg {
		case "--check":
			checkOnly = true
		default:
			return fmt.Errorf("unknown argument %q", arg)
		}
	}

	cfg, err := resolveWorkspace()
	if err != nil {
		return err
	}

	ctx := context.Background()
	client := update.DefaultClient()

	feed, err := client.FetchFeed(ctx, cfg.UpdateFeed)
	if err != nil {
		return err
	}
	rel, err := feed.Latest(cfg.UpdateChannel)
	if err != nil {
		return err
	}

	if !update.Newer(rel.Version, Version) {
		fmt.Printf("loom %s is up to date (%s channel: %s)\n", Version, cfg.UpdateChannel, rel.Version)
		return nil
	}

	fmt.Printf("Update available: %s -> %s\n", Version, rel.Version)
	if rel.Notes != "" {
		fmt.Println(rel.Notes)
	}
	if checkOnly {
		return nil
	}

	art, err := rel.ArtifactFor()
	if err != nil {
		return err
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to locate running binary: %w", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return fmt.Errorf("failed to resolve binary path: %w", err)
	}

	archive := filepath.Join(os.TempDir(), fmt.Sprintf("loom-%s.zip", rel.Version))
	defer os.Remove(archive)

	fmt.Printf("Downloading %s...\n", art.URL)
	if err := client.FetchArtifact(ctx, art, archive); err != nil {
		return err
	}
	if err := update.ExtractBinary(archive, filepath.Base(exe), exe); err != nil {
		return err
	}

	fmt.Printf("Updated to %s\n", rel.Version)
	return nil
}
