package update

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ExtractBinary pulls the named file out of the zip archive at archivePath
// and writes it next to destPath before renaming it into place. The old
// binary (if any) is kept as destPath + ".old" until the next update.
func ExtractBinary(archivePath, name, destPath string) error {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer r.Close()

	var file *zip.File
	for _, f := range r.File {
		if !validArchivePath(f.Name) {
			return fmt.Errorf("archive contains unsafe path %q", f.Name)
		}
		if filepath.Base(f.Name) == name && !f.FileInfo().IsDir() {
			file = f
		}
	}
	if file == nil {
		return fmt.Errorf("archive does not contain %q", name)
	}

	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("failed to read %s from archive: %w", name, err)
	}
	defer src.Close()

	dir := filepath.Dir(destPath)
	tmpFile, err := os.CreateTemp(dir, ".update-*")
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

	if _, err := io.Copy(tmpFile, src); err != nil {
		return fmt.Errorf("failed to extract %s: %w", name, err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o755); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	// A running executable cannot be overwritten in place on every
	// platform, but it can be renamed away.
	oldPath := destPath + ".old"
	os.Remove(oldPath)
	if _, err := os.Stat(destPath); err == nil {
		if err := os.Rename(destPath, oldPath); err != nil {
			return fmt.Errorf("failed to move old binary aside: %w", err)
		}
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Rename(oldPath, destPath)
		return fmt.Errorf("failed to install new binary: %w", err)
	}

	success = true
	return nil
}

// validArchivePath rejects absolute paths and parent-directory escapes.
func validArchivePath(name string) bool {
	if name == "" || strings.HasPrefix(name, "/") || strings.Contains(name, `\`) {
		return false
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
