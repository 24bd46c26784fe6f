package nbtfile

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileWriter writes encoded bytes to a filesystem path atomically.
// The write is performed via temp file + rename to ensure atomicity.
type FileWriter struct {
	Path string
}

// WriteFile writes buf to the configured path.
func (w *FileWriter) WriteFile(buf []byte) error {
	// Create temp file in same directory to ensure atomic rename
	dir := filepath.Dir(w.Path)
	tmpFile, createErr := os.CreateTemp(dir, ".nbtkit-tmp-*")
	if createErr != nil {
		return fmt.Errorf("create temp file: %w", createErr)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, writeErr := tmpFile.Write(buf); writeErr != nil {
		return fmt.Errorf("write temp file: %w", writeErr)
	}

	// Keep the mode of an existing target.
	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(w.Path); statErr == nil {
		mode = info.Mode().Perm()
	}
	if chmodErr := tmpFile.Chmod(mode); chmodErr != nil {
		return fmt.Errorf("chmod temp file: %w", chmodErr)
	}

	if syncErr := tmpFile.Sync(); syncErr != nil {
		return fmt.Errorf("sync temp file: %w", syncErr)
	}

	// Close before rename
	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("close temp file: %w", closeErr)
	}
	tmpFile = nil // Don't clean up in defer

	if renameErr := os.Rename(tmpPath, w.Path); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", renameErr)
	}

	return nil
}
