package tag

import (
	"fmt"
	"os"
	"path/filepath"
)

const subdir = "batch-tags"

// Archive stores rendered tag images under a base directory. File paths are
// deterministic from the unique code, so re-rendering a code overwrites the
// previous image.
type Archive struct {
	Dir string
}

// RelPath returns the storage-relative path for a code's image, as persisted
// on the BatchTag row.
func (a Archive) RelPath(code string) string {
	return filepath.Join(subdir, code+".png")
}

// Save writes the rendered image and returns its storage-relative path.
// A code whose resolved path would land outside the tag directory is refused,
// regardless of what upstream validation allowed through.
func (a Archive) Save(code string, png []byte) (string, error) {
	rel := a.RelPath(code)
	if filepath.Dir(filepath.Clean(rel)) != subdir {
		return "", fmt.Errorf("code %q resolves outside the tag directory", code)
	}

	if err := os.MkdirAll(filepath.Join(a.Dir, subdir), 0o755); err != nil {
		return "", fmt.Errorf("failed to create tag directory: %w", err)
	}

	if err := os.WriteFile(filepath.Join(a.Dir, rel), png, 0o644); err != nil {
		return "", fmt.Errorf("failed to write tag image: %w", err)
	}
	return rel, nil
}

// Read loads a previously archived image by its storage-relative path
func (a Archive) Read(relPath string) ([]byte, error) {
	return os.ReadFile(filepath.Join(a.Dir, relPath))
}
