// Package project finds and decodes the swc.toml manifest.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// ManifestName is the file looked up by FindManifest.
const ManifestName = "swc.toml"

// ErrNoManifest is returned when no swc.toml exists in the start directory
// or any of its parents.
var ErrNoManifest = errors.New("no " + ManifestName + " found")

// FindManifest walks up from startDir to locate swc.toml.
func FindManifest(fs afero.Fs, startDir string) (string, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := fs.Stat(candidate); err == nil {
			return candidate, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", ErrNoManifest
}

// Discover finds the nearest manifest above startDir and loads it.
func Discover(fs afero.Fs, startDir string) (*Manifest, error) {
	path, err := FindManifest(fs, startDir)
	if err != nil {
		return nil, err
	}
	return LoadManifest(fs, path)
}
