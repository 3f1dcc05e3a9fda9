package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigFileName marks the directory a notes setup lives in.
const ConfigFileName = "noted.yaml"

// FindRoot recursively looks upwards for a directory containing ConfigFileName.
// If found, returns the absolute path to that directory.
func FindRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if hasFile(dir, ConfigFileName) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("root not found")
}

func hasFile(dir, name string) bool {
	path := filepath.Join(dir, name)
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
