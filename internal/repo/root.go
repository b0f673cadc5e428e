// Package repo locates the repository root that the tools' fixed data
// paths hang off.
package repo

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindRoot walks up from the working directory until it finds a
// directory containing go.mod. The tools take no flags; every input and
// output path is fixed relative to this root.
func FindRoot() (string, error) {
	start, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	dir := start
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no go.mod found in %s or any parent directory", start)
		}
		dir = parent
	}
}
