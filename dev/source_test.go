//go:build dev

package dev

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// unexported variables.
var (
	errNoModuleRoot = errors.New("could not find go.mod in any parent directory")
)

// findRepoRoot walks up from current directory to find go.mod.
func findRepoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errNoModuleRoot
		}

		dir = parent
	}
}

// goSources lists the module's Go files relative to root. Directories starting
// with "_" or "." are skipped, as the go tool skips them.
func goSources(root string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(root), "**/*.go")
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(matches))

	for _, match := range matches {
		if hidden(match) {
			continue
		}

		files = append(files, match)
	}

	return files, nil
}

func hidden(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if strings.HasPrefix(part, "_") || strings.HasPrefix(part, ".") {
			return true
		}
	}

	return false
}
