package fileops

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ValidateProjectRoot cleans and validates a project root path before any
// manifest or repository lookup touches it.
//
// The function validates:
//   - The path is non-empty
//   - The path exists on disk
//   - The path is a directory
//
// Parameters:
//   - path: The project root path, absolute or relative
//
// Returns:
//   - string: The cleaned absolute path
//   - error: Validation errors with the offending path in the message
func ValidateProjectRoot(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("project root cannot be empty")
	}

	absPath, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("failed to resolve project root %s: %w", path, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("project root %s does not exist", absPath)
		}
		return "", fmt.Errorf("failed to access project root %s: %w", absPath, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("project root %s is not a directory", absPath)
	}

	return absPath, nil
}
