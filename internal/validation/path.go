// Package validation provides safety checks for the paths the diagram is
// written to. It includes protection against path traversal and validation
// of file system permissions.
package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DirPerm is the permission used for created output directories.
const DirPerm = 0o755

// Validator implements interfaces.PathValidator with the package functions.
type Validator struct{}

// EnsureOutputDir implements interfaces.PathValidator.
func (Validator) EnsureOutputDir(dir string) error { return EnsureOutputDir(dir) }

// ValidateOutputPath implements interfaces.PathValidator.
func (Validator) ValidateOutputPath(path string) error { return ValidateOutputPath(path) }

// EnsureOutputDir creates dir and its parents if they do not exist.
// It succeeds when dir already exists and fails when the path is taken by
// something other than a directory or is not writable.
func EnsureOutputDir(dir string) error {
	cleanDir, err := cleanPath(dir, "output directory")
	if err != nil {
		return err
	}

	info, err := os.Stat(cleanDir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return fmt.Errorf("output directory path exists and is not a directory: %s", cleanDir)
		}
	case os.IsNotExist(err):
		if err := os.MkdirAll(cleanDir, DirPerm); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	default:
		return fmt.Errorf("failed to access output directory: %w", err)
	}

	return checkWritable(cleanDir)
}

// ValidateOutputPath validates an output path for security and accessibility
// Returns error if path is invalid, contains path traversal attempts, is a
// directory, or its parent is missing or not writable
func ValidateOutputPath(outputPath string) error {
	cleanOutput, err := cleanPath(outputPath, "output path")
	if err != nil {
		return err
	}

	// Convert to absolute path
	absPath, err := filepath.Abs(cleanOutput)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	if info, err := os.Stat(absPath); err == nil && info.IsDir() {
		return fmt.Errorf("output path is a directory: %s", absPath)
	}

	dir := filepath.Dir(absPath)
	dirInfo, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("output directory does not exist: %s", dir)
		}
		return fmt.Errorf("failed to access output directory: %w", err)
	}

	if !dirInfo.IsDir() {
		return fmt.Errorf("output path parent is not a directory: %s", dir)
	}

	return checkWritable(dir)
}

func cleanPath(p, what string) (string, error) {
	if p == "" {
		return "", fmt.Errorf("%s cannot be empty", what)
	}

	// Clean the path to resolve any . or .. components
	clean := filepath.Clean(p)

	if strings.Contains(clean, "..") {
		return "", fmt.Errorf("path traversal detected in %s: %s", what, p)
	}
	return clean, nil
}

// checkWritable creates and removes a probe file in dir.
func checkWritable(dir string) error {
	testFile := filepath.Join(dir, ".sentinel_write_test")
	f, err := os.OpenFile(testFile, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0600)
	if err != nil {
		return fmt.Errorf("output directory is not writable: %s: %w", dir, err)
	}
	f.Close()
	os.Remove(testFile)

	return nil
}
