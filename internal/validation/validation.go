// Package validation checks user-supplied paths before they are opened.
package validation

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"
)

// MaxPathLength is the maximum allowed path length.
const MaxPathLength = 4096

// Stdio is the path that names stdin or stdout.
const Stdio = "-"

// Common validation errors.
var (
	ErrPathTooLong      = errors.New("path too long")
	ErrInvalidCharacter = errors.New("invalid character in path")
	ErrEmptyPath        = errors.New("path cannot be empty")
	ErrNotRegularFile   = errors.New("not a regular file")
	ErrIsDirectory      = errors.New("path is a directory")
)

// ValidatePath checks length limits and rejects null bytes and control characters.
func ValidatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}

	if len(path) > MaxPathLength {
		return ErrPathTooLong
	}

	if strings.Contains(path, "\x00") {
		return fmt.Errorf("%w: null byte not allowed", ErrInvalidCharacter)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: control character not allowed", ErrInvalidCharacter)
		}
	}

	return nil
}

// ValidateInputPath checks that path is "-" or names an existing regular file.
func ValidateInputPath(path string) error {
	if path == Stdio {
		return nil
	}
	if err := ValidatePath(path); err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrNotRegularFile, path)
	}
	return nil
}

// ValidateOutputPath checks that path is empty, "-", or a writable location
// that is not a directory. The file itself need not exist.
func ValidateOutputPath(path string) error {
	if path == "" || path == Stdio {
		return nil
	}
	if err := ValidatePath(path); err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
