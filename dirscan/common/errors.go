package common

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
)

// Common error types used across dirscan packages
var (
	ErrPathEmpty    = errors.New("path cannot be empty")
	ErrPathTooLong  = errors.New("path too long (max 4096 characters)")
	ErrPathInvalid  = errors.New("path contains invalid characters")
	ErrRootNotExist = errors.New("root directory does not exist")
	ErrNotDirectory = errors.New("path is not a directory")
	ErrTimeFormat   = errors.New("invalid time format template")
)

// ValidationUtils provides common validation utilities used across packages
type ValidationUtils struct{}

// NewValidationUtils creates a new ValidationUtils instance
func NewValidationUtils() *ValidationUtils {
	return &ValidationUtils{}
}

// ValidateRequiredString validates that a string is not empty
func (vu *ValidationUtils) ValidateRequiredString(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	return nil
}

// ValidatePathLength validates that a path is not too long
func (vu *ValidationUtils) ValidatePathLength(path string) error {
	if len(path) > 4096 {
		return ErrPathTooLong
	}
	return nil
}

// ValidatePathCharacters validates that a path doesn't contain invalid characters
func (vu *ValidationUtils) ValidatePathCharacters(path string) error {
	if strings.Contains(path, "\x00") {
		return ErrPathInvalid
	}
	return nil
}

// ValidateScanRoot validates that a scan root exists and is a directory.
// Failures wrap ErrRootNotExist / ErrNotDirectory so callers can classify
// them with errors.Is.
func (vu *ValidationUtils) ValidateScanRoot(fsys afero.Fs, path string) error {
	if path == "" {
		return ErrPathEmpty
	}
	if err := vu.ValidatePathCharacters(path); err != nil {
		return err
	}
	if err := vu.ValidatePathLength(path); err != nil {
		return err
	}

	info, err := fsys.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrRootNotExist, path)
		}
		return fmt.Errorf("failed to access directory %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, path)
	}
	return nil
}
