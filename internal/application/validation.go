package application

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"camorg/internal/ports"
)

// ValidateRequired checks if a string field is non-empty (after trimming
// whitespace). Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", fieldName),
		}
	}
	return nil
}

// ValidateDir checks that path exists and is a directory. Returns a
// ValidationError otherwise, so the CLI exits before any work starts.
func ValidateDir(repo ports.MediaRepository, fieldName, path string) error {
	info, err := repo.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &ValidationError{
				Field:   fieldName,
				Message: fmt.Sprintf("directory does not exist: %s", path),
			}
		}
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("cannot access %s: %v", path, err),
		}
	}
	if !info.IsDir {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("not a directory: %s", path),
		}
	}
	return nil
}
