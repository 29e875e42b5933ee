package application

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common fatal conditions
var (
	ErrDuplicateName   = errors.New("duplicate filename")
	ErrAmbiguousFolder = errors.New("ambiguous date folder")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// DuplicateError reports one filename found at more than one source
// path. Proceeding would let one source silently overwrite the other at
// the shared destination.
type DuplicateError struct {
	Name  string
	Paths []string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate filename %q found in multiple locations:\n  %s",
		e.Name, strings.Join(e.Paths, "\n  "))
}

func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicateName
}

// AmbiguousFolderError reports two or more existing destination folders
// matching the same date. The tool refuses to guess; the operator must
// merge or rename them.
type AmbiguousFolderError struct {
	Date       string
	Candidates []string
}

func (e *AmbiguousFolderError) Error() string {
	return fmt.Sprintf("multiple date folders match %s:\n  %s",
		e.Date, strings.Join(e.Candidates, "\n  "))
}

func (e *AmbiguousFolderError) Is(target error) bool {
	return target == ErrAmbiguousFolder
}
