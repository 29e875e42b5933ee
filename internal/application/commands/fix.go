package commands

import (
	"context"
	"fmt"

	"camorg/internal/application"
	"camorg/internal/domain"
	"camorg/internal/ports"
)

// FixResult contains the outcome of a compliance scan.
type FixResult struct {
	// ManagedCount is the number of managed files seen, compliant or
	// not. Zero means there was nothing to scan.
	ManagedCount int
	Plan         domain.RelocationPlan
}

// FixStructureCommand scans a source tree for managed files that are not
// in their canonical subfolder and plans the moves to fix them. It never
// mutates the filesystem; the plan is rendered as a shell script.
type FixStructureCommand struct {
	repo  ports.MediaRepository
	rules domain.Ruleset

	Source string
}

// NewFixStructureCommand creates a new FixStructureCommand.
func NewFixStructureCommand(repo ports.MediaRepository, rules domain.Ruleset, source string) *FixStructureCommand {
	return &FixStructureCommand{repo: repo, rules: rules, Source: source}
}

// Validate checks the command arguments before any filesystem access.
func (c *FixStructureCommand) Validate() error {
	return application.ValidateRequired("source", c.Source)
}

// Execute runs the compliance scan.
func (c *FixStructureCommand) Execute(ctx context.Context) (*FixResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := application.ValidateDir(c.repo, "source", c.Source); err != nil {
		return nil, err
	}

	files, err := c.repo.ScanFiles(c.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to scan source: %w", err)
	}

	managed := 0
	for _, f := range files {
		if c.rules.IsManaged(f.Name) {
			managed++
		}
	}

	topDirs, err := c.repo.ListDirNames(c.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to list source: %w", err)
	}

	return &FixResult{
		ManagedCount: managed,
		Plan:         domain.PlanFixes(c.Source, files, topDirs, c.rules),
	}, nil
}
