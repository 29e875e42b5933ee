package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"camorg/internal/application"
	"camorg/internal/domain"
	"camorg/internal/ports"
)

// Directories with this exact name are excluded from organizing at any
// depth. This filter is organizer-specific; the compliance scanner
// deliberately does not share it.
const excludedDirName = "MISC"

// OrganizeCommand copies or moves managed files from a source tree into
// date folders under a destination root.
type OrganizeCommand struct {
	repo  ports.MediaRepository
	rules domain.Ruleset

	Source      string
	Destination string
	Approve     bool
	Move        bool
}

// NewOrganizeCommand creates a new OrganizeCommand.
func NewOrganizeCommand(repo ports.MediaRepository, rules domain.Ruleset, source, destination string, approve, move bool) *OrganizeCommand {
	return &OrganizeCommand{
		repo:        repo,
		rules:       rules,
		Source:      source,
		Destination: destination,
		Approve:     approve,
		Move:        move,
	}
}

// Validate checks the command arguments before any filesystem access.
func (c *OrganizeCommand) Validate() error {
	if err := application.ValidateRequired("source", c.Source); err != nil {
		return err
	}
	return application.ValidateRequired("destination", c.Destination)
}

// Execute plans the whole run, then applies it when approved. Duplicate
// filenames and ambiguous destination folders abort before anything is
// mutated.
func (c *OrganizeCommand) Execute(ctx context.Context) (*application.Report, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := application.ValidateDir(c.repo, "source", c.Source); err != nil {
		return nil, err
	}
	if err := application.ValidateDir(c.repo, "destination", c.Destination); err != nil {
		return nil, err
	}

	files, err := c.repo.ScanFiles(c.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to scan source: %w", err)
	}

	candidates := make([]domain.MediaFile, 0, len(files))
	for _, f := range files {
		if !c.rules.IsManaged(f.Name) || underExcludedDir(f.RelPath) {
			continue
		}
		candidates = append(candidates, f)
	}

	if err := findDuplicates(candidates); err != nil {
		return nil, err
	}

	report := &application.Report{
		Candidates: len(candidates),
		Approved:   c.Approve,
		Move:       c.Move,
	}
	if len(candidates) == 0 {
		return report, nil
	}

	// One listing covers the whole plan; nothing mutates the destination
	// root until the plan is complete.
	dirNames, err := c.repo.ListDirNames(c.Destination)
	if err != nil {
		return nil, fmt.Errorf("failed to list destination: %w", err)
	}

	matches := make(map[string]domain.FolderMatch)
	for _, f := range candidates {
		date := c.rules.ResolveDate(f.Name, domain.FileInfo{
			Size:      f.Size,
			ModTime:   f.ModTime,
			BirthTime: f.BirthTime,
		})

		match, ok := matches[date.String()]
		if !ok {
			match = domain.MatchDateFolder(c.Destination, date, dirNames)
			matches[date.String()] = match
		}
		if match.Kind == domain.MultipleMatch {
			return nil, &application.AmbiguousFolderError{
				Date:       date.String(),
				Candidates: match.Candidates,
			}
		}

		dst := filepath.Join(match.Path, c.rules.Subfolder(), f.Name)
		skip, err := c.shouldSkip(f, dst)
		if err != nil {
			return nil, err
		}
		if skip {
			report.Skipped++
			continue
		}
		report.Transfers = append(report.Transfers, application.Transfer{
			Src:  f.AbsPath,
			Dst:  dst,
			Size: f.Size,
		})
		report.TotalBytes += f.Size
	}

	if !c.Approve {
		return report, nil
	}

	for _, t := range report.Transfers {
		if err := c.repo.MkdirAll(filepath.Dir(t.Dst)); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", filepath.Dir(t.Dst), err)
		}
		if c.Move {
			err = c.repo.MoveFile(t.Src, t.Dst)
		} else {
			err = c.repo.CopyFile(t.Src, t.Dst)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to %s %s: %w", report.Verb(), t.Src, err)
		}
	}

	return report, nil
}

// shouldSkip reports whether the destination already holds this file. A
// destination that is the same underlying file as the source (same path
// or a symlink to it) is never a transfer; otherwise an existing
// destination with an identical byte size is assumed up to date.
func (c *OrganizeCommand) shouldSkip(f domain.MediaFile, dst string) (bool, error) {
	same, err := c.repo.SameFile(f.AbsPath, dst)
	if err != nil {
		return false, fmt.Errorf("failed to compare %s: %w", dst, err)
	}
	if same {
		return true, nil
	}

	info, err := c.repo.Stat(dst)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat %s: %w", dst, err)
	}
	return !info.IsDir && info.Size == f.Size, nil
}

// findDuplicates groups candidates by full filename. Two source
// subfolders (e.g. two camera card dumps) holding the same name would
// collide at the destination, so the run fails before any transfer.
// The grouping key includes the extension: video.insv and video.lrv do
// not collide.
func findDuplicates(files []domain.MediaFile) error {
	byName := make(map[string][]string)
	for _, f := range files {
		byName[f.Name] = append(byName[f.Name], f.AbsPath)
	}

	names := make([]string, 0, len(byName))
	for name, paths := range byName {
		if len(paths) > 1 {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil
	}

	sort.Strings(names)
	paths := byName[names[0]]
	sort.Strings(paths)
	return &application.DuplicateError{Name: names[0], Paths: paths}
}

func underExcludedDir(rel string) bool {
	segs := strings.Split(filepath.ToSlash(rel), "/")
	for _, s := range segs[:len(segs)-1] {
		if s == excludedDirName {
			return true
		}
	}
	return false
}
