package domain

import (
	"path/filepath"
	"sort"
	"strings"
)

// Move schedules one file relocation.
type Move struct {
	Src string
	Dst string
}

// RelocationPlan is the computed, pre-execution set of directory
// creations and file moves for one compliance scan. Nothing is mutated
// until the plan is rendered or executed.
type RelocationPlan struct {
	// DirsToCreate is sorted lexicographically. mkdir is idempotent, so
	// the ordering is a stability contract for output, not correctness.
	DirsToCreate []string
	// Moves is sorted by source path. Sources and destinations are
	// disjoint, so order does not affect correctness either.
	Moves []Move
	// Warnings lists top-level directory names that do not match the
	// date folder pattern. Informational only; never blocks processing.
	Warnings []string
}

// Empty reports whether the plan schedules no work.
func (p RelocationPlan) Empty() bool {
	return len(p.Moves) == 0
}

// PlanFixes computes the relocation plan for a source tree. A file
// belongs to a date folder only if its first path segment under root
// matches the date folder pattern; files outside any date folder are
// excluded silently. A file is compliant iff its direct parent is
// exactly <dateFolder>/<subfolder>.
func PlanFixes(root string, files []MediaFile, topDirNames []string, rules Ruleset) RelocationPlan {
	var plan RelocationPlan

	for _, name := range topDirNames {
		if !IsDateFolderName(name) {
			plan.Warnings = append(plan.Warnings, name)
		}
	}
	sort.Strings(plan.Warnings)

	dirs := make(map[string]struct{})
	for _, f := range files {
		if !rules.IsManaged(f.Name) {
			continue
		}
		seg := firstSegment(f.RelPath)
		if seg == "" || !IsDateFolderName(seg) {
			continue
		}
		targetDir := filepath.Join(root, seg, rules.Subfolder())
		if filepath.Dir(f.AbsPath) == targetDir {
			continue
		}
		dirs[targetDir] = struct{}{}
		plan.Moves = append(plan.Moves, Move{
			Src: f.AbsPath,
			Dst: filepath.Join(targetDir, f.Name),
		})
	}

	for d := range dirs {
		plan.DirsToCreate = append(plan.DirsToCreate, d)
	}
	sort.Strings(plan.DirsToCreate)
	sort.Slice(plan.Moves, func(i, j int) bool { return plan.Moves[i].Src < plan.Moves[j].Src })

	return plan
}

func firstSegment(rel string) string {
	rel = filepath.ToSlash(rel)
	if i := strings.IndexByte(rel, '/'); i >= 0 {
		return rel[:i]
	}
	// A file directly under root has no enclosing date folder.
	return ""
}
