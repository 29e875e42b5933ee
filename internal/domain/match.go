package domain

import (
	"path/filepath"
	"sort"
	"strings"
)

// MatchKind classifies a folder match result.
type MatchKind int

const (
	// NoMatch means no existing folder matched; the default path should
	// be created.
	NoMatch MatchKind = iota
	// SingleMatch means exactly one existing folder matched and should
	// be reused, preserving any operator-added suffix.
	SingleMatch
	// MultipleMatch means two or more folders matched; the tool must not
	// guess between them.
	MultipleMatch
)

// FolderMatch is the result of resolving a date against the destination
// root's existing folders.
type FolderMatch struct {
	Kind MatchKind
	// Path is the folder to use: the canonical default for NoMatch, the
	// existing folder for SingleMatch. Unset for MultipleMatch.
	Path string
	// Candidates holds the ambiguous folder paths for MultipleMatch,
	// sorted for stable reporting.
	Candidates []string
}

// MatchDateFolder resolves date against the immediate child directory
// names of root. A name is a candidate if it equals the date string
// exactly or starts with it followed by a space or hyphen. This lets an
// operator rename "2024-01-15" to "2024-01-15 Trip" after the fact
// without the tool losing track of it.
func MatchDateFolder(root string, date Date, dirNames []string) FolderMatch {
	ds := date.String()

	var matched []string
	for _, name := range dirNames {
		if matchesDate(name, ds) {
			matched = append(matched, filepath.Join(root, name))
		}
	}

	switch len(matched) {
	case 0:
		return FolderMatch{Kind: NoMatch, Path: filepath.Join(root, ds)}
	case 1:
		return FolderMatch{Kind: SingleMatch, Path: matched[0]}
	default:
		sort.Strings(matched)
		return FolderMatch{Kind: MultipleMatch, Candidates: matched}
	}
}

func matchesDate(name, ds string) bool {
	if name == ds {
		return true
	}
	if !strings.HasPrefix(name, ds) || len(name) == len(ds) {
		return false
	}
	sep := name[len(ds)]
	return sep == ' ' || sep == '-'
}
