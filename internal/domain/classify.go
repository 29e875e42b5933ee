package domain

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Ruleset is the immutable classification configuration shared by both
// tools. It is built once at startup and passed explicitly so alternative
// rulesets (future camera models) can be tested in isolation.
type Ruleset struct {
	extensions map[string]struct{} // lower-cased, with leading dot
	filenames  map[string]struct{} // exact names, case-sensitive
	filenameRE *regexp.Regexp      // date token pattern, built from prefixes
	subfolder  string              // canonical subfolder under a date folder
}

// NewRuleset builds a Ruleset. Extensions are normalized to lower case
// with a leading dot; filename sentinels are kept verbatim. datePrefixes
// are the camera-role prefixes (e.g. VID, LRV, IMG) recognized by
// DateFromFilename.
func NewRuleset(extensions, filenames, datePrefixes []string, subfolder string) Ruleset {
	exts := make(map[string]struct{}, len(extensions))
	for _, e := range extensions {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		exts[e] = struct{}{}
	}

	names := make(map[string]struct{}, len(filenames))
	for _, n := range filenames {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		names[n] = struct{}{}
	}

	quoted := make([]string, 0, len(datePrefixes))
	for _, p := range datePrefixes {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(p))
	}
	re := regexp.MustCompile(fmt.Sprintf(`^(?:%s)_(\d{8})_`, strings.Join(quoted, "|")))

	return Ruleset{
		extensions: exts,
		filenames:  names,
		filenameRE: re,
		subfolder:  subfolder,
	}
}

// IsManaged reports whether a base filename is camera output this tool
// manages. Extension comparison is case-insensitive; the filename
// sentinel comparison is case-sensitive (sensor-generated names have a
// fixed case).
func (r Ruleset) IsManaged(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if _, ok := r.extensions[ext]; ok {
		return true
	}
	_, ok := r.filenames[name]
	return ok
}

// Subfolder returns the canonical subfolder name (e.g. "insta360") under
// a date folder where managed files must reside.
func (r Ruleset) Subfolder() string {
	return r.subfolder
}
