// Package shell renders relocation plans as executable shell scripts.
// The script is the tool's only output format: the operator reviews it
// and pipes it to bash, so stdout must contain nothing else.
package shell

import (
	"fmt"
	"io"
	"strings"

	"camorg/internal/domain"
)

// Quote wraps path in double quotes, escaping the characters that are
// still special inside them.
func Quote(path string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, c := range path {
		switch c {
		case '"', '\\', '$', '`':
			b.WriteByte('\\')
		}
		b.WriteRune(c)
	}
	b.WriteByte('"')
	return b.String()
}

// RenderScript writes the plan as a bash script: shebang, trace mode,
// mkdir lines, a blank line, mv lines, and a trailing count comment.
// mkdir -p is idempotent, so re-running a stale script is harmless.
func RenderScript(w io.Writer, plan domain.RelocationPlan) error {
	if _, err := fmt.Fprintln(w, "#!/usr/bin/env bash"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "set -x"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	for _, dir := range plan.DirsToCreate {
		if _, err := fmt.Fprintf(w, "mkdir -p %s\n", Quote(dir)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	for _, m := range plan.Moves {
		if _, err := fmt.Fprintf(w, "mv %s %s\n", Quote(m.Src), Quote(m.Dst)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "# %d files to move\n", len(plan.Moves))
	return err
}
