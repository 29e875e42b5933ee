package domain

import "regexp"

// Date folder names are YYYY-MM-DD optionally followed by a free-form
// suffix separated by a space or hyphen, e.g. "2023-03-03 Moggs in the
// dark" or "2024-01-15-vacation". The pattern deliberately does not
// re-validate the calendar; folder names are operator-controlled.
var dateFolderRE = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}([ -].*)?$`)

// IsDateFolderName reports whether a directory name matches the date
// folder pattern.
func IsDateFolderName(name string) bool {
	return dateFolderRE.MatchString(name)
}
