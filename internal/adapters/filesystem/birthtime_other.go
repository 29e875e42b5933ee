//go:build !darwin

package filesystem

import (
	"os"
	"time"
)

// birthTime returns the zero time on platforms without a creation
// timestamp; callers fall back to the modification time.
func birthTime(info os.FileInfo) time.Time {
	return time.Time{}
}
