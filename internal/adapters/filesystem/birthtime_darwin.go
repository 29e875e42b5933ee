//go:build darwin

package filesystem

import (
	"os"
	"syscall"
	"time"
)

// birthTime returns the file creation time where the platform records
// one. macOS exposes it via Birthtimespec.
func birthTime(info os.FileInfo) time.Time {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}
	}
	return time.Unix(st.Birthtimespec.Sec, st.Birthtimespec.Nsec)
}
