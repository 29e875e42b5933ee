package domain

import "time"

// MediaFile describes one file found during a scan. Only stat metadata is
// captured; file contents are never read.
type MediaFile struct {
	AbsPath   string
	RelPath   string // relative to the scan root
	Name      string // base filename including extension
	Ext       string // lower-cased extension, e.g. ".insv"
	Size      int64
	ModTime   time.Time
	BirthTime time.Time // zero when the platform does not expose one
}

// FileInfo is a stat snapshot for a single path.
type FileInfo struct {
	Size      int64
	IsDir     bool
	ModTime   time.Time
	BirthTime time.Time // zero when the platform does not expose one
}
