package ports

import "camorg/internal/domain"

// MediaRepository defines the filesystem operations the commands depend
// on. Implementations must not cache between calls; every invocation
// reflects the live tree.
type MediaRepository interface {
	// ScanFiles walks root recursively and returns every regular file
	// with its stat snapshot, sorted by relative path.
	ScanFiles(root string) ([]domain.MediaFile, error)

	// ListDirNames returns the names of the immediate child directories
	// of dir. Files are not included.
	ListDirNames(dir string) ([]string, error)

	// Stat returns the stat snapshot for path, following symlinks.
	Stat(path string) (domain.FileInfo, error)

	// SameFile reports whether a and b resolve to the same underlying
	// file. Returns false without error when either path does not exist.
	SameFile(a, b string) (bool, error)

	// MkdirAll creates dir and any missing parents; existing directories
	// are not an error.
	MkdirAll(dir string) error

	// CopyFile copies src to dst, preserving the source's permissions
	// and modification time.
	CopyFile(src, dst string) error

	// MoveFile renames src to dst. The rename either fully succeeds or
	// fails; there is no implicit copy-and-delete fallback.
	MoveFile(src, dst string) error
}
