package filesystem

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"camorg/internal/domain"
)

// Repository implements ports.MediaRepository using the local
// filesystem. It holds no state; every call reflects the live tree.
type Repository struct{}

// NewRepository creates a new filesystem repository.
func NewRepository() *Repository {
	return &Repository{}
}

// ScanFiles walks root recursively and returns a stat snapshot of every
// regular file, sorted by relative path for deterministic plans.
func (r *Repository) ScanFiles(root string) ([]domain.MediaFile, error) {
	root = filepath.Clean(root)

	var files []domain.MediaFile
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}

		// Follows symlinks, so a link to a file is scanned as the file
		// it points at.
		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		name := d.Name()
		files = append(files, domain.MediaFile{
			AbsPath:   path,
			RelPath:   rel,
			Name:      name,
			Ext:       strings.ToLower(filepath.Ext(name)),
			Size:      info.Size(),
			ModTime:   info.ModTime(),
			BirthTime: birthTime(info),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].RelPath < files[j].RelPath })
	return files, nil
}

// ListDirNames returns the names of the immediate child directories of
// dir.
func (r *Repository) ListDirNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// Stat returns the stat snapshot for path, following symlinks.
func (r *Repository) Stat(path string) (domain.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return domain.FileInfo{}, err
	}
	return domain.FileInfo{
		Size:      info.Size(),
		IsDir:     info.IsDir(),
		ModTime:   info.ModTime(),
		BirthTime: birthTime(info),
	}, nil
}

// SameFile reports whether a and b resolve to the same underlying file.
// A missing path is simply not the same file.
func (r *Repository) SameFile(a, b string) (bool, error) {
	fa, err := os.Stat(a)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	fb, err := os.Stat(b)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return os.SameFile(fa, fb), nil
}

// MkdirAll creates dir and any missing parents.
func (r *Repository) MkdirAll(dir string) error {
	return os.MkdirAll(dir, 0755)
}

// CopyFile copies src to dst, preserving the source's permissions and
// modification time. An existing destination is overwritten.
func (r *Repository) CopyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return err
	}

	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}

// MoveFile renames src to dst. Rename either fully succeeds or fails;
// cross-device moves surface the underlying error rather than falling
// back to copy-and-delete.
func (r *Repository) MoveFile(src, dst string) error {
	return os.Rename(src, dst)
}
