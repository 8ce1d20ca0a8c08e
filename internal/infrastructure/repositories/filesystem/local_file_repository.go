package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rios0rios0/verbump/internal/domain/repositories"
)

const defaultFileMode fs.FileMode = 0o644

// LocalFileRepository serves a project tree from the local disk.
type LocalFileRepository struct {
	root string
}

var _ repositories.FileRepository = (*LocalFileRepository)(nil)

// NewLocalFileRepository creates a repository rooted at dir.
func NewLocalFileRepository(dir string) repositories.FileRepository {
	return &LocalFileRepository{root: dir}
}

func (r *LocalFileRepository) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(r.resolve(name))
}

func (r *LocalFileRepository) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(r.resolve(name))
}

func (r *LocalFileRepository) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(r.resolve(name))
}

// WriteFile writes data to a temporary sibling and renames it over name, so
// readers never observe a partial file. The previous permissions are kept.
func (r *LocalFileRepository) WriteFile(name string, data []byte) error {
	target := r.resolve(name)

	mode := defaultFileMode
	if info, err := os.Stat(target); err == nil {
		mode = info.Mode().Perm()
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	// a symlinked file is replaced through its target
	if resolved, err := filepath.EvalSymlinks(target); err == nil {
		target = resolved
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}
	if err = os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	return os.Rename(tmpName, target)
}

func (r *LocalFileRepository) resolve(name string) string {
	return filepath.Join(r.root, filepath.FromSlash(name))
}
