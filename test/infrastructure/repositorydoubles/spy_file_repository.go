//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"io/fs"
	"testing/fstest"

	"github.com/rios0rios0/verbump/internal/domain/repositories"
)

// SpyFileRepository implements repositories.FileRepository over an in-memory tree.
type SpyFileRepository struct {
	// --- tree ---
	Files fstest.MapFS

	// --- injected failures, keyed by name ---
	ReadErrs  map[string]error
	DirErrs   map[string]error
	WriteErrs map[string]error

	// --- WriteFile ---
	Writes []WriteCall
}

// WriteCall records a single invocation of WriteFile.
type WriteCall struct {
	Name string
	Data string
}

var _ repositories.FileRepository = (*SpyFileRepository)(nil)

// NewSpyFileRepository creates a spy holding the given files with mode 0644.
func NewSpyFileRepository(files map[string]string) *SpyFileRepository {
	tree := fstest.MapFS{}
	for name, content := range files {
		tree[name] = &fstest.MapFile{Data: []byte(content), Mode: 0o644}
	}
	return &SpyFileRepository{Files: tree}
}

func (s *SpyFileRepository) Stat(name string) (fs.FileInfo, error) {
	return s.Files.Stat(name)
}

func (s *SpyFileRepository) ReadDir(name string) ([]fs.DirEntry, error) {
	if err, ok := s.DirErrs[name]; ok {
		return nil, err
	}
	return s.Files.ReadDir(name)
}

func (s *SpyFileRepository) ReadFile(name string) ([]byte, error) {
	if err, ok := s.ReadErrs[name]; ok {
		return nil, err
	}
	return s.Files.ReadFile(name)
}

func (s *SpyFileRepository) WriteFile(name string, data []byte) error {
	if err, ok := s.WriteErrs[name]; ok {
		return err
	}
	s.Writes = append(s.Writes, WriteCall{Name: name, Data: string(data)})
	s.Files[name] = &fstest.MapFile{Data: append([]byte(nil), data...), Mode: 0o644}
	return nil
}

// Content returns the current content of name, or an empty string.
func (s *SpyFileRepository) Content(name string) string {
	if file, ok := s.Files[name]; ok {
		return string(file.Data)
	}
	return ""
}

// Factory returns a repositories.FileRepositoryFactory that always serves this spy.
func (s *SpyFileRepository) Factory() repositories.FileRepositoryFactory {
	return func(_ string) repositories.FileRepository { return s }
}
