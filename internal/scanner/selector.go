package scanner

import (
	"io/fs"
	"path"
	"slices"

	"github.com/rios0rios0/verbump/internal/domain/entities"
	"github.com/rios0rios0/verbump/internal/domain/repositories"
)

// DefaultFiles are the specifiers scanned when none are configured.
//
//nolint:gochecknoglobals // read-only defaults
var DefaultFiles = entities.DefaultFileSpecs()

// IgnoredDirectories are never entered while walking the tree.
//
//nolint:gochecknoglobals // read-only defaults
var IgnoredDirectories = []string{
	".git",
	"node_modules",
	"vendor",
	"coverage",
	"dist",
	"build",
}

// Selector resolves file specifiers to the concrete files of a project tree.
type Selector struct {
	files repositories.FileRepository
}

// NewSelector creates a Selector over the given tree.
func NewSelector(files repositories.FileRepository) *Selector {
	return &Selector{files: files}
}

// Select returns the existing files named by specs, in the order of the
// specifiers and, inside a glob, in traversal order. A file never appears twice.
// Missing literal paths and unreadable directories contribute nothing.
func (s *Selector) Select(specs []string) []string {
	seen := make(map[string]struct{})
	selected := make([]string, 0)
	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		selected = append(selected, name)
	}

	var tree []string
	walked := false

	for _, spec := range specs {
		if !IsGlob(spec) {
			name := normalizeSpec(spec)
			if fs.ValidPath(name) && name != "." && s.isRegularFile(name) {
				add(name)
			}
			continue
		}

		matcher, err := CompileGlob(spec)
		if err != nil {
			continue
		}

		if !walked {
			tree = s.walk(".", nil)
			walked = true
		}

		for _, name := range tree {
			if matcher.MatchString(name) {
				add(name)
			}
		}
	}

	return selected
}

// walk collects every regular file below dir, depth first.
func (s *Selector) walk(dir string, found []string) []string {
	entries, err := s.files.ReadDir(dir)
	if err != nil {
		return found
	}

	for _, entry := range entries {
		name := path.Join(dir, entry.Name())

		switch {
		case entry.IsDir():
			if !slices.Contains(IgnoredDirectories, entry.Name()) {
				found = s.walk(name, found)
			}
		case entry.Type().IsRegular():
			found = append(found, name)
		case entry.Type()&fs.ModeSymlink != 0:
			// linked files are followed, linked directories are not
			if s.isRegularFile(name) {
				found = append(found, name)
			}
		}
	}

	return found
}

func (s *Selector) isRegularFile(name string) bool {
	info, err := s.files.Stat(name)
	return err == nil && info.Mode().IsRegular()
}
