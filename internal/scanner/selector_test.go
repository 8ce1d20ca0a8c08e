//go:build unit

package scanner_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/verbump/internal/scanner"
	doubles "github.com/rios0rios0/verbump/test/infrastructure/repositorydoubles"
)

func newProjectTree() *doubles.SpyFileRepository {
	return doubles.NewSpyFileRepository(map[string]string{
		"README.md":                   "# App",
		"CHANGELOG.md":                "# Changelog",
		"package.json":                "{}",
		"docs/guide.md":               "guide",
		"src/index.js":                "index",
		"src/lib/util.js":             "util",
		"src/node_modules/dep/dep.js": "dep",
		"node_modules/pkg/README.md":   "pkg",
		"dist/bundle.js":              "bundle",
		".git/HEAD":                   "ref",
	})
}

func TestSelectorSelect(t *testing.T) {
	t.Parallel()

	t.Run("should resolve the default specifiers in order", func(t *testing.T) {
		t.Parallel()

		// given
		selector := scanner.NewSelector(newProjectTree())

		// when
		files := selector.Select(scanner.DefaultFiles)

		// then
		assert.Equal(t, []string{
			"README.md",
			"package.json",
			"CHANGELOG.md",
			"src/index.js",
			"src/lib/util.js",
		}, files)
	})

	t.Run("should list a file only once", func(t *testing.T) {
		t.Parallel()

		// given
		selector := scanner.NewSelector(newProjectTree())

		// when
		files := selector.Select([]string{"README.md", "./README.md", "*.md", "README.md"})

		// then
		assert.Equal(t, []string{"README.md", "CHANGELOG.md"}, files)
	})

	t.Run("should skip missing literals, directories and paths outside the tree", func(t *testing.T) {
		t.Parallel()

		// given
		selector := scanner.NewSelector(newProjectTree())

		// when
		files := selector.Select([]string{"missing.md", "src", "../outside.md", "/etc/passwd", ".", "package.json"})

		// then
		assert.Equal(t, []string{"package.json"}, files)
	})

	t.Run("should never enter ignored directories", func(t *testing.T) {
		t.Parallel()

		// given
		selector := scanner.NewSelector(newProjectTree())

		// when
		files := selector.Select([]string{"**/*.md", "**/*.js", "**/HEAD"})

		// then
		assert.Equal(t, []string{
			"CHANGELOG.md",
			"README.md",
			"docs/guide.md",
			"src/index.js",
			"src/lib/util.js",
		}, files)
	})

	t.Run("should still select literal files inside ignored directories", func(t *testing.T) {
		t.Parallel()

		// given
		selector := scanner.NewSelector(newProjectTree())

		// when
		files := selector.Select([]string{"dist/bundle.js"})

		// then
		assert.Equal(t, []string{"dist/bundle.js"}, files)
	})

	t.Run("should skip unreadable directories silently", func(t *testing.T) {
		t.Parallel()

		// given
		tree := newProjectTree()
		tree.DirErrs = map[string]error{"src/lib": errors.New("permission denied")}
		selector := scanner.NewSelector(tree)

		// when
		files := selector.Select([]string{"src/**/*.js"})

		// then
		assert.Equal(t, []string{"src/index.js"}, files)
	})

	t.Run("should return an empty list when nothing matches", func(t *testing.T) {
		t.Parallel()

		// given
		selector := scanner.NewSelector(newProjectTree())

		// when
		files := selector.Select([]string{"bin/**/*.js"})

		// then
		assert.Empty(t, files)
		assert.NotNil(t, files)
	})
}
