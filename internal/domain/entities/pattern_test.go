//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/verbump/internal/domain/entities"
)

func applyAll(t *testing.T, patterns []entities.Pattern, content string) (string, int) {
	t.Helper()
	total := 0
	for _, pattern := range patterns {
		next, count, err := pattern.Apply(content)
		require.NoError(t, err)
		if next != content {
			total += count
			content = next
		}
	}
	return content, total
}

func TestDefaultPatternSpecs(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		content  string
		expected string
		changes  int
	}{
		{
			name:     "should replace the version of a badge",
			content:  "![version](https://img.shields.io/badge/version-1.0.0-blue.svg)",
			expected: "![version](https://img.shields.io/badge/version-1.1.0-blue.svg)",
			changes:  1,
		},
		{
			name:     "should replace a double quoted version field",
			content:  "{\n  \"name\": \"app\",\n  \"version\": \"1.0.0\"\n}\n",
			expected: "{\n  \"name\": \"app\",\n  \"version\": \"1.1.0\"\n}\n",
			changes:  1,
		},
		{
			name:     "should replace a single quoted version field",
			content:  "module.exports = { 'version': '1.0.0' }",
			expected: "module.exports = { 'version': '1.1.0' }",
			changes:  1,
		},
		{
			name:     "should replace a version label",
			content:  "Current version: 1.0.0\n",
			expected: "Current version: 1.1.0\n",
			changes:  1,
		},
		{
			name:     "should replace a markdown header",
			content:  "## 1.0.0 - 2026-01-01\n",
			expected: "## 1.1.0 - 2026-01-01\n",
			changes:  1,
		},
		{
			name:     "should leave bare mentions of the version untouched",
			content:  "Upgrading from 1.0.0 is supported.\n",
			expected: "Upgrading from 1.0.0 is supported.\n",
			changes:  0,
		},
		{
			name:     "should not treat dots of the old version as wildcards",
			content:  "{\"version\": \"1x0x0\"}",
			expected: "{\"version\": \"1x0x0\"}",
			changes:  0,
		},
		{
			name:     "should count every occurrence",
			content:  "version: 1.0.0\nversion: 1.0.0\n",
			expected: "version: 1.1.0\nversion: 1.1.0\n",
			changes:  2,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// given
			patterns, err := entities.CompilePatterns(entities.DefaultPatternSpecs(), "1.0.0", "1.1.0")
			require.NoError(t, err)

			// when
			result, changes := applyAll(t, patterns, tc.content)

			// then
			assert.Equal(t, tc.expected, result)
			assert.Equal(t, tc.changes, changes)
		})
	}
}

func TestCompilePatterns(t *testing.T) {
	t.Parallel()

	t.Run("should fail on an invalid match expression", func(t *testing.T) {
		t.Parallel()

		// given
		specs := []entities.PatternSpec{{Name: "broken", Match: "(unclosed" + entities.OldVersionToken, Replace: "x"}}

		// when
		patterns, err := entities.CompilePatterns(specs, "1.0.0", "1.1.0")

		// then
		require.Error(t, err)
		assert.Nil(t, patterns)
		assert.Contains(t, err.Error(), "patterns[0] (broken)")
	})

	t.Run("should insert a new version containing a dollar sign literally", func(t *testing.T) {
		t.Parallel()

		// given
		specs := []entities.PatternSpec{{
			Name:    "tag",
			Match:   `(v)` + entities.OldVersionToken,
			Replace: `${1}` + entities.NewVersionToken,
		}}
		patterns, err := entities.CompilePatterns(specs, "1.0.0", "2.0.0-$1")
		require.NoError(t, err)

		// when
		result, count, applyErr := patterns[0].Apply("release v1.0.0")

		// then
		require.NoError(t, applyErr)
		assert.Equal(t, "release v2.0.0-$1", result)
		assert.Equal(t, 1, count)
	})

	t.Run("should keep the pattern order", func(t *testing.T) {
		t.Parallel()

		// when
		patterns, err := entities.CompilePatterns(entities.DefaultPatternSpecs(), "1.0.0", "1.1.0")

		// then
		require.NoError(t, err)
		require.Len(t, patterns, len(entities.DefaultPatternSpecs()))
		for i, spec := range entities.DefaultPatternSpecs() {
			assert.Equal(t, spec.Name, patterns[i].Name)
		}
	})
}

func TestPatternApply(t *testing.T) {
	t.Parallel()

	t.Run("should fail when the template references an undefined group", func(t *testing.T) {
		t.Parallel()

		// given
		specs := []entities.PatternSpec{{
			Name:    "missing group",
			Match:   `(v)` + entities.OldVersionToken,
			Replace: `${1}${2}` + entities.NewVersionToken,
		}}
		patterns, err := entities.CompilePatterns(specs, "1.0.0", "1.1.0")
		require.NoError(t, err)

		// when
		result, count, applyErr := patterns[0].Apply("v1.0.0")

		// then
		require.ErrorIs(t, applyErr, entities.ErrTemplateGroup)
		assert.Equal(t, "v1.0.0", result)
		assert.Zero(t, count)
	})

	t.Run("should fail when the template references an unknown named group", func(t *testing.T) {
		t.Parallel()

		// given
		specs := []entities.PatternSpec{{
			Name:    "named",
			Match:   `(?P<prefix>v)` + entities.OldVersionToken,
			Replace: `${suffix}` + entities.NewVersionToken,
		}}
		patterns, err := entities.CompilePatterns(specs, "1.0.0", "1.1.0")
		require.NoError(t, err)

		// when
		_, _, applyErr := patterns[0].Apply("v1.0.0")

		// then
		require.ErrorIs(t, applyErr, entities.ErrTemplateGroup)
	})

	t.Run("should accept named groups and escaped dollars", func(t *testing.T) {
		t.Parallel()

		// given
		specs := []entities.PatternSpec{{
			Name:    "named",
			Match:   `(?P<prefix>v)` + entities.OldVersionToken,
			Replace: `$$${prefix}` + entities.NewVersionToken,
		}}
		patterns, err := entities.CompilePatterns(specs, "1.0.0", "1.1.0")
		require.NoError(t, err)

		// when
		result, count, applyErr := patterns[0].Apply("v1.0.0")

		// then
		require.NoError(t, applyErr)
		assert.Equal(t, "$v1.1.0", result)
		assert.Equal(t, 1, count)
	})

	t.Run("should not validate the template when nothing matches", func(t *testing.T) {
		t.Parallel()

		// given
		specs := []entities.PatternSpec{{Name: "missing group", Match: entities.OldVersionToken, Replace: `${3}`}}
		patterns, err := entities.CompilePatterns(specs, "1.0.0", "1.1.0")
		require.NoError(t, err)

		// when
		result, count, applyErr := patterns[0].Apply("nothing here")

		// then
		require.NoError(t, applyErr)
		assert.Equal(t, "nothing here", result)
		assert.Zero(t, count)
	})

	t.Run("should leave no old version behind on a second pass", func(t *testing.T) {
		t.Parallel()

		// given
		patterns, err := entities.CompilePatterns(entities.DefaultPatternSpecs(), "1.0.0", "1.1.0")
		require.NoError(t, err)
		once, _ := applyAll(t, patterns, "## 1.0.0 \nversion: 1.0.0\n\"version\": \"1.0.0\"\n")

		// when
		twice, changes := applyAll(t, patterns, once)

		// then
		assert.Equal(t, once, twice)
		assert.Zero(t, changes)
	})
}
