//go:build unit

package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/verbump/internal/scanner"
)

func TestIsGlob(t *testing.T) {
	t.Parallel()

	t.Run("should detect wildcards", func(t *testing.T) {
		t.Parallel()

		// then
		assert.True(t, scanner.IsGlob("*.md"))
		assert.True(t, scanner.IsGlob("src/**/index.js"))
		assert.False(t, scanner.IsGlob("README.md"))
		assert.False(t, scanner.IsGlob("docs/[draft].md"))
	})
}

func TestCompileGlob(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		spec    string
		matches []string
		rejects []string
	}{
		{
			name:    "should keep a single star inside one directory",
			spec:    "*.md",
			matches: []string{"README.md", "CHANGELOG.md", ".md"},
			rejects: []string{"docs/guide.md", "README.mdx", "README.markdown"},
		},
		{
			name:    "should let a double star cross one or more directories",
			spec:    "src/**/*.js",
			matches: []string{"src/lib/util.js", "src/a/b/c/d.js"},
			rejects: []string{"src/index.ts", "lib/src/index.js", "srcx/index.js"},
		},
		{
			name:    "should let a double star slash cross zero directories",
			spec:    "src/**/*.js",
			matches: []string{"src/a.js", "src/index.js"},
			rejects: []string{"src/index.ts", "lib/src/index.js", "srcx/index.js"},
		},
		{
			name:    "should match everything with a lone double star",
			spec:    "**",
			matches: []string{"README.md", "a/b/c"},
		},
		{
			name:    "should treat a trailing double star as any suffix",
			spec:    "docs/**",
			matches: []string{"docs/a.md", "docs/v1/b.md"},
			rejects: []string{"doc/a.md"},
		},
		{
			name:    "should match dots and brackets literally",
			spec:    "docs/v1.0/[draft]*.md",
			matches: []string{"docs/v1.0/[draft]intro.md"},
			rejects: []string{"docs/v1x0/[draft]intro.md", "docs/v1.0/dintro.md"},
		},
		{
			name:    "should clean a leading ./",
			spec:    "./bin/*.js",
			matches: []string{"bin/cli.js"},
			rejects: []string{"./bin/cli.js"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// when
			matcher, err := scanner.CompileGlob(tc.spec)

			// then
			require.NoError(t, err)
			for _, name := range tc.matches {
				assert.True(t, matcher.MatchString(name), "%s should match %s", tc.spec, name)
			}
			for _, name := range tc.rejects {
				assert.False(t, matcher.MatchString(name), "%s should not match %s", tc.spec, name)
			}
		})
	}
}
