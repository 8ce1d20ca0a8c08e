//go:build unit

package upgrader_test

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/verbump/internal/domain/entities"
	"github.com/rios0rios0/verbump/internal/upgrader"
	doubles "github.com/rios0rios0/verbump/test/infrastructure/repositorydoubles"
)

// textFragments build surrounding text with both line ending styles.
//
//nolint:gochecknoglobals // read-only generator input
var textFragments = []string{"a", "Z", " ", "\t", "\n", "\r\n", "##", "version", "-"}

func joinFragments(indexes []int) string {
	var builder strings.Builder
	for _, index := range indexes {
		builder.WriteString(textFragments[index])
	}
	return builder.String()
}

func lineBreak(crlf bool) string {
	if crlf {
		return "\r\n"
	}
	return "\n"
}

func TestRewriterProperties(t *testing.T) {
	t.Parallel()

	patterns, err := entities.CompilePatterns(entities.DefaultPatternSpecs(), "1.0.0", "2.0.0")
	require.NoError(t, err)

	properties := gopter.NewProperties(nil)

	properties.Property("content without the old version is never modified", prop.ForAll(
		func(content string) bool {
			files := doubles.NewSpyFileRepository(map[string]string{"file.txt": content})
			result, rewriteErr := upgrader.NewRewriter(files).Rewrite("file.txt", patterns, false)
			return rewriteErr == nil &&
				result.Changes == 0 &&
				len(files.Writes) == 0 &&
				files.Content("file.txt") == content
		},
		gen.AnyString().SuchThat(func(s string) bool { return !strings.Contains(s, "1.0.0") }),
	))

	properties.Property("bytes around a reference are preserved", prop.ForAll(
		func(prefix, suffix string) bool {
			content := prefix + `"version": "1.0.0"` + suffix
			files := doubles.NewSpyFileRepository(map[string]string{"file.json": content})
			result, rewriteErr := upgrader.NewRewriter(files).Rewrite("file.json", patterns, false)
			return rewriteErr == nil &&
				result.Changes == 1 &&
				files.Content("file.json") == prefix+`"version": "2.0.0"`+suffix
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.Property("dry-run reports what a real run does and never writes", prop.ForAll(
		func(fragments []int, copies int, crlf bool) bool {
			content := joinFragments(fragments) + strings.Repeat(lineBreak(crlf)+"version: 1.0.0", copies)
			previewFiles := doubles.NewSpyFileRepository(map[string]string{"file.md": content})
			realFiles := doubles.NewSpyFileRepository(map[string]string{"file.md": content})

			preview, previewErr := upgrader.NewRewriter(previewFiles).Rewrite("file.md", patterns, true)
			written, writeErr := upgrader.NewRewriter(realFiles).Rewrite("file.md", patterns, false)

			return previewErr == nil && writeErr == nil &&
				assert.ObjectsAreEqual(written, preview) &&
				preview.Changes == copies &&
				len(preview.Lines) == copies &&
				len(previewFiles.Writes) == 0 &&
				previewFiles.Content("file.md") == content &&
				realFiles.Content("file.md") == strings.ReplaceAll(content, "version: 1.0.0", "version: 2.0.0")
		},
		gen.SliceOf(gen.IntRange(0, len(textFragments)-1)),
		gen.IntRange(0, 5),
		gen.Bool(),
	))

	properties.Property("a second run finds nothing left to change", prop.ForAll(
		func(prefix string, copies int) bool {
			content := prefix + strings.Repeat("\n## 1.0.0 - today\nversion-1.0.0-blue", copies)
			files := doubles.NewSpyFileRepository(map[string]string{"file.md": content})
			rewriter := upgrader.NewRewriter(files)
			if _, firstErr := rewriter.Rewrite("file.md", patterns, false); firstErr != nil {
				return false
			}
			second, secondErr := rewriter.Rewrite("file.md", patterns, false)
			return secondErr == nil && second.Changes == 0
		},
		gen.AlphaString(),
		gen.IntRange(0, 5),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
