package scanner

import (
	"fmt"
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

// IsGlob reports whether the file specifier contains a wildcard.
func IsGlob(spec string) bool {
	return strings.Contains(spec, "*")
}

// CompileGlob translates a file specifier into an expression anchored to the
// whole relative path. Only "*" and "**" are special:
//
//	**/  zero or more leading directories
//	**   any sequence of characters, separators included
//	*    any sequence of characters except "/"
//
// Every other character, dots included, matches itself.
func CompileGlob(spec string) (*regexp.Regexp, error) {
	expr := translateGlob(normalizeSpec(spec))

	matcher, err := regexp.Compile("^" + expr + "$")
	if err != nil {
		return nil, fmt.Errorf("invalid file pattern %q: %w", spec, err)
	}
	return matcher, nil
}

func translateGlob(glob string) string {
	var builder strings.Builder

	for i := 0; i < len(glob); {
		switch {
		case strings.HasPrefix(glob[i:], "**/"):
			builder.WriteString(`(?:.*/)?`)
			i += 3
		case strings.HasPrefix(glob[i:], "**"):
			builder.WriteString(`.*`)
			i += 2
		case glob[i] == '*':
			builder.WriteString(`[^/]*`)
			i++
		default:
			next := strings.IndexByte(glob[i:], '*')
			if next < 0 {
				next = len(glob) - i
			}
			builder.WriteString(regexp.QuoteMeta(glob[i : i+next]))
			i += next
		}
	}

	return builder.String()
}

// normalizeSpec converts a specifier to the slash-separated, cleaned form used for matching.
func normalizeSpec(spec string) string {
	return path.Clean(filepath.ToSlash(spec))
}
