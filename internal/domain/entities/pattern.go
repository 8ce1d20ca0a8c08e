package entities

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// OldVersionToken is expanded inside PatternSpec.Match to the quoted old version.
	OldVersionToken = "{{old_version}}"
	// NewVersionToken is expanded inside PatternSpec.Replace to the new version.
	NewVersionToken = "{{new_version}}"
)

// ErrTemplateGroup is returned when a replacement template references a capture
// group that its matcher does not define.
var ErrTemplateGroup = errors.New("replacement references an undefined capture group")

// templateRefPattern matches the references understood by regexp.Expand: $$, ${name} and $name.
var templateRefPattern = regexp.MustCompile(`\$(?:\$|\{([A-Za-z0-9_]+)\}|([A-Za-z0-9_]+))`)

// PatternSpec describes one textual location of a version string as plain data,
// the way it is written in defaults and configuration files.
type PatternSpec struct {
	Name    string `yaml:"name"    json:"name"    hcl:"name,label"`
	Match   string `yaml:"match"   json:"match"   hcl:"match"   validate:"required"`
	Replace string `yaml:"replace" json:"replace" hcl:"replace" validate:"required"`
}

// Pattern is a compiled PatternSpec bound to the versions of one run.
// It is immutable and shared by every file of that run.
type Pattern struct {
	Name     string
	Matcher  *regexp.Regexp
	Template string
}

// DefaultPatternSpecs returns the built-in locations: badges, quoted "version"
// fields, 'version' fields, version: labels and markdown headers.
// The order matters: every pattern sees the output of the previous one.
func DefaultPatternSpecs() []PatternSpec {
	return []PatternSpec{
		{
			Name:    "badge",
			Match:   `(version-)` + OldVersionToken + `\b`,
			Replace: `${1}` + NewVersionToken,
		},
		{
			Name:    "double quoted field",
			Match:   `("version"\s*:\s*")` + OldVersionToken + `(")`,
			Replace: `${1}` + NewVersionToken + `${2}`,
		},
		{
			Name:    "single quoted field",
			Match:   `('version'\s*:\s*')` + OldVersionToken + `(')`,
			Replace: `${1}` + NewVersionToken + `${2}`,
		},
		{
			Name:    "version label",
			Match:   `(version\s*:\s*)` + OldVersionToken + `\b`,
			Replace: `${1}` + NewVersionToken,
		},
		{
			Name:    "markdown header",
			Match:   `(##\s+)` + OldVersionToken + `(\s)`,
			Replace: `${1}` + NewVersionToken + `${2}`,
		},
	}
}

// CompilePatterns binds the specs to a pair of versions. A matcher that fails to
// compile is a configuration error for the whole run.
func CompilePatterns(specs []PatternSpec, oldVersion, newVersion string) ([]Pattern, error) {
	patterns := make([]Pattern, 0, len(specs))
	quotedOld := regexp.QuoteMeta(oldVersion)
	escapedNew := strings.ReplaceAll(newVersion, "$", "$$")

	for i, spec := range specs {
		expr := strings.ReplaceAll(spec.Match, OldVersionToken, quotedOld)
		matcher, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("patterns[%d] (%s): invalid match expression: %w", i, spec.Name, err)
		}

		patterns = append(patterns, Pattern{
			Name:     spec.Name,
			Matcher:  matcher,
			Template: strings.ReplaceAll(spec.Replace, NewVersionToken, escapedNew),
		})
	}

	return patterns, nil
}

// Apply substitutes every occurrence of the pattern in content and returns the
// new content with the number of occurrences found.
func (p Pattern) Apply(content string) (string, int, error) {
	matches := p.Matcher.FindAllStringIndex(content, -1)
	if len(matches) == 0 {
		return content, 0, nil
	}

	if err := p.validateTemplate(); err != nil {
		return content, 0, err
	}

	return p.Matcher.ReplaceAllString(content, p.Template), len(matches), nil
}

// validateTemplate checks that every group referenced by the template exists in the matcher.
func (p Pattern) validateTemplate() error {
	names := p.Matcher.SubexpNames()

	for _, ref := range templateRefPattern.FindAllStringSubmatch(p.Template, -1) {
		name := ref[1]
		if name == "" {
			name = ref[2]
		}
		if name == "" {
			continue // escaped dollar
		}

		if index, err := strconv.Atoi(name); err == nil {
			if index > p.Matcher.NumSubexp() {
				return fmt.Errorf("%w: pattern %q uses $%s but defines %d group(s)",
					ErrTemplateGroup, p.Name, name, p.Matcher.NumSubexp())
			}
			continue
		}

		if !containsName(names, name) {
			return fmt.Errorf("%w: pattern %q uses ${%s}", ErrTemplateGroup, p.Name, name)
		}
	}

	return nil
}

func containsName(names []string, name string) bool {
	for _, candidate := range names {
		if candidate == name {
			return true
		}
	}
	return false
}
