package entities

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// ReleaseKind selects which part of a version is incremented.
type ReleaseKind string

const (
	ReleaseMajor      ReleaseKind = "major"
	ReleaseMinor      ReleaseKind = "minor"
	ReleasePatch      ReleaseKind = "patch"
	ReleasePreMajor   ReleaseKind = "premajor"
	ReleasePreMinor   ReleaseKind = "preminor"
	ReleasePrePatch   ReleaseKind = "prepatch"
	ReleasePrerelease ReleaseKind = "prerelease"
)

// ReleaseKinds lists every supported kind, in the order they are documented.
func ReleaseKinds() []ReleaseKind {
	return []ReleaseKind{
		ReleaseMajor, ReleaseMinor, ReleasePatch,
		ReleasePreMajor, ReleasePreMinor, ReleasePrePatch, ReleasePrerelease,
	}
}

// ParseReleaseKind validates a release kind given on the command line.
func ParseReleaseKind(raw string) (ReleaseKind, error) {
	kind := ReleaseKind(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range ReleaseKinds() {
		if kind == known {
			return kind, nil
		}
	}
	return "", fmt.Errorf("invalid release kind %q: expected one of %v", raw, ReleaseKinds())
}

// version holds the parsed parts of a MAJOR.MINOR.PATCH[-PRERELEASE] string.
type version struct {
	prefix     string
	major      int
	minor      int
	patch      int
	prerelease string
}

func (v version) String() string {
	base := fmt.Sprintf("%s%d.%d.%d", v.prefix, v.major, v.minor, v.patch)
	if v.prerelease != "" {
		return base + "-" + v.prerelease
	}
	return base
}

// BumpVersion increments current by kind, keeping a leading "v" when present
// and dropping build metadata. Prerelease handling mirrors npm's semver.inc.
func BumpVersion(current string, kind ReleaseKind) (string, error) {
	parsed, err := parseVersion(current)
	if err != nil {
		return "", err
	}

	switch kind {
	case ReleaseMajor:
		if parsed.minor != 0 || parsed.patch != 0 || parsed.prerelease == "" {
			parsed.major++
		}
		parsed.minor, parsed.patch, parsed.prerelease = 0, 0, ""
	case ReleaseMinor:
		if parsed.patch != 0 || parsed.prerelease == "" {
			parsed.minor++
		}
		parsed.patch, parsed.prerelease = 0, ""
	case ReleasePatch:
		if parsed.prerelease == "" {
			parsed.patch++
		}
		parsed.prerelease = ""
	case ReleasePreMajor:
		parsed.major++
		parsed.minor, parsed.patch, parsed.prerelease = 0, 0, "0"
	case ReleasePreMinor:
		parsed.minor++
		parsed.patch, parsed.prerelease = 0, "0"
	case ReleasePrePatch:
		parsed.patch++
		parsed.prerelease = "0"
	case ReleasePrerelease:
		if parsed.prerelease == "" {
			parsed.patch++
			parsed.prerelease = "0"
		} else {
			parsed.prerelease = incrementPrerelease(parsed.prerelease)
		}
	default:
		return "", fmt.Errorf("invalid release kind %q", kind)
	}

	return parsed.String(), nil
}

// IsNewerVersion reports whether candidate sorts after current.
func IsNewerVersion(current, candidate string) bool {
	return semver.Compare(canonical(candidate), canonical(current)) > 0
}

func parseVersion(raw string) (version, error) {
	trimmed := strings.TrimSpace(raw)
	prefix := ""
	if strings.HasPrefix(trimmed, "v") {
		prefix = "v"
	}

	full := canonical(trimmed)
	if !semver.IsValid(full) {
		return version{}, fmt.Errorf("invalid semantic version %q", raw)
	}

	prerelease := semver.Prerelease(full)
	core := strings.TrimSuffix(strings.TrimSuffix(full, semver.Build(full)), prerelease)
	parts := strings.Split(strings.TrimPrefix(core, "v"), ".")
	if len(parts) != 3 { //nolint:mnd // major.minor.patch
		return version{}, fmt.Errorf("invalid semantic version %q: expected MAJOR.MINOR.PATCH", raw)
	}

	numbers := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return version{}, fmt.Errorf("invalid semantic version %q: %w", raw, err)
		}
		numbers[i] = n
	}

	return version{
		prefix:     prefix,
		major:      numbers[0],
		minor:      numbers[1],
		patch:      numbers[2],
		prerelease: strings.TrimPrefix(prerelease, "-"),
	}, nil
}

// incrementPrerelease bumps the last numeric identifier, or appends ".0" when there is none.
func incrementPrerelease(prerelease string) string {
	identifiers := strings.Split(prerelease, ".")
	for i := len(identifiers) - 1; i >= 0; i-- {
		if n, err := strconv.Atoi(identifiers[i]); err == nil {
			identifiers[i] = strconv.Itoa(n + 1)
			return strings.Join(identifiers, ".")
		}
	}
	return prerelease + ".0"
}

// canonical adds the "v" prefix expected by golang.org/x/mod/semver.
func canonical(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "v") {
		return raw
	}
	return "v" + raw
}
