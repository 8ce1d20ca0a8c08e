package entities

import (
	"regexp"
	"strings"
)

const (
	titlePrefix       = "# "
	h2Prefix          = "## "
	unreleasedHeading = "## [Unreleased]"
	bulletPrefix      = "- "
	defaultEntry      = "- Automatic version update."
)

var (
	// conventionalPrefix matches the type and scope of a conventional commit subject.
	conventionalPrefix = regexp.MustCompile(
		`(?i)^(feat|feature|fix|bug|chore|docs|style|refactor|perf|test|ci|build|revert)(\([^)]*\))?!?:\s*`,
	)
	// commitReference matches the "(abc1234 by" suffix written by formatCommit.
	commitReference = regexp.MustCompile(`\(([a-f0-9]{7}) by`)
)

// FormatChangelogEntry renders the section of one release. Without commits the
// section holds a single generic bullet.
func FormatChangelogEntry(version, date string, commits []Commit) string {
	lines := []string{h2Prefix + version + " - " + date, ""}

	groups := CategorizeCommits(commits)
	sections := []struct {
		heading string
		commits []Commit
	}{
		{"### ⚠️ Breaking Changes", groups.Breaking},
		{"### ✨ Features", groups.Features},
		{"### 🐛 Bug Fixes", groups.Fixes},
		{"### 📝 Other Changes", groups.Other},
	}

	written := false
	for _, section := range sections {
		if len(section.commits) == 0 {
			continue
		}
		lines = append(lines, section.heading)
		for _, commit := range section.commits {
			lines = append(lines, bulletPrefix+formatCommit(commit))
		}
		lines = append(lines, "")
		written = true
	}

	if !written {
		lines = append(lines, defaultEntry, "")
	}

	return strings.Join(lines, "\n")
}

// formatCommit renders "message (hash by author)" without the conventional prefix.
func formatCommit(commit Commit) string {
	message := strings.TrimSpace(conventionalPrefix.ReplaceAllString(commit.Subject(), ""))
	return message + " (" + commit.ShortHash() + " by " + commit.Author + ")"
}

// LastChangelogCommit returns the short hash of the most recent commit
// referenced in the changelog, or an empty string.
func LastChangelogCommit(content string) string {
	if match := commitReference.FindStringSubmatch(content); match != nil {
		return match[1]
	}
	return ""
}

// InsertChangelogEntry places a release entry in the changelog content.
//
// Behaviour:
//   - Empty content becomes the entry alone.
//   - Content that starts with a "# " title keeps the title and its intro
//     paragraphs (and a "## [Unreleased]" section) above the new entry.
//   - Any other content is pushed below the entry.
func InsertChangelogEntry(content, entry string) string {
	entryLines := strings.Split(strings.TrimRight(entry, "\n"), "\n")
	if strings.TrimSpace(content) == "" {
		return strings.Join(entryLines, "\n") + "\n"
	}

	lines := strings.Split(content, "\n")
	at := findEntryIndex(lines)
	if at == len(lines) {
		return strings.TrimRight(content, "\n") + "\n\n" + strings.Join(entryLines, "\n") + "\n"
	}

	block := make([]string, 0, len(entryLines)+2) //nolint:mnd // blank separators
	if at > 0 && strings.TrimSpace(lines[at-1]) != "" {
		block = append(block, "")
	}
	block = append(block, entryLines...)
	block = append(block, "")

	return strings.Join(insertLines(lines, at, block), "\n")
}

// findEntryIndex returns the line index where a new release entry belongs.
func findEntryIndex(lines []string) int {
	first := firstNonBlank(lines)
	if first < 0 || !strings.HasPrefix(strings.TrimSpace(lines[first]), titlePrefix) {
		return 0
	}

	at := findNextH2Index(lines, first)
	if at < len(lines) && strings.TrimSpace(lines[at]) == unreleasedHeading {
		at = findNextH2Index(lines, at)
	}
	return at
}

func firstNonBlank(lines []string) int {
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			return i
		}
	}
	return -1
}

// findNextH2Index returns the line index of the next "## " heading after
// startIdx, or len(lines) if there is none.
func findNextH2Index(lines []string, startIdx int) int {
	for i := startIdx + 1; i < len(lines); i++ {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), h2Prefix) {
			return i
		}
	}
	return len(lines)
}

// insertLines inserts extra lines into slice at the given index.
func insertLines(lines []string, at int, extra []string) []string {
	result := make([]string, 0, len(lines)+len(extra))
	result = append(result, lines[:at]...)
	result = append(result, extra...)
	result = append(result, lines[at:]...)
	return result
}
