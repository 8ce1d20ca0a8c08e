package entities

import "strings"

const shortHashLength = 7

// Commit is a single entry of the repository history.
type Commit struct {
	Hash    string
	Author  string
	Message string
}

// ShortHash returns the abbreviated hash used in changelog references.
func (c Commit) ShortHash() string {
	if len(c.Hash) > shortHashLength {
		return c.Hash[:shortHashLength]
	}
	return c.Hash
}

// Subject returns the first line of the commit message.
func (c Commit) Subject() string {
	subject, _, _ := strings.Cut(strings.TrimSpace(c.Message), "\n")
	return strings.TrimSpace(subject)
}

// CommitGroups holds commits sorted into changelog sections.
type CommitGroups struct {
	Breaking []Commit
	Features []Commit
	Fixes    []Commit
	Other    []Commit
}

// FilterReleaseCommits drops the commits created by previous version bumps.
func FilterReleaseCommits(commits []Commit) []Commit {
	filtered := make([]Commit, 0, len(commits))
	for _, commit := range commits {
		subject := strings.ToLower(commit.Subject())
		if subject == "" || strings.Contains(subject, "bump version") || strings.Contains(subject, "version bump") {
			continue
		}
		filtered = append(filtered, commit)
	}
	return filtered
}

// CategorizeCommits sorts commits by the keywords of their subject.
// Breaking markers win over feature and fix keywords, so "feat!: x" is filed
// as breaking. The legacy JavaScript tool checked features first and filed it
// under Features.
func CategorizeCommits(commits []Commit) CommitGroups {
	var groups CommitGroups
	for _, commit := range commits {
		subject := strings.ToLower(commit.Subject())
		switch {
		case strings.Contains(subject, "breaking") || strings.Contains(subject, "!:"):
			groups.Breaking = append(groups.Breaking, commit)
		case strings.Contains(subject, "feat"):
			groups.Features = append(groups.Features, commit)
		case strings.Contains(subject, "fix") || strings.Contains(subject, "bug"):
			groups.Fixes = append(groups.Fixes, commit)
		default:
			groups.Other = append(groups.Other, commit)
		}
	}
	return groups
}
