package repositories

import (
	"context"
	"errors"

	"github.com/rios0rios0/verbump/internal/domain/entities"
)

// ErrNoTags is returned when the history has no tag to start from.
var ErrNoTags = errors.New("no tags found in repository history")

// ErrCommitNotFound is returned when a referenced commit is not reachable from HEAD.
var ErrCommitNotFound = errors.New("commit not found in repository history")

// GitRepository abstracts the source-control operations of a release.
type GitRepository interface {
	// CommitAndTag stages every change, commits it with message and tags the new commit.
	CommitAndTag(ctx context.Context, message, tag string) error

	// Push sends the current branch and its tags to origin.
	Push(ctx context.Context) error

	// CommitsSince returns the commits reachable from HEAD that are newer than
	// the commit whose hash starts with shortHash, newest first.
	CommitsSince(ctx context.Context, shortHash string) ([]entities.Commit, error)

	// CommitsSinceLastTag returns the commits newer than the most recent tag, newest first.
	CommitsSinceLastTag(ctx context.Context) ([]entities.Commit, error)

	// RecentCommits returns up to limit commits from HEAD, newest first.
	RecentCommits(ctx context.Context, limit int) ([]entities.Commit, error)
}

// GitRepositoryFactory opens the git repository containing dir.
type GitRepositoryFactory func(dir string) (GitRepository, error)

// FileRepositoryFactory opens the project tree rooted at dir.
type FileRepositoryFactory func(dir string) FileRepository
