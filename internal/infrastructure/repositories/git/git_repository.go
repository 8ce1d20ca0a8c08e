package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/verbump/internal/domain/entities"
	"github.com/rios0rios0/verbump/internal/domain/repositories"
)

// GoGitRepository implements repositories.GitRepository on top of go-git.
// Pushing goes through the git CLI so the user's credential helpers apply.
type GoGitRepository struct {
	repo *gogit.Repository
}

var _ repositories.GitRepository = (*GoGitRepository)(nil)

// NewGoGitRepository opens the repository containing dir.
func NewGoGitRepository(dir string) (repositories.GitRepository, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository at %s: %w", dir, err)
	}
	return &GoGitRepository{repo: repo}, nil
}

func (it *GoGitRepository) CommitAndTag(_ context.Context, message, tag string) error {
	worktree, err := it.repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree: %w", err)
	}

	//nolint:exhaustruct // only staging everything is needed
	if err = worktree.AddWithOptions(&gogit.AddOptions{All: true}); err != nil {
		return fmt.Errorf("failed to stage changes: %w", err)
	}

	// author and committer come from the git configuration
	//nolint:exhaustruct // defaults are fine
	hash, err := worktree.Commit(message, &gogit.CommitOptions{})
	if err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	logger.Debugf("Created commit %s", hash.String())

	if _, err = it.repo.CreateTag(tag, hash, nil); err != nil {
		return fmt.Errorf("failed to create tag %s: %w", tag, err)
	}
	return nil
}

func (it *GoGitRepository) Push(ctx context.Context) error {
	head, err := it.repo.Head()
	if err != nil {
		return fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return errors.New("HEAD is detached, nothing to push")
	}

	worktree, err := it.repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree: %w", err)
	}

	branch := head.Name().Short()
	cmd := exec.CommandContext(ctx, "git", "push", "origin", branch, "--tags")
	cmd.Dir = worktree.Filesystem.Root()
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("failed to push %s: %w: %s", branch, err, strings.TrimSpace(string(output)))
	}
	return nil
}

func (it *GoGitRepository) CommitsSince(ctx context.Context, shortHash string) ([]entities.Commit, error) {
	found := false
	commits, err := it.walk(ctx, func(commit *object.Commit) bool {
		if strings.HasPrefix(commit.Hash.String(), shortHash) {
			found = true
			return true
		}
		return false
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", repositories.ErrCommitNotFound, shortHash)
	}
	return commits, nil
}

func (it *GoGitRepository) CommitsSinceLastTag(ctx context.Context) ([]entities.Commit, error) {
	tagged, err := it.taggedCommits()
	if err != nil {
		return nil, err
	}
	if len(tagged) == 0 {
		return nil, repositories.ErrNoTags
	}

	found := false
	commits, err := it.walk(ctx, func(commit *object.Commit) bool {
		if _, ok := tagged[commit.Hash]; ok {
			found = true
			return true
		}
		return false
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, repositories.ErrNoTags
	}
	return commits, nil
}

func (it *GoGitRepository) RecentCommits(ctx context.Context, limit int) ([]entities.Commit, error) {
	if limit <= 0 {
		return []entities.Commit{}, nil
	}
	count := 0
	return it.walk(ctx, func(_ *object.Commit) bool {
		if count == limit {
			return true
		}
		count++
		return false
	})
}

// walk collects commits from HEAD, newest first, until stop reports true.
// The commit that stops the walk is not included.
func (it *GoGitRepository) walk(ctx context.Context, stop func(*object.Commit) bool) ([]entities.Commit, error) {
	head, err := it.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	//nolint:exhaustruct // starting point is enough
	iter, err := it.repo.Log(&gogit.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	defer iter.Close()

	commits := make([]entities.Commit, 0)
	err = iter.ForEach(func(commit *object.Commit) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if stop(commit) {
			return storer.ErrStop
		}
		commits = append(commits, entities.Commit{
			Hash:    commit.Hash.String(),
			Author:  commit.Author.Name,
			Message: commit.Message,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk history: %w", err)
	}
	return commits, nil
}

// taggedCommits returns the commits pointed to by lightweight or annotated tags.
func (it *GoGitRepository) taggedCommits() (map[plumbing.Hash]struct{}, error) {
	refs, err := it.repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer refs.Close()

	tagged := make(map[plumbing.Hash]struct{})
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		hash := ref.Hash()
		if tag, tagErr := it.repo.TagObject(hash); tagErr == nil {
			hash = tag.Target
		}
		tagged[hash] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tagged, nil
}
