package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/verbump/internal/domain/entities"
	"github.com/rios0rios0/verbump/internal/domain/repositories"
)

// recentCommitsLimit bounds the history used when neither the changelog nor a tag marks a start.
const recentCommitsLimit = 10

// Changelog is the interface for the changelog-only update.
type Changelog interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ChangelogOptions) (string, error)
}

// ChangelogOptions holds runtime options for the changelog update.
type ChangelogOptions struct {
	Dir      string
	DryRun   bool
	Generate bool // build the entry from the commit history
}

// ChangelogCommand writes a changelog entry for the current manifest version.
type ChangelogCommand struct {
	openFiles repositories.FileRepositoryFactory
	openGit   repositories.GitRepositoryFactory
	now       func() time.Time
}

// NewChangelogCommand creates a new ChangelogCommand.
func NewChangelogCommand(
	openFiles repositories.FileRepositoryFactory,
	openGit repositories.GitRepositoryFactory,
) *ChangelogCommand {
	return &ChangelogCommand{openFiles: openFiles, openGit: openGit, now: time.Now}
}

// Execute inserts the entry and returns it, or an empty string when nothing was written.
func (it *ChangelogCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts ChangelogOptions,
) (string, error) {
	files := it.openFiles(opts.Dir)

	data, err := files.ReadFile(settings.Manifest)
	if err != nil {
		return "", fmt.Errorf("failed to read manifest %s: %w", settings.Manifest, err)
	}
	current, err := entities.ReadManifestVersion(settings.Manifest, data)
	if err != nil {
		return "", err
	}

	writer := changelogWriter{
		files:   files,
		openGit: func() (repositories.GitRepository, error) { return it.openGit(opts.Dir) },
		date:    it.now().Format(time.DateOnly),
	}
	return writer.write(ctx, settings.ChangelogFile, current, opts.Generate || settings.GenerateChangelogFromCommits, opts.DryRun)
}

// changelogWriter holds what a changelog update needs, shared by the bump and changelog commands.
type changelogWriter struct {
	files   repositories.FileRepository
	openGit func() (repositories.GitRepository, error)
	date    string
}

func (w changelogWriter) write(ctx context.Context, name, version string, generate, dryRun bool) (string, error) {
	content := ""
	data, err := w.files.ReadFile(name)
	switch {
	case err == nil:
		content = string(data)
	case errors.Is(err, fs.ErrNotExist):
		logger.Debugf("Changelog %s does not exist, it will be created", name)
	default:
		return "", fmt.Errorf("failed to read changelog %s: %w", name, err)
	}

	var commits []entities.Commit
	if generate {
		commits = w.collectCommits(ctx, content)
		if len(commits) == 0 {
			logger.Warn("No commits found since the last release, skipping changelog update")
			return "", nil
		}
	}

	entry := entities.FormatChangelogEntry(version, w.date, commits)
	if dryRun {
		logger.Infof("[DRY RUN] Would add to %s:\n%s", name, entry)
		return entry, nil
	}

	if writeErr := w.files.WriteFile(name, []byte(entities.InsertChangelogEntry(content, entry))); writeErr != nil {
		return "", fmt.Errorf("failed to write changelog %s: %w", name, writeErr)
	}
	logger.Infof("Updated %s", name)
	return entry, nil
}

// collectCommits returns the commits since the last one referenced by the
// changelog, else since the last tag, else the most recent ones.
func (w changelogWriter) collectCommits(ctx context.Context, content string) []entities.Commit {
	gitRepo, err := w.openGit()
	if err != nil {
		logger.Warnf("Failed to open git repository: %v", err)
		return nil
	}

	var commits []entities.Commit
	if hash := entities.LastChangelogCommit(content); hash != "" {
		commits, err = gitRepo.CommitsSince(ctx, hash)
		if err == nil {
			return entities.FilterReleaseCommits(commits)
		}
		logger.Debugf("Failed to read commits since %s: %v", hash, err)
	}

	commits, err = gitRepo.CommitsSinceLastTag(ctx)
	if err == nil {
		return entities.FilterReleaseCommits(commits)
	}
	if !errors.Is(err, repositories.ErrNoTags) {
		logger.Debugf("Failed to read commits since the last tag: %v", err)
	}

	commits, err = gitRepo.RecentCommits(ctx, recentCommitsLimit)
	if err != nil {
		logger.Warnf("Failed to read the commit history: %v", err)
		return nil
	}
	return entities.FilterReleaseCommits(commits)
}
