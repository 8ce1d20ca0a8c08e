package commands

import (
	"context"
	"fmt"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/verbump/internal/domain/entities"
	"github.com/rios0rios0/verbump/internal/domain/repositories"
)

// Bump is the interface for the release command.
type Bump interface {
	Execute(ctx context.Context, settings *entities.Settings, opts BumpOptions) (*BumpResult, error)
}

// BumpOptions holds runtime options for one release.
type BumpOptions struct {
	Dir               string
	Kind              entities.ReleaseKind
	DryRun            bool
	NoGit             bool
	Push              bool
	NoChangelog       bool
	GenerateChangelog bool
	NoVersionUpdate   bool
}

// BumpResult describes a completed release.
type BumpResult struct {
	OldVersion string
	NewVersion string
	Tag        string
	Summary    *entities.RunSummary // nil when references were not updated
	Changelog  string               // the inserted entry, empty when skipped
}

// BumpCommand increments the project version and propagates it to the
// manifest, the version references, the changelog and git.
type BumpCommand struct {
	references UpdateReferences
	openFiles  repositories.FileRepositoryFactory
	openGit    repositories.GitRepositoryFactory
	now        func() time.Time
}

// NewBumpCommand creates a new BumpCommand.
func NewBumpCommand(
	references UpdateReferences,
	openFiles repositories.FileRepositoryFactory,
	openGit repositories.GitRepositoryFactory,
) *BumpCommand {
	return &BumpCommand{
		references: references,
		openFiles:  openFiles,
		openGit:    openGit,
		now:        time.Now,
	}
}

// Execute runs the release. Only manifest and changelog failures abort it;
// reference and git failures are logged.
func (it *BumpCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts BumpOptions,
) (*BumpResult, error) {
	files := it.openFiles(opts.Dir)

	data, err := files.ReadFile(settings.Manifest)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", settings.Manifest, err)
	}
	current, err := entities.ReadManifestVersion(settings.Manifest, data)
	if err != nil {
		return nil, err
	}
	next, err := entities.BumpVersion(current, opts.Kind)
	if err != nil {
		return nil, fmt.Errorf("failed to bump version %s: %w", current, err)
	}

	result := &BumpResult{OldVersion: current, NewVersion: next, Tag: settings.Tag(next)}
	logger.Infof("Bumping version from %s to %s (%s)", current, next, opts.Kind)

	if err = it.writeManifest(files, settings.Manifest, data, next, opts.DryRun); err != nil {
		return nil, err
	}

	if settings.UpdateVersionReferences && !opts.NoVersionUpdate {
		result.Summary = it.updateReferences(files, settings, current, next, opts.DryRun)
	}

	gitRepo := lazyGit(func() (repositories.GitRepository, error) { return it.openGit(opts.Dir) })

	if settings.UpdateChangelog && !opts.NoChangelog {
		writer := changelogWriter{files: files, openGit: gitRepo, date: it.now().Format(time.DateOnly)}
		generate := opts.GenerateChangelog || settings.GenerateChangelogFromCommits
		result.Changelog, err = writer.write(ctx, settings.ChangelogFile, next, generate, opts.DryRun)
		if err != nil {
			return nil, err
		}
	}

	if opts.NoGit || opts.DryRun {
		if opts.DryRun && !opts.NoGit {
			logger.Infof("[DRY RUN] Would commit and tag %s", result.Tag)
		}
		return result, nil
	}

	it.release(ctx, gitRepo, settings, result, opts.Push || settings.Push)
	return result, nil
}

func (it *BumpCommand) writeManifest(
	files repositories.FileRepository,
	name string,
	data []byte,
	version string,
	dryRun bool,
) error {
	updated, changed, err := entities.WriteManifestVersion(name, data, version)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	if dryRun {
		logger.Infof("[DRY RUN] Would update %s to %s", name, version)
		return nil
	}
	if writeErr := files.WriteFile(name, updated); writeErr != nil {
		return fmt.Errorf("failed to write manifest %s: %w", name, writeErr)
	}
	logger.Infof("Updated %s", name)
	return nil
}

func (it *BumpCommand) updateReferences(
	files repositories.FileRepository,
	settings *entities.Settings,
	oldVersion, newVersion string,
	dryRun bool,
) *entities.RunSummary {
	summary, err := it.references.Execute(files, oldVersion, newVersion, UpdateReferencesOptions{
		Files:    settings.Files,
		Patterns: settings.Patterns,
		DryRun:   dryRun,
		Exclude:  []string{settings.Manifest, settings.ChangelogFile},
		Progress: LogProgress,
	})
	if err != nil {
		logger.Errorf("Failed to update version references: %v", err)
		return nil
	}
	return summary
}

// release commits, tags and optionally pushes. Failures are logged only.
func (it *BumpCommand) release(
	ctx context.Context,
	openGit func() (repositories.GitRepository, error),
	settings *entities.Settings,
	result *BumpResult,
	push bool,
) {
	gitRepo, err := openGit()
	if err != nil {
		logger.Warnf("Skipping commit and tag: %v", err)
		return
	}

	if err = gitRepo.CommitAndTag(ctx, settings.FormatCommitMessage(result.NewVersion), result.Tag); err != nil {
		logger.Errorf("Failed to commit and tag %s: %v", result.Tag, err)
		return
	}
	logger.Infof("Committed and tagged %s", result.Tag)

	if !push {
		return
	}
	if err = gitRepo.Push(ctx); err != nil {
		logger.Errorf("Failed to push %s: %v", result.Tag, err)
		return
	}
	logger.Infof("Pushed %s", result.Tag)
}

// LogProgress reports a processed file at debug level, or its failure as a warning.
func LogProgress(result entities.UpdateResult, err error) {
	switch {
	case err != nil:
		logger.Warnf("Failed to update %s: %v", result.File, err)
	case result.Changes > 0:
		logger.Debugf("Updated %s: %d change(s) on lines %v", result.File, result.Changes, result.Lines)
	default:
		logger.Debugf("No version reference in %s", result.File)
	}
}

// lazyGit opens the repository on first use and remembers the outcome.
func lazyGit(open func() (repositories.GitRepository, error)) func() (repositories.GitRepository, error) {
	var (
		repo   repositories.GitRepository
		err    error
		opened bool
	)
	return func() (repositories.GitRepository, error) {
		if !opened {
			repo, err = open()
			opened = true
		}
		return repo, err
	}
}
