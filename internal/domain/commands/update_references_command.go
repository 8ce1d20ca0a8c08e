package commands

import (
	"errors"
	"path"
	"path/filepath"
	"slices"

	"github.com/rios0rios0/verbump/internal/domain/entities"
	"github.com/rios0rios0/verbump/internal/domain/repositories"
	"github.com/rios0rios0/verbump/internal/scanner"
	"github.com/rios0rios0/verbump/internal/upgrader"
)

// UpdateReferences is the interface for the version reference update.
type UpdateReferences interface {
	Execute(
		files repositories.FileRepository,
		oldVersion, newVersion string,
		opts UpdateReferencesOptions,
	) (*entities.RunSummary, error)
}

// ProgressFunc is notified once per candidate file, after it was processed.
type ProgressFunc func(result entities.UpdateResult, err error)

// UpdateReferencesOptions holds the configuration of one reference update.
type UpdateReferencesOptions struct {
	Files    []string               // file specifiers, scanner.DefaultFiles when empty
	Patterns []entities.PatternSpec // replaces the default patterns entirely when set
	DryRun   bool
	Exclude  []string // literal paths removed from the candidates
	Progress ProgressFunc
}

// UpdateReferencesCommand rewrites the old version to the new one across the
// files of a project tree. A failing file is recorded and never stops the run.
type UpdateReferencesCommand struct{}

// NewUpdateReferencesCommand creates a new UpdateReferencesCommand.
func NewUpdateReferencesCommand() *UpdateReferencesCommand {
	return &UpdateReferencesCommand{}
}

// Execute resolves the candidate files and rewrites each one in turn.
func (it *UpdateReferencesCommand) Execute(
	files repositories.FileRepository,
	oldVersion, newVersion string,
	opts UpdateReferencesOptions,
) (*entities.RunSummary, error) {
	if oldVersion == "" {
		return nil, errors.New("old version is required")
	}
	if newVersion == "" {
		return nil, errors.New("new version is required")
	}

	specs := opts.Patterns
	if len(specs) == 0 {
		specs = entities.DefaultPatternSpecs()
	}
	patterns, err := entities.CompilePatterns(specs, oldVersion, newVersion)
	if err != nil {
		return nil, err
	}

	fileSpecs := opts.Files
	if len(fileSpecs) == 0 {
		fileSpecs = scanner.DefaultFiles
	}

	excluded := make([]string, 0, len(opts.Exclude))
	for _, name := range opts.Exclude {
		excluded = append(excluded, path.Clean(filepath.ToSlash(name)))
	}

	rewriter := upgrader.NewRewriter(files)
	summary := entities.NewRunSummary()

	for _, name := range scanner.NewSelector(files).Select(fileSpecs) {
		if slices.Contains(excluded, name) {
			continue
		}

		result, rewriteErr := rewriter.Rewrite(name, patterns, opts.DryRun)
		if rewriteErr != nil {
			summary.RecordError(name, rewriteErr)
		} else {
			summary.Record(result)
		}

		if opts.Progress != nil {
			opts.Progress(result, rewriteErr)
		}
	}

	return summary, nil
}
