package controllers

import (
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/verbump/internal/domain/commands"
	"github.com/rios0rios0/verbump/internal/domain/entities"
	"github.com/rios0rios0/verbump/internal/domain/repositories"
)

// ErrFilesFailed is returned when at least one file could not be updated.
var ErrFilesFailed = errors.New("some files could not be updated")

// RefsController handles the "refs" subcommand.
type RefsController struct {
	command   commands.UpdateReferences
	openFiles repositories.FileRepositoryFactory
}

// NewRefsController creates a new RefsController.
func NewRefsController(
	command commands.UpdateReferences,
	openFiles repositories.FileRepositoryFactory,
) *RefsController {
	return &RefsController{command: command, openFiles: openFiles}
}

// GetBind returns the Cobra command metadata for the refs controller.
func (it *RefsController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "refs",
		Short: "Replace version references without touching the manifest",
		Long: `Rewrite every reference to one version with another across the
configured files, and report which files and lines changed.

Nothing else is modified: no manifest, changelog, commit or tag.`,
	}
}

// AddFlags registers the refs flags.
func (it *RefsController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("from", "", "Version to replace (required)")
	cmd.Flags().String("to", "", "Replacement version (required)")
	cmd.Flags().StringArray("file", nil, "File path or glob to scan (repeatable, overrides the config)")
	cmd.Flags().Bool("json", false, "Print the summary as JSON")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
}

// Execute runs the reference update and prints its summary.
func (it *RefsController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("Failed to load config: %v", err)
		return err
	}

	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	fileSpecs, _ := cmd.Flags().GetStringArray("file")
	asJSON, _ := cmd.Flags().GetBool("json")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	if len(fileSpecs) == 0 {
		fileSpecs = settings.Files
	}

	summary, err := it.command.Execute(it.openFiles(projectDir(cmd)), from, to, commands.UpdateReferencesOptions{
		Files:    fileSpecs,
		Patterns: settings.Patterns,
		DryRun:   dryRun,
		Progress: commands.LogProgress,
	})
	if err != nil {
		logger.Errorf("Reference update failed: %v", err)
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		if renderErr := RenderJSON(out, summary); renderErr != nil {
			return renderErr
		}
	} else {
		RenderSummary(out, summary)
		PrintSummaryLine(out, summary)
	}

	if summary.HasErrors() {
		return fmt.Errorf("%w: %d", ErrFilesFailed, len(summary.Errors))
	}
	return nil
}
