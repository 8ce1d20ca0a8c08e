package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/verbump/internal/domain/commands"
	"github.com/rios0rios0/verbump/internal/domain/entities"
)

// ChangelogController handles the "changelog" subcommand.
type ChangelogController struct {
	command commands.Changelog
}

// NewChangelogController creates a new ChangelogController.
func NewChangelogController(command commands.Changelog) *ChangelogController {
	return &ChangelogController{command: command}
}

// GetBind returns the Cobra command metadata for the changelog controller.
func (it *ChangelogController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "changelog",
		Short: "Add a changelog entry for the current version",
		Long: `Insert an entry for the version currently held by the manifest into
the changelog, without bumping anything.`,
	}
}

// AddFlags registers the changelog flags.
func (it *ChangelogController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("generate-changelog", false, "Build the entry from the commit history")
}

// Execute writes the entry and prints it.
func (it *ChangelogController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("Failed to load config: %v", err)
		return err
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	generate, _ := cmd.Flags().GetBool("generate-changelog")

	entry, err := it.command.Execute(context.Background(), settings, commands.ChangelogOptions{
		Dir:      projectDir(cmd),
		DryRun:   dryRun,
		Generate: generate,
	})
	if err != nil {
		logger.Errorf("Changelog update failed: %v", err)
		return err
	}

	if entry != "" {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), entry)
	}
	return nil
}
