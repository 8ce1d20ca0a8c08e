package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/verbump/internal/domain/commands"
	"github.com/rios0rios0/verbump/internal/domain/entities"
)

// BumpController handles the root command: verbump <kind>.
type BumpController struct {
	command commands.Bump
}

// NewBumpController creates a new BumpController.
func NewBumpController(command commands.Bump) *BumpController {
	return &BumpController{command: command}
}

// GetBind returns the Cobra command metadata for the bump controller.
func (it *BumpController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "verbump [major|minor|patch|premajor|preminor|prepatch|prerelease]",
		Short: "Bump the project version everywhere it is referenced",
		Long: `Increment the version held by the project manifest and propagate it.

The new version is written to the manifest, to every version reference found
in the configured files (badges, "version" fields, version: labels and
markdown headers), and to a new changelog entry. The result is committed and
tagged, and optionally pushed.

Usage:
  verbump patch                 1.2.3 -> 1.2.4
  verbump minor --push          1.2.3 -> 1.3.0, then push branch and tags
  verbump prerelease --dry-run  show what would change`,
	}
}

// AddFlags registers the release flags.
func (it *BumpController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("no-git", false, "Do not commit or tag")
	cmd.Flags().Bool("push", false, "Push the branch and tags after tagging")
	cmd.Flags().Bool("no-changelog", false, "Do not update the changelog")
	cmd.Flags().Bool("generate-changelog", false, "Build the changelog entry from the commit history")
	cmd.Flags().Bool("no-version-update", false, "Do not update version references in project files")
}

// Execute runs a release of the kind given as first argument.
func (it *BumpController) Execute(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	kind, err := entities.ParseReleaseKind(args[0])
	if err != nil {
		return err
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("Failed to load config: %v", err)
		return err
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	noGit, _ := cmd.Flags().GetBool("no-git")
	push, _ := cmd.Flags().GetBool("push")
	noChangelog, _ := cmd.Flags().GetBool("no-changelog")
	generate, _ := cmd.Flags().GetBool("generate-changelog")
	noVersionUpdate, _ := cmd.Flags().GetBool("no-version-update")

	result, err := it.command.Execute(context.Background(), settings, commands.BumpOptions{
		Dir:               projectDir(cmd),
		Kind:              kind,
		DryRun:            dryRun,
		NoGit:             noGit,
		Push:              push,
		NoChangelog:       noChangelog,
		GenerateChangelog: generate,
		NoVersionUpdate:   noVersionUpdate,
	})
	if err != nil {
		logger.Errorf("Version bump failed: %v", err)
		return err
	}

	out := cmd.OutOrStdout()
	if result.Summary != nil {
		PrintSummaryLine(out, result.Summary)
	}
	_, _ = fmt.Fprintf(out, "%s -> %s\n", result.OldVersion, result.NewVersion)
	return nil
}
