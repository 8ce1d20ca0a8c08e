package controllers

import (
	"path/filepath"

	"github.com/fatih/color"
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/verbump/internal/domain/commands"
	"github.com/rios0rios0/verbump/internal/domain/entities"
)

// InitController handles the "init" subcommand.
type InitController struct {
	command commands.Init
}

// NewInitController creates a new InitController.
func NewInitController(command commands.Init) *InitController {
	return &InitController{command: command}
}

// GetBind returns the Cobra command metadata for the init controller.
func (it *InitController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Create .verbump.yaml in the project directory with the default settings,
file specifiers and version patterns, ready to be edited.`,
	}
}

// AddFlags registers the init flags.
func (it *InitController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("force", false, "Overwrite an existing configuration file")
}

// Execute writes the configuration file.
func (it *InitController) Execute(cmd *cobra.Command, _ []string) error {
	force, _ := cmd.Flags().GetBool("force")
	dir := projectDir(cmd)

	name, err := it.command.Execute(dir, force)
	if err != nil {
		logger.Errorf("Init failed: %v", err)
		return err
	}

	_, _ = color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Created %s\n", filepath.Join(dir, name))
	return nil
}
