package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/verbump/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewBumpController); err != nil {
		return err
	}
	if err := container.Provide(NewChangelogController); err != nil {
		return err
	}
	if err := container.Provide(NewRefsController); err != nil {
		return err
	}
	if err := container.Provide(NewInitController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates the subcommand controllers for the AppInternal.
// The bump controller is the root command and is not listed.
func NewControllers(
	changelogController *ChangelogController,
	refsController *RefsController,
	initController *InitController,
) *[]entities.Controller {
	return &[]entities.Controller{
		changelogController,
		refsController,
		initController,
	}
}
