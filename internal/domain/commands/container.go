package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	if err := container.Provide(NewUpdateReferencesCommand); err != nil {
		return err
	}
	if err := container.Provide(NewBumpCommand); err != nil {
		return err
	}
	if err := container.Provide(NewChangelogCommand); err != nil {
		return err
	}
	if err := container.Provide(NewInitCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *UpdateReferencesCommand) UpdateReferences {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *BumpCommand) Bump {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *ChangelogCommand) Changelog {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *InitCommand) Init {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
