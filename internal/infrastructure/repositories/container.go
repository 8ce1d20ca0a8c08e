package repositories

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/verbump/internal/domain/repositories"
	"github.com/rios0rios0/verbump/internal/infrastructure/repositories/filesystem"
	"github.com/rios0rios0/verbump/internal/infrastructure/repositories/git"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Project trees are opened per invocation, so the factories are provided
	if err := container.Provide(func() repositories.FileRepositoryFactory {
		return filesystem.NewLocalFileRepository
	}); err != nil {
		return err
	}
	if err := container.Provide(func() repositories.GitRepositoryFactory {
		return git.NewGoGitRepository
	}); err != nil {
		return err
	}

	return nil
}
