package commands

import (
	"errors"
	"fmt"
	"io/fs"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/verbump/internal/domain/entities"
	"github.com/rios0rios0/verbump/internal/domain/repositories"
)

// DefaultConfigFile is the name of the configuration written by init.
const DefaultConfigFile = ".verbump.yaml"

// ErrConfigExists is returned when init would overwrite a configuration file.
var ErrConfigExists = errors.New("config file already exists")

// Init is the interface for the configuration bootstrap.
type Init interface {
	Execute(dir string, force bool) (string, error)
}

// InitCommand writes a configuration file holding the default settings.
type InitCommand struct {
	openFiles repositories.FileRepositoryFactory
}

// NewInitCommand creates a new InitCommand.
func NewInitCommand(openFiles repositories.FileRepositoryFactory) *InitCommand {
	return &InitCommand{openFiles: openFiles}
}

// Execute writes the configuration and returns its name. An existing file is
// only replaced when force is set.
func (it *InitCommand) Execute(dir string, force bool) (string, error) {
	files := it.openFiles(dir)

	_, err := files.Stat(DefaultConfigFile)
	switch {
	case err == nil && !force:
		return "", fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, DefaultConfigFile)
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("failed to check %s: %w", DefaultConfigFile, err)
	}

	settings := entities.DefaultSettings()
	settings.Patterns = entities.DefaultPatternSpecs()

	data, err := yaml.Marshal(settings)
	if err != nil {
		return "", fmt.Errorf("failed to encode settings: %w", err)
	}

	if writeErr := files.WriteFile(DefaultConfigFile, data); writeErr != nil {
		return "", fmt.Errorf("failed to write %s: %w", DefaultConfigFile, writeErr)
	}
	logger.Infof("Created %s", DefaultConfigFile)
	return DefaultConfigFile, nil
}
