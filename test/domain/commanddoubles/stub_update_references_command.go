//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/verbump/internal/domain/commands"
	"github.com/rios0rios0/verbump/internal/domain/entities"
	"github.com/rios0rios0/verbump/internal/domain/repositories"
)

// StubUpdateReferencesCommand is a stub implementation of commands.UpdateReferences.
type StubUpdateReferencesCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Summary          *entities.RunSummary
	LastOldVersion   string
	LastNewVersion   string
	LastOpts         commands.UpdateReferencesOptions
}

var _ commands.UpdateReferences = (*StubUpdateReferencesCommand)(nil)

func (s *StubUpdateReferencesCommand) Execute(
	_ repositories.FileRepository,
	oldVersion, newVersion string,
	opts commands.UpdateReferencesOptions,
) (*entities.RunSummary, error) {
	s.ExecuteCallCount++
	s.LastOldVersion = oldVersion
	s.LastNewVersion = newVersion
	s.LastOpts = opts
	if s.ExecuteErr != nil {
		return nil, s.ExecuteErr
	}
	if s.Summary == nil {
		return entities.NewRunSummary(), nil
	}
	return s.Summary, nil
}
