//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/verbump/internal/domain/commands"
)

// StubInitCommand is a stub implementation of commands.Init.
type StubInitCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastDir          string
	LastForce        bool
}

var _ commands.Init = (*StubInitCommand)(nil)

func (s *StubInitCommand) Execute(dir string, force bool) (string, error) {
	s.ExecuteCallCount++
	s.LastDir = dir
	s.LastForce = force
	if s.ExecuteErr != nil {
		return "", s.ExecuteErr
	}
	return commands.DefaultConfigFile, nil
}
