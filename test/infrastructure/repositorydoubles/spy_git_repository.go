//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/verbump/internal/domain/entities"
	"github.com/rios0rios0/verbump/internal/domain/repositories"
)

// SpyGitRepository implements repositories.GitRepository as a configurable spy.
type SpyGitRepository struct {
	// --- CommitAndTag ---
	CommitErr   error
	CommitCalls []CommitCall

	// --- Push ---
	PushErr   error
	PushCalls int

	// --- history ---
	SinceCommits    []entities.Commit
	SinceErr        error
	SinceHashes     []string
	SinceTagCommits []entities.Commit
	SinceTagErr     error
	RecentResult    []entities.Commit
	RecentErr       error
	RecentLimits    []int
}

// CommitCall records a single invocation of CommitAndTag.
type CommitCall struct {
	Message string
	Tag     string
}

var _ repositories.GitRepository = (*SpyGitRepository)(nil)

func (s *SpyGitRepository) CommitAndTag(_ context.Context, message, tag string) error {
	s.CommitCalls = append(s.CommitCalls, CommitCall{Message: message, Tag: tag})
	return s.CommitErr
}

func (s *SpyGitRepository) Push(_ context.Context) error {
	s.PushCalls++
	return s.PushErr
}

func (s *SpyGitRepository) CommitsSince(_ context.Context, shortHash string) ([]entities.Commit, error) {
	s.SinceHashes = append(s.SinceHashes, shortHash)
	return s.SinceCommits, s.SinceErr
}

func (s *SpyGitRepository) CommitsSinceLastTag(_ context.Context) ([]entities.Commit, error) {
	return s.SinceTagCommits, s.SinceTagErr
}

func (s *SpyGitRepository) RecentCommits(_ context.Context, limit int) ([]entities.Commit, error) {
	s.RecentLimits = append(s.RecentLimits, limit)
	return s.RecentResult, s.RecentErr
}

// Factory returns a repositories.GitRepositoryFactory that always serves this spy.
func (s *SpyGitRepository) Factory() repositories.GitRepositoryFactory {
	return func(_ string) (repositories.GitRepository, error) { return s, nil }
}

// FailingGitFactory returns a factory that cannot open any repository.
func FailingGitFactory(err error) repositories.GitRepositoryFactory {
	return func(_ string) (repositories.GitRepository, error) { return nil, err }
}
