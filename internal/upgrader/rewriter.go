package upgrader

import (
	"fmt"

	"github.com/rios0rios0/verbump/internal/domain/entities"
	"github.com/rios0rios0/verbump/internal/domain/repositories"
)

// Rewriter applies a pattern set to the files of one project tree.
type Rewriter struct {
	files repositories.FileRepository
}

// NewRewriter creates a Rewriter over the given tree.
func NewRewriter(files repositories.FileRepository) *Rewriter {
	return &Rewriter{files: files}
}

// Rewrite reads name once, runs every pattern in order over the working copy
// and reports how many occurrences changed and on which lines. Unless dryRun
// is set, a changed file is written back in a single operation.
func (r *Rewriter) Rewrite(
	name string,
	patterns []entities.Pattern,
	dryRun bool,
) (entities.UpdateResult, error) {
	result := entities.UpdateResult{File: name, Lines: []int{}}

	data, err := r.files.ReadFile(name)
	if err != nil {
		return result, fmt.Errorf("failed to read %s: %w", name, err)
	}

	original := string(data)
	content := original

	for _, pattern := range patterns {
		next, count, applyErr := pattern.Apply(content)
		if applyErr != nil {
			return result, fmt.Errorf("failed to apply pattern %q to %s: %w", pattern.Name, name, applyErr)
		}
		if next != content {
			result.Changes += count
			content = next
		}
	}

	if result.Changes == 0 {
		return result, nil
	}
	result.Lines = ChangedLines(original, content)

	if dryRun {
		return result, nil
	}

	if writeErr := r.files.WriteFile(name, []byte(content)); writeErr != nil {
		return result, fmt.Errorf("failed to write %s: %w", name, writeErr)
	}
	return result, nil
}
