//go:build unit

package entities_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/verbump/internal/domain/entities"
)

func TestRunSummary(t *testing.T) {
	t.Parallel()

	t.Run("should start with empty lists", func(t *testing.T) {
		t.Parallel()

		// when
		summary := entities.NewRunSummary()

		// then
		assert.NotNil(t, summary.Updated)
		assert.NotNil(t, summary.Skipped)
		assert.NotNil(t, summary.Errors)
		assert.False(t, summary.HasErrors())
	})

	t.Run("should file results by their change count", func(t *testing.T) {
		t.Parallel()

		// given
		summary := entities.NewRunSummary()

		// when
		summary.Record(entities.UpdateResult{File: "README.md", Changes: 2, Lines: []int{1, 4}})
		summary.Record(entities.UpdateResult{File: "docs/a.md", Lines: []int{}})
		summary.Record(entities.UpdateResult{File: "package.json", Changes: 1, Lines: []int{3}})
		summary.RecordError("bin/cli.js", errors.New("permission denied"))

		// then
		assert.Len(t, summary.Updated, 2)
		assert.Equal(t, []string{"docs/a.md"}, summary.Skipped)
		assert.Equal(t, 3, summary.TotalChanges)
		assert.Equal(t, []entities.FileError{{File: "bin/cli.js", Error: "permission denied"}}, summary.Errors)
		assert.True(t, summary.HasErrors())
	})
}
