package upgrader

import (
	"strings"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// ChangedLines returns the 1-based numbers of the lines of after that differ
// from before, ascending and without duplicates. The comparison is a
// line-aligned diff, so replacements that add or remove lines do not shift the
// numbers of the lines that follow them. A removal with no replacement is
// reported at the line now occupying its position.
func ChangedLines(before, after string) []int {
	lines := make([]int, 0)
	if before == after {
		return lines
	}

	dmp := diffmatchpatch.New()
	src, dst, _ := dmp.DiffLinesToRunes(before, after)
	diffs := dmp.DiffCleanupMerge(dmp.DiffMainRunes(src, dst, false))

	last := max(countLines(after), 1)
	add := func(line int) {
		line = min(line, last)
		if len(lines) == 0 || lines[len(lines)-1] < line {
			lines = append(lines, line)
		}
	}

	current := 1
	for i, diff := range diffs {
		count := utf8.RuneCountInString(diff.Text)

		switch diff.Type {
		case diffmatchpatch.DiffEqual:
			current += count
		case diffmatchpatch.DiffInsert:
			for offset := range count {
				add(current + offset)
			}
			current += count
		case diffmatchpatch.DiffDelete:
			if pairedWithInsert(diffs, i) {
				continue
			}
			add(current)
		}
	}

	return lines
}

func pairedWithInsert(diffs []diffmatchpatch.Diff, i int) bool {
	return (i+1 < len(diffs) && diffs[i+1].Type == diffmatchpatch.DiffInsert) ||
		(i > 0 && diffs[i-1].Type == diffmatchpatch.DiffInsert)
}

// countLines counts lines the way the diff splits them: a trailing newline does not open a new line.
func countLines(content string) int {
	if content == "" {
		return 0
	}
	count := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		count++
	}
	return count
}
