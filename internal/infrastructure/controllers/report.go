package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/rios0rios0/verbump/internal/domain/entities"
)

const (
	statusUpdated = "updated"
	statusSkipped = "skipped"
	statusError   = "error"
)

// RenderSummary writes one row per processed file followed by the total.
func RenderSummary(w io.Writer, summary *entities.RunSummary) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"File", "Status", "Changes", "Lines"})

	for _, result := range summary.Updated {
		tw.AppendRow(table.Row{result.File, statusUpdated, result.Changes, formatLines(result.Lines)})
	}
	for _, name := range summary.Skipped {
		tw.AppendRow(table.Row{name, statusSkipped, 0, ""})
	}
	for _, failure := range summary.Errors {
		tw.AppendRow(table.Row{failure.File, statusError, "", failure.Error})
	}

	tw.AppendFooter(table.Row{"Total", "", summary.TotalChanges, ""})
	tw.Render()
}

// RenderJSON writes the summary as indented JSON.
func RenderJSON(w io.Writer, summary *entities.RunSummary) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(summary); err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	return nil
}

// PrintSummaryLine writes a one-line colored recap of the run.
func PrintSummaryLine(w io.Writer, summary *entities.RunSummary) {
	_, _ = color.New(color.FgGreen).Fprintf(w, "%d file(s) updated", len(summary.Updated))
	_, _ = fmt.Fprintf(w, ", %d change(s), %d skipped", summary.TotalChanges, len(summary.Skipped))
	if summary.HasErrors() {
		_, _ = color.New(color.FgRed).Fprintf(w, ", %d failed", len(summary.Errors))
	}
	_, _ = fmt.Fprintln(w)
}

func formatLines(lines []int) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		parts = append(parts, strconv.Itoa(line))
	}
	return strings.Join(parts, ", ")
}
