package entities

// UpdateResult is the outcome of rewriting a single file.
type UpdateResult struct {
	File    string `json:"file"`
	Changes int    `json:"changes"`
	Lines   []int  `json:"lines"` // 1-based, ascending, relative to the rewritten content
}

// FileError records a file that could not be processed.
type FileError struct {
	File  string `json:"file"`
	Error string `json:"error"`
}

// RunSummary aggregates one invocation of the reference update.
type RunSummary struct {
	Updated      []UpdateResult `json:"updated"`
	Skipped      []string       `json:"skipped"`
	Errors       []FileError    `json:"errors"`
	TotalChanges int            `json:"totalChanges"`
}

// NewRunSummary returns an empty summary with non-nil lists.
func NewRunSummary() *RunSummary {
	return &RunSummary{
		Updated: []UpdateResult{},
		Skipped: []string{},
		Errors:  []FileError{},
	}
}

// Record files the result under updated or skipped depending on its change count.
func (s *RunSummary) Record(result UpdateResult) {
	if result.Changes == 0 {
		s.Skipped = append(s.Skipped, result.File)
		return
	}
	s.Updated = append(s.Updated, result)
	s.TotalChanges += result.Changes
}

// RecordError files a per-file failure.
func (s *RunSummary) RecordError(file string, err error) {
	s.Errors = append(s.Errors, FileError{File: file, Error: err.Error()})
}

// HasErrors reports whether any file failed.
func (s *RunSummary) HasErrors() bool {
	return len(s.Errors) > 0
}
