package domain

import (
	"time"
)

// Summary holds the totals of an indexing run.
type Summary struct {
	Chunks      int            `json:"chunks"`
	Processed   int            `json:"processed"`
	Articles    int            `json:"articles"`
	Links       int            `json:"links"`
	RedLinks    int            `json:"red_links"`
	Redirects   int            `json:"redirects"`
	Written     int            `json:"written"`
	Failures    []ChunkFailure `json:"failures,omitempty"`
	StartedAt   *time.Time     `json:"started_at,omitempty"`
	FinishedAt  *time.Time     `json:"finished_at,omitempty"`
	IndexTitles int            `json:"index_titles"`
}

// NewSummary returns a summary expecting the given number of chunks.
func NewSummary(chunks int) *Summary {
	now := time.Now()
	s := &Summary{
		Chunks:    chunks,
		Failures:  []ChunkFailure{},
		StartedAt: &now,
	}
	return s
}

// Merge folds a single chunk result into the totals.  Failed results only
// contribute a failure entry.
func (s *Summary) Merge(result *ChunkResult) {
	s.Processed++
	if result.Failed() {
		s.Failures = append(s.Failures, ChunkFailure{
			Range: result.Range,
			Err:   result.Err.Error(),
		})
		return
	}
	s.Articles += result.Pages
	s.Links += result.Links
	s.RedLinks += result.RedLinks
	s.Redirects += result.Redirects
}

// Finish stamps the completion time.
func (s *Summary) Finish() {
	now := time.Now()
	s.FinishedAt = &now
}

// Elapsed returns the run duration, or zero when not finished.
func (s *Summary) Elapsed() time.Duration {
	if s.StartedAt == nil || s.FinishedAt == nil {
		return 0
	}
	return s.FinishedAt.Sub(*s.StartedAt)
}
