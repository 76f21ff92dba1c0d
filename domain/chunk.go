package domain

import (
	"fmt"
)

// ChunkRange is a half-open [Start, End) byte interval of the archive which
// holds exactly one independently decompressible block.
type ChunkRange struct {
	Start uint64
	End   uint64
}

// Len returns the number of bytes covered by the range.
func (r ChunkRange) Len() uint64 {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start
}

func (r ChunkRange) String() string {
	return fmt.Sprintf("[%v, %v)", r.Start, r.End)
}

// ChunkResult is what a chunk worker hands back to the aggregator.  When Err
// is non-nil the counters and articles must be ignored.
type ChunkResult struct {
	Range     ChunkRange
	Articles  []*Article
	Pages     int // Pages kept after namespace filtering.
	Links     int // Link targets extracted from markup, resolved or not.
	RedLinks  int // Link targets without a matching title.
	Redirects int // Kept pages which are redirects.
	Err       error
}

// NewChunkFailure returns a result tagged with the supplied error.
func NewChunkFailure(r ChunkRange, err error) *ChunkResult {
	result := &ChunkResult{
		Range: r,
		Err:   err,
	}
	return result
}

// Failed returns true when the chunk could not be processed.
func (result *ChunkResult) Failed() bool {
	return result.Err != nil
}

// ChunkFailure records a chunk which was skipped.
type ChunkFailure struct {
	Range ChunkRange `json:"range"`
	Err   string     `json:"error"`
}
