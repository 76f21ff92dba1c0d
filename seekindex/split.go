package seekindex

import (
	"fmt"

	"jaytaylor.com/wikilinks/domain"
	"jaytaylor.com/wikilinks/pkg/unique"
)

// Split turns block offsets into contiguous chunk ranges ending at fileSize.
//
// Offsets are sorted and de-duplicated, then fileSize is appended as the final
// boundary; N boundaries yield N-1 ranges.  An offset equal to fileSize folds
// into that final boundary.
func Split(offsets []uint64, fileSize uint64) ([]domain.ChunkRange, error) {
	bounds := unique.Uint64sSorted(offsets)
	if n := len(bounds); n > 0 {
		if last := bounds[n-1]; last > fileSize {
			return nil, fmt.Errorf("%w: offset=%v size=%v", ErrOffsetBeyondEOF, last, fileSize)
		} else if last < fileSize {
			bounds = append(bounds, fileSize)
		}
	}
	if len(bounds) < 2 {
		return []domain.ChunkRange{}, nil
	}

	ranges := make([]domain.ChunkRange, 0, len(bounds)-1)
	for i := 0; i < len(bounds)-1; i++ {
		ranges = append(ranges, domain.ChunkRange{
			Start: bounds[i],
			End:   bounds[i+1],
		})
	}
	return ranges, nil
}
