package seekindex

import (
	"errors"
	"reflect"
	"testing"

	"jaytaylor.com/wikilinks/domain"
)

func TestSplit(t *testing.T) {
	testCases := []struct {
		offsets  []uint64
		size     uint64
		expected []domain.ChunkRange
	}{
		{
			offsets:  nil,
			size:     100,
			expected: []domain.ChunkRange{},
		},
		{
			offsets:  []uint64{10},
			size:     100,
			expected: []domain.ChunkRange{{Start: 10, End: 100}},
		},
		{
			offsets:  []uint64{50, 10, 30, 30},
			size:     100,
			expected: []domain.ChunkRange{{Start: 10, End: 30}, {Start: 30, End: 50}, {Start: 50, End: 100}},
		},
		{
			offsets:  []uint64{10, 100},
			size:     100,
			expected: []domain.ChunkRange{{Start: 10, End: 100}},
		},
		{
			offsets:  []uint64{100},
			size:     100,
			expected: []domain.ChunkRange{},
		},
	}
	for i, testCase := range testCases {
		ranges, err := Split(testCase.offsets, testCase.size)
		if err != nil {
			t.Errorf("[i=%v] %s", i, err)
			continue
		}
		if expected, actual := testCase.expected, ranges; !reflect.DeepEqual(actual, expected) {
			t.Errorf("[i=%v] Expected ranges=%v but actual=%v", i, expected, actual)
		}
	}
}

func TestSplitCoverage(t *testing.T) {
	var (
		offsets = []uint64{700, 3, 9000, 42, 512, 12000, 42}
		size    = uint64(20000)
	)
	ranges, err := Split(offsets, size)
	if err != nil {
		t.Fatal(err)
	}
	if expected, actual := 6, len(ranges); actual != expected {
		t.Fatalf("Expected one range per distinct offset=%v but actual=%v", expected, actual)
	}
	if expected, actual := uint64(3), ranges[0].Start; actual != expected {
		t.Errorf("Expected first range to start at min offset=%v but actual=%v", expected, actual)
	}
	if expected, actual := size, ranges[len(ranges)-1].End; actual != expected {
		t.Errorf("Expected last range to end at size=%v but actual=%v", expected, actual)
	}
	var covered uint64
	for i, r := range ranges {
		if r.Len() == 0 {
			t.Errorf("[i=%v] Unexpected empty range %v", i, r)
		}
		if i > 0 && ranges[i-1].End != r.Start {
			t.Errorf("[i=%v] Gap or overlap between %v and %v", i, ranges[i-1], r)
		}
		covered += r.Len()
	}
	if expected, actual := size-3, covered; actual != expected {
		t.Errorf("Expected covered bytes=%v but actual=%v", expected, actual)
	}
}

func TestSplitBeyondEOF(t *testing.T) {
	if _, err := Split([]uint64{10, 200}, 100); !errors.Is(err, ErrOffsetBeyondEOF) {
		t.Errorf("Expected err=%s but actual=%v", ErrOffsetBeyondEOF, err)
	}
}
