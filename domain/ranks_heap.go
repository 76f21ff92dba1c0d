package domain

import (
	"container/heap"
)

// RanksHeap facilitates building bounded, sorted collections of ranks.
//
// The heap root is always the entry which would be evicted first, i.e. the
// one for which LessFunc reports it ranks below every other entry.
type RanksHeap struct {
	Ranks    []*Rank
	LessFunc RanksLessFunc
	Limit    int // Maximum number of retained ranks, <= 0 signifies unlimited.
}

// RanksLessFunc Rank comparison function type.  It must return true when a
// ranks strictly lower than b.
type RanksLessFunc func(a, b *Rank) bool

func NewRanksHeap(lessFn RanksLessFunc, limit int) *RanksHeap {
	rh := &RanksHeap{
		Ranks:    []*Rank{},
		LessFunc: lessFn,
		Limit:    limit,
	}
	heap.Init(rh)

	return rh
}

func (rh RanksHeap) Len() int { return len(rh.Ranks) }
func (rh RanksHeap) Less(i, j int) bool {
	return rh.LessFunc(rh.Ranks[i], rh.Ranks[j])
}
func (rh RanksHeap) Swap(i, j int) { rh.Ranks[i], rh.Ranks[j] = rh.Ranks[j], rh.Ranks[i] }

func (rh *RanksHeap) Push(x interface{}) {
	// Push and Pop use pointer receivers because they modify the slice's length,
	// not just its contents.
	rh.Ranks = append(rh.Ranks, x.(*Rank))
}

// RankPush adds r, evicting the lowest ranked entry when over the limit.
func (rh *RanksHeap) RankPush(r *Rank) {
	if rh.Limit > 0 && len(rh.Ranks) == rh.Limit {
		if !rh.LessFunc(rh.Ranks[0], r) {
			return
		}
		rh.Ranks[0] = r
		heap.Fix(rh, 0)
		return
	}
	heap.Push(rh, r)
}

func (rh *RanksHeap) Pop() interface{} {
	old := rh.Ranks
	n := len(old)
	x := old[n-1]
	rh.Ranks = old[0 : n-1]
	return x
}
func (rh *RanksHeap) RankPop() *Rank {
	if len(rh.Ranks) == 0 {
		return nil
	}
	r := heap.Pop(rh).(*Rank)
	return r
}

// Slice returns the retained ranks ordered from highest to lowest without
// consuming the heap.
func (rh *RanksHeap) Slice() []Rank {
	orig := make([]*Rank, rh.Len())
	copy(orig, rh.Ranks)

	s := make([]Rank, rh.Len())
	for i := len(s) - 1; rh.Len() > 0; i-- {
		s[i] = *rh.RankPop()
	}

	rh.Ranks = orig

	return s
}

var (
	// RanksByDegree comparison function ordering by degree, with the larger id
	// ranking lower among equal degrees so that ties resolve to ascending ids.
	RanksByDegree = func(a, b *Rank) bool {
		if a.Degree != b.Degree {
			return a.Degree < b.Degree
		}
		return a.ID > b.ID
	}
)
