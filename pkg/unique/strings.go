package unique

import (
	"sort"
)

// Strings returns a unique subset of the string slice provided.
//
// Input order is preserved.
func Strings(input []string) []string {
	u := make([]string, 0, len(input))
	m := map[string]struct{}{}
	for _, val := range input {
		if _, ok := m[val]; !ok {
			m[val] = struct{}{}
			u = append(u, val)
		}
	}
	return u
}

// Uint64sSorted returns the sorted unique subset of the input.  The input
// slice is not modified.
func Uint64sSorted(input []uint64) []uint64 {
	u := make([]uint64, len(input))
	copy(u, input)
	sort.Slice(u, func(i, j int) bool { return u[i] < u[j] })
	if len(u) == 0 {
		return u
	}
	n := 1
	for i := 1; i < len(u); i++ {
		if u[i] != u[n-1] {
			u[n] = u[i]
			n++
		}
	}
	return u[:n]
}
