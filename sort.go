package sps

import "sort"

// Sort rearranges the dense array into non-decreasing order per cmp, which
// must return a negative, zero, or positive result for a < b, a == b, and
// a > b respectively. Entries comparing equal keep their relative order.
// Every key's sparse mapping is updated to its new dense slot; values are
// moved, never changed. No-op when fewer than two entries are live.
//
// The set is not touched until the full ordering is computed, so a panic
// out of cmp leaves it in its prior valid state.
func (s *Set[T]) Sort(cmp func(a, b *T) int) error {
	if s == nil {
		return ErrNilSet
	}
	if cmp == nil {
		return ErrNilCompare
	}
	if s.count <= 1 {
		return nil
	}

	order := make([]int, s.count)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return cmp(&s.values[order[i]], &s.values[order[j]]) < 0
	})

	values := make([]T, s.count)
	keys := make([]int, s.count)
	for to, from := range order {
		values[to] = s.values[from]
		keys[to] = s.dense[from]
	}
	for i := 0; i < s.count; i++ {
		s.values[i] = values[i]
		s.dense[i] = keys[i]
		s.sparse[keys[i]] = i
	}
	return nil
}
