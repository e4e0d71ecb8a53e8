package sps

// Iter returns a cursor positioned at the first dense slot.
func (s *Set[T]) Iter() Iterator[T] {
	return Iterator[T]{set: s}
}

// Iterator walks a Set's dense array from slot 0 upward. It holds only the
// set reference and a cursor position; it is not a snapshot.
//
// Completeness and visit-once order are only guaranteed while the set is
// not structurally mutated between Iter and the end of the walk. A Remove
// during iteration swaps the last dense entry into the removed slot: if
// that slot is behind the cursor the moved entry is silently skipped, and
// if it is at or ahead of the cursor the moved entry is seen in its new
// position instead of its old one. No removal makes the cursor read out of
// bounds.
type Iterator[T any] struct {
	set *Set[T]
	pos int
}

// Next returns the key and value at the cursor and advances it. ok is
// false once the cursor has passed the last live slot.
func (it *Iterator[T]) Next() (key int, value *T, ok bool) {
	if it == nil || it.set == nil || it.pos >= it.set.count {
		return 0, nil, false
	}
	key = it.set.dense[it.pos]
	value = &it.set.values[it.pos]
	it.pos++
	return key, value, true
}

// Reset moves the cursor back to the first slot.
func (it *Iterator[T]) Reset() {
	if it != nil {
		it.pos = 0
	}
}
