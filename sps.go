package sps

// DefaultCapacity sizes a set for the full uint16 key domain: keys 0
// through 65534, with 65535 left as the out-of-range bound.
const DefaultCapacity = 65535

// noSlot marks an unused entry in the sparse and dense tables.
const noSlot = -1

// Set is a fixed-capacity sparse set mapping keys in [0, Cap) to values of
// type T. Lookups, insertions, and removals are O(1); iteration over live
// entries is O(n) over a packed dense array.
//
// A Set is not safe for concurrent use. Pointers returned by Add,
// AddOrReplace, and Get alias the set's own storage and are invalidated by
// the next structural mutation (Add, AddOrReplace of a new key, Remove,
// Sort).
type Set[T any] struct {
	sparse []int
	dense  []int
	values []T
	count  int
}

// New creates a sparse set holding up to capacity values, one per key in
// [0, capacity).
func New[T any](capacity int) (*Set[T], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	s := &Set[T]{
		sparse: make([]int, capacity),
		dense:  make([]int, capacity),
		values: make([]T, capacity),
	}
	for i := range s.sparse {
		s.sparse[i] = noSlot
		s.dense[i] = noSlot
	}
	return s, nil
}

// Len returns the number of live entries.
func (s *Set[T]) Len() int {
	if s == nil {
		return 0
	}
	return s.count
}

// Cap returns the fixed capacity, which is also one past the largest valid
// key.
func (s *Set[T]) Cap() int {
	if s == nil {
		return 0
	}
	return len(s.sparse)
}

// Has returns true if key has an entry. Keys outside [0, Cap) are never
// present.
func (s *Set[T]) Has(key int) bool {
	if s == nil || key < 0 || key >= len(s.sparse) {
		return false
	}
	return s.sparse[key] != noSlot
}

// Get returns a pointer to the value stored for key. Absence is reported
// as ErrNotFound; a key outside [0, Cap) is ErrInvalidKey.
func (s *Set[T]) Get(key int) (*T, error) {
	if s == nil {
		return nil, ErrNilSet
	}
	if key < 0 || key >= len(s.sparse) {
		return nil, ErrInvalidKey
	}
	slot := s.sparse[key]
	if slot == noSlot {
		return nil, ErrNotFound
	}
	return &s.values[slot], nil
}

// Add inserts value under key and returns a pointer to the stored copy.
// The key must not already be present; use AddOrReplace to update in
// place.
func (s *Set[T]) Add(key int, value T) (*T, error) {
	if s == nil {
		return nil, ErrNilSet
	}
	if key < 0 || key >= len(s.sparse) {
		return nil, ErrInvalidKey
	}
	if s.count == len(s.dense) {
		return nil, ErrFull
	}
	if s.sparse[key] != noSlot {
		return nil, ErrDuplicateKey
	}
	return s.append(key, value), nil
}

// AddOrReplace inserts value under key, or overwrites the existing value
// in place if key is already present. The dense position of an existing
// key does not change.
func (s *Set[T]) AddOrReplace(key int, value T) (*T, error) {
	if s == nil {
		return nil, ErrNilSet
	}
	if key < 0 || key >= len(s.sparse) {
		return nil, ErrInvalidKey
	}
	if slot := s.sparse[key]; slot != noSlot {
		s.values[slot] = value
		return &s.values[slot], nil
	}
	if s.count == len(s.dense) {
		return nil, ErrFull
	}
	return s.append(key, value), nil
}

func (s *Set[T]) append(key int, value T) *T {
	slot := s.count
	s.sparse[key] = slot
	s.dense[slot] = key
	s.values[slot] = value
	s.count++
	return &s.values[slot]
}

// Remove deletes the entry for key by moving the last dense entry into its
// slot. This reorders the dense array: the key that occupied the last slot
// takes the removed key's position. Removing an absent key is a no-op
// reported as ErrNotFound.
func (s *Set[T]) Remove(key int) error {
	if s == nil {
		return ErrNilSet
	}
	if key < 0 || key >= len(s.sparse) {
		return ErrInvalidKey
	}
	slot := s.sparse[key]
	if slot == noSlot {
		return ErrNotFound
	}

	last := s.count - 1
	movedKey := s.dense[last]

	s.values[slot] = s.values[last]
	s.dense[slot] = movedKey
	s.sparse[movedKey] = slot

	var zero T
	s.values[last] = zero
	s.dense[last] = noSlot
	s.sparse[key] = noSlot
	s.count--
	return nil
}

// Clear drops every entry in one step. Capacity is unchanged and the
// backing arrays are retained.
func (s *Set[T]) Clear() {
	if s == nil {
		return
	}
	for i := 0; i < s.count; i++ {
		s.sparse[s.dense[i]] = noSlot
		s.dense[i] = noSlot
	}
	clear(s.values[:s.count])
	s.count = 0
}

// Keys returns the live keys in dense order. The slice aliases internal
// storage and is only valid until the next structural mutation.
func (s *Set[T]) Keys() []int {
	if s == nil {
		return nil
	}
	return s.dense[:s.count]
}

// Each calls fn for every live entry in dense order. The set must not be
// structurally mutated from inside fn.
func (s *Set[T]) Each(fn func(key int, value *T)) {
	if s == nil || fn == nil {
		return
	}
	for i := 0; i < s.count; i++ {
		fn(s.dense[i], &s.values[i])
	}
}
