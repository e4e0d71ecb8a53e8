package sps

import "sort"

// RawSet is the untyped rendition of Set: values are opaque fixed-size
// byte strides chosen at construction. It exists for callers that size
// elements at runtime; prefer Set for anything with a static type.
//
// Slices returned by Add, AddOrReplace, and Get alias the set's backing
// buffer and are invalidated by the next structural mutation.
type RawSet struct {
	elemSize int
	sparse   []int
	dense    []int
	data     []byte
	count    int
}

// NewRaw creates a raw sparse set for capacity elements of elemSize bytes
// each.
func NewRaw(capacity, elemSize int) (*RawSet, error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if elemSize < 1 {
		return nil, ErrZeroElementSize
	}

	s := &RawSet{
		elemSize: elemSize,
		sparse:   make([]int, capacity),
		dense:    make([]int, capacity),
		data:     make([]byte, capacity*elemSize),
	}
	for i := range s.sparse {
		s.sparse[i] = noSlot
		s.dense[i] = noSlot
	}
	return s, nil
}

// Len returns the number of live entries.
func (s *RawSet) Len() int {
	if s == nil {
		return 0
	}
	return s.count
}

// Cap returns the fixed capacity.
func (s *RawSet) Cap() int {
	if s == nil {
		return 0
	}
	return len(s.sparse)
}

// ElementSize returns the byte size of one stored value.
func (s *RawSet) ElementSize() int {
	if s == nil {
		return 0
	}
	return s.elemSize
}

// slot returns the stride holding dense slot i.
func (s *RawSet) slot(i int) []byte {
	off := i * s.elemSize
	return s.data[off : off+s.elemSize : off+s.elemSize]
}

// Has returns true if key has an entry.
func (s *RawSet) Has(key int) bool {
	if s == nil || key < 0 || key >= len(s.sparse) {
		return false
	}
	return s.sparse[key] != noSlot
}

// Get returns the stored stride for key, ErrNotFound when absent.
func (s *RawSet) Get(key int) ([]byte, error) {
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
	return s.slot(slot), nil
}

func (s *RawSet) checkValue(value []byte) error {
	if value == nil {
		return ErrNilValue
	}
	if len(value) != s.elemSize {
		return ErrBadElementSize
	}
	return nil
}

// Add copies value into a new entry for key and returns the stored
// stride. value must be exactly ElementSize bytes and key must not
// already be present.
func (s *RawSet) Add(key int, value []byte) ([]byte, error) {
	if s == nil {
		return nil, ErrNilSet
	}
	if key < 0 || key >= len(s.sparse) {
		return nil, ErrInvalidKey
	}
	if err := s.checkValue(value); err != nil {
		return nil, err
	}
	if s.count == len(s.dense) {
		return nil, ErrFull
	}
	if s.sparse[key] != noSlot {
		return nil, ErrDuplicateKey
	}
	return s.append(key, value), nil
}

// AddOrReplace copies value into the entry for key, overwriting in place
// when key is already present.
func (s *RawSet) AddOrReplace(key int, value []byte) ([]byte, error) {
	if s == nil {
		return nil, ErrNilSet
	}
	if key < 0 || key >= len(s.sparse) {
		return nil, ErrInvalidKey
	}
	if err := s.checkValue(value); err != nil {
		return nil, err
	}
	if slot := s.sparse[key]; slot != noSlot {
		target := s.slot(slot)
		copy(target, value)
		return target, nil
	}
	if s.count == len(s.dense) {
		return nil, ErrFull
	}
	return s.append(key, value), nil
}

func (s *RawSet) append(key int, value []byte) []byte {
	slot := s.count
	s.sparse[key] = slot
	s.dense[slot] = key
	target := s.slot(slot)
	copy(target, value)
	s.count++
	return target
}

// Remove deletes the entry for key with the same swap-to-end semantics as
// Set.Remove: the last dense entry moves into the vacated slot.
func (s *RawSet) Remove(key int) error {
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

	copy(s.slot(slot), s.slot(last))
	s.dense[slot] = movedKey
	s.sparse[movedKey] = slot

	clear(s.slot(last))
	s.dense[last] = noSlot
	s.sparse[key] = noSlot
	s.count--
	return nil
}

// Clear drops every entry in one step, retaining the backing buffer.
func (s *RawSet) Clear() {
	if s == nil {
		return
	}
	for i := 0; i < s.count; i++ {
		s.sparse[s.dense[i]] = noSlot
		s.dense[i] = noSlot
	}
	clear(s.data[:s.count*s.elemSize])
	s.count = 0
}

// Keys returns the live keys in dense order, aliasing internal storage.
func (s *RawSet) Keys() []int {
	if s == nil {
		return nil
	}
	return s.dense[:s.count]
}

// Sort rearranges the dense array per cmp with the same contract as
// Set.Sort: stable, sparse table rebuilt, values untouched until the full
// ordering is known.
func (s *RawSet) Sort(cmp func(a, b []byte) int) error {
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
		return cmp(s.slot(order[i]), s.slot(order[j])) < 0
	})

	data := make([]byte, s.count*s.elemSize)
	keys := make([]int, s.count)
	for to, from := range order {
		copy(data[to*s.elemSize:(to+1)*s.elemSize], s.slot(from))
		keys[to] = s.dense[from]
	}
	copy(s.data, data)
	for i := 0; i < s.count; i++ {
		s.dense[i] = keys[i]
		s.sparse[keys[i]] = i
	}
	return nil
}

// Iter returns a cursor positioned at the first dense slot.
func (s *RawSet) Iter() RawIterator {
	return RawIterator{set: s}
}

// RawIterator is the RawSet cursor, with the same weak guarantee under
// structural mutation as Iterator.
type RawIterator struct {
	set *RawSet
	pos int
}

// Next returns the key and stored stride at the cursor and advances it.
func (it *RawIterator) Next() (key int, value []byte, ok bool) {
	if it == nil || it.set == nil || it.pos >= it.set.count {
		return 0, nil, false
	}
	key = it.set.dense[it.pos]
	value = it.set.slot(it.pos)
	it.pos++
	return key, value, true
}

// Reset moves the cursor back to the first slot.
func (it *RawIterator) Reset() {
	if it != nil {
		it.pos = 0
	}
}
