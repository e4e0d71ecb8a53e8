package ecs

import "strconv"

// Entity is a handle packing a 32-bit index and a 32-bit generation. The
// generation lets a Store tell a live handle from one whose index has been
// recycled.
type Entity uint64

type entityIndex uint32
type generation uint32

const entityIndexBits = 32

func makeEntity(idx entityIndex, gen generation) Entity {
	return Entity(uint64(gen)<<entityIndexBits | uint64(idx))
}

func (e Entity) index() entityIndex {
	return entityIndex(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIndexBits))
}

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e), 10)
}

// Valid reports whether e was ever produced by a Store. It does not imply
// the entity is still alive.
func (e Entity) Valid() bool {
	return e.generation() != 0
}

// Store allocates entity handles from a fixed index range. Destroyed
// indices are recycled through a free list with a bumped generation, so
// stale handles never alias a new entity.
type Store struct {
	gens  []generation
	free  []entityIndex
	cap   int
	alive int
}

// NewStore creates a store for up to capacity live entities.
func NewStore(capacity int) (*Store, error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	return &Store{
		gens: make([]generation, 0, capacity),
		cap:  capacity,
	}, nil
}

// Create allocates a new entity, reusing a freed index when one exists.
func (s *Store) Create() (Entity, error) {
	if s == nil {
		return 0, ErrNilStore
	}
	if s.alive == s.cap {
		return 0, ErrFull
	}

	var idx entityIndex
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		idx = entityIndex(len(s.gens))
		s.gens = append(s.gens, 1)
	}
	s.alive++
	return makeEntity(idx, s.gens[idx]), nil
}

// Destroy frees e's index for reuse. Returns false when e is stale or was
// never allocated.
func (s *Store) Destroy(e Entity) bool {
	if !s.Alive(e) {
		return false
	}
	idx := e.index()
	s.gens[idx]++
	s.free = append(s.free, idx)
	s.alive--
	return true
}

// Alive reports whether e is a current handle.
func (s *Store) Alive(e Entity) bool {
	if s == nil {
		return false
	}
	idx := e.index()
	return int(idx) < len(s.gens) && s.gens[idx] == e.generation() && e.generation() != 0
}

// Len returns the number of live entities.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return s.alive
}

// handleAt rebuilds the current handle for an index, used when mapping
// dense component keys back to entities.
func (s *Store) handleAt(idx int) Entity {
	if s == nil || idx < 0 || idx >= len(s.gens) {
		return 0
	}
	return makeEntity(entityIndex(idx), s.gens[idx])
}
