package ecs

import "github.com/richard-egeli/sps"

// componentStore is the untyped view the world keeps of each per-kind
// sparse set, enough to detach components when an entity dies.
type componentStore interface {
	discard(idx int)
	contains(idx int) bool
	size() int
	keys() []int
}

type typedStore[T any] struct {
	set *sps.Set[T]
}

func (t typedStore[T]) discard(idx int) { _ = t.set.Remove(idx) }

func (t typedStore[T]) contains(idx int) bool { return t.set.Has(idx) }

func (t typedStore[T]) size() int { return t.set.Len() }

func (t typedStore[T]) keys() []int { return t.set.Keys() }

// World owns an entity store and one sparse set per component kind, all
// sized to the same fixed capacity. Like the sets underneath it, a World
// has a single logical owner and is not synchronized.
type World struct {
	entities *Store
	stores   map[KindID]componentStore
}

// NewWorld creates a world for up to capacity live entities.
func NewWorld(capacity int) (*World, error) {
	entities, err := NewStore(capacity)
	if err != nil {
		return nil, err
	}
	return &World{
		entities: entities,
		stores:   make(map[KindID]componentStore),
	}, nil
}

// Create allocates a new entity.
func (w *World) Create() (Entity, error) {
	if w == nil {
		return 0, ErrNilWorld
	}
	return w.entities.Create()
}

// Destroy removes e and all of its components. Returns false when e is
// stale or was never allocated.
func (w *World) Destroy(e Entity) bool {
	if w == nil || !w.entities.Alive(e) {
		return false
	}
	idx := int(e.index())
	for _, st := range w.stores {
		st.discard(idx)
	}
	return w.entities.Destroy(e)
}

// Alive reports whether e is a current handle.
func (w *World) Alive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.Alive(e)
}

// Len returns the number of live entities.
func (w *World) Len() int {
	if w == nil {
		return 0
	}
	return w.entities.Len()
}

// storeFor returns the typed sparse set backing kind k, creating it on
// first use.
func storeFor[T any](w *World, k Kind[T]) (*sps.Set[T], error) {
	if w == nil {
		return nil, ErrNilWorld
	}
	if !k.Valid() {
		return nil, ErrInvalidKind
	}
	if st, ok := w.stores[k.ID()]; ok {
		return st.(typedStore[T]).set, nil
	}
	set, err := sps.New[T](w.entities.cap)
	if err != nil {
		return nil, err
	}
	w.stores[k.ID()] = typedStore[T]{set: set}
	return set, nil
}

// Add attaches value to e under kind k. Fails with sps.ErrDuplicateKey
// when e already has a k component; use Set to overwrite.
func Add[T any](w *World, e Entity, k Kind[T], value T) error {
	set, err := storeFor(w, k)
	if err != nil {
		return err
	}
	if !w.Alive(e) {
		return ErrNotAlive
	}
	_, err = set.Add(int(e.index()), value)
	return err
}

// Set attaches value to e under kind k, overwriting any existing
// component in place.
func Set[T any](w *World, e Entity, k Kind[T], value T) error {
	set, err := storeFor(w, k)
	if err != nil {
		return err
	}
	if !w.Alive(e) {
		return ErrNotAlive
	}
	_, err = set.AddOrReplace(int(e.index()), value)
	return err
}

// Get returns a pointer to e's k component, or false when e is dead or
// has no such component. The pointer is invalidated by the next
// structural change to that component's store.
func Get[T any](w *World, e Entity, k Kind[T]) (*T, bool) {
	if w == nil || !k.Valid() || !w.Alive(e) {
		return nil, false
	}
	st, ok := w.stores[k.ID()]
	if !ok {
		return nil, false
	}
	v, err := st.(typedStore[T]).set.Get(int(e.index()))
	if err != nil {
		return nil, false
	}
	return v, true
}

// Has reports whether e currently carries a k component.
func Has[T any](w *World, e Entity, k Kind[T]) bool {
	if w == nil || !k.Valid() || !w.Alive(e) {
		return false
	}
	st, ok := w.stores[k.ID()]
	return ok && st.contains(int(e.index()))
}

// Remove detaches e's k component. Returns false when there was nothing
// to detach.
func Remove[T any](w *World, e Entity, k Kind[T]) bool {
	if w == nil || !k.Valid() || !w.Alive(e) {
		return false
	}
	st, ok := w.stores[k.ID()]
	if !ok {
		return false
	}
	return st.(typedStore[T]).set.Remove(int(e.index())) == nil
}

// Each calls fn for every entity carrying a k component, in the store's
// current dense order. The store must not be structurally mutated from
// inside fn.
func Each[T any](w *World, k Kind[T], fn func(e Entity, value *T)) {
	if w == nil || !k.Valid() || fn == nil {
		return
	}
	st, ok := w.stores[k.ID()]
	if !ok {
		return
	}
	st.(typedStore[T]).set.Each(func(idx int, value *T) {
		fn(w.entities.handleAt(idx), value)
	})
}
