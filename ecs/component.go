package ecs

import (
	"errors"
	"sync/atomic"
)

var (
	ErrNilWorld        = errors.New("ecs: world is nil")
	ErrNilStore        = errors.New("ecs: store is nil")
	ErrNotAlive        = errors.New("ecs: entity not alive")
	ErrInvalidKind     = errors.New("ecs: invalid component kind")
	ErrFull            = errors.New("ecs: entity capacity reached")
	ErrInvalidCapacity = errors.New("ecs: capacity must be positive")
)

// KindID identifies a component type across all worlds in the process.
type KindID uint32

var nextKindID atomic.Uint32

// Kind is a typed handle for a registered component type. Declare one per
// component, typically at package level:
//
//	var Position = ecs.NewKind[Vec2]()
type Kind[T any] struct {
	id KindID
}

// NewKind registers a new component type and returns its handle.
func NewKind[T any]() Kind[T] {
	return Kind[T]{id: KindID(nextKindID.Add(1))}
}

func (k Kind[T]) ID() KindID {
	return k.id
}

func (k Kind[T]) Valid() bool {
	return k.id != 0
}
