package sps

import "errors"

var (
	// ErrNotFound reports that a key has no entry in the set. It is the
	// normal absence outcome for Get and Remove, not a fault.
	ErrNotFound = errors.New("sps: key not found")

	ErrNilSet          = errors.New("sps: set is nil")
	ErrNilValue        = errors.New("sps: value is nil")
	ErrNilCompare      = errors.New("sps: compare func is nil")
	ErrInvalidKey      = errors.New("sps: key out of range")
	ErrDuplicateKey    = errors.New("sps: key already present")
	ErrFull            = errors.New("sps: set is full")
	ErrInvalidCapacity = errors.New("sps: capacity must be positive")
	ErrZeroElementSize = errors.New("sps: element size must be positive")
	ErrBadElementSize  = errors.New("sps: value length does not match element size")
)
