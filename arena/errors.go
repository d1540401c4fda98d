package arena

import "errors"

var (
	// ErrInvalidHandle indicates a handle that does not resolve: the slot
	// index is out of range, the slice window is out of bounds, or the
	// originating arena has been reset since the handle was issued.
	ErrInvalidHandle = errors.New("arena: invalid handle")

	// ErrArenaFull indicates that an allocation would exceed the arena's
	// configured capacity.
	ErrArenaFull = errors.New("arena: capacity exhausted")

	// ErrNotElement indicates an operation that requires an element node was
	// given a text, pre-serialized or fragment node.
	ErrNotElement = errors.New("arena: not an element node")
)
