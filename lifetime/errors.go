package lifetime

import "errors"

// Registry error types. Every failure indicates corrupted or mismatched
// foreign-reference state; none of them is retried and none of them leaves
// a partial mutation behind.
var (
	// ErrNilSlot is returned when an operation receives a nil slot pointer.
	ErrNilSlot = errors.New("lifetime: nil slot")

	// ErrEmptySource is returned when Copy is asked to duplicate an empty
	// slot.
	ErrEmptySource = errors.New("lifetime: copy from empty slot")

	// ErrUnknownManager is returned when a slot's manager tag matches no
	// registered manager. Slots populated by the engine for its own
	// synthetic purposes carry such tags.
	ErrUnknownManager = errors.New("lifetime: no manager registered for slot")

	// ErrUnknownHandle is returned when a slot references a handle the
	// registry is not tracking. On Destroy this is the refcount-underflow
	// case: the reference was already released.
	ErrUnknownHandle = errors.New("lifetime: unknown reference handle")

	// ErrInvalidOperation is returned when Manage receives an operation
	// selector outside the copy/destroy protocol.
	ErrInvalidOperation = errors.New("lifetime: invalid manager operation")
)
