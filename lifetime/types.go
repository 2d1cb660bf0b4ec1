package lifetime

// Handle is the opaque reference token a managed-pointer slot carries in
// place of a raw runtime pointer. Handles are never reused within a
// registry's lifetime. The zero Handle is invalid and marks an empty slot.
type Handle uint64

// ManagerTag identifies the manager responsible for a slot's copy/destroy
// behavior. The zero tag means the slot has no manager (a freshly
// zero-initialized slot); tags of engine-internal managers never collide
// with tags issued by a Registry.
type ManagerTag uint32

// Operation selects which half of the copy/destroy protocol the engine is
// invoking.
type Operation int

// The protocol operations.
const (
	// OpCopy assigns the destination slot from the source slot and takes an
	// additional reference on the underlying object.
	OpCopy Operation = iota + 1

	// OpDestroy drops the destination slot's reference, releasing the
	// underlying object when it was the last one.
	OpDestroy
)

// String returns the protocol name of the operation.
func (op Operation) String() string {
	switch op {
	case OpCopy:
		return "copy"
	case OpDestroy:
		return "destroy"
	default:
		return "unknown"
	}
}

// Manage status codes, matching the engine's integer ABI.
const (
	// StatusSuccess reports a completed operation.
	StatusSuccess = 0

	// StatusFailure reports a failed operation. The engine treats this as a
	// fatal internal-consistency condition.
	StatusFailure = 1
)

// Slot is a managed-pointer slot as seen across the engine boundary: an
// opaque reference paired with the tag of the manager that owns its
// copy/destroy behavior. The slot itself is owned by whichever correlation
// identifier currently holds it; the referenced object belongs to the
// consuming runtime.
//
// The zero Slot is empty.
type Slot struct {
	// Handle references the pinned runtime object. Zero when the slot is
	// empty.
	Handle Handle

	// Manager tags the manager registered for this slot. Zero when the
	// slot is empty.
	Manager ManagerTag
}

// IsEmpty reports whether the slot is a freshly zero-initialized slot.
func (s Slot) IsEmpty() bool {
	return s.Handle == 0 && s.Manager == 0
}

// Manager is the capability an owner registers for its slots: how to copy
// a slot to a new holder and how to destroy a retiring holder's slot.
// The Registry dispatches engine requests to the manager registered under
// the slot's tag.
//
// Implementations are invoked from engine-internal threads and must be
// safe for concurrent use across distinct slots.
type Manager interface {
	// Copy assigns dst from src and accounts for the new holder.
	Copy(dst, src *Slot) error

	// Destroy drops the slot's reference.
	Destroy(slot *Slot) error
}
