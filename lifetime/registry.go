package lifetime

import (
	"fmt"
	"sync"
	"time"

	"github.com/aalemi-dev/mdbridge/logger"
	"github.com/aalemi-dev/mdbridge/observability"
)

// Registry pins runtime objects behind opaque handles and reference-counts
// every engine-held managed-pointer slot. It implements the ReferenceManager
// interface.
//
// One mutex serializes all reference-count mutation; see the package
// documentation for the locking and re-entrancy rules.
type Registry struct {
	cfg Config

	// log receives a structured entry per failed operation (optional).
	log *logger.LoggerClient

	// observer provides optional observability hooks for tracking registry
	// operations.
	observer observability.Observer

	// tag is the registry's own manager tag, assigned at construction and
	// immutable afterwards. IsKnown compares against it without locking.
	tag ManagerTag

	// mu is the global execution lock. Everything below it is guarded.
	mu         sync.Mutex
	entries    map[Handle]*entry
	managers   map[ManagerTag]Manager
	nextHandle Handle
	nextTag    ManagerTag
	liveRefs   int64
}

// entry tracks one pinned runtime object.
type entry struct {
	value   interface{}
	refs    int64
	release func(interface{})
}

// ReferenceManager is the registry contract exposed to consumers of this
// package. It is implemented by the concrete *Registry type.
type ReferenceManager interface {
	// Pin stores a runtime object and returns the slot referencing it.
	Pin(value interface{}, release func(interface{})) Slot

	// Resolve returns the object a bridge-owned slot references.
	Resolve(slot Slot) (interface{}, bool)

	// Copy duplicates a bridge-owned slot into dst.
	Copy(dst, src *Slot) error

	// Destroy drops a bridge-owned slot's reference.
	Destroy(slot *Slot) error

	// Manage is the engine-facing integer-status shim over Copy/Destroy.
	Manage(op Operation, dst, src *Slot) int

	// IsKnown reports whether a slot's copy/destroy behavior is owned by
	// this registry.
	IsKnown(slot Slot) bool
}

// NewRegistry creates a registry and registers its own reference-counting
// manager as the first entry of the manager table.
func NewRegistry(cfg Config) *Registry {
	r := &Registry{
		cfg:      cfg,
		entries:  make(map[Handle]*entry),
		managers: make(map[ManagerTag]Manager),
		nextTag:  1,
	}
	r.tag = r.registerManager(&refManager{r: r})
	return r
}

// WithObserver attaches an observer to the registry for observability
// hooks and returns the registry for chaining. When using FX, the observer
// is injected automatically instead.
func (r *Registry) WithObserver(observer observability.Observer) *Registry {
	r.observer = observer
	return r
}

// WithLogger attaches a logger and returns the registry for chaining.
func (r *Registry) WithLogger(log *logger.LoggerClient) *Registry {
	r.log = log
	return r
}

// Tag returns the registry's own manager tag.
func (r *Registry) Tag() ManagerTag {
	return r.tag
}

// RegisterManager adds an externally owned manager to the dispatch table
// and returns its tag. The engine's synthetic slots are modeled by
// registering their manager here; IsKnown still reports false for them.
func (r *Registry) RegisterManager(m Manager) ManagerTag {
	return r.registerManager(m)
}

func (r *Registry) registerManager(m Manager) ManagerTag {
	r.mu.Lock()
	defer r.mu.Unlock()
	tag := r.nextTag
	r.nextTag++
	r.managers[tag] = m
	return tag
}

// Pin stores value behind a fresh handle with a reference count of one and
// returns the slot referencing it. release, if non-nil, runs exactly once
// when the last reference is destroyed; it is invoked outside the global
// lock.
func (r *Registry) Pin(value interface{}, release func(interface{})) Slot {
	start := time.Now()

	r.mu.Lock()
	r.nextHandle++
	handle := r.nextHandle
	r.entries[handle] = &entry{value: value, refs: 1, release: release}
	r.liveRefs++
	live := r.liveRefs
	r.mu.Unlock()

	slot := Slot{Handle: handle, Manager: r.tag}
	r.observe("pin", time.Since(start), live, handle, nil)
	return slot
}

// Resolve returns the runtime object referenced by a bridge-owned slot.
// It reports false for empty slots, foreign-tagged slots, and handles that
// are no longer tracked.
func (r *Registry) Resolve(slot Slot) (interface{}, bool) {
	if slot.Manager != r.tag {
		return nil, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[slot.Handle]
	if !ok {
		return nil, false
	}
	return e.value, true
}

// RefCount returns the current reference count of the object a slot
// references, or zero when the slot is not a tracked bridge-owned slot.
// Intended for diagnostics.
func (r *Registry) RefCount(slot Slot) int64 {
	if slot.Manager != r.tag {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[slot.Handle]
	if !ok {
		return 0
	}
	return e.refs
}

// LiveReferences returns the total number of outstanding references across
// all pinned objects.
func (r *Registry) LiveReferences() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.liveRefs
}

// Copy assigns dst's reference and manager from src and increments the
// reference count on the underlying object. Both slot pointers must be
// non-nil and src must be a live bridge-owned slot; on any failure dst is
// left untouched.
//
// Safe to call from engine-internal threads.
func (r *Registry) Copy(dst, src *Slot) error {
	start := time.Now()
	live, err := r.copyRef(dst, src)
	r.observe("copy", time.Since(start), live, srcHandle(src), err)
	if err != nil && r.log != nil {
		r.log.Error("managed-pointer copy failed", err, map[string]interface{}{
			"service": r.cfg.ServiceName,
		})
	}
	return err
}

func (r *Registry) copyRef(dst, src *Slot) (int64, error) {
	if dst == nil || src == nil {
		return r.LiveReferences(), ErrNilSlot
	}
	if src.IsEmpty() {
		return r.LiveReferences(), ErrEmptySource
	}
	if src.Manager != r.tag {
		return r.LiveReferences(), fmt.Errorf("%w: tag %d", ErrUnknownManager, src.Manager)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[src.Handle]
	if !ok {
		return r.liveRefs, fmt.Errorf("%w: %d", ErrUnknownHandle, src.Handle)
	}

	e.refs++
	r.liveRefs++
	*dst = *src
	return r.liveRefs, nil
}

// Destroy decrements the reference count on the object a slot references,
// releasing the object when the count reaches zero. Destroying an empty
// slot is a no-op, mirroring the engine's tolerance for unset slots;
// destroying a stale handle is the refcount-underflow error.
//
// Safe to call from engine-internal threads. The release callback of a
// fully released object runs after the global lock is dropped, so a
// nested Destroy from inside reclamation cannot deadlock.
func (r *Registry) Destroy(slot *Slot) error {
	start := time.Now()
	live, release, value, err := r.destroyRef(slot)
	r.observe("destroy", time.Since(start), live, srcHandle(slot), err)
	if err != nil && r.log != nil {
		r.log.Error("managed-pointer destroy failed", err, map[string]interface{}{
			"service": r.cfg.ServiceName,
		})
	}

	// Reclamation happens outside the critical section.
	if release != nil {
		release(value)
	}
	return err
}

func (r *Registry) destroyRef(slot *Slot) (int64, func(interface{}), interface{}, error) {
	if slot == nil {
		return r.LiveReferences(), nil, nil, ErrNilSlot
	}
	if slot.IsEmpty() {
		return r.LiveReferences(), nil, nil, nil
	}
	if slot.Manager != r.tag {
		return r.LiveReferences(), nil, nil, fmt.Errorf("%w: tag %d", ErrUnknownManager, slot.Manager)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[slot.Handle]
	if !ok {
		return r.liveRefs, nil, nil, fmt.Errorf("%w: %d", ErrUnknownHandle, slot.Handle)
	}

	e.refs--
	r.liveRefs--
	if e.refs > 0 {
		return r.liveRefs, nil, nil, nil
	}

	delete(r.entries, slot.Handle)
	return r.liveRefs, e.release, e.value, nil
}

// Manage is the engine-facing shim over the copy/destroy protocol. It
// dispatches to the manager registered under the governing slot's tag (the
// source for a copy, the destination for a destroy) and flattens the
// result to the integer status ABI: StatusSuccess or StatusFailure.
//
// The engine treats a non-zero status as a fatal internal-consistency
// failure, so unlike the historical contract this shim does propagate
// errors instead of unconditionally reporting success.
func (r *Registry) Manage(op Operation, dst, src *Slot) int {
	err := r.manage(op, dst, src)
	if err != nil {
		if r.log != nil {
			r.log.Error("manager dispatch failed", err, map[string]interface{}{
				"service":   r.cfg.ServiceName,
				"operation": op.String(),
			})
		}
		return StatusFailure
	}
	return StatusSuccess
}

func (r *Registry) manage(op Operation, dst, src *Slot) error {
	var governing *Slot
	switch op {
	case OpCopy:
		governing = src
	case OpDestroy:
		governing = dst
	default:
		return fmt.Errorf("%w: %d", ErrInvalidOperation, int(op))
	}
	if governing == nil {
		return ErrNilSlot
	}

	r.mu.Lock()
	m, ok := r.managers[governing.Manager]
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: tag %d", ErrUnknownManager, governing.Manager)
	}

	if op == OpCopy {
		return m.Copy(dst, src)
	}
	return m.Destroy(dst)
}

// IsKnown reports whether the slot's copy/destroy behavior is owned by
// this registry: true iff the slot's manager tag is the registry's own.
// It reports false for empty slots and for slots populated by the engine
// for its own synthetic purposes (certain recap messages).
//
// Pure query; callable from any thread without the global lock.
func (r *Registry) IsKnown(slot Slot) bool {
	return slot.Manager == r.tag
}

// refManager is the registry's own entry in the manager dispatch table.
type refManager struct {
	r *Registry
}

func (m *refManager) Copy(dst, src *Slot) error {
	return m.r.Copy(dst, src)
}

func (m *refManager) Destroy(slot *Slot) error {
	return m.r.Destroy(slot)
}

func srcHandle(slot *Slot) Handle {
	if slot == nil {
		return 0
	}
	return slot.Handle
}
