// Package lifetime implements the copy/destroy protocol the external
// messaging engine uses to manage references it holds into the consuming
// runtime.
//
// When application code attaches a runtime object to a correlation
// identifier, the engine takes ownership of a small managed-pointer slot:
// an opaque reference plus a manager tag saying who knows how to copy and
// destroy that reference. Whenever the engine duplicates a correlation
// identifier (fan-out to multiple deliveries) it asks the manager to copy
// the slot; whenever it retires one (subscription termination, request
// completion) it asks the manager to destroy it. These calls arrive on
// engine-internal threads the runtime does not control.
//
// The Registry is the heart of the package. It pins runtime objects behind
// opaque handles, reference-counts every engine-held slot, and dispatches
// copy/destroy requests to the manager registered under the slot's tag.
// Slots populated by the engine for its own synthetic purposes (certain
// recap messages) carry a different tag; IsKnown distinguishes them so
// higher-level code never treats an engine-internal slot as holding a
// runtime reference.
//
// # Concurrency
//
// All reference-count mutation happens under one global mutex, acquired for
// the duration of each Copy/Destroy call and released on every exit path.
// Release callbacks - the runtime reclaiming an object whose last reference
// dropped - run strictly after that mutex is released, so a Destroy
// triggered from inside a release callback cannot deadlock. IsKnown takes
// no lock at all; it compares immutable tags.
//
// There are no timeouts and no retries: every operation is bounded and
// either completes or fails immediately. A refcount underflow or an unknown
// handle indicates corrupted foreign-reference state; the error surfaces to
// the caller and the failing operation changes nothing.
//
// # Usage
//
//	reg := lifetime.NewRegistry(lifetime.Config{ServiceName: "ticker-feed"})
//
//	// associate a runtime object with a correlation identifier
//	slot := reg.Pin(sub, func(v interface{}) { v.(*Subscription).close() })
//
//	// the engine duplicates and retires slots through the ABI shim
//	status := reg.Manage(lifetime.OpCopy, &dst, &slot)   // 0 on success
//	status = reg.Manage(lifetime.OpDestroy, &dst, nil)
//
//	// higher-level code checks slot ownership before trusting it
//	if reg.IsKnown(incoming) {
//	    v, _ := reg.Resolve(incoming)
//	}
package lifetime
