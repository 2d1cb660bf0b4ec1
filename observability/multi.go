package observability

// MultiObserver fans operation events out to several observers.
// It implements the Observer interface itself, so a metrics observer and a
// tracing observer can be attached to a component through its single
// observer slot.
type MultiObserver struct {
	observers []Observer
}

// ObserveOperation forwards the operation to every wrapped observer in order.
func (m *MultiObserver) ObserveOperation(op OperationContext) {
	for _, o := range m.observers {
		o.ObserveOperation(op)
	}
}

// NewMultiObserver creates an Observer that forwards every operation to all
// of the given observers. Nil entries are skipped.
func NewMultiObserver(observers ...Observer) Observer {
	kept := make([]Observer, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			kept = append(kept, o)
		}
	}
	return &MultiObserver{observers: kept}
}
