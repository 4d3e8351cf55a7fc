package gwy

// Notifier replaces the upstream "data-changed"/"item-changed::/…" GObject
// signal emission (spec.md §9): owning containers (Field, Line, Selection)
// embed a Notifier and invoke Emit after any mutation; callers subscribe
// with Subscribe instead of parsing a detail string.
type Notifier struct {
	subs []func(event string)
}

// Subscribe registers fn to be called on every future Emit. It returns
// nothing to unsubscribe with: the CORE has no use case that needs
// unsubscription (mirrors spec.md's "no GUI" scope — subscription
// lifetime is owned by the application layer, out of CORE scope).
func (n *Notifier) Subscribe(fn func(event string)) {
	n.subs = append(n.subs, fn)
}

// Emit invokes every subscriber with event, e.g. "data-changed" or
// "item-changed::/3".
func (n *Notifier) Emit(event string) {
	for _, fn := range n.subs {
		fn(event)
	}
}
