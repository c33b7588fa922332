package catalog

import "cppgen/pkg/event"

// NamespaceTracker maintains the stack of namespaces currently in
// scope, keyed by the scope depth at which each was introduced, so
// EnumCollector and ClassCollector can stamp a declaration with the
// namespaces enclosing it.
type NamespaceTracker struct {
	depth   int
	entries []NamespaceEntry
	subs    []*event.Subscription
}

// NewNamespaceTracker creates a tracker with no subscriptions. Call Attach
// to start listening to a bus.
func NewNamespaceTracker() *NamespaceTracker {
	return &NamespaceTracker{}
}

// Attach subscribes the tracker to scope-push, scope-pop, and
// namespace-push events on bus. Call Detach (or rely on a fresh tracker)
// before re-attaching to a different bus.
func (n *NamespaceTracker) Attach(bus *event.Bus) {
	n.Detach()
	n.depth = 0
	n.entries = nil
	n.subs = append(n.subs,
		bus.Subscribe(event.ScopePush, func(event.Event) {
			n.depth++
		}),
		bus.Subscribe(event.ScopePop, func(event.Event) {
			n.depth--
			n.cleanup()
		}),
		bus.Subscribe(event.NamespacePush, func(e event.Event) {
			// The namespace's own brace has not been scope-pushed yet at
			// event time, so the entry is recorded one level deeper than
			// the depth the event carries.
			n.entries = append(n.entries, NamespaceEntry{Name: e.Name, ScopeDepth: e.ScopeDepth + 1})
		}),
	)
}

// Detach disconnects every subscription the tracker holds. A driver's
// teardown must call this before the tracker is discarded, or dangling
// callbacks into it become a lifecycle bug.
func (n *NamespaceTracker) Detach() {
	for _, sub := range n.subs {
		sub.Disconnect()
	}
	n.subs = nil
}

// cleanup pops every namespace entry whose recorded scope depth is now
// greater than the current depth, i.e. every namespace whose own scope just
// closed. Closing a scope nested inside a namespace leaves it in place.
func (n *NamespaceTracker) cleanup() {
	for len(n.entries) > 0 && n.entries[len(n.entries)-1].ScopeDepth > n.depth {
		n.entries = n.entries[:len(n.entries)-1]
	}
}

// Stack returns the names of the currently active namespaces, outermost
// first. The caller owns the returned slice.
func (n *NamespaceTracker) Stack() []string {
	names := make([]string, len(n.entries))
	for i, entry := range n.entries {
		names[i] = entry.Name
	}
	return names
}
