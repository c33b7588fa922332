package catalog

import "cppgen/pkg/event"

// EnumCollector accumulates one EnumData across a parse and
// publishes it, keyed by fully qualified name, once the enclosing scope
// closes.
type EnumCollector struct {
	namespaces *NamespaceTracker
	current    EnumData
	fileName   string
	subs       []*event.Subscription

	onAvailable []func(key string, data EnumData)
}

// NewEnumCollector creates a collector with no subscriptions.
func NewEnumCollector() *EnumCollector {
	return &EnumCollector{namespaces: NewNamespaceTracker()}
}

// SetFile sets the filename stamped onto EnumData.DefinedIn for every enum
// committed from this point on, via an out-of-band setter rather than a
// constructor argument, since the collector outlives any single file.
func (c *EnumCollector) SetFile(name string) {
	c.fileName = name
}

// OnEnumAvailable registers a callback invoked every time an enum is
// committed. It is the Go-level equivalent of subscribing to the
// enumAvailable signal.
func (c *EnumCollector) OnEnumAvailable(fn func(key string, data EnumData)) {
	c.onAvailable = append(c.onAvailable, fn)
}

// Attach subscribes the collector (and its NamespaceTracker) to bus.
func (c *EnumCollector) Attach(bus *event.Bus) {
	c.Detach()
	c.current.clear()
	c.namespaces.Attach(bus)
	c.subs = append(c.subs,
		bus.Subscribe(event.EnumPush, func(e event.Event) {
			c.current.Namespaces = c.namespaces.Stack()
			c.current.Name = e.Name
			c.current.IsClassEnum = false
		}),
		bus.Subscribe(event.EnumClassPush, func(e event.Event) {
			c.current.Namespaces = c.namespaces.Stack()
			c.current.Name = e.Name
			c.current.IsClassEnum = true
		}),
		bus.Subscribe(event.EnumIdentifier, func(e event.Event) {
			c.current.Identifiers = append(c.current.Identifiers, e.Name)
		}),
		bus.Subscribe(event.ScopePop, func(event.Event) {
			if c.current.Name == "" {
				return
			}
			c.current.DefinedIn = c.fileName
			key := c.current.FullyQualifiedName()
			data := c.current
			for _, fn := range c.onAvailable {
				fn(key, data)
			}
			c.current.clear()
		}),
	)
}

// Detach disconnects every subscription the collector holds, including its
// NamespaceTracker's.
func (c *EnumCollector) Detach() {
	for _, sub := range c.subs {
		sub.Disconnect()
	}
	c.subs = nil
	c.namespaces.Detach()
}
