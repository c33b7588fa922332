package catalog

import (
	"strings"

	"cppgen/pkg/event"
)

// ClassCollector accumulates one ClassData across a parse —
// members, methods, parents, access levels, and annotation-driven flags —
// and publishes it, keyed by fully qualified name, on class-pop.
type ClassCollector struct {
	namespaces *NamespaceTracker
	current    ClassData
	fileName   string
	subs       []*event.Subscription

	access  event.Access // current in-class access level
	inClass bool

	// Annotation-driven flags pending attachment to the next member or
	// method, reset immediately after attachment.
	pendingSerializable bool
	pendingGetter       bool
	pendingSetter       bool

	onAvailable []func(key string, data ClassData)
}

// NewClassCollector creates a collector with no subscriptions.
func NewClassCollector() *ClassCollector {
	return &ClassCollector{namespaces: NewNamespaceTracker()}
}

// SetFile sets the filename stamped onto ClassData.DefinedIn.
func (c *ClassCollector) SetFile(name string) {
	c.fileName = name
}

// OnClassAvailable registers a callback invoked every time a class is
// committed.
func (c *ClassCollector) OnClassAvailable(fn func(key string, data ClassData)) {
	c.onAvailable = append(c.onAvailable, fn)
}

// Attach subscribes the collector (and its NamespaceTracker) to bus.
func (c *ClassCollector) Attach(bus *event.Bus) {
	c.Detach()
	c.reset()
	c.namespaces.Attach(bus)

	c.subs = append(c.subs,
		bus.Subscribe(event.ClassPush, func(e event.Event) {
			c.current.Namespaces = c.namespaces.Stack()
			c.current.Name = e.Name
			c.current.IsStruct = false
			c.access = event.AccessPrivate
			c.inClass = true
		}),
		bus.Subscribe(event.StructPush, func(e event.Event) {
			c.current.Namespaces = c.namespaces.Stack()
			c.current.Name = e.Name
			c.current.IsStruct = true
			c.access = event.AccessPublic
			c.inClass = true
		}),
		bus.Subscribe(event.ClassParent, func(e event.Event) {
			c.current.Parents = append(c.current.Parents, e.Name)
		}),
		bus.Subscribe(event.AccessChange, func(e event.Event) {
			c.access = e.Access
		}),
		bus.Subscribe(event.MemberFound, func(e event.Event) {
			c.current.Members = append(c.current.Members, MemberData{
				Type:           e.Type,
				Name:           e.Name,
				IsPublic:       c.access == event.AccessPublic,
				IsProtected:    c.access == event.AccessProtected,
				IsConst:        e.Const,
				IsStatic:       e.Static,
				Serializable:   c.pendingSerializable,
				GenerateGetter: c.pendingGetter,
				GenerateSetter: c.pendingSetter,
			})
			c.pendingSerializable = false
			c.pendingGetter = false
			c.pendingSetter = false
		}),
		bus.Subscribe(event.MethodFound, func(e event.Event) {
			c.current.Methods = append(c.current.Methods, MethodData{
				ReturnType:  e.Type,
				Name:        e.Name,
				IsPublic:    c.access == event.AccessPublic,
				IsProtected: c.access == event.AccessProtected,
				IsConst:     e.Const,
				IsStatic:    e.Static,
				IsVirtual:   e.Virtual,
			})
			c.pendingSerializable = false
			c.pendingGetter = false
			c.pendingSetter = false
		}),
		bus.Subscribe(event.AnnotationFound, func(e event.Event) {
			c.handleAnnotation(e.Annotation)
		}),
		bus.Subscribe(event.ClassPop, func(event.Event) {
			c.current.DefinedIn = c.fileName
			key := c.current.FullyQualifiedName()
			data := c.current
			for _, fn := range c.onAvailable {
				fn(key, data)
			}
			c.current.clear()
			c.access = event.AccessPrivate
			c.inClass = false
		}),
	)
}

// handleAnnotation implements the substring scan: any
// annotation whose text contains "cereal" marks the upcoming class
// serializable if seen before a class is open, or the next member
// serializable if seen inside one; "get"/"set" request accessor generation
// for the next member, in-class only.
func (c *ClassCollector) handleAnnotation(text string) {
	if strings.Contains(text, "cereal") {
		if !c.inClass {
			c.current.Serializable = true
		} else {
			c.pendingSerializable = true
		}
	}
	if c.inClass && strings.Contains(text, "get") {
		c.pendingGetter = true
	}
	if c.inClass && strings.Contains(text, "set") {
		c.pendingSetter = true
	}
}

// Detach disconnects every subscription the collector holds, including its
// NamespaceTracker's.
func (c *ClassCollector) Detach() {
	for _, sub := range c.subs {
		sub.Disconnect()
	}
	c.subs = nil
	c.namespaces.Detach()
}

func (c *ClassCollector) reset() {
	c.current.clear()
	c.access = event.AccessPrivate
	c.inClass = false
	c.pendingSerializable = false
	c.pendingGetter = false
	c.pendingSetter = false
}
