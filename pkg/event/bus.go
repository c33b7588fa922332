// Package event implements the publish/subscribe bus the structural parser
// (pkg/parser) uses to announce what it finds — scope pushes and pops,
// namespace/enum/class declarations, members, methods, annotations — to
// whichever drivers (pkg/catalog) care to listen. It mirrors the
// subscriber-list-plus-cancelable-handle shape used for the job queue in
// this corpus's async package, generalized from "chan *Job" to a typed
// event sum so a single bus can carry every parser signal.
package event

import (
	"sync"

	"github.com/google/uuid"
)

// Kind discriminates the variants of Event. Drivers subscribe per Kind
// rather than to the bus as a whole, the same way the original parser
// exposes one signal per declaration shape instead of a single firehose.
type Kind int

const (
	ScopePush Kind = iota
	ScopePop
	NamespacePush
	EnumPush
	EnumClassPush
	EnumIdentifier
	ClassPush
	StructPush
	ClassParent
	AccessChange
	MemberFound
	MethodFound
	AnnotationFound
	ClassPop
	IncludeDirective
)

// Access mirrors the three access qualifiers the grammar records on a
// parent class, a member, or a method. It is defined here rather than in
// pkg/catalog so both the parser and the drivers can share one vocabulary
// for "what was written after the access keyword" without an import cycle.
type Access int

const (
	AccessNone Access = iota
	AccessPublic
	AccessProtected
	AccessPrivate
)

// Event is a single parser signal. Only the fields relevant to Kind are
// populated; this is the same one-struct-many-purpose-fields shape the
// teacher uses for its AST Entity, generalized to a stream of signals
// instead of a tree of nodes.
type Event struct {
	Kind Kind

	Name       string // identifier name: namespace/enum/class/member/method/parent
	ScopeDepth int    // current scope depth at the time of the event
	Type       string // declared type text (members, methods, enum underlying type unused)
	Access     Access
	Const      bool
	Static     bool
	Virtual    bool
	Annotation string // raw inner text of a [[ ... ]] annotation
	Include    string // raw "#include ..." directive text
}

type subscriber struct {
	id      uuid.UUID
	handler func(Event)
}

// Bus dispatches Events to subscribers synchronously, in subscription
// order. A Bus is safe to share across
// goroutines driving independent parses even though a single parse's
// dispatch is itself single-threaded straight-line code.
type Bus struct {
	mu          sync.Mutex
	subscribers map[Kind][]subscriber
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{subscribers: make(map[Kind][]subscriber)}
}

// Subscription is a cancelable handle to one Subscribe call. Disconnect is
// idempotent: calling it more than once, or on a zero Subscription, is a
// no-op.
type Subscription struct {
	bus  *Bus
	kind Kind
	id   uuid.UUID
}

// Disconnect removes the subscriber from all future dispatches. It is safe
// to call multiple times and safe to call on a Subscription whose bus has
// already had this subscriber removed.
func (s *Subscription) Disconnect() {
	if s == nil || s.bus == nil {
		return
	}
	s.bus.mu.Lock()
	defer s.bus.mu.Unlock()
	subs := s.bus.subscribers[s.kind]
	for i, sub := range subs {
		if sub.id == s.id {
			s.bus.subscribers[s.kind] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	s.bus = nil
}

// Subscribe registers handler to run on every future Publish of the given
// Kind, returning a Subscription that can later Disconnect it.
func (b *Bus) Subscribe(kind Kind, handler func(Event)) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := uuid.New()
	b.subscribers[kind] = append(b.subscribers[kind], subscriber{id: id, handler: handler})
	return &Subscription{bus: b, kind: kind, id: id}
}

// Publish dispatches e to every subscriber of e.Kind, in subscription
// order, running each to completion before the next before returning to
// the caller. Publish takes a snapshot of the subscriber
// list before dispatching so a handler that disconnects itself or another
// subscriber mid-dispatch cannot corrupt this Publish's iteration.
func (b *Bus) Publish(e Event) {
	b.mu.Lock()
	subs := make([]subscriber, len(b.subscribers[e.Kind]))
	copy(subs, b.subscribers[e.Kind])
	b.mu.Unlock()

	for _, sub := range subs {
		sub.handler(e)
	}
}
