package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cppgen/pkg/event"
)

func TestNamespaceTrackerStack(t *testing.T) {
	bus := event.NewBus()
	tracker := NewNamespaceTracker()
	tracker.Attach(bus)
	defer tracker.Detach()

	assert.Empty(t, tracker.Stack())

	bus.Publish(event.Event{Kind: event.NamespacePush, Name: "fr", ScopeDepth: 0})
	bus.Publish(event.Event{Kind: event.ScopePush})
	assert.Equal(t, []string{"fr"}, tracker.Stack())

	bus.Publish(event.Event{Kind: event.NamespacePush, Name: "codegen", ScopeDepth: 1})
	bus.Publish(event.Event{Kind: event.ScopePush})
	assert.Equal(t, []string{"fr", "codegen"}, tracker.Stack())

	bus.Publish(event.Event{Kind: event.ScopePop})
	assert.Equal(t, []string{"fr"}, tracker.Stack())

	bus.Publish(event.Event{Kind: event.ScopePop})
	assert.Empty(t, tracker.Stack())
}

func TestNamespaceTrackerSiblingNamespaces(t *testing.T) {
	bus := event.NewBus()
	tracker := NewNamespaceTracker()
	tracker.Attach(bus)
	defer tracker.Detach()

	bus.Publish(event.Event{Kind: event.NamespacePush, Name: "a", ScopeDepth: 0})
	bus.Publish(event.Event{Kind: event.ScopePush})
	bus.Publish(event.Event{Kind: event.ScopePop})

	bus.Publish(event.Event{Kind: event.NamespacePush, Name: "b", ScopeDepth: 0})
	bus.Publish(event.Event{Kind: event.ScopePush})
	assert.Equal(t, []string{"b"}, tracker.Stack())
	bus.Publish(event.Event{Kind: event.ScopePop})
}

func TestNamespaceTrackerDetachStopsUpdates(t *testing.T) {
	bus := event.NewBus()
	tracker := NewNamespaceTracker()
	tracker.Attach(bus)
	tracker.Detach()

	bus.Publish(event.Event{Kind: event.NamespacePush, Name: "fr", ScopeDepth: 0})
	bus.Publish(event.Event{Kind: event.ScopePush})
	assert.Empty(t, tracker.Stack())
}
