package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cppgen/pkg/event"
)

func TestEnumCollectorUnscopedEnum(t *testing.T) {
	bus := event.NewBus()
	collector := NewEnumCollector()
	collector.SetFile("colors.hpp")
	collector.Attach(bus)
	defer collector.Detach()

	var got map[string]EnumData
	collector.OnEnumAvailable(func(key string, data EnumData) {
		if got == nil {
			got = make(map[string]EnumData)
		}
		got[key] = data
	})

	bus.Publish(event.Event{Kind: event.EnumPush, Name: "Color"})
	bus.Publish(event.Event{Kind: event.ScopePush})
	bus.Publish(event.Event{Kind: event.EnumIdentifier, Name: "Red"})
	bus.Publish(event.Event{Kind: event.EnumIdentifier, Name: "Green"})
	bus.Publish(event.Event{Kind: event.ScopePop})

	assert.Contains(t, got, "Color")
	data := got["Color"]
	assert.False(t, data.IsClassEnum)
	assert.Equal(t, []string{"Red", "Green"}, data.Identifiers)
	assert.Equal(t, "colors.hpp", data.DefinedIn)
}

func TestEnumCollectorScopedEnumWithNamespace(t *testing.T) {
	bus := event.NewBus()
	collector := NewEnumCollector()
	collector.SetFile("fruit.hpp")
	collector.Attach(bus)
	defer collector.Detach()

	var got map[string]EnumData
	collector.OnEnumAvailable(func(key string, data EnumData) {
		if got == nil {
			got = make(map[string]EnumData)
		}
		got[key] = data
	})

	bus.Publish(event.Event{Kind: event.NamespacePush, Name: "fr", ScopeDepth: 0})
	bus.Publish(event.Event{Kind: event.ScopePush})
	bus.Publish(event.Event{Kind: event.EnumClassPush, Name: "Fruit"})
	bus.Publish(event.Event{Kind: event.ScopePush})
	bus.Publish(event.Event{Kind: event.EnumIdentifier, Name: "Apple"})
	bus.Publish(event.Event{Kind: event.ScopePop})
	bus.Publish(event.Event{Kind: event.ScopePop})

	assert.Contains(t, got, "fr::Fruit")
	data := got["fr::Fruit"]
	assert.True(t, data.IsClassEnum)
	assert.Equal(t, []string{"fr"}, data.Namespaces)
	assert.Equal(t, []string{"Apple"}, data.Identifiers)
}

func TestEnumCollectorIgnoresUnrelatedScopePop(t *testing.T) {
	bus := event.NewBus()
	collector := NewEnumCollector()
	collector.Attach(bus)
	defer collector.Detach()

	var calls int
	collector.OnEnumAvailable(func(string, EnumData) { calls++ })

	bus.Publish(event.Event{Kind: event.ScopePush})
	bus.Publish(event.Event{Kind: event.ScopePop})

	assert.Zero(t, calls)
}
