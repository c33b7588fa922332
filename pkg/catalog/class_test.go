package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cppgen/pkg/event"
)

func TestClassCollectorPublicAndPrivateMembers(t *testing.T) {
	bus := event.NewBus()
	collector := NewClassCollector()
	collector.SetFile("shape.hpp")
	collector.Attach(bus)
	defer collector.Detach()

	var got ClassData
	var key string
	collector.OnClassAvailable(func(k string, data ClassData) {
		key = k
		got = data
	})

	bus.Publish(event.Event{Kind: event.ClassPush, Name: "Shape"})
	bus.Publish(event.Event{Kind: event.AccessChange, Access: event.AccessPublic})
	bus.Publish(event.Event{Kind: event.MethodFound, Type: "void", Name: "draw", Const: false})
	bus.Publish(event.Event{Kind: event.AccessChange, Access: event.AccessPrivate})
	bus.Publish(event.Event{Kind: event.MemberFound, Type: "int", Name: "sides"})
	bus.Publish(event.Event{Kind: event.ClassPop})

	assert.Equal(t, "Shape", key)
	assert.False(t, got.IsStruct)
	assert.Equal(t, "shape.hpp", got.DefinedIn)

	assert.Len(t, got.Methods, 1)
	assert.True(t, got.Methods[0].IsPublic)
	assert.Equal(t, "draw", got.Methods[0].Name)

	assert.Len(t, got.Members, 1)
	assert.False(t, got.Members[0].IsPublic)
	assert.Equal(t, "sides", got.Members[0].Name)
}

func TestClassCollectorStructDefaultsToPublic(t *testing.T) {
	bus := event.NewBus()
	collector := NewClassCollector()
	collector.Attach(bus)
	defer collector.Detach()

	var got ClassData
	collector.OnClassAvailable(func(_ string, data ClassData) { got = data })

	bus.Publish(event.Event{Kind: event.StructPush, Name: "Point"})
	bus.Publish(event.Event{Kind: event.MemberFound, Type: "int", Name: "x"})
	bus.Publish(event.Event{Kind: event.ClassPop})

	assert.True(t, got.IsStruct)
	assert.Len(t, got.Members, 1)
	assert.True(t, got.Members[0].IsPublic)
}

func TestClassCollectorParentsAndNamespace(t *testing.T) {
	bus := event.NewBus()
	collector := NewClassCollector()
	collector.Attach(bus)
	defer collector.Detach()

	var got ClassData
	var key string
	collector.OnClassAvailable(func(k string, data ClassData) {
		key = k
		got = data
	})

	bus.Publish(event.Event{Kind: event.NamespacePush, Name: "fr", ScopeDepth: 0})
	bus.Publish(event.Event{Kind: event.ScopePush})
	bus.Publish(event.Event{Kind: event.ClassPush, Name: "Derived"})
	bus.Publish(event.Event{Kind: event.ClassParent, Name: "Base"})
	bus.Publish(event.Event{Kind: event.ClassPop})
	bus.Publish(event.Event{Kind: event.ScopePop})

	assert.Equal(t, "fr::Derived", key)
	assert.Equal(t, []string{"Base"}, got.Parents)
	assert.Equal(t, []string{"fr"}, got.Namespaces)
}

func TestClassCollectorAnnotationsGetSetCereal(t *testing.T) {
	bus := event.NewBus()
	collector := NewClassCollector()
	collector.Attach(bus)
	defer collector.Detach()

	var got ClassData
	collector.OnClassAvailable(func(_ string, data ClassData) { got = data })

	bus.Publish(event.Event{Kind: event.ClassPush, Name: "Config"})
	bus.Publish(event.Event{Kind: event.AnnotationFound, Annotation: "cereal"})
	bus.Publish(event.Event{Kind: event.AccessChange, Access: event.AccessPublic})
	bus.Publish(event.Event{Kind: event.AnnotationFound, Annotation: "get,set"})
	bus.Publish(event.Event{Kind: event.MemberFound, Type: "int", Name: "count"})
	bus.Publish(event.Event{Kind: event.MemberFound, Type: "int", Name: "other"})
	bus.Publish(event.Event{Kind: event.ClassPop})

	assert.Len(t, got.Members, 2)
	count := got.Members[0]
	assert.True(t, count.Serializable)
	assert.True(t, count.GenerateGetter)
	assert.True(t, count.GenerateSetter)

	other := got.Members[1]
	assert.False(t, other.Serializable)
	assert.False(t, other.GenerateGetter)
	assert.False(t, other.GenerateSetter)
}

func TestClassCollectorAnnotationBeforeClassMarksClassSerializable(t *testing.T) {
	bus := event.NewBus()
	collector := NewClassCollector()
	collector.Attach(bus)
	defer collector.Detach()

	var got ClassData
	collector.OnClassAvailable(func(_ string, data ClassData) { got = data })

	bus.Publish(event.Event{Kind: event.AnnotationFound, Annotation: "cereal"})
	bus.Publish(event.Event{Kind: event.ClassPush, Name: "Saveable"})
	bus.Publish(event.Event{Kind: event.ClassPop})

	assert.True(t, got.Serializable)
}
