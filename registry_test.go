package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrySend(t *testing.T) {
	reg := newRegistry()
	c := testClient()
	reg.register("p1", c)

	reg.send("p1", newEvent(evtError, errorEvent{Message: "hello"}))

	select {
	case env := <-c.send:
		assert.Equal(t, evtError, env.Type)
	default:
		t.Fatal("event was not delivered")
	}

	// Unknown recipients are silently skipped.
	reg.send("ghost", newEvent(evtError, errorEvent{Message: "hello"}))

	reg.unregister("p1")
	reg.send("p1", newEvent(evtError, errorEvent{Message: "hello"}))
	assertNoEvent(t, c)
}

func TestRegistrySendFullBufferDrops(t *testing.T) {
	reg := newRegistry()
	c := testClient()
	reg.register("p1", c)

	event := newEvent(evtError, errorEvent{Message: "x"})
	for range cap(c.send) + 5 {
		reg.send("p1", event)
	}

	// The channel filled up and the surplus was dropped, not blocked on.
	assert.Len(t, c.send, cap(c.send))
}

func TestRegistryBroadcast(t *testing.T) {
	reg := newRegistry()
	room := &Room{Players: []*Player{{ID: "p1"}, {ID: "p2"}, {ID: "p3"}}}

	c1, c2 := testClient(), testClient()
	reg.register("p1", c1)
	reg.register("p2", c2)
	// p3 has no registered connection.

	reg.broadcast(room, newEvent(evtError, errorEvent{Message: "all"}))

	require.Len(t, c1.send, 1)
	require.Len(t, c2.send, 1)
}
