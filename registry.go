package main

import (
	"github.com/gorilla/websocket"
)

// Client is one websocket connection. The send channel is drained by
// writePump; it is buffered so a slow reader never blocks a broadcast.
type Client struct {
	conn *websocket.Conn
	send chan envelope

	// Assigned once the connection creates or joins a room.
	playerID string
	roomID   string
}

func newClient(conn *websocket.Conn) *Client {
	return &Client{
		conn: conn,
		send: make(chan envelope, 16),
	}
}

// Registry maps player IDs to their connections. Like the room store
// it holds no lock of its own; the coordinator serializes access.
type Registry struct {
	conns map[string]*Client
}

func newRegistry() *Registry {
	return &Registry{
		conns: make(map[string]*Client),
	}
}

func (reg *Registry) register(playerID string, c *Client) {
	reg.conns[playerID] = c
}

func (reg *Registry) unregister(playerID string) {
	delete(reg.conns, playerID)
}

// send delivers an event to a single player. A missing connection or a
// full send buffer drops the event; delivery is strictly best-effort
// and a disconnected player must never break the caller.
func (reg *Registry) send(playerID string, event envelope) {
	c, ok := reg.conns[playerID]
	if !ok {
		return
	}

	select {
	case c.send <- event:
	default:
	}
}

// sendTo delivers an event to a connection that may not have a player
// ID yet (pre-join errors).
func (reg *Registry) sendTo(c *Client, event envelope) {
	select {
	case c.send <- event:
	default:
	}
}

// broadcast delivers an event to every currently registered member of
// the room, skipping absent connections.
func (reg *Registry) broadcast(room *Room, event envelope) {
	for _, p := range room.Players {
		reg.send(p.ID, event)
	}
}

// closeConn tears down a player's websocket, if one is registered. The
// read pump notices and runs the normal disconnect path.
func (reg *Registry) closeConn(playerID string) {
	c, ok := reg.conns[playerID]
	if !ok {
		return
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
}
