package ipc

import (
	"log/slog"

	"github.com/google/uuid"
)

// Handler processes a received envelope. Return nil to send no reply.
type Handler func(env Envelope) (*Envelope, error)

// Connection represents a single host session talking to the agent.
// Each team gets its own connection, identified after the hello handshake.
type Connection struct {
	t        Transport
	handlers map[string]Handler
	ID       string
	Player   string
}

func NewConnection(t Transport, handlers map[string]Handler) *Connection {
	if handlers == nil {
		handlers = make(map[string]Handler)
	}
	return &Connection{
		t:        t,
		handlers: handlers,
		ID:       uuid.NewString(),
	}
}

func (c *Connection) RegisterHandler(msgType string, handler Handler) {
	c.handlers[msgType] = handler
}

// ReadLoop blocks until the connection closes or errors. It owns the transport
// lifetime so callers don't need to track cleanup.
func (c *Connection) ReadLoop() {
	defer c.t.Close()

	for {
		env, err := c.t.Read()
		if err != nil {
			slog.Info("connection read ended", "session", c.ID, "player", c.Player, "error", err)
			return
		}

		handler, ok := c.handlers[env.Type]
		if !ok {
			slog.Warn("no handler for message type", "session", c.ID, "type", env.Type)
			continue
		}

		resp, err := handler(env)
		if err != nil {
			slog.Error("handler error", "session", c.ID, "type", env.Type, "error", err)
			continue
		}

		if resp != nil {
			if err := c.t.Write(*resp); err != nil {
				slog.Error("failed to send response", "session", c.ID, "type", resp.Type, "error", err)
				return
			}
			slog.Debug("sent response", "session", c.ID, "type", resp.Type, "player", c.Player)
		}
	}
}
