package ipc

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

// Transport moves whole envelopes. A Connection reads and writes through one.
type Transport interface {
	Read() (Envelope, error)
	Write(env Envelope) error
	Close() error
}

// streamTransport frames envelopes with a length prefix over a byte stream
// (unix socket or TCP).
type streamTransport struct {
	conn net.Conn
}

func NewStreamTransport(conn net.Conn) Transport {
	return &streamTransport{conn: conn}
}

func (s *streamTransport) Read() (Envelope, error)  { return ReadEnvelope(s.conn) }
func (s *streamTransport) Write(env Envelope) error { return WriteEnvelope(s.conn, env) }
func (s *streamTransport) Close() error             { return s.conn.Close() }

// wsTransport carries one envelope per websocket text frame.
type wsTransport struct {
	conn *websocket.Conn
}

func NewWSTransport(conn *websocket.Conn) Transport {
	conn.SetReadLimit(MaxMessageLength)
	return &wsTransport{conn: conn}
}

func (w *wsTransport) Read() (Envelope, error) {
	_, msg, err := w.conn.ReadMessage()
	if err != nil {
		return Envelope{}, fmt.Errorf("read frame: %w", err)
	}
	return decodeEnvelope(msg)
}

func (w *wsTransport) Write(env Envelope) error {
	payload, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}
	_ = w.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	if err := w.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

func (w *wsTransport) Close() error { return w.conn.Close() }

// WSHandler upgrades HTTP requests to websocket connections and hands each
// one to serve, which owns it until it returns.
func WSHandler(serve func(Transport)) http.HandlerFunc {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  64 * 1024,
		WriteBufferSize: 64 * 1024,
		CheckOrigin:     func(r *http.Request) bool { return true }, // hosts are local processes
	}
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(rw, r, nil)
		if err != nil {
			slog.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
			return
		}
		serve(NewWSTransport(conn))
	}
}
