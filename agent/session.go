package agent

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nstehr/bumblebee/ipc"
	"github.com/nstehr/bumblebee/model"
)

// Recorder receives one entry per decided tick. *journal.Writer satisfies it.
type Recorder interface {
	Write(v any) error
}

// TickEntry is what a session journals after each game_state.
type TickEntry struct {
	Session  string        `json:"session"`
	Team     string        `json:"team"`
	Tick     int           `json:"tick"`
	T        float64       `json:"t"`
	Commands []ipc.Command `json:"commands"`
	Events   []Event       `json:"events,omitempty"`
}

// Session binds one host connection to one Agent.
type Session struct {
	Conn    *ipc.Connection
	Agent   *Agent
	journal Recorder
}

// NewSession wires the handlers onto conn. journal may be nil.
func NewSession(conn *ipc.Connection, a *Agent, journal Recorder) *Session {
	s := &Session{Conn: conn, Agent: a, journal: journal}
	conn.RegisterHandler(ipc.TypeHello, s.HandleHello)
	conn.RegisterHandler(ipc.TypeGameState, s.HandleGameState)
	return s
}

// HandleHello completes the handshake and tells the host our team name.
func (s *Session) HandleHello(env ipc.Envelope) (*ipc.Envelope, error) {
	var hello ipc.HelloMessage
	if err := json.Unmarshal(env.Data, &hello); err != nil {
		return nil, fmt.Errorf("unmarshal hello: %w", err)
	}

	s.Conn.Player = hello.Player
	slog.Info("player identified", "session", s.Conn.ID, "player", hello.Player, "team", s.Agent.Team())

	ack, err := ipc.NewEnvelope(ipc.TypeAck, ipc.AckMessage{Status: "ok", Team: s.Agent.Team()})
	if err != nil {
		return nil, err
	}
	return &ack, nil
}

// HandleGameState runs one tick and replies with every command the agent issued.
func (s *Session) HandleGameState(env ipc.Envelope) (*ipc.Envelope, error) {
	var gs model.GameState
	if err := json.Unmarshal(env.Data, &gs); err != nil {
		return nil, fmt.Errorf("unmarshal GameState: %w", err)
	}

	var batch ipc.Batch
	world := ipc.Snapshot(gs, s.Agent.Team(), &batch)
	s.Agent.Run(gs.Time, gs.Dt, world, model.NewGameMap(gs.Map))

	slog.Debug("tick answered",
		"session", s.Conn.ID,
		"tick", gs.Tick,
		"commands", batch.Len(),
		"builds", batch.Count(ipc.CmdBuildMine)+batch.Count(ipc.CmdBuildTank)+batch.Count(ipc.CmdBuildShip)+batch.Count(ipc.CmdBuildJet),
		"conversions", batch.Count(ipc.CmdConvertToBase),
	)

	if s.journal != nil {
		entry := TickEntry{
			Session:  s.Conn.ID,
			Team:     s.Agent.Team(),
			Tick:     gs.Tick,
			T:        gs.Time,
			Commands: batch.Commands(),
			Events:   s.Agent.Events(),
		}
		if err := s.journal.Write(entry); err != nil {
			slog.Error("journal write failed", "session", s.Conn.ID, "error", err)
		}
	}

	reply, err := ipc.NewEnvelope(ipc.TypeCommands, ipc.CommandsMessage{Tick: gs.Tick, Commands: batch.Commands()})
	if err != nil {
		return nil, err
	}
	return &reply, nil
}
