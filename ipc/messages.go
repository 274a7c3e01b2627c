package ipc

// Message type constants shared with the simulation host.
const (
	TypeHello     = "hello"
	TypeAck       = "ack"
	TypeGameState = "game_state"
	TypeCommands  = "commands"
)

type HelloMessage struct {
	Player string `json:"player"`
}

// AckMessage answers hello. Team is the name the host must attribute our entities to.
type AckMessage struct {
	Status string `json:"status"`
	Team   string `json:"team,omitempty"`
}
