package ipc

// Command kinds, one per entity command the policy can issue.
const (
	CmdBuildMine     = "build_mine"
	CmdBuildTank     = "build_tank"
	CmdBuildShip     = "build_ship"
	CmdBuildJet      = "build_jet"
	CmdSetHeading    = "set_heading"
	CmdGoto          = "goto"
	CmdConvertToBase = "convert_to_base"
)

// Command is one order for one entity. Only the fields its Kind needs are set.
type Command struct {
	UID     string   `json:"uid"`
	Kind    string   `json:"kind"`
	Heading *float64 `json:"heading,omitempty"`
	X       *float64 `json:"x,omitempty"`
	Y       *float64 `json:"y,omitempty"`
	NewUID  string   `json:"new_uid,omitempty"` // provisional id handed back for builds
}

// CommandsMessage is the reply to a game_state.
type CommandsMessage struct {
	Tick     int       `json:"tick"`
	Commands []Command `json:"commands"`
}

// Batch collects the commands issued during one tick, in issue order.
type Batch struct {
	commands []Command
	built    int
}

func (b *Batch) add(c Command) {
	if b == nil {
		return
	}
	b.commands = append(b.commands, c)
}

// Commands returns the recorded commands. Never nil, so it encodes as [].
func (b *Batch) Commands() []Command {
	if b == nil || b.commands == nil {
		return []Command{}
	}
	return b.commands
}

func (b *Batch) Len() int {
	if b == nil {
		return 0
	}
	return len(b.commands)
}

// Count returns how many recorded commands have the given kind.
func (b *Batch) Count(kind string) int {
	n := 0
	for _, c := range b.Commands() {
		if c.Kind == kind {
			n++
		}
	}
	return n
}
