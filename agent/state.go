package agent

import "github.com/nstehr/bumblebee/model"

// PolicyState is everything the agent remembers between ticks.
// Entries are never removed: the host does not report destroyed units, and a
// stale position or counter is harmless.
type PolicyState struct {
	PreviousPositions map[string]model.Vec2 // tank/ship uid → position at end of last tick
	TankCount         map[string]int        // base uid → tanks built by that base
	ShipCount         map[string]int        // base uid → ships built by that base
}

func NewPolicyState() *PolicyState {
	return &PolicyState{
		PreviousPositions: make(map[string]model.Vec2),
		TankCount:         make(map[string]int),
		ShipCount:         make(map[string]int),
	}
}

// observeBase gives a base its counters the first time it is seen.
func (s *PolicyState) observeBase(uid string) {
	if _, ok := s.TankCount[uid]; !ok {
		s.TankCount[uid] = 0
	}
	if _, ok := s.ShipCount[uid]; !ok {
		s.ShipCount[uid] = 0
	}
}

// stuck reports whether a tracked unit sits exactly where it was last tick.
// The second result is false for a unit seen for the first time.
func (s *PolicyState) stuck(u model.Entity) (stuck, tracked bool) {
	prev, ok := s.PreviousPositions[u.UID()]
	if !ok {
		return false, false
	}
	return u.Position() == prev, true
}

func (s *PolicyState) record(u model.Entity) {
	s.PreviousPositions[u.UID()] = u.Position()
}
