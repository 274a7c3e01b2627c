package rules

import (
	"math/rand/v2"

	"github.com/nstehr/bumblebee/model"
)

// BaseEnv wraps one owned base and exposes helper methods callable from expr expressions.
// Tanks and Ships are the per-base build counters owned by the agent; actions
// increment them in place.
type BaseEnv struct {
	Base    model.Base
	Tanks   map[string]int
	Ships   map[string]int
	Heading func() float64
}

func (e BaseEnv) Mines() int {
	return e.Base.Mines()
}

func (e BaseEnv) Crystal() float64 {
	return e.Base.Crystal()
}

// CanAfford reports whether the base's stock covers the cost of kind.
func (e BaseEnv) CanAfford(kind string) bool {
	return e.Base.Crystal() >= e.Base.Cost(model.UnitKind(kind))
}

func (e BaseEnv) TankCount() int {
	return e.Tanks[e.Base.UID()]
}

func (e BaseEnv) ShipCount() int {
	return e.Ships[e.Base.UID()]
}

// heading draws a uniform heading in [0, 360).
func (e BaseEnv) heading() float64 {
	if e.Heading != nil {
		return e.Heading()
	}
	return rand.Float64() * 360
}
