package model

import (
	"math"
	"sort"
)

// Vec2 is a planar world position.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Dist returns the Euclidean distance between two points.
func (v Vec2) Dist(o Vec2) float64 {
	return math.Hypot(o.X-v.X, o.Y-v.Y)
}

// UnitKind names the things a base can build. The host's cost table is keyed by it.
type UnitKind string

const (
	KindMine UnitKind = "mine"
	KindTank UnitKind = "tank"
	KindShip UnitKind = "ship"
	KindJet  UnitKind = "jet"
)

// Entity is anything on the map with an identity and a position.
type Entity interface {
	UID() string
	Position() Vec2
}

// Base is a stationary structure that holds crystal and builds units.
// Build methods return the new unit's id.
type Base interface {
	Entity
	Crystal() float64
	Mines() int
	Cost(kind UnitKind) float64
	BuildMine() string
	BuildTank(heading float64) string
	BuildShip(heading float64) string
	BuildJet(heading float64) string
}

// Mobile is a unit that can be steered. Stopped reports that the unit neither
// moved nor changed heading since the previous tick.
type Mobile interface {
	Entity
	Stopped() bool
	SetHeading(degrees float64)
	Goto(x, y float64)
	Distance(x, y float64) float64
}

// Convertible is a mobile unit that can turn itself into a new base.
type Convertible interface {
	Mobile
	ConvertToBase()
}

// TeamInfo lists the entities one team owns this tick.
type TeamInfo struct {
	Bases []Base
	Tanks []Mobile
	Ships []Convertible
	Jets  []Mobile
}

// WorldSnapshot maps team name to that team's entities. Supplied fresh every tick.
type WorldSnapshot map[string]TeamInfo

// EnemyBases collects the bases of every team other than self, in team-name order
// so that nearest-target ties resolve the same way on every tick.
func (w WorldSnapshot) EnemyBases(self string) []Base {
	var out []Base
	for _, name := range w.TeamNames() {
		if name == self {
			continue
		}
		out = append(out, w[name].Bases...)
	}
	return out
}

// TeamNames returns the team names sorted, for deterministic iteration.
func (w WorldSnapshot) TeamNames() []string {
	names := make([]string, 0, len(w))
	for name := range w {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
