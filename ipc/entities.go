package ipc

import (
	"fmt"
	"math"

	"github.com/nstehr/bumblebee/model"
)

// Snapshot turns a wire game state into the policy's view of the world.
// Entities of team record their commands into batch; other teams' entities
// are read-only and drop any command.
func Snapshot(gs model.GameState, team string, batch *Batch) model.WorldSnapshot {
	w := make(model.WorldSnapshot, len(gs.Teams))
	for name, ts := range gs.Teams {
		var b *Batch
		if name == team {
			b = batch
		}
		var info model.TeamInfo
		for i := range ts.Bases {
			info.Bases = append(info.Bases, &remoteBase{state: ts.Bases[i], batch: b})
		}
		for _, u := range ts.Tanks {
			info.Tanks = append(info.Tanks, &remoteUnit{state: u, batch: b})
		}
		for _, u := range ts.Ships {
			info.Ships = append(info.Ships, &remoteUnit{state: u, batch: b})
		}
		for _, u := range ts.Jets {
			info.Jets = append(info.Jets, &remoteUnit{state: u, batch: b})
		}
		w[name] = info
	}
	return w
}

// remoteBase is a base whose build calls become commands. Crystal and mine
// count are updated locally so later reads within the tick see the spend.
type remoteBase struct {
	state model.BaseState
	batch *Batch
}

func (b *remoteBase) UID() string          { return b.state.UID }
func (b *remoteBase) Position() model.Vec2 { return model.Vec2{X: b.state.X, Y: b.state.Y} }
func (b *remoteBase) Crystal() float64     { return b.state.Crystal }
func (b *remoteBase) Mines() int           { return b.state.Mines }

// Cost returns the host's price for kind. Unknown kinds are never affordable.
func (b *remoteBase) Cost(kind model.UnitKind) float64 {
	c, ok := b.state.Costs[kind]
	if !ok {
		return math.Inf(1)
	}
	return c
}

func (b *remoteBase) BuildMine() string {
	uid := b.build(model.KindMine, CmdBuildMine, nil)
	if uid != "" {
		b.state.Mines++
	}
	return uid
}

func (b *remoteBase) BuildTank(heading float64) string {
	return b.build(model.KindTank, CmdBuildTank, &heading)
}

func (b *remoteBase) BuildShip(heading float64) string {
	return b.build(model.KindShip, CmdBuildShip, &heading)
}

func (b *remoteBase) BuildJet(heading float64) string {
	return b.build(model.KindJet, CmdBuildJet, &heading)
}

func (b *remoteBase) build(kind model.UnitKind, cmd string, heading *float64) string {
	if b.batch == nil {
		return ""
	}
	b.batch.built++
	uid := fmt.Sprintf("%s-%s-%d", b.state.UID, kind, b.batch.built)
	b.state.Crystal -= b.Cost(kind)
	b.batch.add(Command{UID: b.state.UID, Kind: cmd, Heading: heading, NewUID: uid})
	return uid
}

// remoteUnit backs tanks, ships and jets.
type remoteUnit struct {
	state model.UnitState
	batch *Batch
}

func (u *remoteUnit) UID() string          { return u.state.UID }
func (u *remoteUnit) Position() model.Vec2 { return model.Vec2{X: u.state.X, Y: u.state.Y} }
func (u *remoteUnit) Stopped() bool        { return u.state.Stopped }

func (u *remoteUnit) SetHeading(degrees float64) {
	u.batch.add(Command{UID: u.state.UID, Kind: CmdSetHeading, Heading: &degrees})
}

func (u *remoteUnit) Goto(x, y float64) {
	u.batch.add(Command{UID: u.state.UID, Kind: CmdGoto, X: &x, Y: &y})
}

func (u *remoteUnit) Distance(x, y float64) float64 {
	return u.Position().Dist(model.Vec2{X: x, Y: y})
}

func (u *remoteUnit) ConvertToBase() {
	u.batch.add(Command{UID: u.state.UID, Kind: CmdConvertToBase})
}
