package agent

import (
	"log/slog"

	"github.com/nstehr/bumblebee/model"
)

// steerTank re-targets a moving tank each tick and shakes it loose with a
// random heading when it has not moved since the last tick.
func (a *Agent) steerTank(tank model.Mobile, enemies []model.Base) {
	defer a.state.record(tank)

	stuck, tracked := a.state.stuck(tank)
	if !tracked || tank.Stopped() {
		return
	}
	if stuck {
		heading := a.randomHeading()
		slog.Debug("tank stuck, new heading", "uid", tank.UID(), "heading", heading)
		tank.SetHeading(heading)
		return
	}
	if target := NearestBase(tank, enemies); target != nil {
		p := target.Position()
		tank.Goto(p.X, p.Y)
	}
}

// steerShip turns a stuck ship into a base when it is far enough from home,
// otherwise points it somewhere new. Moving ships are left alone.
func (a *Agent) steerShip(ship model.Convertible, own []model.Base) {
	defer a.state.record(ship)

	if stuck, _ := a.state.stuck(ship); !stuck {
		return
	}
	home := NearestBase(ship, own)
	if home == nil || ship.Distance(home.Position().X, home.Position().Y) > a.convertRadius {
		slog.Debug("ship converting to base", "uid", ship.UID(), "x", ship.Position().X, "y", ship.Position().Y)
		ship.ConvertToBase()
		return
	}
	ship.SetHeading(a.randomHeading())
}

// steerJet flies straight at the nearest enemy base. Jets never get stuck.
func (a *Agent) steerJet(jet model.Mobile, enemies []model.Base) {
	if target := NearestBase(jet, enemies); target != nil {
		p := target.Position()
		jet.Goto(p.X, p.Y)
	}
}
