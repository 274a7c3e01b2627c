package rules

import (
	"fmt"
	"log/slog"

	"github.com/nstehr/bumblebee/model"
)

// ActionHold deliberately does nothing; it exists to block lower rungs.
func ActionHold(env BaseEnv) error {
	return nil
}

func ActionBuildMine(env BaseEnv) error {
	uid := env.Base.BuildMine()
	if uid == "" {
		return refused(env, model.KindMine)
	}
	slog.Debug("building mine", "base", env.Base.UID(), "mines", env.Base.Mines())
	return nil
}

func ActionBuildTank(env BaseEnv) error {
	heading := env.heading()
	uid := env.Base.BuildTank(heading)
	if uid == "" {
		return refused(env, model.KindTank)
	}
	env.Tanks[env.Base.UID()]++
	slog.Debug("building tank", "base", env.Base.UID(), "uid", uid, "heading", heading, "tanks", env.Tanks[env.Base.UID()])
	return nil
}

func ActionBuildShip(env BaseEnv) error {
	heading := env.heading()
	uid := env.Base.BuildShip(heading)
	if uid == "" {
		return refused(env, model.KindShip)
	}
	env.Ships[env.Base.UID()]++
	slog.Debug("building ship", "base", env.Base.UID(), "uid", uid, "heading", heading, "ships", env.Ships[env.Base.UID()])
	return nil
}

func ActionBuildJet(env BaseEnv) error {
	heading := env.heading()
	uid := env.Base.BuildJet(heading)
	if uid == "" {
		return refused(env, model.KindJet)
	}
	slog.Debug("building jet", "base", env.Base.UID(), "uid", uid, "heading", heading)
	return nil
}

// refused reports a build the host did not accept (it returned no unit id).
func refused(env BaseEnv, kind model.UnitKind) error {
	return fmt.Errorf("base %s: %s build refused", env.Base.UID(), kind)
}
