package agent

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/nstehr/bumblebee/config"
	"github.com/nstehr/bumblebee/model"
	"github.com/nstehr/bumblebee/rules"
)

// Agent is the decision policy for one team. The host calls Run once per tick;
// calls must not overlap, and PolicyState is touched by nothing else.
type Agent struct {
	team          string
	convertRadius float64
	engine        *rules.Engine
	state         *PolicyState
	rng           *rand.Rand

	tick     int
	lastSnap *stateSnapshot
	events   []Event
}

func New(cfg config.Config) (*Agent, error) {
	engine, err := rules.NewEngine(rules.CompileBuildOrder(cfg.BuildOrder))
	if err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Agent{
		team:          cfg.Team,
		convertRadius: cfg.ConvertRadius,
		engine:        engine,
		state:         NewPolicyState(),
		rng:           rand.New(rand.NewPCG(seed, seed>>1|1)),
	}, nil
}

// Team is the name the host attributes this agent's entities to.
func (a *Agent) Team() string { return a.team }

// State exposes the cross-tick memory for inspection.
func (a *Agent) State() *PolicyState { return a.state }

// Events returns the events detected during the most recent Run.
func (a *Agent) Events() []Event { return a.events }

// Run decides one tick: bases build first, then tanks, ships and jets move.
// t and dt are the host's clock in seconds. gameMap is accepted for
// terrain-aware behavior but no decision reads it yet.
func (a *Agent) Run(t, dt float64, info model.WorldSnapshot, gameMap *model.GameMap) {
	a.tick++
	mine := info[a.team]

	for _, base := range mine.Bases {
		a.state.observeBase(base.UID())
		a.engine.Evaluate(rules.BaseEnv{
			Base:    base,
			Tanks:   a.state.TankCount,
			Ships:   a.state.ShipCount,
			Heading: a.randomHeading,
		})
	}

	enemies := info.EnemyBases(a.team)

	for _, tank := range mine.Tanks {
		a.steerTank(tank, enemies)
	}
	for _, ship := range mine.Ships {
		a.steerShip(ship, mine.Bases)
	}
	for _, jet := range mine.Jets {
		a.steerJet(jet, enemies)
	}

	snap := takeSnapshot(info, a.team)
	a.events = detectEvents(a.lastSnap, snap, a.tick)
	a.lastSnap = &snap
	if len(a.events) > 0 {
		slog.Info("tick events", "team", a.team, "t", t, "events", formatEvents(a.events))
	}

	slog.Debug("tick decided",
		"team", a.team,
		"t", t,
		"dt", dt,
		"bases", len(mine.Bases),
		"tanks", len(mine.Tanks),
		"ships", len(mine.Ships),
		"jets", len(mine.Jets),
		"enemyBases", len(enemies),
		"mapCoverage", gameMap.Coverage(),
	)
}

// randomHeading draws a uniform heading in [0, 360).
func (a *Agent) randomHeading() float64 {
	return a.rng.Float64() * 360
}
