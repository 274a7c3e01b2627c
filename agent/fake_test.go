package agent

import (
	"fmt"
	"math"
	"testing"

	"github.com/nstehr/bumblebee/config"
	"github.com/nstehr/bumblebee/model"
)

const mineCost = 50

var testCosts = map[model.UnitKind]float64{
	model.KindMine: mineCost,
	model.KindTank: 100,
	model.KindShip: 200,
	model.KindJet:  300,
}

// fakeBase spends crystal and counts mines like the host would.
type fakeBase struct {
	uid     string
	pos     model.Vec2
	crystal float64
	mines   int
	built   []model.UnitKind
}

func newBase(uid string, x, y, crystal float64, mines int) *fakeBase {
	return &fakeBase{uid: uid, pos: model.Vec2{X: x, Y: y}, crystal: crystal, mines: mines}
}

func (b *fakeBase) UID() string                      { return b.uid }
func (b *fakeBase) Position() model.Vec2             { return b.pos }
func (b *fakeBase) Crystal() float64                 { return b.crystal }
func (b *fakeBase) Mines() int                       { return b.mines }
func (b *fakeBase) Cost(kind model.UnitKind) float64 { return testCosts[kind] }

func (b *fakeBase) BuildMine() string {
	b.mines++
	return b.build(model.KindMine)
}
func (b *fakeBase) BuildTank(float64) string { return b.build(model.KindTank) }
func (b *fakeBase) BuildShip(float64) string { return b.build(model.KindShip) }
func (b *fakeBase) BuildJet(float64) string  { return b.build(model.KindJet) }

func (b *fakeBase) build(kind model.UnitKind) string {
	b.crystal -= testCosts[kind]
	b.built = append(b.built, kind)
	return fmt.Sprintf("%s-%s-%d", b.uid, kind, len(b.built))
}

// fakeUnit serves as tank, ship or jet and records every command.
type fakeUnit struct {
	uid       string
	pos       model.Vec2
	stopped   bool
	headings  []float64
	gotos     []model.Vec2
	converted bool
}

func newUnit(uid string, x, y float64) *fakeUnit {
	return &fakeUnit{uid: uid, pos: model.Vec2{X: x, Y: y}}
}

func (u *fakeUnit) UID() string                { return u.uid }
func (u *fakeUnit) Position() model.Vec2       { return u.pos }
func (u *fakeUnit) Stopped() bool              { return u.stopped }
func (u *fakeUnit) SetHeading(degrees float64) { u.headings = append(u.headings, degrees) }
func (u *fakeUnit) Goto(x, y float64)          { u.gotos = append(u.gotos, model.Vec2{X: x, Y: y}) }
func (u *fakeUnit) ConvertToBase()             { u.converted = true }

func (u *fakeUnit) Distance(x, y float64) float64 {
	return math.Hypot(x-u.pos.X, y-u.pos.Y)
}

func (u *fakeUnit) commands() int {
	n := len(u.headings) + len(u.gotos)
	if u.converted {
		n++
	}
	return n
}

// reset forgets recorded commands between ticks.
func (u *fakeUnit) reset() {
	u.headings, u.gotos, u.converted = nil, nil, false
}

func newTestAgent(t *testing.T) *Agent {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 42
	a, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return a
}

func bases(bs ...*fakeBase) []model.Base {
	out := make([]model.Base, len(bs))
	for i, b := range bs {
		out[i] = b
	}
	return out
}

func mobiles(us ...*fakeUnit) []model.Mobile {
	out := make([]model.Mobile, len(us))
	for i, u := range us {
		out[i] = u
	}
	return out
}

func ships(us ...*fakeUnit) []model.Convertible {
	out := make([]model.Convertible, len(us))
	for i, u := range us {
		out[i] = u
	}
	return out
}
