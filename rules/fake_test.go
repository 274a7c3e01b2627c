package rules

import (
	"fmt"

	"github.com/nstehr/bumblebee/model"
)

var testCosts = map[model.UnitKind]float64{
	model.KindMine: 50,
	model.KindTank: 100,
	model.KindShip: 200,
	model.KindJet:  300,
}

// fakeBase records build calls and spends crystal like the host would.
type fakeBase struct {
	uid      string
	crystal  float64
	mines    int
	costs    map[model.UnitKind]float64
	refuse   bool
	built    []model.UnitKind
	headings []float64
}

func newFakeBase(uid string, crystal float64, mines int) *fakeBase {
	return &fakeBase{uid: uid, crystal: crystal, mines: mines, costs: testCosts}
}

func (b *fakeBase) UID() string                      { return b.uid }
func (b *fakeBase) Position() model.Vec2             { return model.Vec2{} }
func (b *fakeBase) Crystal() float64                 { return b.crystal }
func (b *fakeBase) Mines() int                       { return b.mines }
func (b *fakeBase) Cost(kind model.UnitKind) float64 { return b.costs[kind] }

func (b *fakeBase) BuildMine() string {
	uid := b.build(model.KindMine)
	if uid != "" {
		b.mines++
	}
	return uid
}

func (b *fakeBase) BuildTank(heading float64) string {
	b.headings = append(b.headings, heading)
	return b.build(model.KindTank)
}

func (b *fakeBase) BuildShip(heading float64) string {
	b.headings = append(b.headings, heading)
	return b.build(model.KindShip)
}

func (b *fakeBase) BuildJet(heading float64) string {
	b.headings = append(b.headings, heading)
	return b.build(model.KindJet)
}

func (b *fakeBase) build(kind model.UnitKind) string {
	if b.refuse {
		return ""
	}
	b.crystal -= b.costs[kind]
	b.built = append(b.built, kind)
	return fmt.Sprintf("%s-%s-%d", b.uid, kind, len(b.built))
}

func envFor(b *fakeBase, tanks, ships int) BaseEnv {
	return BaseEnv{
		Base:  b,
		Tanks: map[string]int{b.uid: tanks},
		Ships: map[string]int{b.uid: ships},
	}
}
