package ipc

import (
	"math"
	"strings"
	"testing"

	"github.com/nstehr/bumblebee/model"
)

var costs = map[model.UnitKind]float64{"mine": 50, "tank": 100, "ship": 200, "jet": 300}

func sampleState() model.GameState {
	return model.GameState{
		Tick: 3,
		Teams: map[string]model.TeamState{
			"us": {
				Bases: []model.BaseState{{UID: "b1", X: 1, Y: 2, Crystal: 500, Mines: 1, Costs: costs}},
				Tanks: []model.UnitState{{UID: "t1", X: 3, Y: 4, Stopped: true}},
				Ships: []model.UnitState{{UID: "s1", X: 0, Y: 0}},
				Jets:  []model.UnitState{{UID: "j1", X: 9, Y: 9}},
			},
			"them": {
				Bases: []model.BaseState{{UID: "e1", X: 50, Y: 50, Crystal: 999, Costs: costs}},
				Tanks: []model.UnitState{{UID: "et1"}},
			},
		},
	}
}

func TestSnapshotReadsState(t *testing.T) {
	var batch Batch
	w := Snapshot(sampleState(), "us", &batch)

	us := w["us"]
	if len(us.Bases) != 1 || len(us.Tanks) != 1 || len(us.Ships) != 1 || len(us.Jets) != 1 {
		t.Fatalf("us = %+v, want one of each", us)
	}
	b := us.Bases[0]
	if b.UID() != "b1" || b.Position() != (model.Vec2{X: 1, Y: 2}) || b.Crystal() != 500 || b.Mines() != 1 {
		t.Errorf("base read back wrong: %s %v %v %d", b.UID(), b.Position(), b.Crystal(), b.Mines())
	}
	if c := b.Cost(model.KindShip); c != 200 {
		t.Errorf("Cost(ship) = %v, want 200", c)
	}
	if c := b.Cost("nuke"); !math.IsInf(c, 1) {
		t.Errorf("Cost(unknown) = %v, want +Inf", c)
	}
	if !us.Tanks[0].Stopped() {
		t.Error("tank should be stopped")
	}
	if d := us.Tanks[0].Distance(0, 0); d != 5 {
		t.Errorf("Distance = %v, want 5", d)
	}
	if got := w.EnemyBases("us"); len(got) != 1 || got[0].UID() != "e1" {
		t.Errorf("EnemyBases = %v, want [e1]", got)
	}
}

func TestSnapshotRecordsCommands(t *testing.T) {
	var batch Batch
	w := Snapshot(sampleState(), "us", &batch)
	us := w["us"]

	mineUID := us.Bases[0].BuildMine()
	tankUID := us.Bases[0].BuildTank(90)
	us.Tanks[0].SetHeading(45)
	us.Jets[0].Goto(50, 50)
	us.Ships[0].ConvertToBase()

	if !strings.HasPrefix(mineUID, "b1-mine-") || !strings.HasPrefix(tankUID, "b1-tank-") || mineUID == tankUID {
		t.Errorf("provisional ids = %q, %q", mineUID, tankUID)
	}
	if us.Bases[0].Mines() != 2 {
		t.Errorf("Mines = %d after BuildMine, want 2", us.Bases[0].Mines())
	}
	if us.Bases[0].Crystal() != 350 {
		t.Errorf("Crystal = %v after mine+tank, want 350", us.Bases[0].Crystal())
	}

	cmds := batch.Commands()
	wantKinds := []string{CmdBuildMine, CmdBuildTank, CmdSetHeading, CmdGoto, CmdConvertToBase}
	if len(cmds) != len(wantKinds) {
		t.Fatalf("got %d commands, want %d: %+v", len(cmds), len(wantKinds), cmds)
	}
	for i, k := range wantKinds {
		if cmds[i].Kind != k {
			t.Errorf("command %d kind = %s, want %s", i, cmds[i].Kind, k)
		}
	}
	if cmds[0].Heading != nil {
		t.Error("build_mine carries a heading")
	}
	if *cmds[1].Heading != 90 || cmds[1].NewUID != tankUID {
		t.Errorf("build_tank = %+v", cmds[1])
	}
	if *cmds[3].X != 50 || *cmds[3].Y != 50 || cmds[3].UID != "j1" {
		t.Errorf("goto = %+v", cmds[3])
	}
	if batch.Count(CmdGoto) != 1 || batch.Len() != 5 {
		t.Errorf("Count(goto) = %d, Len = %d", batch.Count(CmdGoto), batch.Len())
	}
}

func TestSnapshotEnemyEntitiesAreReadOnly(t *testing.T) {
	var batch Batch
	w := Snapshot(sampleState(), "us", &batch)
	them := w["them"]

	if uid := them.Bases[0].BuildJet(10); uid != "" {
		t.Errorf("enemy base build returned %q, want empty", uid)
	}
	if uid := them.Bases[0].BuildMine(); uid != "" || them.Bases[0].Mines() != 0 {
		t.Errorf("enemy base mine build: uid %q, mines %d", uid, them.Bases[0].Mines())
	}
	them.Tanks[0].Goto(1, 1)
	if batch.Len() != 0 {
		t.Errorf("enemy commands leaked into batch: %+v", batch.Commands())
	}
}

func TestEmptyBatchEncodesAsArray(t *testing.T) {
	var batch Batch
	if cmds := batch.Commands(); cmds == nil || len(cmds) != 0 {
		t.Errorf("Commands() = %#v, want empty non-nil slice", cmds)
	}
	var nilBatch *Batch
	if nilBatch.Len() != 0 || nilBatch.Commands() == nil {
		t.Error("nil batch should behave as empty")
	}
}
