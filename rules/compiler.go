package rules

import "fmt"

// CompileBuildOrder generates the build ladder from a set of quotas.
// Conditions are built via fmt.Sprintf with interpolated values, so the
// compiler never generates invalid expr.
func CompileBuildOrder(o BuildOrder) []*Rule {
	o.Validate()

	return []*Rule{
		{
			Name:         "build-mine",
			Priority:     400,
			Category:     CategoryBuild,
			Exclusive:    true,
			ConditionSrc: fmt.Sprintf(`Mines() < %d && CanAfford("mine")`, o.MineCap),
			Action:       ActionBuildMine,
		},
		{
			// Below the mine cap nothing else is built, even when the mine itself is unaffordable.
			Name:         "hold-for-mines",
			Priority:     390,
			Category:     CategoryBuild,
			Exclusive:    true,
			ConditionSrc: fmt.Sprintf(`Mines() < %d`, o.MineCap),
			Action:       ActionHold,
		},
		{
			Name:         "build-tank",
			Priority:     300,
			Category:     CategoryBuild,
			Exclusive:    true,
			ConditionSrc: fmt.Sprintf(`CanAfford("tank") && TankCount() < %d`, o.TankQuota),
			Action:       ActionBuildTank,
		},
		{
			Name:         "build-ship",
			Priority:     200,
			Category:     CategoryBuild,
			Exclusive:    true,
			ConditionSrc: fmt.Sprintf(`CanAfford("ship") && ShipCount() < %d`, o.ShipQuota),
			Action:       ActionBuildShip,
		},
		{
			Name:         "build-jet",
			Priority:     100,
			Category:     CategoryBuild,
			Exclusive:    true,
			ConditionSrc: `CanAfford("jet")`,
			Action:       ActionBuildJet,
		},
	}
}
