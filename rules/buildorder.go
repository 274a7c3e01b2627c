package rules

// BuildOrder holds the per-base quotas the compiler turns into rules.
type BuildOrder struct {
	MineCap   int `yaml:"mine_cap"`
	TankQuota int `yaml:"tank_quota"`
	ShipQuota int `yaml:"ship_quota"`
}

// DefaultBuildOrder returns three mines, ten tanks and three ships per base,
// then jets for as long as crystal lasts.
func DefaultBuildOrder() BuildOrder {
	return BuildOrder{
		MineCap:   3,
		TankQuota: 10,
		ShipQuota: 3,
	}
}

// Validate clamps all quotas to their valid ranges.
func (o *BuildOrder) Validate() {
	o.MineCap = clampInt(o.MineCap, 0, 10)
	o.TankQuota = clampInt(o.TankQuota, 0, 100)
	o.ShipQuota = clampInt(o.ShipQuota, 0, 100)
}

// clampInt restricts v to [min, max].
func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
