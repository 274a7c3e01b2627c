package model

// TerrainType classifies one map cell.
type TerrainType int8

const (
	Unknown TerrainType = -1 // not yet observed
	Water   TerrainType = 0  // naval only
	Land    TerrainType = 1  // ground units
)

// GameMap is the terrain grid handed to the policy each tick.
type GameMap struct {
	Cols int
	Rows int
	Grid []TerrainType // row-major: Grid[row*Cols + col]
}

// NewGameMap converts the wire grid. Values outside {-1, 0, 1} become Unknown.
func NewGameMap(d *MapData) *GameMap {
	if d == nil {
		return nil
	}
	g := &GameMap{Cols: d.Cols, Rows: d.Rows, Grid: make([]TerrainType, len(d.Grid))}
	for i, v := range d.Grid {
		switch v {
		case int(Land):
			g.Grid[i] = Land
		case int(Water):
			g.Grid[i] = Water
		default:
			g.Grid[i] = Unknown
		}
	}
	return g
}

// At returns the terrain at (col, row). Out-of-bounds cells are Unknown.
func (g *GameMap) At(col, row int) TerrainType {
	if g == nil || col < 0 || col >= g.Cols || row < 0 || row >= g.Rows {
		return Unknown
	}
	i := row*g.Cols + col
	if i >= len(g.Grid) {
		return Unknown
	}
	return g.Grid[i]
}

// Coverage returns the share of cells that are no longer Unknown.
func (g *GameMap) Coverage() float64 {
	if g == nil || len(g.Grid) == 0 {
		return 0
	}
	known := 0
	for _, t := range g.Grid {
		if t != Unknown {
			known++
		}
	}
	return float64(known) / float64(len(g.Grid))
}

// HasWater returns true if any observed cell is water.
func (g *GameMap) HasWater() bool {
	if g == nil {
		return false
	}
	for _, t := range g.Grid {
		if t == Water {
			return true
		}
	}
	return false
}
