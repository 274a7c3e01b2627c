package model

// GameState is the per-tick snapshot as the host sends it over the wire.
type GameState struct {
	Tick  int                  `json:"tick"`
	Time  float64              `json:"t"`
	Dt    float64              `json:"dt"`
	Teams map[string]TeamState `json:"teams"`
	Map   *MapData             `json:"map,omitempty"`
}

type TeamState struct {
	Bases []BaseState `json:"bases"`
	Tanks []UnitState `json:"tanks"`
	Ships []UnitState `json:"ships"`
	Jets  []UnitState `json:"jets"`
}

type BaseState struct {
	UID     string               `json:"uid"`
	X       float64              `json:"x"`
	Y       float64              `json:"y"`
	Crystal float64              `json:"crystal"`
	Mines   int                  `json:"mines"`
	Costs   map[UnitKind]float64 `json:"costs"`
}

type UnitState struct {
	UID     string  `json:"uid"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Stopped bool    `json:"stopped"`
}

// MapData carries the terrain grid row-major: 1 land, 0 water, -1 unknown.
type MapData struct {
	Cols int   `json:"cols"`
	Rows int   `json:"rows"`
	Grid []int `json:"grid"`
}
