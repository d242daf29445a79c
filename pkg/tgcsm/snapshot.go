package tgcsm

// UnitSnapshot is the public view of one living unit.
type UnitSnapshot struct {
	ID               string       `json:"unit_id"`
	Faction          Faction      `json:"faction"`
	Type             string       `json:"unit_type"`
	Strength         int          `json:"strength"`
	InitialStrength  int          `json:"initial_strength"`
	Location         string       `json:"location_hex_id"`
	Supply           string       `json:"supply_status"`
	TurnsOutOfSupply int          `json:"turns_out_of_supply"`
	IsReserve        bool         `json:"is_reserve"`
	BaseAttack       int          `json:"base_attack"`
	BaseDefense      int          `json:"base_defense"`
	MovementPoints   int          `json:"movement_points"`
	HasMoved         bool         `json:"has_moved"`
	HasAttacked      bool         `json:"has_attacked"`
	Fortified        bool         `json:"is_fortified"`
}

// HexSnapshot is the public view of one map hex.
type HexSnapshot struct {
	Name           string      `json:"name"`
	Terrain        TerrainType `json:"terrain_type"`
	Owner          Faction     `json:"owner"`
	IsVictoryPoint bool        `json:"is_victory_point"`
	PortStatus     string      `json:"port_status,omitempty"`
	AirfieldStatus string      `json:"airfield_status,omitempty"`
	UnitIDs        []string    `json:"unit_ids"`
}

// FactionStatus carries per-faction aggregates.
type FactionStatus struct {
	LiftCapacity float64 `json:"amphibious_lift_capacity,omitempty"`
	PoolSize     int     `json:"reinforcement_pool_count,omitempty"`
}

// Snapshot is a self-contained copy of observable game state handed to
// strategies and reporting. Mutating it never touches the engine.
type Snapshot struct {
	Turn          int                       `json:"turn_number"`
	Phase         string                    `json:"current_phase"`
	ActingFaction Faction                   `json:"current_player_faction"`
	Hexes         map[string]HexSnapshot    `json:"map_data"`
	Units         []UnitSnapshot            `json:"unit_data"`
	Factions      map[Faction]FactionStatus `json:"player_specific_data"`
}

// Snapshot builds a deep copy of the current state from the given
// faction's seat. Destroyed units are omitted.
func (e *Engine) Snapshot(f Faction) *Snapshot {
	s := &Snapshot{
		Turn:          e.turn,
		Phase:         e.phase.String(),
		ActingFaction: f,
		Hexes:         make(map[string]HexSnapshot, len(e.hexes)),
		Factions: map[Faction]FactionStatus{
			PLA: {LiftCapacity: e.liftCapacity, PoolSize: len(e.pool)},
			ROC: {},
		},
	}

	for _, id := range e.hexOrder {
		h := e.hexes[id]
		hs := HexSnapshot{
			Name:           h.Name,
			Terrain:        h.Terrain,
			Owner:          h.Owner,
			IsVictoryPoint: h.IsVictoryPoint,
			UnitIDs:        append([]string(nil), h.UnitIDs...),
		}
		if h.IsPort {
			hs.PortStatus = h.PortStatus.String()
		}
		if h.IsAirfield {
			hs.AirfieldStatus = h.AirfieldStatus.String()
		}
		s.Hexes[id] = hs
	}

	for _, id := range e.unitOrder {
		u, ok := e.units[id]
		if !ok || u.Strength <= 0 {
			continue
		}
		s.Units = append(s.Units, UnitSnapshot{
			ID:               u.ID,
			Faction:          u.Faction,
			Type:             u.Type.String(),
			Strength:         u.Strength,
			InitialStrength:  u.InitialStrength,
			Location:         u.Location,
			Supply:           u.Supply.String(),
			TurnsOutOfSupply: u.TurnsOutOfSupply,
			IsReserve:        u.IsReserve,
			BaseAttack:       u.BaseAttack,
			BaseDefense:      u.BaseDefense,
			MovementPoints:   u.MovementPoints,
			HasMoved:         u.HasMoved,
			HasAttacked:      u.HasAttacked,
			Fortified:        u.Fortified,
		})
	}
	return s
}
