package tgcsm

// TerrainType classifies a hex for movement cost and defense.
type TerrainType string

const (
	TerrainPlains        TerrainType = "Plains"
	TerrainHills         TerrainType = "Hills"
	TerrainMountain      TerrainType = "Mountain"
	TerrainUrban         TerrainType = "Urban"
	TerrainForest        TerrainType = "Forest"
	TerrainRiverCrossing TerrainType = "River_Crossing"
	TerrainCoastal       TerrainType = "Coastal"
	TerrainOcean         TerrainType = "Ocean"
)

// FacilityStatus is the operational state of a port or airfield. It is
// independent of who owns the hex.
type FacilityStatus int

const (
	Operational FacilityStatus = iota
	Damaged
	Destroyed
)

func (s FacilityStatus) String() string {
	switch s {
	case Damaged:
		return "Damaged"
	case Destroyed:
		return "Destroyed"
	default:
		return "Operational"
	}
}

// Hex is one cell of the map. Occupants are referenced by unit ID; the
// engine's unit table is the sole owner of Unit values.
type Hex struct {
	ID      string
	Name    string
	Terrain TerrainType

	IsPort     bool
	PortName   string
	PortStatus FacilityStatus

	IsAirfield     bool
	AirfieldName   string
	AirfieldStatus FacilityStatus

	IsVictoryPoint bool

	// Owner is always one of the two factions; there is no neutral state.
	Owner Faction

	// UnitIDs lists occupying units in arrival order.
	UnitIDs []string
}

func newHex(rec HexRecord) *Hex {
	return &Hex{
		ID:             rec.ID,
		Name:           rec.Name,
		Terrain:        rec.Terrain,
		IsPort:         rec.IsPort,
		PortName:       rec.PortName,
		IsAirfield:     rec.IsAirfield,
		AirfieldName:   rec.AirfieldName,
		IsVictoryPoint: rec.IsVictoryPoint,
		Owner:          rec.InitialOwner,
	}
}

func (h *Hex) addUnit(id string) {
	h.UnitIDs = append(h.UnitIDs, id)
}

func (h *Hex) removeUnit(id string) {
	for i, uid := range h.UnitIDs {
		if uid == id {
			h.UnitIDs = append(h.UnitIDs[:i], h.UnitIDs[i+1:]...)
			return
		}
	}
}

// hasUnit reports whether the given unit currently occupies this hex.
func (h *Hex) hasUnit(id string) bool {
	for _, uid := range h.UnitIDs {
		if uid == id {
			return true
		}
	}
	return false
}
