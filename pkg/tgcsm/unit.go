package tgcsm

import "math"

// Faction represents one of the two sides of the campaign.
type Faction string

const (
	// PLA is the invading faction.
	PLA Faction = "PLA"
	// ROC is the defending faction.
	ROC Faction = "ROC"
	// NoFaction is used for "no winner yet".
	NoFaction Faction = ""
)

// AllFactions returns both factions in acting order (invader first).
func AllFactions() []Faction {
	return []Faction{PLA, ROC}
}

// Enemy returns the opposing faction.
func (f Faction) Enemy() Faction {
	if f == PLA {
		return ROC
	}
	return PLA
}

// UnitType classifies a battalion.
type UnitType int

const (
	Armor UnitType = iota
	Mechanized
	Infantry
	Artillery
	Engineer
	AttackHelo
)

func (t UnitType) String() string {
	switch t {
	case Armor:
		return "Armor"
	case Mechanized:
		return "Mechanized"
	case Infantry:
		return "Infantry"
	case Artillery:
		return "Artillery"
	case Engineer:
		return "Engineer"
	case AttackHelo:
		return "AttackHelo"
	default:
		return "unknown"
	}
}

// SupplyStatus is a unit's current supply state.
type SupplyStatus int

const (
	InSupply SupplyStatus = iota
	OutOfSupply
)

func (s SupplyStatus) String() string {
	if s == OutOfSupply {
		return "Out_Of_Supply"
	}
	return "In_Supply"
}

// Unit is a single battalion. Units are owned by the engine's unit table;
// hexes refer to them by ID only.
type Unit struct {
	ID        string
	Faction   Faction
	Type      UnitType
	IsReserve bool

	// Location is the occupied hex ID, or empty while the unit sits in a
	// reinforcement pool.
	Location string

	Strength        int // 0-100
	InitialStrength int

	Supply           SupplyStatus
	TurnsOutOfSupply int

	BaseAttack     int
	BaseDefense    int
	MovementPoints int
	LiftCost       int

	// Per-turn action flags, reset at the start of every turn.
	HasMoved            bool
	HasAttacked         bool
	Fortified           bool
	SupportingArtillery bool
}

// defaultCombatValues holds per-type fallback attack/defense used when a
// unit's template has no usable equipment composition.
var defaultCombatValues = map[UnitType][2]int{
	Armor:      {15, 12},
	Mechanized: {10, 10},
	Infantry:   {8, 12},
	Artillery:  {4, 4},
	Engineer:   {4, 6},
	AttackHelo: {12, 2},
}

// movementByType is the fixed movement allowance per unit category.
var movementByType = map[UnitType]int{
	Armor:      6,
	Mechanized: 8,
	Infantry:   4,
	Artillery:  4,
	Engineer:   4,
	AttackHelo: 12,
}

// NewUnit builds a unit from an order-of-battle record, deriving its type
// and combat values from the scenario's battalion templates and equipment
// catalog. Missing template or equipment rows fall back to per-type
// defaults.
func NewUnit(rec UnitRecord, sc *Scenario) *Unit {
	u := &Unit{
		ID:              rec.ID,
		Faction:         rec.Faction,
		Type:            Infantry,
		IsReserve:       rec.IsReserve,
		Location:        rec.Location,
		Strength:        rec.InitialStrength,
		InitialStrength: rec.InitialStrength,
		Supply:          InSupply,
		LiftCost:        rec.LiftCost,
	}

	tmpl, ok := sc.Templates[rec.TemplateID]
	if ok {
		u.Type = tmpl.Type
	}
	u.BaseAttack, u.BaseDefense = combatValues(tmpl, ok, sc, u.Type)

	mp, ok := movementByType[u.Type]
	if !ok {
		mp = 4
	}
	u.MovementPoints = mp
	return u
}

// combatValues averages equipment-derived attack/defense over the
// template's composition, or falls back to the per-type defaults.
func combatValues(tmpl BattalionTemplate, haveTemplate bool, sc *Scenario, t UnitType) (int, int) {
	if haveTemplate {
		totalAttack, totalDefense, count := 0, 0, 0
		for _, entry := range tmpl.Equipment {
			if entry.EquipmentID == "" || entry.Quantity <= 0 {
				continue
			}
			eq, ok := sc.Equipment[entry.EquipmentID]
			if !ok {
				continue
			}
			totalAttack += equipmentAttack(eq) * entry.Quantity
			totalDefense += equipmentDefense(eq) * entry.Quantity
			count += entry.Quantity
		}
		if count > 0 {
			return totalAttack / count, totalDefense / count
		}
	}
	def, ok := defaultCombatValues[t]
	if !ok {
		return 8, 8
	}
	return def[0], def[1]
}

// equipmentAttack scores a piece of equipment's offensive value, clamped
// to [1, 20].
func equipmentAttack(eq Equipment) int {
	v := 0.0
	if eq.MainGunMM > 0 {
		v += float64(eq.MainGunMM) / 10
	}
	if eq.HasATGM {
		v += 3
	}
	v += float64(eq.EngineHP) / 200
	return clampCombatValue(int(v))
}

// equipmentDefense scores protection from armor rating and mass, clamped
// to [1, 20].
func equipmentDefense(eq Equipment) int {
	v := float64(eq.ArmorRating)*1.5 + eq.WeightTonnes/10
	return clampCombatValue(int(v))
}

func clampCombatValue(v int) int {
	if v < 1 {
		return 1
	}
	if v > 20 {
		return 20
	}
	return v
}

// CurrentAttack is the unit's attack power scaled by remaining strength.
func (u *Unit) CurrentAttack() float64 {
	return float64(u.BaseAttack) * float64(u.Strength) / 100
}

// CurrentDefense is the unit's defense power scaled by remaining strength.
func (u *Unit) CurrentDefense() float64 {
	return float64(u.BaseDefense) * float64(u.Strength) / 100
}

// TakeDamage applies a percentage loss of current strength, rounded to
// the nearest point and floored at zero. Half points round away from
// zero, not to even. Returns the strength actually lost.
func (u *Unit) TakeDamage(percent int) int {
	damage := int(math.Round(float64(u.Strength) * float64(percent) / 100))
	if damage > u.Strength {
		damage = u.Strength
	}
	u.Strength -= damage
	return damage
}

// Destroyed reports whether the unit has been reduced to zero strength.
func (u *Unit) Destroyed() bool {
	return u.Strength <= 0
}

// CanAct reports whether the unit may still be given a move or attack
// this turn.
func (u *Unit) CanAct() bool {
	return u.Strength > 0 && !u.HasMoved && !u.HasAttacked
}

// ProjectsZOC reports whether the unit projects a zone of control into
// adjacent hexes. Only maneuver battalions do; artillery, engineers and
// attack helicopters never block movement.
func (u *Unit) ProjectsZOC() bool {
	if u.Strength <= 0 {
		return false
	}
	switch u.Type {
	case Armor, Mechanized, Infantry:
		return true
	}
	return false
}

// ResetTurnFlags clears the per-turn action flags.
func (u *Unit) ResetTurnFlags() {
	u.HasMoved = false
	u.HasAttacked = false
	u.Fortified = false
	u.SupportingArtillery = false
}
