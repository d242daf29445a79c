package tgcsm

// Simulation tuning constants. One turn represents roughly 3.5 days of
// operations; the full campaign is capped at MaxTurns.
const (
	// MaxTurns is the default turn limit before the defender wins by survival.
	MaxTurns = 10

	// TurnDurationDays is used only for reporting elapsed campaign time.
	TurnDurationDays = 3.5

	// MaxSupplyDistance bounds the supply-line search in hexes.
	MaxSupplyDistance = 10

	// ArtilleryRange is the maximum hex distance for artillery support.
	ArtilleryRange = 2

	// CapitalHexID is the hex whose capture ends the game for the invader.
	CapitalHexID = "A10"

	// DefenderSupplyColumn is the easternmost column band (axial q) that
	// anchors the defender's supply network.
	DefenderSupplyColumn = 9

	// InitialLiftCapacity is the invader's starting amphibious lift.
	InitialLiftCapacity = 300.0

	// LiftDecayRate is the per-turn geometric decay applied to lift
	// capacity during the first LiftDecayTurns turns.
	LiftDecayRate = 0.25

	// LiftDecayTurns is the number of turns lift capacity decays.
	LiftDecayTurns = 4

	// BeachheadGraceTurns is how long invader-owned coastal hexes count
	// as supply sources before the invader must hold a working port or
	// airfield.
	BeachheadGraceTurns = 3

	// InterdictionRate is the per-turn probability the invader's air
	// interdiction succeeds against the defender.
	InterdictionRate = 0.6

	// DieSides is the combat die.
	DieSides = 20

	// FortifiedDefenseBonus multiplies defense power when any defender
	// is fortified.
	FortifiedDefenseBonus = 1.5

	// CloseAirSupportBonus multiplies attack power when the attacking
	// faction has CAS available.
	CloseAirSupportBonus = 1.2

	// OutOfSupplyPenalty multiplies a side's power when any of its
	// participating units is out of supply.
	OutOfSupplyPenalty = 0.5

	// OverrunOdds stands in for the odds ratio when defense power is
	// zero; large enough to land in the top CRT column.
	OverrunOdds = 99.0

	// NoRetreatDamage is the flat extra strength loss applied to units
	// ordered to retreat with nowhere to go.
	NoRetreatDamage = 10
)
