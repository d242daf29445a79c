package tgcsm

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"
)

// Phase identifies the current step of the turn sequence.
type Phase int

const (
	PhaseAirSea Phase = iota
	PhaseSupply
	PhasePlayerAction
	PhaseCombat
	PhaseLogistics
	PhaseEndOfTurn
)

func (p Phase) String() string {
	switch p {
	case PhaseAirSea:
		return "Air & Sea Effects"
	case PhaseSupply:
		return "Supply Status"
	case PhasePlayerAction:
		return "Player Action"
	case PhaseCombat:
		return "Combat Resolution"
	case PhaseLogistics:
		return "Logistics & Reinforcement"
	case PhaseEndOfTurn:
		return "End of Turn"
	default:
		return "unknown"
	}
}

// Strategy decides a faction's orders each turn. Implementations get a
// deep-copied snapshot and action list and may return any subset of the
// legal actions; stale or foreign actions are ignored at execution.
type Strategy interface {
	Name() string
	ChooseActions(snap *Snapshot, legal []Action) []Action
}

// Engine holds one game's full state and drives it through the turn
// sequence. It is not safe for concurrent use.
type Engine struct {
	scenario *Scenario
	grid     *Grid

	hexes    map[string]*Hex
	hexOrder []string

	units     map[string]*Unit
	unitOrder []string
	pool      []*Unit

	strategies map[Faction]Strategy

	turn     int
	maxTurns int
	phase    Phase
	gameOver bool
	winner   Faction

	pending []Action

	liftCapacity        float64
	defenderInterdicted bool
	casAvailable        map[Faction]bool

	rng *rand.Rand
}

// NewEngine builds a game from a scenario and a strategy per faction.
// Seed 0 seeds the engine from the clock; any other value gives a
// reproducible game.
func NewEngine(sc *Scenario, strategies map[Faction]Strategy, seed int64) (*Engine, error) {
	if sc == nil {
		return nil, fmt.Errorf("nil scenario")
	}
	for _, f := range AllFactions() {
		if strategies[f] == nil {
			return nil, fmt.Errorf("no strategy for faction %s", f)
		}
	}

	grid, err := NewGrid(sc.HexIDs())
	if err != nil {
		return nil, fmt.Errorf("building grid: %w", err)
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	e := &Engine{
		scenario:     sc,
		grid:         grid,
		hexes:        make(map[string]*Hex, len(sc.Hexes)),
		units:        make(map[string]*Unit),
		strategies:   strategies,
		turn:         1,
		maxTurns:     MaxTurns,
		liftCapacity: InitialLiftCapacity,
		casAvailable: map[Faction]bool{PLA: true, ROC: false},
		rng:          rand.New(rand.NewSource(seed)),
	}

	for _, rec := range sc.Hexes {
		h := newHex(rec)
		e.hexes[h.ID] = h
		e.hexOrder = append(e.hexOrder, h.ID)
	}

	for _, rec := range sc.DefenderOOB {
		u := NewUnit(rec, sc)
		e.units[u.ID] = u
		e.unitOrder = append(e.unitOrder, u.ID)
		if h, ok := e.hexes[u.Location]; ok {
			h.addUnit(u.ID)
		}
	}
	for _, rec := range sc.InvaderPool {
		e.pool = append(e.pool, NewUnit(rec, sc))
	}

	return e, nil
}

// SetMaxTurns overrides the default turn limit. Must be called before
// the first turn runs.
func (e *Engine) SetMaxTurns(n int) {
	if n > 0 {
		e.maxTurns = n
	}
}

// Turn returns the current turn number.
func (e *Engine) Turn() int { return e.turn }

// Phase returns the phase most recently entered.
func (e *Engine) Phase() Phase { return e.phase }

// GameOver reports whether the game has reached a terminal state.
func (e *Engine) GameOver() bool { return e.gameOver }

// Winner returns the winning faction, or NoFaction while the game is
// still running.
func (e *Engine) Winner() Faction { return e.winner }

// LiftCapacity returns the invader's current amphibious lift capacity.
func (e *Engine) LiftCapacity() float64 { return e.liftCapacity }

// PoolSize returns the number of invader units still awaiting landing.
func (e *Engine) PoolSize() int { return len(e.pool) }

// Run plays turns until a terminal state or the context is cancelled.
func (e *Engine) Run(ctx context.Context) (Faction, error) {
	for !e.gameOver {
		if err := ctx.Err(); err != nil {
			return NoFaction, err
		}
		e.RunTurn()
	}
	return e.winner, nil
}

// RunTurn advances the game by one full turn. Calling it on a finished
// game is a no-op.
func (e *Engine) RunTurn() {
	if e.gameOver {
		return
	}
	if e.turn > e.maxTurns {
		e.endBySurvival()
		return
	}

	log.Info().Int("turn", e.turn).Msg("turn start")

	for _, u := range e.units {
		u.ResetTurnFlags()
	}

	e.airSeaPhase()
	e.supplyPhase()
	e.playerActionPhase(PLA)
	e.playerActionPhase(ROC)
	e.combatPhase()
	e.logisticsPhase()
	e.endOfTurnPhase()

	if !e.gameOver {
		e.turn++
		if e.turn > e.maxTurns {
			e.endBySurvival()
		}
	}
}

func (e *Engine) endBySurvival() {
	e.gameOver = true
	e.winner = ROC
	log.Info().Str("winner", string(e.winner)).Msg("turn limit reached, defender survives")
}

// airSeaPhase rolls air interdiction and decays the invader's lift
// capacity over the opening turns.
func (e *Engine) airSeaPhase() {
	e.phase = PhaseAirSea

	e.defenderInterdicted = e.rng.Float64() < InterdictionRate
	log.Debug().Bool("interdicted", e.defenderInterdicted).Msg("air interdiction roll")

	if e.turn <= LiftDecayTurns {
		decay := e.liftCapacity * LiftDecayRate
		e.liftCapacity -= decay
		log.Debug().Float64("capacity", e.liftCapacity).Msg("lift capacity attrition")
	}
}

// playerActionPhase asks one faction's strategy for orders and executes
// them in the order returned.
func (e *Engine) playerActionPhase(f Faction) {
	e.phase = PhasePlayerAction

	legal := e.LegalActions(f)
	if len(legal) == 1 && legal[0].Kind == ActionPass {
		log.Debug().Str("faction", string(f)).Msg("no actions available")
		return
	}

	handout := make([]Action, len(legal))
	for i, a := range legal {
		handout[i] = a.clone()
	}
	chosen := e.strategies[f].ChooseActions(e.Snapshot(f), handout)

	for _, a := range chosen {
		e.ExecuteAction(f, a)
	}
}

// ExecuteAction applies one order for a faction. Every order is
// re-validated against current state; orders gone stale since legal
// generation are silently dropped.
func (e *Engine) ExecuteAction(f Faction, a Action) {
	switch a.Kind {
	case ActionMove:
		e.executeMove(f, a)
	case ActionAttack:
		e.declareAttack(f, a)
	case ActionFortify:
		u := e.actingUnit(f, a.UnitID)
		if u == nil {
			return
		}
		u.Fortified = true
		u.HasMoved = true
		u.HasAttacked = true
	case ActionArtillerySupport:
		u := e.actingUnit(f, a.UnitID)
		if u == nil || u.Type != Artillery {
			return
		}
		u.SupportingArtillery = true
		u.HasMoved = true
		u.HasAttacked = true
	case ActionPass:
	}
}

// actingUnit resolves a unit ID to a live unit of the faction that may
// still act this turn.
func (e *Engine) actingUnit(f Faction, id string) *Unit {
	u, ok := e.units[id]
	if !ok || u.Faction != f || u.HasMoved || u.HasAttacked {
		return nil
	}
	return u
}

func (e *Engine) executeMove(f Faction, a Action) {
	u := e.actingUnit(f, a.UnitID)
	if u == nil || len(a.Path) < 2 {
		return
	}
	start, end := a.Path[0], a.Path[len(a.Path)-1]
	from, ok := e.hexes[start]
	if !ok || !from.hasUnit(u.ID) || u.Location != start {
		return
	}
	to, ok := e.hexes[end]
	if !ok {
		return
	}
	from.removeUnit(u.ID)
	to.addUnit(u.ID)
	u.Location = end
	u.HasMoved = true
	log.Debug().Str("unit", u.ID).Str("from", start).Str("to", end).Msg("unit moved")
}

// declareAttack queues an attack for the combat phase and commits the
// attackers.
func (e *Engine) declareAttack(f Faction, a Action) {
	if a.TargetHex == "" || len(a.AttackerIDs) == 0 {
		return
	}
	var committed []string
	for _, uid := range a.AttackerIDs {
		u, ok := e.units[uid]
		if !ok || u.Faction != f || u.HasAttacked {
			continue
		}
		u.HasAttacked = true
		u.HasMoved = true
		committed = append(committed, uid)
	}
	if len(committed) == 0 {
		return
	}
	e.pending = append(e.pending, Action{
		Kind:        ActionAttack,
		AttackerIDs: committed,
		TargetHex:   a.TargetHex,
	})
}

// combatPhase resolves queued attacks in declaration order.
func (e *Engine) combatPhase() {
	e.phase = PhaseCombat
	for _, decl := range e.pending {
		e.resolveCombat(decl)
	}
	e.pending = e.pending[:0]
}

// endOfTurnPhase removes destroyed units and checks victory.
func (e *Engine) endOfTurnPhase() {
	e.phase = PhaseEndOfTurn

	kept := e.unitOrder[:0]
	for _, id := range e.unitOrder {
		u, ok := e.units[id]
		if !ok {
			continue
		}
		if u.Destroyed() {
			if h, ok := e.hexes[u.Location]; ok {
				h.removeUnit(id)
			}
			delete(e.units, id)
			log.Debug().Str("unit", id).Msg("destroyed unit removed")
			continue
		}
		kept = append(kept, id)
	}
	e.unitOrder = kept

	if e.hexes[CapitalHexID] != nil && e.hexes[CapitalHexID].Owner == PLA {
		e.gameOver = true
		e.winner = PLA
		log.Info().Str("winner", string(e.winner)).Msg("capital captured")
		return
	}

	invaderAlive := false
	for _, id := range e.unitOrder {
		if e.units[id].Faction == PLA {
			invaderAlive = true
			break
		}
	}
	if !invaderAlive && len(e.pool) == 0 {
		e.gameOver = true
		e.winner = ROC
		log.Info().Str("winner", string(e.winner)).Msg("invasion force eliminated")
	}
}
