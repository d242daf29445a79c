package tgcsm

import (
	"fmt"
	"strings"
)

// ActionKind discriminates the five order types a faction can issue.
type ActionKind string

const (
	ActionMove             ActionKind = "MOVE"
	ActionAttack           ActionKind = "ATTACK"
	ActionFortify          ActionKind = "FORTIFY"
	ActionArtillerySupport ActionKind = "ARTILLERY_SUPPORT"
	ActionPass             ActionKind = "PASS"
)

// Action is one order. Move, Fortify and ArtillerySupport carry a UnitID;
// Attack carries the full attacker group and the target hex. Pass carries
// nothing.
type Action struct {
	Kind   ActionKind
	UnitID string

	// Path is the hex sequence of a move, starting at the unit's current
	// hex and ending at the destination.
	Path []string

	// AttackerIDs lists every unit committed to an attack.
	AttackerIDs []string

	// TargetHex is the hex being attacked or supported.
	TargetHex string
}

// Describe renders the action in a compact human-readable form.
func (a Action) Describe() string {
	switch a.Kind {
	case ActionMove:
		dest := ""
		if len(a.Path) > 0 {
			dest = a.Path[len(a.Path)-1]
		}
		return fmt.Sprintf("%s moves to %s", a.UnitID, dest)
	case ActionAttack:
		return fmt.Sprintf("%s attack %s", strings.Join(a.AttackerIDs, "+"), a.TargetHex)
	case ActionFortify:
		return fmt.Sprintf("%s fortifies", a.UnitID)
	case ActionArtillerySupport:
		return fmt.Sprintf("%s supports %s", a.UnitID, a.TargetHex)
	default:
		return "pass"
	}
}

// clone deep-copies the action's slices so callers can't alias engine
// state.
func (a Action) clone() Action {
	c := a
	if a.Path != nil {
		c.Path = append([]string(nil), a.Path...)
	}
	if a.AttackerIDs != nil {
		c.AttackerIDs = append([]string(nil), a.AttackerIDs...)
	}
	return c
}
