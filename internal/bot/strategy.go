package bot

import (
	"sort"
	"strings"

	"github.com/freeeve/strait-gambit/pkg/tgcsm"
)

// StrategyForName returns the strategy registered under the given name.
// Unknown names fall back to the scripted heuristic.
func StrategyForName(name string) tgcsm.Strategy {
	switch name {
	case "hold":
		return &HoldStrategy{}
	case "random":
		return &RandomStrategy{}
	case "console":
		return NewConsoleStrategy()
	case "gonnx":
		return newGonnxOrFallback()
	default:
		return &ScriptedStrategy{}
	}
}

// ParseFactionConfig parses a "pla=scripted,roc=console" style string
// into a strategy name per faction. "*" assigns a default to factions
// not named explicitly.
func ParseFactionConfig(s string) map[tgcsm.Faction]string {
	out := make(map[tgcsm.Faction]string)
	def := ""
	for _, part := range strings.Split(s, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(kv[0]))
		val := strings.TrimSpace(kv[1])
		switch key {
		case "*":
			def = val
		case "pla":
			out[tgcsm.PLA] = val
		case "roc":
			out[tgcsm.ROC] = val
		}
	}
	for _, f := range tgcsm.AllFactions() {
		if out[f] == "" {
			if def != "" {
				out[f] = def
			} else {
				out[f] = "scripted"
			}
		}
	}
	return out
}

// --- HoldStrategy ---

// HoldStrategy fortifies every unit that can act and never attacks.
type HoldStrategy struct{}

func (HoldStrategy) Name() string { return "hold" }

func (HoldStrategy) ChooseActions(_ *tgcsm.Snapshot, legal []tgcsm.Action) []tgcsm.Action {
	var chosen []tgcsm.Action
	for _, a := range legal {
		if a.Kind == tgcsm.ActionFortify {
			chosen = append(chosen, a)
		}
	}
	if len(chosen) == 0 {
		return []tgcsm.Action{{Kind: tgcsm.ActionPass}}
	}
	return chosen
}

// --- RandomStrategy ---

// RandomStrategy issues one random legal action per unit, for testing
// and as a weak baseline.
type RandomStrategy struct{}

func (RandomStrategy) Name() string { return "random" }

func (RandomStrategy) ChooseActions(_ *tgcsm.Snapshot, legal []tgcsm.Action) []tgcsm.Action {
	byUnit := make(map[string][]tgcsm.Action)
	var attacks []tgcsm.Action
	for _, a := range legal {
		switch a.Kind {
		case tgcsm.ActionAttack:
			attacks = append(attacks, a)
		case tgcsm.ActionMove, tgcsm.ActionFortify, tgcsm.ActionArtillerySupport:
			byUnit[a.UnitID] = append(byUnit[a.UnitID], a)
		}
	}

	var chosen []tgcsm.Action
	committed := make(map[string]bool)

	// Declare each attack with 50% probability. Attacks commit every
	// hex-mate they bundle.
	for _, a := range attacks {
		if botFloat64() < 0.5 {
			chosen = append(chosen, a)
			for _, uid := range a.AttackerIDs {
				committed[uid] = true
			}
		}
	}

	// Stable unit order keeps seeded runs reproducible.
	uids := make([]string, 0, len(byUnit))
	for uid := range byUnit {
		uids = append(uids, uid)
	}
	sort.Strings(uids)
	for _, uid := range uids {
		if committed[uid] {
			continue
		}
		opts := byUnit[uid]
		chosen = append(chosen, opts[botIntn(len(opts))])
	}

	if len(chosen) == 0 {
		return []tgcsm.Action{{Kind: tgcsm.ActionPass}}
	}
	return chosen
}
