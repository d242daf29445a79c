package bot

import (
	"context"
	"testing"

	"github.com/freeeve/strait-gambit/pkg/tgcsm"
)

func TestRunGameDryRun(t *testing.T) {
	cfg := ArenaConfig{
		RunName: "test-hold",
		FactionConfig: map[tgcsm.Faction]string{
			tgcsm.PLA: "hold",
			tgcsm.ROC: "hold",
		},
		MaxTurns: 2,
		Seed:     7,
		DryRun:   true,
	}

	result, err := RunGame(context.Background(), cfg, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	// No beachhead: the invasion force never lands and the defender
	// wins on survival.
	if result.Winner != string(tgcsm.ROC) {
		t.Errorf("winner = %q, want ROC", result.Winner)
	}
	if result.PoolRemaining != 12 {
		t.Errorf("pool remaining = %d, want 12", result.PoolRemaining)
	}
	if result.PLAHexes != 0 || result.ROCHexes != 130 {
		t.Errorf("territory = %d/%d, want 0/130", result.PLAHexes, result.ROCHexes)
	}
	if result.PLACasualties != 0 || result.ROCCasualties != 0 {
		t.Errorf("casualties = %d/%d, want none in a game with no contact",
			result.PLACasualties, result.ROCCasualties)
	}
	if result.RunID != "" {
		t.Errorf("dry run produced database id %q", result.RunID)
	}
	if result.Turns <= cfg.MaxTurns {
		t.Errorf("turn counter = %d, want past the %d-turn limit", result.Turns, cfg.MaxTurns)
	}
}

func TestRunGameWithBeachhead(t *testing.T) {
	cfg := ArenaConfig{
		RunName: "test-beachhead",
		FactionConfig: map[tgcsm.Faction]string{
			tgcsm.PLA: "hold",
			tgcsm.ROC: "hold",
		},
		MaxTurns:  1,
		Seed:      7,
		DryRun:    true,
		Beachhead: []string{"B1", "B2"},
	}

	result, err := RunGame(context.Background(), cfg, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	if result.PoolRemaining >= 12 {
		t.Errorf("pool remaining = %d, want landings to have happened", result.PoolRemaining)
	}
	if result.PLAHexes == 0 {
		t.Error("invader holds no hexes despite the beachhead")
	}
}

func TestRunGameCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := ArenaConfig{
		FactionConfig: map[tgcsm.Faction]string{
			tgcsm.PLA: "hold",
			tgcsm.ROC: "hold",
		},
		DryRun: true,
	}
	if _, err := RunGame(ctx, cfg, nil, nil); err == nil {
		t.Error("cancelled context should abort the game with an error")
	}
}
