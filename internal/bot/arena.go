package bot

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/freeeve/strait-gambit/internal/logger"
	"github.com/freeeve/strait-gambit/internal/model"
	"github.com/freeeve/strait-gambit/internal/report"
	"github.com/freeeve/strait-gambit/internal/repository"
	"github.com/freeeve/strait-gambit/pkg/tgcsm"
)

// ArenaConfig configures a single bot-vs-bot game.
type ArenaConfig struct {
	RunName       string
	FactionConfig map[tgcsm.Faction]string // faction -> strategy name
	MaxTurns      int                      // 0 = engine default
	Seed          int64                    // 0 = random
	DryRun        bool                     // skip DB writes
	Beachhead     []string                 // hexes granted to the invader at setup
}

// ArenaResult describes the outcome of a completed arena game.
type ArenaResult struct {
	RunID         string `json:"run_id,omitempty"`
	Winner        string `json:"winner"`
	Turns         int    `json:"turns"`
	PLACasualties int    `json:"pla_casualties"`
	ROCCasualties int    `json:"roc_casualties"`
	PLAHexes      int    `json:"pla_hexes"`
	ROCHexes      int    `json:"roc_hexes"`
	PoolRemaining int    `json:"pool_remaining"`
}

// RunGame plays a full campaign with the configured strategies, saving
// the result to Postgres and publishing live snapshots to the cache.
// Pass a nil repo for dry-run mode and a nil cache to disable
// publishing.
func RunGame(
	ctx context.Context,
	cfg ArenaConfig,
	runRepo repository.RunRepository,
	cache repository.SnapshotCache,
) (*ArenaResult, error) {
	strategies := make(map[tgcsm.Faction]tgcsm.Strategy)
	names := make(map[tgcsm.Faction]string)
	for _, f := range tgcsm.AllFactions() {
		name, ok := cfg.FactionConfig[f]
		if !ok {
			name = "scripted"
		}
		names[f] = name
		strategies[f] = StrategyForName(name)
	}

	scenario := tgcsm.DefaultScenario()
	if len(cfg.Beachhead) > 0 {
		scenario.WithBeachhead(cfg.Beachhead...)
	}

	engine, err := tgcsm.NewEngine(scenario, strategies, cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("build engine: %w", err)
	}
	if cfg.MaxTurns > 0 {
		engine.SetMaxTurns(cfg.MaxTurns)
	}

	runID := cfg.RunName
	if runID == "" {
		runID = "arena-" + logger.NewRunID()
	}
	ctx = logger.WithRunID(ctx, runID)
	runLog := logger.ForRun(ctx)

	for !engine.GameOver() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		engine.RunTurn()

		if cache != nil {
			snap, merr := json.Marshal(engine.Snapshot(tgcsm.NoFaction))
			if merr != nil {
				return nil, fmt.Errorf("marshal snapshot: %w", merr)
			}
			if cerr := cache.PublishSnapshot(ctx, runID, engine.Turn(), snap); cerr != nil {
				runLog.Warn().Err(cerr).Msg("snapshot publish failed")
			}
		}
	}

	final := engine.Snapshot(tgcsm.NoFaction)
	summary := report.Build(final, scenario, engine.Winner(), engine.Turn(), engine.PoolSize())

	result := &ArenaResult{
		Winner:        string(engine.Winner()),
		Turns:         engine.Turn(),
		PLACasualties: summary.PLACasualties.StrengthLost,
		ROCCasualties: summary.ROCCasualties.StrengthLost,
		PLAHexes:      summary.PLAHexes,
		ROCHexes:      summary.ROCHexes,
		PoolRemaining: engine.PoolSize(),
	}

	if !cfg.DryRun && runRepo != nil {
		finalState, merr := json.Marshal(final)
		if merr != nil {
			return nil, fmt.Errorf("marshal final state: %w", merr)
		}
		run := &model.SimRun{
			Name:          runID,
			Winner:        result.Winner,
			Turns:         result.Turns,
			Seed:          cfg.Seed,
			PLAStrategy:   names[tgcsm.PLA],
			ROCStrategy:   names[tgcsm.ROC],
			PLACasualties: result.PLACasualties,
			ROCCasualties: result.ROCCasualties,
			PLAHexes:      result.PLAHexes,
			ROCHexes:      result.ROCHexes,
			PoolRemaining: result.PoolRemaining,
			FinalState:    finalState,
		}
		saved, serr := runRepo.SaveRun(ctx, run)
		if serr != nil {
			return nil, fmt.Errorf("save run: %w", serr)
		}
		result.RunID = saved.ID
	}

	if cache != nil {
		if cerr := cache.ClearRun(ctx, runID); cerr != nil {
			runLog.Warn().Err(cerr).Msg("cache cleanup failed")
		}
	}

	runLog.Info().
		Str("winner", result.Winner).
		Int("turns", result.Turns).
		Msg("arena game completed")
	return result, nil
}
