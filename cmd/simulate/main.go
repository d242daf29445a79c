package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/freeeve/strait-gambit/internal/bot"
	"github.com/freeeve/strait-gambit/internal/config"
	"github.com/freeeve/strait-gambit/internal/logger"
	"github.com/freeeve/strait-gambit/internal/report"
	"github.com/freeeve/strait-gambit/pkg/tgcsm"
)

func main() {
	logger.Init()

	var (
		plaName   string
		rocName   string
		seed      int64
		maxTurns  int
		beachhead string
		jsonOut   bool
		quiet     bool
	)

	flag.StringVar(&plaName, "pla", "scripted", "PLA strategy (hold, random, scripted, console, gonnx)")
	flag.StringVar(&rocName, "roc", "scripted", "ROC strategy (hold, random, scripted, console, gonnx)")
	flag.Int64Var(&seed, "seed", 0, "Random seed (0 = random)")
	flag.IntVar(&maxTurns, "max-turns", 0, "Turn limit override (0 = default)")
	flag.StringVar(&beachhead, "beachhead", "", "Comma-separated hexes granted to the PLA at setup (e.g. B1,B2)")
	flag.BoolVar(&jsonOut, "json", false, "Output final state as JSON")
	flag.BoolVar(&quiet, "quiet", false, "Suppress per-turn logging")
	flag.Parse()

	if quiet {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	cfg := config.Load()
	bot.GonnxModelPath = cfg.ModelPath
	if seed != 0 {
		bot.SeedBotRng(seed)
	}

	strategies := map[tgcsm.Faction]tgcsm.Strategy{
		tgcsm.PLA: bot.StrategyForName(plaName),
		tgcsm.ROC: bot.StrategyForName(rocName),
	}

	scenario := tgcsm.DefaultScenario()
	if beachhead != "" {
		scenario.WithBeachhead(strings.Split(beachhead, ",")...)
	}

	engine, err := tgcsm.NewEngine(scenario, strategies, seed)
	if err != nil {
		log.Fatal().Err(err).Msg("engine setup failed")
	}
	if maxTurns > 0 {
		engine.SetMaxTurns(maxTurns)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		cancel()
	}()

	winner, err := engine.Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("simulation aborted")
	}

	final := engine.Snapshot(tgcsm.NoFaction)
	summary := report.Build(final, scenario, winner, engine.Turn(), engine.PoolSize())

	if jsonOut {
		if err := report.WriteJSON(os.Stdout, summary, final); err != nil {
			log.Fatal().Err(err).Msg("write report")
		}
		return
	}
	summary.Print(os.Stdout)
}
