package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/freeeve/strait-gambit/internal/bot"
	"github.com/freeeve/strait-gambit/internal/config"
	"github.com/freeeve/strait-gambit/internal/logger"
	"github.com/freeeve/strait-gambit/internal/repository"
	"github.com/freeeve/strait-gambit/internal/repository/postgres"
	redisrepo "github.com/freeeve/strait-gambit/internal/repository/redis"
	"github.com/freeeve/strait-gambit/pkg/tgcsm"
)

func main() {
	logger.Init()

	var (
		factionCfg string
		numGames   int
		workers    int
		dbURL      string
		redisURL   string
		maxTurns   int
		seed       int64
		beachhead  string
		dryRun     bool
		jsonOut    bool
	)

	flag.StringVar(&factionCfg, "p", "", "Faction config (e.g. pla=gonnx,roc=scripted or *=random)")
	flag.IntVar(&numGames, "n", 1, "Number of games to run")
	flag.IntVar(&workers, "workers", 1, "Concurrency (parallel games)")
	flag.StringVar(&dbURL, "db", "", "Database URL (or use DATABASE_URL env)")
	flag.StringVar(&redisURL, "redis", "", "Redis URL for live snapshots (empty = disabled)")
	flag.IntVar(&maxTurns, "max-turns", 0, "Turn limit override (0 = default)")
	flag.Int64Var(&seed, "seed", 0, "Base seed (0 = random)")
	flag.StringVar(&beachhead, "beachhead", "B1,B2", "Hexes granted to the PLA at setup")
	flag.BoolVar(&dryRun, "dry-run", false, "Skip database writes")
	flag.BoolVar(&jsonOut, "json", false, "Output results as JSON")
	flag.Parse()

	appCfg := config.Load()
	bot.GonnxModelPath = appCfg.ModelPath

	factions := bot.ParseFactionConfig(factionCfg)
	label := buildLabel(factions)

	if dbURL == "" {
		dbURL = appCfg.DatabaseURL
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		log.Info().Msg("Shutting down...")
		cancel()
	}()

	var runRepo repository.RunRepository
	if !dryRun {
		db, err := postgres.Connect(dbURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Database connection failed")
		}
		defer db.Close()
		runRepo = postgres.NewRunRepo(db)
	}

	var cache repository.SnapshotCache
	if redisURL != "" {
		client, err := redisrepo.NewClient(redisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Redis connection failed")
		}
		defer client.Close()
		cache = client
	}

	var beachheadHexes []string
	if beachhead != "" {
		beachheadHexes = strings.Split(beachhead, ",")
	}

	results := make([]*bot.ArenaResult, numGames)
	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	errCount := 0

	for i := 0; i < numGames; i++ {
		wg.Add(1)
		sem <- struct{}{}

		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()

			gameSeed := seed
			if seed != 0 {
				gameSeed = seed + int64(idx)
			}

			cfg := bot.ArenaConfig{
				RunName:       fmt.Sprintf("%s-%d", label, idx+1),
				FactionConfig: factions,
				MaxTurns:      maxTurns,
				Seed:          gameSeed,
				DryRun:        dryRun,
				Beachhead:     beachheadHexes,
			}

			result, err := bot.RunGame(ctx, cfg, runRepo, cache)
			if err != nil {
				log.Error().Err(err).Int("game", idx+1).Msg("Game failed")
				mu.Lock()
				errCount++
				mu.Unlock()
				return
			}

			mu.Lock()
			results[idx] = result
			mu.Unlock()

			log.Info().Int("game", idx+1).Str("winner", result.Winner).
				Int("turns", result.Turns).Msg("Game completed")
		}(i)
	}

	wg.Wait()

	if jsonOut {
		printJSON(results, numGames, errCount)
	} else {
		printSummary(results, factions, errCount, label, dryRun)
	}
}

func buildLabel(factions map[tgcsm.Faction]string) string {
	pla, roc := factions[tgcsm.PLA], factions[tgcsm.ROC]
	if pla == roc {
		return "arena-" + pla
	}
	return fmt.Sprintf("arena-%s-vs-%s", pla, roc)
}

func printSummary(results []*bot.ArenaResult, factions map[tgcsm.Faction]string, errCount int, label string, dryRun bool) {
	type stats struct {
		wins       int
		casualties int
		hexes      int
	}
	byFaction := map[tgcsm.Faction]*stats{
		tgcsm.PLA: {},
		tgcsm.ROC: {},
	}

	completed := 0
	totalTurns := 0
	for _, r := range results {
		if r == nil {
			continue
		}
		completed++
		totalTurns += r.Turns
		if r.Winner == string(tgcsm.PLA) {
			byFaction[tgcsm.PLA].wins++
		} else {
			byFaction[tgcsm.ROC].wins++
		}
		byFaction[tgcsm.PLA].casualties += r.PLACasualties
		byFaction[tgcsm.ROC].casualties += r.ROCCasualties
		byFaction[tgcsm.PLA].hexes += r.PLAHexes
		byFaction[tgcsm.ROC].hexes += r.ROCHexes
	}

	fmt.Printf("\nResults (%d games):\n", completed)
	if errCount > 0 {
		fmt.Printf("  (%d games failed)\n", errCount)
	}
	if completed == 0 {
		return
	}

	for _, f := range tgcsm.AllFactions() {
		s := byFaction[f]
		fmt.Printf("  %-4s (%s):  %d wins  -- avg casualties: %.0f, avg hexes: %.1f\n",
			f, factions[f], s.wins,
			float64(s.casualties)/float64(completed),
			float64(s.hexes)/float64(completed))
	}
	fmt.Printf("  avg game length: %.1f turns\n", float64(totalTurns)/float64(completed))

	if !dryRun {
		fmt.Printf("\nRuns saved to database under \"%s-1\" through \"-%d\"\n", label, completed)
	}
}

func printJSON(results []*bot.ArenaResult, total, errCount int) {
	out := struct {
		Total   int                `json:"total"`
		Errors  int                `json:"errors"`
		Results []*bot.ArenaResult `json:"results"`
	}{
		Total:   total,
		Errors:  errCount,
		Results: results,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(out)
}
