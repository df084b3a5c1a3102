package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"g2048/experiments"
	"g2048/experiments/metrics"
	"g2048/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

func main() {
	configPath := flag.String("config", "", "YAML file listing agent configs (defaults to a budget comparison)")
	name := flag.String("name", "budget", "Experiment name, used as the output subdirectory")
	games := flag.Int("games", meta.NUM_GAMES, "Number of games per agent config")
	parallel := flag.Int("parallel", meta.GO_ROUTINES, "Number of games played concurrently")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed of the first game")
	maxMoves := flag.Int("max-moves", meta.MAX_MOVES, "Max number of moves per game")
	out := flag.String("out", meta.OUT_DIR, "Directory for experiment records")
	level := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(lvl)

	configs := experiments.DefaultConfigs()
	if *configPath != "" {
		configs, err = experiments.LoadConfigs(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load agent configs")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	_, err = experiments.Run(ctx, experiments.Options{
		Name:        *name,
		Games:       *games,
		Parallelism: *parallel,
		Seed:        *seed,
		MaxMoves:    *maxMoves,
		OutDir:      *out,
		Configs:     configs,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	log.Info().Msgf("played %d agent configs: %v", len(configs), configNames(configs))
}

func configNames(configs []metrics.AgentConfig) []string {
	return lo.Map(configs, func(c metrics.AgentConfig, _ int) string { return c.Name })
}
