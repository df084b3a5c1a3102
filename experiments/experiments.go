package experiments

import (
	"context"
	"fmt"

	"g2048/engine"
	"g2048/experiments/metrics"
	"g2048/searcher"
	"g2048/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Options struct {
	Name        string
	Games       int // Per agent config
	Parallelism int
	Seed        uint64
	MaxMoves    int
	OutDir      string
	Configs     []metrics.AgentConfig
}

type result struct {
	config      metrics.AgentConfig
	gameMetric  metrics.GameMetric
	moveMetrics []metrics.MoveMetric
}

// Run plays every config for a number of games, stores the records under
// OutDir and returns a summary per config. Games i of every config share a
// seed so that agents face the same tile spawns.
func Run(ctx context.Context, opts Options) ([]Summary, error) {
	if opts.Games <= 0 {
		return nil, fmt.Errorf("games must be positive, got %d", opts.Games)
	}
	if opts.Parallelism <= 0 {
		opts.Parallelism = 1
	}
	if opts.Name == "" {
		opts.Name = "experiment"
	}
	if err := validate(opts.Configs); err != nil {
		return nil, err
	}

	log.Info().Msgf("starting %s experiment...", opts.Name)

	results := make([]result, len(opts.Configs)*opts.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Parallelism)
	for ci, config := range opts.Configs {
		for i := 0; i < opts.Games; i++ {
			idx := ci*opts.Games + i
			seed := opts.Seed + uint64(i)
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				log.Info().Msgf("starting agent %d game %d of %d...", config.ID, i+1, opts.Games)

				a, err := newAgent(config, seed)
				if err != nil {
					return err
				}
				gameMetric, moveMetrics := engine.LocalEngine(a, engine.WithSeed(seed), engine.WithMaxMoves(opts.MaxMoves)).Run()
				results[idx] = result{config: config, gameMetric: gameMetric, moveMetrics: moveMetrics}

				log.Info().Msgf("completed agent %d game %d with score %d and max tile %d", config.ID, i+1, gameMetric.Score, gameMetric.MaxTile)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to run %s experiment: %w", opts.Name, err)
	}

	log.Info().Msgf("completed %s experiment", opts.Name)

	gameRecords := make([]metrics.GameRecord, 0, len(results))
	moveRecords := []metrics.MoveRecord{}
	for i, r := range results {
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         i + 1,
			Agent:      r.config.ID,
			GameMetric: r.gameMetric,
		})
		for _, mm := range r.moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       i + 1,
				MoveMetric: mm,
			})
		}
	}

	err := store(opts, gameRecords, moveRecords)
	if err != nil {
		return nil, err
	}

	summaries := Summarize(opts.Configs, gameRecords)
	for _, s := range summaries {
		log.Info().
			Int("agent", s.Agent).
			Str("name", s.Name).
			Float64("mean_score", s.MeanScore).
			Float64("std_score", s.StdScore).
			Float64("mean_max_tile", s.MeanMaxTile).
			Int("best_tile", s.BestTile).
			Msg("agent summary")
	}
	return summaries, nil
}

func store(opts Options, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(opts.OutDir, opts.Name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(opts.Configs)
	if err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored move records")
	return nil
}

func newAgent(config metrics.AgentConfig, seed uint64) (agent.Agent, error) {
	switch config.Kind {
	case metrics.RandomAgent:
		return agent.NewRandomAgent(seed), nil
	case metrics.ExpectimaxAgent:
		evaluate, err := evaluation(config.Evaluate)
		if err != nil {
			return nil, err
		}
		return agent.NewEvaluationAgent(searcher.NewExpectimax(
			searcher.WithBudget(config.Budget),
			searcher.WithMaxDepth(config.MaxDepth),
			searcher.WithEvaluationFn(evaluate),
			searcher.WithMetrics(),
		)), nil
	}
	return nil, fmt.Errorf("unknown agent kind %q", config.Kind)
}
