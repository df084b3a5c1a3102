package engine

import (
	"time"

	"g2048/experiments/metrics"
	"g2048/game"
	"g2048/searcher/agent"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/exp/rand"
)

// Chance of spawning a 2 rather than a 4
const TwoProbability = 0.9

var _ Engine = (*Local)(nil)

type Option func(e *Local)

// Local plays a single-player game of 2048 in process, spawning tiles itself.
type Local struct {
	Agent    agent.Agent
	Grid     *game.Grid
	Score    int
	seed     uint64
	size     int
	maxMoves int
	rng      *rand.Rand
}

func WithSeed(seed uint64) Option {
	return func(e *Local) {
		e.seed = seed
	}
}

func WithSize(size int) Option {
	return func(e *Local) {
		if size > 1 {
			e.size = size
		}
	}
}

func WithMaxMoves(moves int) Option {
	return func(e *Local) {
		if moves > 0 {
			e.maxMoves = moves
		}
	}
}

func LocalEngine(a agent.Agent, options ...Option) *Local {
	if a == nil {
		panic("engine needs an agent")
	}
	e := &Local{
		Agent:    a,
		seed:     uint64(time.Now().UnixNano()),
		size:     game.DefaultSize,
		maxMoves: MaxMoves,
	}
	for _, option := range options {
		option(e)
	}
	e.rng = rand.New(rand.NewSource(e.seed))
	e.Grid = game.NewGrid(e.size)
	e.spawn()
	e.spawn()
	return e
}

// Run executes the game loop until the grid is blocked.
func (e *Local) Run() (metrics.GameMetric, []metrics.MoveMetric) {
	start := time.Now()
	var moveMetrics []metrics.MoveMetric

	log.Info().Uint64("seed", e.seed).Msg("game is starting")

	step := 0
	for step < e.maxMoves {
		outcomes := e.Grid.Moves()
		if len(outcomes) == 0 {
			break
		}
		step++

		move, searchMetric := e.Agent.FindMove(e.Grid.Copy())
		if !lo.ContainsBy(outcomes, func(o game.Outcome) bool { return o.Move == move }) {
			log.Warn().Msgf("agent played illegal move %v at step %d, playing %v instead", move, step, outcomes[0].Move)
			move = outcomes[0].Move
		}

		_, gained := e.Grid.Slide(move)
		e.Score += gained
		e.spawn()

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Move:         move,
			SearchMetric: searchMetric,
		})
		log.Debug().Int("step", step).Stringer("move", move).Int("score", e.Score).Msg("played move")
	}

	end := time.Now()
	gameMetric := metrics.GameMetric{
		Seed:       e.seed,
		Score:      e.Score,
		MaxTile:    e.Grid.MaxTile(),
		TotalMoves: step,
		StartTime:  start,
		EndTime:    end,
		Duration:   end.Sub(start),
	}
	log.Info().Int("score", e.Score).Int("max_tile", gameMetric.MaxTile).Int("moves", step).Msg("game is over")

	return gameMetric, moveMetrics
}

// spawn places a 2 or a 4 on a random empty cell.
func (e *Local) spawn() {
	empty := e.Grid.EmptyCells()
	if len(empty) == 0 {
		return
	}
	tile := 2
	if e.rng.Float64() >= TwoProbability {
		tile = 4
	}
	e.Grid.Set(empty[e.rng.Intn(len(empty))], tile)
}
