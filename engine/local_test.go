package engine

import (
	"testing"
	"time"

	"g2048/experiments/metrics"
	"g2048/game"
	"g2048/searcher"
	"g2048/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// fixedAgent always plays the same move, legal or not.
type fixedAgent struct {
	move  game.Move
	calls int
}

func (a *fixedAgent) FindMove(board game.Board) (game.Move, metrics.SearchMetric) {
	a.calls++
	return a.move, metrics.SearchMetric{DepthReached: -1}
}

func TestLocalEngine(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.Disabled)

	t.Run("a new game starts with two tiles", func(t *testing.T) {
		e := LocalEngine(agent.NewRandomAgent(1), WithSeed(3))

		require.Len(t, e.Grid.EmptyCells(), game.DefaultSize*game.DefaultSize-2)
		require.Zero(t, e.Score)
	})

	t.Run("a random game runs until the grid is blocked", func(t *testing.T) {
		e := LocalEngine(agent.NewRandomAgent(1), WithSeed(5))

		gameMetric, moveMetrics := e.Run()

		require.False(t, e.Grid.CanMove())
		require.Equal(t, gameMetric.TotalMoves, len(moveMetrics))
		require.Equal(t, e.Score, gameMetric.Score)
		require.Equal(t, e.Grid.MaxTile(), gameMetric.MaxTile)
		require.Equal(t, uint64(5), gameMetric.Seed)
		for i, mm := range moveMetrics {
			require.Equal(t, i+1, mm.Step)
		}
	})

	t.Run("the same seed replays the same game", func(t *testing.T) {
		first, _ := LocalEngine(agent.NewRandomAgent(2), WithSeed(8)).Run()
		second, _ := LocalEngine(agent.NewRandomAgent(2), WithSeed(8)).Run()

		require.Equal(t, first.Score, second.Score)
		require.Equal(t, first.TotalMoves, second.TotalMoves)
		require.Equal(t, first.MaxTile, second.MaxTile)
	})

	t.Run("illegal moves are replaced by a legal one", func(t *testing.T) {
		a := &fixedAgent{move: game.NoMove}
		e := LocalEngine(a, WithSeed(1), WithMaxMoves(5))

		gameMetric, moveMetrics := e.Run()

		require.Equal(t, gameMetric.TotalMoves, a.calls)
		require.LessOrEqual(t, gameMetric.TotalMoves, 5)
		for _, mm := range moveMetrics {
			require.NotEqual(t, game.NoMove, mm.Move)
		}
	})

	t.Run("the max number of moves stops the game", func(t *testing.T) {
		a := agent.NewEvaluationAgent(searcher.NewExpectimax(searcher.WithBudget(time.Millisecond), searcher.WithMaxDepth(2)))
		e := LocalEngine(a, WithSeed(4), WithMaxMoves(3), WithSize(3))

		gameMetric, moveMetrics := e.Run()

		require.Equal(t, 3, e.Grid.Size())
		require.LessOrEqual(t, gameMetric.TotalMoves, 3)
		require.Len(t, moveMetrics, gameMetric.TotalMoves)
	})
}
