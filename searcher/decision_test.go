package searcher

import (
	"math"
	"testing"

	"g2048/game"

	"github.com/stretchr/testify/require"
)

/**
max stage:
- deadline passed -> no move, -Inf
- past the depth limit -> no move, evaluation
- happy path: utility of a move = 0.9 * chance(2) + 0.1 * chance(4)
- edge case: no moves -> no move, -Inf
- fail high once the best utility reaches beta
*/

func TestMaximize(t *testing.T) {
	t.Run("deadline passed", func(t *testing.T) {
		e := NewExpectimax()
		d := deadline{at: epoch, now: expiredClock()}
		d.now() // Consume the reading the deadline was computed from

		move, utility := e.maximize(midGame(), math.Inf(-1), math.Inf(1), 0, 5, d)

		require.Equal(t, game.NoMove, move)
		require.Equal(t, math.Inf(-1), utility, "A timed out branch should never be preferred by the player")
	})

	t.Run("past the depth limit the board is evaluated", func(t *testing.T) {
		e := NewExpectimax(WithEvaluationFn(func(game.Board) float64 { return 0.42 }))
		d := deadline{at: epoch, now: frozenClock()}

		move, utility := e.maximize(midGame(), math.Inf(-1), math.Inf(1), 3, 2, d)

		require.Equal(t, game.NoMove, move)
		require.Equal(t, 0.42, utility)
	})

	t.Run("moves are weighted over the tile spawned next", func(t *testing.T) {
		e := NewExpectimax(WithEvaluationFn(sumOfTiles))
		d := deadline{at: epoch, now: frozenClock()}
		after := game.FromRows([][]int{
			{0, 8},
			{8, 8},
		})
		board := mockBoard{
			Grid:     game.NewGrid(2),
			outcomes: []game.Outcome{{Move: game.Left, Board: after}},
		}

		move, utility := e.maximize(board, math.Inf(-1), math.Inf(1), 0, 1, d)

		require.Equal(t, game.Left, move)
		require.InDelta(t, 0.9*0.26+0.1*0.28, utility, 1e-12)
	})

	t.Run("the best move wins", func(t *testing.T) {
		e := NewExpectimax(WithEvaluationFn(sumOfTiles))
		d := deadline{at: epoch, now: frozenClock()}
		worse := game.FromRows([][]int{{0, 2}, {2, 2}})
		better := game.FromRows([][]int{{0, 4}, {4, 4}})
		board := mockBoard{
			Grid: game.NewGrid(2),
			outcomes: []game.Outcome{
				{Move: game.Up, Board: worse},
				{Move: game.Right, Board: better},
			},
		}

		move, _ := e.maximize(board, math.Inf(-1), math.Inf(1), 0, 1, d)

		require.Equal(t, game.Right, move)
	})

	t.Run("no moves", func(t *testing.T) {
		e := NewExpectimax()
		d := deadline{at: epoch, now: frozenClock()}

		move, utility := e.maximize(blocked(), math.Inf(-1), math.Inf(1), 0, 3, d)

		require.Equal(t, game.NoMove, move)
		require.Equal(t, math.Inf(-1), utility)
	})

	t.Run("fail high stops scanning moves", func(t *testing.T) {
		e := NewExpectimax(WithEvaluationFn(sumOfTiles), WithMetrics())
		e.metrics.Start(0, 0)
		d := deadline{at: epoch, now: frozenClock()}
		board := mockBoard{
			Grid: game.NewGrid(2),
			outcomes: []game.Outcome{
				{Move: game.Up, Board: game.FromRows([][]int{{0, 8}, {8, 8}})},
				{Move: game.Down, Board: game.FromRows([][]int{{0, 16}, {16, 16}})},
			},
		}

		move, _ := e.maximize(board, math.Inf(-1), 0.1, 0, 1, d)

		require.Equal(t, game.Up, move, "The first move already reaches beta")
		require.Equal(t, 1, e.metrics.Complete().Cutoffs)
	})
}
