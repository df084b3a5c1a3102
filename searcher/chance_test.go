package searcher

import (
	"math"
	"testing"

	"g2048/game"

	"github.com/stretchr/testify/require"
)

/**
chance stage:
- deadline passed -> +Inf
- past the depth limit -> evaluation
- happy path: min over every empty cell holding the new tile
- the board passed in is never mutated
- fail low once the worst utility reaches alpha
*/

func TestMinimize(t *testing.T) {
	t.Run("deadline passed", func(t *testing.T) {
		e := NewExpectimax()
		d := deadline{at: epoch, now: expiredClock()}
		d.now()

		utility := e.minimize(midGame(), math.Inf(-1), math.Inf(1), 1, 5, 2, d)

		require.Equal(t, math.Inf(1), utility, "A timed out branch should never be preferred by the environment")
	})

	t.Run("past the depth limit the board is evaluated", func(t *testing.T) {
		e := NewExpectimax(WithEvaluationFn(func(game.Board) float64 { return 0.42 }))
		d := deadline{at: epoch, now: frozenClock()}

		require.Equal(t, 0.42, e.minimize(midGame(), math.Inf(-1), math.Inf(1), 1, 0, 2, d))
	})

	t.Run("the worst placement is kept", func(t *testing.T) {
		corner := func(b game.Board) float64 {
			return float64(b.Get(game.Cell{Row: 0, Col: 0})) / 10
		}
		e := NewExpectimax(WithEvaluationFn(corner))
		d := deadline{at: epoch, now: frozenClock()}
		board := game.FromRows([][]int{
			{0, 0},
			{8, 8},
		})

		utility := e.minimize(board, math.Inf(-1), math.Inf(1), 1, 1, 4, d)

		require.Zero(t, utility, "Placing the tile away from the corner is worst")
		require.Equal(t, [][]int{{0, 0}, {8, 8}}, board.Rows(), "Placements should happen on clones")
	})

	t.Run("no empty cells", func(t *testing.T) {
		e := NewExpectimax()
		d := deadline{at: epoch, now: frozenClock()}

		require.Equal(t, math.Inf(1), e.minimize(blocked(), math.Inf(-1), math.Inf(1), 1, 3, 2, d))
	})

	t.Run("fail low stops scanning cells", func(t *testing.T) {
		e := NewExpectimax(WithEvaluationFn(sumOfTiles), WithMetrics())
		e.metrics.Start(0, 0)
		d := deadline{at: epoch, now: frozenClock()}
		board := game.FromRows([][]int{
			{0, 0},
			{8, 8},
		})

		utility := e.minimize(board, 0.5, math.Inf(1), 1, 1, 2, d)

		require.InDelta(t, 0.18, utility, 1e-12)
		require.Equal(t, 1, e.metrics.Complete().Cutoffs)
	})
}
