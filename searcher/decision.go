package searcher

import (
	"math"

	"g2048/game"
)

// maximize evaluates the player's moves. Each move is worth the chance node
// that follows it, weighted over the two tile values the game can spawn.
// Returns NoMove and -Inf once the deadline passes so that the branch never
// wins a comparison.
func (e *Expectimax) maximize(board game.Board, alpha, beta float64, depth, limit int, d deadline) (game.Move, float64) {
	if d.passed() {
		return game.NoMove, math.Inf(-1)
	}
	if depth > limit {
		e.metrics.AddLeaf()
		return game.NoMove, e.evaluate(board)
	}
	e.metrics.AddNode()

	maxMove, maxUtility := game.NoMove, math.Inf(-1)
	for _, outcome := range board.Moves() {
		utility := TwoProbability*e.minimize(outcome.Board, alpha, beta, depth+1, limit, 2, d) +
			FourProbability*e.minimize(outcome.Board, alpha, beta, depth+1, limit, 4, d)

		if utility > maxUtility {
			maxMove, maxUtility = outcome.Move, utility

			if !e.pruning {
				continue
			}
			if maxUtility >= beta {
				e.metrics.AddCutoff()
				break
			}
			if maxUtility > alpha {
				alpha = maxUtility
			}
		}
	}
	return maxMove, maxUtility
}
