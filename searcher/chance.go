package searcher

import (
	"math"

	"g2048/game"
)

// minimize places tile on each empty cell in turn and keeps the worst outcome
// for the player. Returns +Inf once the deadline passes.
func (e *Expectimax) minimize(board game.Board, alpha, beta float64, depth, limit, tile int, d deadline) float64 {
	if d.passed() {
		return math.Inf(1)
	}
	if depth > limit {
		e.metrics.AddLeaf()
		return e.evaluate(board)
	}
	e.metrics.AddNode()

	minUtility := math.Inf(1)
	for _, cell := range board.EmptyCells() {
		child := board.Clone()
		child.Set(cell, tile)
		_, utility := e.maximize(child, alpha, beta, depth+1, limit, d)

		if utility < minUtility {
			minUtility = utility

			if !e.pruning {
				continue
			}
			if minUtility <= alpha {
				e.metrics.AddCutoff()
				break
			}
			if minUtility < beta {
				beta = minUtility
			}
		}
	}
	return minUtility
}
