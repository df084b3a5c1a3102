package agent

import (
	"g2048/experiments/metrics"
	"g2048/game"
	"g2048/searcher"
)

type evaluationAgent struct {
	expectimax *searcher.Expectimax
}

// NewEvaluationAgent returns an agent that plays whatever the search decides.
func NewEvaluationAgent(expectimax *searcher.Expectimax) Agent {
	return evaluationAgent{expectimax: expectimax}
}

func (a evaluationAgent) FindMove(board game.Board) (game.Move, metrics.SearchMetric) {
	return a.expectimax.Search(board)
}
