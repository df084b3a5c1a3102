package agent

import (
	"g2048/experiments/metrics"
	"g2048/game"
)

type Agent interface {
	// FindMove returns the move to play and performance metrics (if collected) from the search
	FindMove(board game.Board) (game.Move, metrics.SearchMetric)
}
