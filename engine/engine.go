package engine

import "g2048/experiments/metrics"

const MaxMoves = 100000

type Engine interface {
	// Run plays a game until no move is left or a max number of moves is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
