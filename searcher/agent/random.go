package agent

import (
	"time"

	"g2048/experiments/metrics"
	"g2048/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent that picks uniformly among the
// legal moves.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(board game.Board) (game.Move, metrics.SearchMetric) {
	start := time.Now()
	metric := metrics.SearchMetric{DepthReached: -1}

	outcomes := board.Moves()
	if len(outcomes) == 0 {
		metric.Duration = time.Since(start)
		return game.NoMove, metric
	}
	move := outcomes[a.rng.Intn(len(outcomes))].Move
	metric.Duration = time.Since(start)
	return move, metric
}
