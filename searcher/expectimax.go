package searcher

import (
	"math"
	"time"

	"g2048/experiments/metrics"
	"g2048/game"

	"github.com/rs/zerolog/log"
)

var _ Agent = (*Expectimax)(nil)

type Option func(e *Expectimax)

// Expectimax searches the game tree with iterative deepening until its time
// budget runs out. Calls must not overlap on the same instance.
type Expectimax struct {
	budget   time.Duration
	maxDepth int
	fallback game.Move
	evaluate game.Evaluate
	now      func() time.Time
	pruning  bool
	metrics  metrics.Collector
}

func WithBudget(budget time.Duration) Option {
	return func(e *Expectimax) {
		if budget > 0 {
			e.budget = budget
		}
	}
}

func WithMaxDepth(depth int) Option {
	return func(e *Expectimax) {
		if depth > 0 {
			e.maxDepth = depth
		}
	}
}

func WithFallback(move game.Move) Option {
	return func(e *Expectimax) {
		e.fallback = move
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(e *Expectimax) {
		if evaluate != nil {
			e.evaluate = evaluate
		}
	}
}

// WithClock replaces the clock the deadline is measured on.
func WithClock(now func() time.Time) Option {
	return func(e *Expectimax) {
		if now != nil {
			e.now = now
		}
	}
}

func WithMetrics() Option {
	return func(e *Expectimax) {
		e.metrics = metrics.NewCollector()
	}
}

// WithoutPruning searches every child regardless of the alpha-beta window.
func WithoutPruning() Option {
	return func(e *Expectimax) {
		e.pruning = false
	}
}

func NewExpectimax(options ...Option) *Expectimax {
	e := &Expectimax{ // Default values
		budget:   DefaultBudget,
		maxDepth: MaxDepth,
		fallback: Fallback,
		evaluate: game.EvaluateWeighted,
		now:      time.Now,
		pruning:  true,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Expectimax) FindNextMove(board game.Board) game.Move {
	move, _ := e.Search(board)
	return move
}

// Search deepens the depth limit one ply at a time and keeps the move of the
// deepest iteration that finished before the deadline.
func (e *Expectimax) Search(board game.Board) (game.Move, metrics.SearchMetric) {
	e.metrics.Start(e.budget, e.maxDepth)
	d := deadline{at: e.now().Add(e.budget), now: e.now}

	move := e.fallback
	for limit := 0; limit < e.maxDepth; limit++ {
		child, utility := e.maximize(board, math.Inf(-1), math.Inf(1), 0, limit, d)

		if d.passed() {
			e.metrics.CompleteIteration(-1)
			e.metrics.SetTimedOut()
			log.Debug().Msgf("deadline passed during depth %d, keeping %v", limit, move)
			break
		}
		if child == game.NoMove {
			e.metrics.CompleteIteration(-1)
			continue
		}
		move = child
		e.metrics.CompleteIteration(limit)
		log.Debug().Int("depth", limit).Stringer("move", child).Float64("utility", utility).Msg("completed iteration")
	}

	return move, e.metrics.Complete()
}
