package searcher

import (
	"time"

	"g2048/game"
)

// Defaults for expectimax

const DefaultBudget = 150 * time.Millisecond // Time allowed per decision
const MaxDepth = 100                         // Ceiling on iterative deepening
const Fallback = game.Down                   // Played when no iteration completes

// Chance of the environment spawning each tile value
const TwoProbability = 0.9
const FourProbability = 1 - TwoProbability
