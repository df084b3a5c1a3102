package game

import (
	"math"

	"github.com/samber/lo"
)

// Weights of the components combined by EvaluateWeighted
const (
	EmptinessWeight    = 0.40
	MonotonicityWeight = 0.35
	SmoothnessWeight   = 0.35
	HighestTileWeight  = 0.05
	CornerWeight       = 0.05
)

// TargetTile is the tile value at which the highest tile component saturates.
const TargetTile = 4096

// Components are the normalized features of a board, each between 0 and 1.
type Components struct {
	Emptiness    float64
	Monotonicity float64
	Smoothness   float64
	Highest      float64
	Corner       float64
}

// Score combines the components into a single value clamped to [0, 1].
func (c Components) Score() float64 {
	score := EmptinessWeight*c.Emptiness +
		MonotonicityWeight*c.Monotonicity +
		SmoothnessWeight*c.Smoothness +
		HighestTileWeight*c.Highest +
		CornerWeight*c.Corner
	return math.Max(0, math.Min(1, score))
}

// EvaluateWeighted scores a board by how empty, monotonic and smooth it is,
// how large its highest tile is and whether that tile sits in a corner.
func EvaluateWeighted(b Board) float64 {
	return Features(b).Score()
}

// EvaluateEmptiness scores a board by its share of empty cells only.
func EvaluateEmptiness(b Board) float64 {
	size := b.Size()
	return emptiness(len(b.EmptyCells()), size)
}

// Features measures the components of a board in a single pass over its cells.
func Features(b Board) Components {
	size := b.Size()
	last := size - 1

	empty := 0
	highest := 0
	smoothCount, smoothTotal := 0, 0
	// A line stays in its slice while every step agrees with the direction
	leftToRight := lo.Times(size, func(int) bool { return true })
	rightToLeft := lo.Times(size, func(int) bool { return true })
	topToBottom := lo.Times(size, func(int) bool { return true })
	bottomToTop := lo.Times(size, func(int) bool { return true })

	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			current := b.Get(Cell{Row: i, Col: j})
			if current > highest {
				highest = current
			}
			if current == 0 {
				empty++
			}

			if j < last {
				right := b.Get(Cell{Row: i, Col: j + 1})
				if current > right {
					leftToRight[i] = false
				}
				if current < right {
					rightToLeft[i] = false
				}
				if current != 0 {
					smoothTotal++
					if right == current {
						smoothCount++
					}
				}
			}

			if i < last {
				below := b.Get(Cell{Row: i + 1, Col: j})
				if current > below {
					topToBottom[j] = false
				}
				if current < below {
					bottomToTop[j] = false
				}
				if current != 0 {
					smoothTotal++
					if below == current {
						smoothCount++
					}
				}
			}
		}
	}

	// An empty board has no highest tile; log2(1) keeps H at 0
	if highest < 1 {
		highest = 1
	}

	var c Components
	c.Emptiness = emptiness(empty, size)
	rows := max(lo.Count(leftToRight, true), lo.Count(rightToLeft, true))
	cols := max(lo.Count(topToBottom, true), lo.Count(bottomToTop, true))
	c.Monotonicity = float64(rows+cols) / float64(2*size)
	if smoothTotal != 0 {
		c.Smoothness = float64(smoothCount) / float64(smoothTotal)
	}
	c.Highest = math.Min(1, math.Log2(float64(highest))/math.Log2(TargetTile))
	for _, corner := range []Cell{{0, 0}, {0, last}, {last, 0}, {last, last}} {
		if b.Get(corner) == highest {
			c.Corner = 1
			break
		}
	}
	return c
}

func emptiness(empty, size int) float64 {
	return math.Min(1, float64(empty)/float64(size*size-1))
}
