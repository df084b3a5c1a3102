package game

import (
	"fmt"
	"strings"
)

const DefaultSize = 4

// Grid is the standard square 2048 board, stored row-major.
type Grid struct {
	size  int
	cells []int
}

// NewGrid returns an empty size x size grid.
func NewGrid(size int) *Grid {
	if size < 2 {
		panic(fmt.Sprintf("grid size must be at least 2, got %d", size))
	}
	return &Grid{size: size, cells: make([]int, size*size)}
}

// FromRows builds a grid from a square matrix of tile values. The rows are copied.
func FromRows(rows [][]int) *Grid {
	g := NewGrid(len(rows))
	for r, row := range rows {
		if len(row) != g.size {
			panic(fmt.Sprintf("row %d has %d cells, want %d", r, len(row), g.size))
		}
		copy(g.cells[r*g.size:], row)
	}
	return g
}

// Rows returns a copy of the tile values, one slice per row.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.size)
	for r := range rows {
		rows[r] = append([]int(nil), g.cells[r*g.size:(r+1)*g.size]...)
	}
	return rows
}

func (g *Grid) Size() int {
	return g.size
}

func (g *Grid) Get(cell Cell) int {
	return g.cells[cell.Row*g.size+cell.Col]
}

func (g *Grid) Set(cell Cell, value int) {
	g.cells[cell.Row*g.size+cell.Col] = value
}

func (g *Grid) Clone() Board {
	return g.Copy()
}

// Copy is Clone without the interface conversion.
func (g *Grid) Copy() *Grid {
	return &Grid{size: g.size, cells: append([]int(nil), g.cells...)}
}

// EmptyCells lists empty cells in row-major order.
func (g *Grid) EmptyCells() []Cell {
	var empty []Cell
	for i, v := range g.cells {
		if v == 0 {
			empty = append(empty, Cell{Row: i / g.size, Col: i % g.size})
		}
	}
	return empty
}

// Moves returns the moves that change the grid, in Directions order.
func (g *Grid) Moves() []Outcome {
	outcomes := make([]Outcome, 0, len(Directions))
	for _, move := range Directions {
		next := g.Copy()
		if moved, _ := next.Slide(move); moved {
			outcomes = append(outcomes, Outcome{Move: move, Board: next})
		}
	}
	return outcomes
}

// CanMove reports whether any move changes the grid.
func (g *Grid) CanMove() bool {
	for _, move := range Directions {
		if moved, _ := g.Copy().Slide(move); moved {
			return true
		}
	}
	return false
}

// Slide applies move in place. Each tile merges at most once per move; gained
// is the sum of the merged tile values.
func (g *Grid) Slide(move Move) (moved bool, gained int) {
	values := make([]int, 0, g.size)
	merged := make([]int, 0, g.size)
	for i := 0; i < g.size; i++ {
		line := g.line(i, move)

		values = values[:0]
		for _, cell := range line {
			if v := g.Get(cell); v != 0 {
				values = append(values, v)
			}
		}

		merged = merged[:0]
		for j := 0; j < len(values); j++ {
			if j+1 < len(values) && values[j] == values[j+1] {
				merged = append(merged, 2*values[j])
				gained += 2 * values[j]
				j++
			} else {
				merged = append(merged, values[j])
			}
		}

		for j, cell := range line {
			v := 0
			if j < len(merged) {
				v = merged[j]
			}
			if g.Get(cell) != v {
				g.Set(cell, v)
				moved = true
			}
		}
	}
	return moved, gained
}

// line returns the i-th column (Up, Down) or row (Left, Right), starting at
// the edge the tiles slide toward.
func (g *Grid) line(i int, move Move) []Cell {
	last := g.size - 1
	cells := make([]Cell, g.size)
	for j := range cells {
		switch move {
		case Up:
			cells[j] = Cell{Row: j, Col: i}
		case Down:
			cells[j] = Cell{Row: last - j, Col: i}
		case Left:
			cells[j] = Cell{Row: i, Col: j}
		case Right:
			cells[j] = Cell{Row: i, Col: last - j}
		default:
			panic(fmt.Sprintf("unexpected move %v", move))
		}
	}
	return cells
}

func (g *Grid) MaxTile() int {
	highest := 0
	for _, v := range g.cells {
		if v > highest {
			highest = v
		}
	}
	return highest
}

func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			fmt.Fprintf(&sb, "%6d", g.Get(Cell{Row: r, Col: c}))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
