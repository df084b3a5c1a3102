package game

// Board is the view of a 2048 grid the searcher works against. Implementations
// own their cells; callers that want to change a board Clone it first.
type Board interface {
	Size() int
	// Moves returns every legal move along with the board it produces
	Moves() []Outcome
	EmptyCells() []Cell
	Get(cell Cell) int
	Set(cell Cell, value int)
	Clone() Board
}

// Cell addresses a square by row and column, both in [0, size).
type Cell struct {
	Row int
	Col int
}

// Outcome pairs a legal move with the board after sliding (no new tile yet).
type Outcome struct {
	Move  Move
	Board Board
}

// Evaluates a board to a score between 0 and 1, higher being better for the
// player to move.
type Evaluate func(Board) float64
