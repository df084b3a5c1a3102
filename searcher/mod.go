package searcher

import (
	"time"

	"g2048/game"
)

// Agent picks the next move for a board. It is called once per turn.
type Agent interface {
	FindNextMove(board game.Board) game.Move
}

// deadline is fixed at the start of a decision and read by every node of its
// search tree.
type deadline struct {
	at  time.Time
	now func() time.Time
}

func (d deadline) passed() bool {
	return d.now().After(d.at)
}
