package game

import "fmt"

// Move is a slide direction. The zero value is Up.
type Move int

const (
	Up Move = iota
	Down
	Left
	Right
)

// NoMove is returned by a search that found nothing to play.
const NoMove Move = -1

// Moves in enumeration order.
var Directions = [...]Move{Up, Down, Left, Right}

func (m Move) String() string {
	switch m {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case NoMove:
		return "none"
	default:
		return fmt.Sprintf("move(%d)", int(m))
	}
}
