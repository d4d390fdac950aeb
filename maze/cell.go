package maze

import "fmt"

// CellState classifies a single cell of the maze grid.
type CellState uint8

const (
	Wall CellState = iota // Wall blocks movement.
	Open                  // Open is a walkable floor cell.
	Exit                  // Exit is walkable and ends the game when the hero reaches it.
)

// String returns the lowercase name of the state.
func (s CellState) String() string {
	switch s {
	case Wall:
		return "wall"
	case Open:
		return "open"
	case Exit:
		return "exit"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(s))
	}
}

// Rune returns the character used by the ASCII rendering of a grid.
func (s CellState) Rune() rune {
	switch s {
	case Open:
		return ' '
	case Exit:
		return 'E'
	default:
		return '#'
	}
}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int // Row index of the cell
	Col int // Column index of the cell
}

// Step returns the position one cell away in the given direction.
func (p CellPosition) Step(d Direction) CellPosition {
	delta := d.Delta()
	return CellPosition{Row: p.Row + delta.Row, Col: p.Col + delta.Col}
}

func (p CellPosition) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
