/*
Package maze provides the grid a chase takes place on and the generator that carves it.

A Grid is a rectangle of Wall, Open and Exit cells surrounded by a solid wall border.
Generated grids always have exactly one exit and every walkable cell is reachable from
the start cell. After generation the only permitted mutation is OpenWall, which digs a
single interior wall cell.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

var (
	ErrOutOfBounds       = errors.New("cell position out of bounds")
	ErrInvalidDimension  = errors.New("invalid maze dimensions")
	ErrBorderNotWall     = errors.New("border cell is not a wall")
	ErrExitCount         = errors.New("maze must have exactly one exit")
	ErrUnreachableCell   = errors.New("walkable cell unreachable from start")
	ErrStartNotPassable  = errors.New("start cell is not passable")
	ErrExitNotReachable  = errors.New("exit unreachable from start")
	ErrInvalidExitOffset = errors.New("invalid exit offset")
)

// Grid is a rectangular maze of classified cells.
type Grid struct {
	width  int
	height int
	cells  [][]CellState
	start  CellPosition
	exit   CellPosition
}

// NewGrid returns a grid of the given size filled with walls.
// The start defaults to (1,1); the exit stays unset until one is marked.
func NewGrid(width, height int) (*Grid, error) {
	if min(width, height) < 3 || max(width, height) > maxDimension {
		return nil, ErrInvalidDimension
	}

	cells := make([][]CellState, height)
	for row := range cells {
		cells[row] = make([]CellState, width)
	}

	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
		start:  CellPosition{Row: 1, Col: 1},
		exit:   CellPosition{Row: -1, Col: -1},
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Start returns the cell generation started carving from.
func (g *Grid) Start() CellPosition {
	return g.start
}

// Exit returns the exit cell.
func (g *Grid) Exit() CellPosition {
	return g.exit
}

// InBound reports whether pos lies inside the grid.
func (g *Grid) InBound(pos CellPosition) bool {
	return pos.Row >= 0 && pos.Row < g.height && pos.Col >= 0 && pos.Col < g.width
}

// IsBorder reports whether pos is on the outer ring of the grid.
func (g *Grid) IsBorder(pos CellPosition) bool {
	return g.InBound(pos) && (pos.Row == 0 || pos.Col == 0 || pos.Row == g.height-1 || pos.Col == g.width-1)
}

// State returns the classification of a cell. It panics if pos is out of bounds.
func (g *Grid) State(pos CellPosition) CellState {
	g.mustInBound(pos)
	return g.cells[pos.Row][pos.Col]
}

// IsPassable reports whether an entity may stand on pos (Open or Exit).
func (g *Grid) IsPassable(pos CellPosition) bool {
	return g.State(pos) != Wall
}

// IsExit reports whether pos is the exit.
func (g *Grid) IsExit(pos CellPosition) bool {
	return g.State(pos) == Exit
}

// OpenWall converts a wall cell into an open cell and reports whether it did.
// Non-wall cells and border cells are left untouched.
func (g *Grid) OpenWall(pos CellPosition) bool {
	if g.State(pos) != Wall || g.IsBorder(pos) {
		return false
	}
	g.cells[pos.Row][pos.Col] = Open
	return true
}

// Neighbors returns the passable cells adjacent to pos in SearchOrder.
func (g *Grid) Neighbors(pos CellPosition) []CellPosition {
	result := make([]CellPosition, 0, len(SearchOrder))
	for _, d := range SearchOrder {
		next := pos.Step(d)
		if g.InBound(next) && g.IsPassable(next) {
			result = append(result, next)
		}
	}
	return result
}

// Reachable returns every passable cell connected to from, including from itself.
func (g *Grid) Reachable(from CellPosition) mapset.Set[CellPosition] {
	visited := mapset.New[CellPosition]()
	if !g.InBound(from) || !g.IsPassable(from) {
		return visited
	}

	visited.Put(from)
	frontier := queue.New[CellPosition]()
	frontier.Enqueue(from)
	for !frontier.Empty() {
		for _, n := range g.Neighbors(frontier.Dequeue()) {
			if !visited.Has(n) {
				visited.Put(n)
				frontier.Enqueue(n)
			}
		}
	}
	return visited
}

// Validate checks the structural invariants of a finished maze: solid border,
// a single exit, and full connectivity of walkable cells from the start.
func (g *Grid) Validate() error {
	exits := 0
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			pos := CellPosition{Row: row, Col: col}
			if g.IsBorder(pos) && g.cells[row][col] != Wall {
				return fmt.Errorf("%w: %v", ErrBorderNotWall, pos)
			}
			if g.cells[row][col] == Exit {
				exits++
			}
		}
	}
	if exits != 1 {
		return fmt.Errorf("%w: found %d", ErrExitCount, exits)
	}

	if !g.IsPassable(g.start) {
		return ErrStartNotPassable
	}

	reachable := g.Reachable(g.start)
	if !reachable.Has(g.exit) {
		return ErrExitNotReachable
	}
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			pos := CellPosition{Row: row, Col: col}
			if g.cells[row][col] != Wall && !reachable.Has(pos) {
				return fmt.Errorf("%w: %v", ErrUnreachableCell, pos)
			}
		}
	}
	return nil
}

// Rows returns a copy of the grid contents, row by row.
func (g *Grid) Rows() [][]CellState {
	rows := make([][]CellState, g.height)
	for i := range g.cells {
		rows[i] = append([]CellState(nil), g.cells[i]...)
	}
	return rows
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{
		width:  g.width,
		height: g.height,
		cells:  g.Rows(),
		start:  g.start,
		exit:   g.exit,
	}
}

// String provides a textual representation of the maze.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for _, row := range g.cells {
		for _, cell := range row {
			b.WriteRune(cell.Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// set writes a cell during generation.
func (g *Grid) set(pos CellPosition, state CellState) {
	g.mustInBound(pos)
	g.cells[pos.Row][pos.Col] = state
}

// markExit moves the single exit to pos.
func (g *Grid) markExit(pos CellPosition) {
	if g.InBound(g.exit) && g.cells[g.exit.Row][g.exit.Col] == Exit {
		g.cells[g.exit.Row][g.exit.Col] = Open
	}
	g.set(pos, Exit)
	g.exit = pos
}

func (g *Grid) mustInBound(pos CellPosition) {
	if !g.InBound(pos) {
		panic(fmt.Errorf("%w: %v not in %dx%d grid", ErrOutOfBounds, pos, g.width, g.height))
	}
}
