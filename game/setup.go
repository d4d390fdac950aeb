package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beka-birhanu/snowmaze/maze"
	"github.com/beka-birhanu/snowmaze/pathfinder"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrNoPursuerCell = errors.New("no open cell for the pursuer")
)

// Action is an out of tick command issued by the player.
type Action string

const (
	PickUp Action = "pickup"
	Dig    Action = "dig"
)

// ParseAction maps a command name to an Action.
func ParseAction(s string) (Action, error) {
	switch a := Action(strings.ToLower(strings.TrimSpace(s))); a {
	case PickUp, Dig:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}
}

// Setup describes a complete game: the maze to generate and the entity tuning.
type Setup struct {
	Maze         maze.Config
	HeroDelay    int
	PursuerDelay int
	IcePick      bool
}

// NewGame generates the maze described by setup and places the hero on its start cell
// and the pursuer in the opposite corner.
func NewGame(setup Setup) (*Simulation, error) {
	grid, err := maze.GenerateWithConfig(setup.Maze)
	if err != nil {
		return nil, err
	}

	pursuerStart, err := CornerStart(grid)
	if err != nil {
		return nil, err
	}

	var opts []Option
	if setup.IcePick {
		opts = append(opts, WithIcePick(setup.Maze.Seed+1))
	}
	return New(grid, grid.Start(), pursuerStart, setup.HeroDelay, setup.PursuerDelay, opts...)
}

// CornerStart returns the open cell closest to the interior corner opposite the start.
// The start and the exit are never chosen. Ties go to the cell scanned first from the
// bottom right.
func CornerStart(grid *maze.Grid) (maze.CellPosition, error) {
	corner := maze.CellPosition{Row: grid.Height() - 2, Col: grid.Width() - 2}

	best, bestDist := maze.CellPosition{}, -1
	for row := grid.Height() - 2; row > 0; row-- {
		for col := grid.Width() - 2; col > 0; col-- {
			pos := maze.CellPosition{Row: row, Col: col}
			if grid.State(pos) != maze.Open || pos == grid.Start() {
				continue
			}
			d := abs(row-corner.Row) + abs(col-corner.Col)
			if bestDist < 0 || d < bestDist {
				best, bestDist = pos, d
			}
		}
	}
	if bestDist < 0 {
		return maze.CellPosition{}, ErrNoPursuerCell
	}
	return best, nil
}

// Apply runs an out of tick action and reports whether it had an effect.
func (s *Simulation) Apply(a Action) (bool, error) {
	switch a {
	case PickUp:
		return s.PickUpIcePick(), nil
	case Dig:
		_, ok := s.UseIcePick()
		return ok, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownAction, string(a))
	}
}

// Snapshot is a copy of everything a client needs to draw the game.
type Snapshot struct {
	Rows     []string
	Hero     maze.CellPosition
	Pursuer  maze.CellPosition
	IcePick  *maze.CellPosition // nil unless the pick lies on the floor
	Carrying bool
	State    State
	Ticks    int
	Distance int // pursuer to hero along the maze, -1 if unreachable
}

// Snapshot captures the current state.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Rows:     strings.Split(strings.TrimRight(s.grid.String(), "\n"), "\n"),
		Hero:     s.hero.Position(),
		Pursuer:  s.pursuer.Position(),
		State:    s.state,
		Ticks:    s.ticks,
		Distance: -1,
	}
	if s.icePick != nil {
		if pos, onFloor := s.icePick.Position(); onFloor {
			snap.IcePick = &pos
		}
		snap.Carrying = s.icePick.Carried()
	}
	if d, ok := pathfinder.Distance(s.grid, snap.Pursuer, snap.Hero); ok {
		snap.Distance = d
	}
	return snap
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
