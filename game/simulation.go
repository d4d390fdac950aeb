/*
Package game implements the chase: a hero walking a generated maze toward the exit while
a pursuer closes in along shortest paths.

A Simulation is advanced one tick at a time by its caller. Each entity carries its own
MovementScheduler so the hero and the pursuer move at independent cadences. The package
is single threaded; callers that share a Simulation between goroutines must serialize
access themselves.
*/
package game

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/snowmaze/maze"
	"github.com/beka-birhanu/snowmaze/pathfinder"
)

// Game errors.
var (
	ErrInvalidDelay    = errors.New("movement delay must be positive")
	ErrInvalidPosition = errors.New("start position is not a passable cell")
	ErrNilGrid         = errors.New("grid is required")
)

// State is the lifecycle of a Simulation.
type State uint8

const (
	Running      State = iota // Running accepts further ticks.
	HeroCaptured              // HeroCaptured is terminal: the pursuer reached the hero.
	HeroEscaped               // HeroEscaped is terminal: the hero reached the exit.
)

// Terminal reports whether no further transitions can happen.
func (s State) Terminal() bool {
	return s != Running
}

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case HeroCaptured:
		return "captured"
	case HeroEscaped:
		return "escaped"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Option customizes a Simulation.
type Option func(*Simulation)

// WithIcePick drops an ice pick on a random open cell chosen from seed.
func WithIcePick(seed int64) Option {
	return func(s *Simulation) {
		s.icePick = placeIcePick(s.grid, seed, s.hero.Position(), s.pursuer.Position())
	}
}

// WithPathfinder replaces the breadth-first pathfinder used by the pursuer.
func WithPathfinder(p Pathfinder) Option {
	return func(s *Simulation) {
		s.pursuer.finder = p
	}
}

// Simulation owns the grid and both entities and advances them tick by tick.
type Simulation struct {
	grid    *maze.Grid
	hero    *Hero
	pursuer *Pursuer
	icePick *IcePick
	state   State
	ticks   int

	heroTurn bool
}

// New creates a running simulation. Both start cells must be passable.
func New(grid *maze.Grid, heroStart, pursuerStart maze.CellPosition, heroDelay, pursuerDelay int, opts ...Option) (*Simulation, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	for _, pos := range []maze.CellPosition{heroStart, pursuerStart} {
		if !grid.InBound(pos) || !grid.IsPassable(pos) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPosition, pos)
		}
	}

	heroScheduler, err := NewMovementScheduler(heroDelay)
	if err != nil {
		return nil, fmt.Errorf("hero: %w", err)
	}
	pursuerScheduler, err := NewMovementScheduler(pursuerDelay)
	if err != nil {
		return nil, fmt.Errorf("pursuer: %w", err)
	}

	s := &Simulation{
		grid:    grid,
		hero:    NewHero(grid, heroStart, heroScheduler),
		pursuer: NewPursuer(pursuerStart, pursuerScheduler, pathfinder.New(grid)),
		state:   Running,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Tick advances the simulation by one step. The hero moves in direction input when its
// scheduler allows it (maze.NoDirection means no input), then the pursuer acts, then
// capture and escape are evaluated in that order. Ticks after a terminal state are
// ignored and return that state.
func (s *Simulation) Tick(input maze.Direction) State {
	if s.state.Terminal() {
		return s.state
	}

	s.heroTurn = s.hero.Scheduler().Tick()
	if s.heroTurn {
		s.hero.TryMove(input)
	}
	s.pursuer.Step(s.hero.Position())
	s.ticks++

	switch {
	case s.hero.Position() == s.pursuer.Position():
		s.state = HeroCaptured
	case s.grid.IsExit(s.hero.Position()):
		s.state = HeroEscaped
	}
	return s.state
}

// PickUpIcePick takes the ice pick when the hero stands on it. Call between ticks.
func (s *Simulation) PickUpIcePick() bool {
	if s.state.Terminal() || s.icePick == nil {
		return false
	}
	return s.icePick.pickUp(s.hero.Position())
}

// UseIcePick digs through the first wall adjacent to the hero if the pick is carried.
// It returns the opened cell. Call between ticks.
func (s *Simulation) UseIcePick() (maze.CellPosition, bool) {
	if s.state.Terminal() || s.icePick == nil {
		return maze.CellPosition{}, false
	}
	return s.icePick.dig(s.grid, s.hero.Position())
}

// HeroTurn reports whether the hero's scheduler fired on the last tick, so the input
// passed to that tick was consumed.
func (s *Simulation) HeroTurn() bool {
	return s.heroTurn
}

// Grid returns the maze. Callers must treat it as read only.
func (s *Simulation) Grid() *maze.Grid {
	return s.grid
}

// HeroPosition returns the hero's cell.
func (s *Simulation) HeroPosition() maze.CellPosition {
	return s.hero.Position()
}

// PursuerPosition returns the pursuer's cell.
func (s *Simulation) PursuerPosition() maze.CellPosition {
	return s.pursuer.Position()
}

// IcePick returns the ice pick, or nil when the simulation has none.
func (s *Simulation) IcePick() *IcePick {
	return s.icePick
}

// State returns the current lifecycle state.
func (s *Simulation) State() State {
	return s.state
}

// Ticks returns the number of ticks processed while running.
func (s *Simulation) Ticks() int {
	return s.ticks
}
