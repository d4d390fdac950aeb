package game

import "github.com/beka-birhanu/snowmaze/maze"

// Pathfinder finds a shortest path between two cells, start excluded and goal included.
// An empty path means there is nothing to do.
type Pathfinder interface {
	FindPath(start, goal maze.CellPosition) []maze.CellPosition
}

// Pursuer chases the hero, recomputing its route every time its scheduler fires.
type Pursuer struct {
	pos       maze.CellPosition
	scheduler *MovementScheduler
	finder    Pathfinder
}

// NewPursuer places a pursuer at pos.
func NewPursuer(pos maze.CellPosition, scheduler *MovementScheduler, finder Pathfinder) *Pursuer {
	return &Pursuer{pos: pos, scheduler: scheduler, finder: finder}
}

// Position returns the pursuer's current cell.
func (p *Pursuer) Position() maze.CellPosition {
	return p.pos
}

// Step advances the pursuer's throttle and, when it fires, moves one cell along a
// fresh shortest path toward target. It reports whether the pursuer moved.
func (p *Pursuer) Step(target maze.CellPosition) bool {
	if !p.scheduler.Tick() {
		return false
	}

	path := p.finder.FindPath(p.pos, target)
	if len(path) == 0 {
		return false
	}
	p.pos = path[0]
	return true
}
