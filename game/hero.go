package game

import "github.com/beka-birhanu/snowmaze/maze"

// Hero is the player controlled entity.
type Hero struct {
	pos       maze.CellPosition
	grid      *maze.Grid
	scheduler *MovementScheduler
}

// NewHero places a hero on grid at pos, throttled by scheduler.
func NewHero(grid *maze.Grid, pos maze.CellPosition, scheduler *MovementScheduler) *Hero {
	return &Hero{pos: pos, grid: grid, scheduler: scheduler}
}

// Position returns the hero's current cell.
func (h *Hero) Position() maze.CellPosition {
	return h.pos
}

// Scheduler returns the hero's movement throttle.
func (h *Hero) Scheduler() *MovementScheduler {
	return h.scheduler
}

// TryMove moves the hero one cell in direction d if that cell is passable.
// A blocked move leaves the hero in place and returns false.
func (h *Hero) TryMove(d maze.Direction) bool {
	if _, ok := maze.Directions[d]; !ok {
		return false
	}
	next := h.pos.Step(d)
	if !h.grid.InBound(next) || !h.grid.IsPassable(next) {
		return false
	}
	h.pos = next
	return true
}
