package game

import (
	"math/rand"
	"slices"

	"github.com/beka-birhanu/snowmaze/maze"
)

// digOrder is the order adjacent walls are tried when the ice pick is used.
var digOrder = []maze.Direction{maze.West, maze.East, maze.North, maze.South}

// IcePick is a single use item that lets the hero dig through one wall.
type IcePick struct {
	pos     maze.CellPosition
	onFloor bool
	carried bool
}

// Position returns where the pick lies and whether it is still on the floor.
func (p *IcePick) Position() (maze.CellPosition, bool) {
	return p.pos, p.onFloor
}

// Carried reports whether the hero holds the pick.
func (p *IcePick) Carried() bool {
	return p.carried
}

// placeIcePick drops a pick on a random open cell that is neither the exit nor one of avoid.
func placeIcePick(grid *maze.Grid, seed int64, avoid ...maze.CellPosition) *IcePick {
	var candidates []maze.CellPosition
	for row := 1; row < grid.Height()-1; row++ {
		for col := 1; col < grid.Width()-1; col++ {
			pos := maze.CellPosition{Row: row, Col: col}
			if grid.State(pos) != maze.Open || slices.Contains(avoid, pos) {
				continue
			}
			candidates = append(candidates, pos)
		}
	}
	if len(candidates) == 0 {
		return &IcePick{}
	}

	rng := rand.New(rand.NewSource(seed))
	return &IcePick{pos: candidates[rng.Intn(len(candidates))], onFloor: true}
}

// pickUp moves the pick into the hero's hands when the hero stands on it.
func (p *IcePick) pickUp(hero maze.CellPosition) bool {
	if !p.onFloor || p.pos != hero {
		return false
	}
	p.onFloor = false
	p.carried = true
	return true
}

// dig opens the first wall next to hero and consumes the pick.
func (p *IcePick) dig(grid *maze.Grid, hero maze.CellPosition) (maze.CellPosition, bool) {
	if !p.carried {
		return maze.CellPosition{}, false
	}
	for _, d := range digOrder {
		target := hero.Step(d)
		if grid.InBound(target) && grid.OpenWall(target) {
			p.carried = false
			return target, true
		}
	}
	return maze.CellPosition{}, false
}
