// Package pathfinder computes unweighted shortest paths over a maze grid.
package pathfinder

import (
	"github.com/beka-birhanu/snowmaze/maze"
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// Graph is the view of a maze the search needs.
type Graph interface {
	InBound(pos maze.CellPosition) bool
	IsPassable(pos maze.CellPosition) bool
}

// Finder binds a Graph so callers can search without passing it every time.
type Finder struct {
	graph Graph
}

// New returns a Finder searching g.
func New(g Graph) *Finder {
	return &Finder{graph: g}
}

// FindPath returns the shortest path from start to goal on the bound graph.
func (f *Finder) FindPath(start, goal maze.CellPosition) []maze.CellPosition {
	return FindPath(f.graph, start, goal)
}

// FindPath runs a breadth-first search from start and returns the cells leading to
// goal, start excluded and goal included. It returns an empty path when start equals
// goal or when goal cannot be reached.
func FindPath(g Graph, start, goal maze.CellPosition) []maze.CellPosition {
	if start == goal {
		return nil
	}

	prev, found := search(g, start, goal)
	if !found {
		return nil
	}

	var path []maze.CellPosition
	for current := goal; current != start; current = prev[current] {
		path = append(path, current)
	}
	reverse(path)
	return path
}

// Distance returns the number of steps between start and goal and whether goal is reachable.
func Distance(g Graph, start, goal maze.CellPosition) (int, bool) {
	if start == goal {
		return 0, true
	}
	prev, found := search(g, start, goal)
	if !found {
		return 0, false
	}

	steps := 0
	for current := goal; current != start; current = prev[current] {
		steps++
	}
	return steps, true
}

// search expands cells in maze.SearchOrder until goal is dequeued and returns the
// predecessor of every discovered cell.
func search(g Graph, start, goal maze.CellPosition) (map[maze.CellPosition]maze.CellPosition, bool) {
	prev := make(map[maze.CellPosition]maze.CellPosition)
	visited := mapset.New[maze.CellPosition]()
	frontier := queue.New[maze.CellPosition]()

	visited.Put(start)
	frontier.Enqueue(start)

	for !frontier.Empty() {
		current := frontier.Dequeue()
		if current == goal {
			return prev, true
		}

		for _, d := range maze.SearchOrder {
			next := current.Step(d)
			if visited.Has(next) || !g.InBound(next) || !g.IsPassable(next) {
				continue
			}
			visited.Put(next)
			prev[next] = current
			frontier.Enqueue(next)
		}
	}

	return prev, false
}

func reverse(path []maze.CellPosition) {
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
}
