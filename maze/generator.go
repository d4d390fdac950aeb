package maze

import (
	"fmt"
	"math/rand"
)

const (
	// DefaultLoopRatio is the share of the grid area sampled for extra openings.
	DefaultLoopRatio = 0.1
	// DefaultExitOffset places the exit one cell in from the far corner.
	DefaultExitOffset = 1

	minDimension = 5
	maxDimension = 101
)

// Config controls maze generation.
type Config struct {
	Width  int   // Requested number of columns; even values are rounded down to odd.
	Height int   // Requested number of rows; even values are rounded down to odd.
	Seed   int64 // Seed of the generator's random source.

	// LoopRatio is the fraction of width*height sampled as candidate extra openings.
	// 0 produces a perfect maze (a spanning tree with no cycles).
	LoopRatio float64

	// ExitOffset is the distance of the exit from the bottom-right corner on both axes.
	// It must be odd so the exit lands on a carved room.
	ExitOffset int
}

// edge is a wall cell separating two room cells.
type edge struct {
	wall CellPosition
	room CellPosition
}

// Generate creates a maze of the given size with the default loop ratio and exit offset.
// The same arguments always produce the same grid.
func Generate(width, height int, seed int64) (*Grid, error) {
	return GenerateWithConfig(Config{
		Width:      width,
		Height:     height,
		Seed:       seed,
		LoopRatio:  DefaultLoopRatio,
		ExitOffset: DefaultExitOffset,
	})
}

// GenerateWithConfig creates a maze with a randomized spanning-tree carve over the
// odd-coordinate room cells, then opens extra walls to create loops, re-walls the
// border and marks the exit.
func GenerateWithConfig(cfg Config) (*Grid, error) {
	width, height := ensureOdd(cfg.Width), ensureOdd(cfg.Height)
	if min(width, height) < minDimension || max(width, height) > maxDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, cfg.Width, cfg.Height)
	}
	if cfg.LoopRatio < 0 || cfg.LoopRatio > 1 {
		return nil, fmt.Errorf("loop ratio %v outside [0,1]", cfg.LoopRatio)
	}
	if cfg.ExitOffset < 1 || cfg.ExitOffset%2 == 0 || cfg.ExitOffset > min(width, height)-2 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidExitOffset, cfg.ExitOffset)
	}

	g, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	g.carve(rng)
	g.openLoops(rng, int(float64(width*height)*cfg.LoopRatio))
	g.sealBorder()
	g.markExit(CellPosition{Row: height - 1 - cfg.ExitOffset, Col: width - 1 - cfg.ExitOffset})

	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("generated maze is invalid: %w", err)
	}
	return g, nil
}

// carve runs the frontier-based spanning tree over room cells, starting from g.start.
func (g *Grid) carve(rng *rand.Rand) {
	g.set(g.start, Open)
	frontier := g.roomEdges(g.start, nil)

	for len(frontier) > 0 {
		i := rng.Intn(len(frontier))
		e := frontier[i]
		frontier[i] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		if g.cells[e.room.Row][e.room.Col] != Wall {
			continue
		}
		g.set(e.wall, Open)
		g.set(e.room, Open)
		frontier = g.roomEdges(e.room, frontier)
	}
}

// roomEdges appends the edges from room to every neighboring room not yet carved.
func (g *Grid) roomEdges(room CellPosition, frontier []edge) []edge {
	for _, d := range SearchOrder {
		delta := d.Delta()
		next := CellPosition{Row: room.Row + 2*delta.Row, Col: room.Col + 2*delta.Col}
		if !g.isInterior(next) || g.cells[next.Row][next.Col] != Wall {
			continue
		}
		frontier = append(frontier, edge{wall: room.Step(d), room: next})
	}
	return frontier
}

// openLoops samples interior cells and opens walls that touch a walkable cell.
// A cell is only opened next to an existing passage so no isolated pockets appear.
func (g *Grid) openLoops(rng *rand.Rand, samples int) {
	for i := 0; i < samples; i++ {
		pos := CellPosition{
			Row: 1 + rng.Intn(g.height-2),
			Col: 1 + rng.Intn(g.width-2),
		}
		if g.cells[pos.Row][pos.Col] == Wall && len(g.Neighbors(pos)) > 0 {
			g.set(pos, Open)
		}
	}
}

// sealBorder forces every border cell back to Wall.
func (g *Grid) sealBorder() {
	for col := 0; col < g.width; col++ {
		g.cells[0][col] = Wall
		g.cells[g.height-1][col] = Wall
	}
	for row := 0; row < g.height; row++ {
		g.cells[row][0] = Wall
		g.cells[row][g.width-1] = Wall
	}
}

func (g *Grid) isInterior(pos CellPosition) bool {
	return pos.Row > 0 && pos.Row < g.height-1 && pos.Col > 0 && pos.Col < g.width-1
}

// ensureOdd rounds n down to the nearest odd number.
func ensureOdd(n int) int {
	if n%2 == 0 {
		return n - 1
	}
	return n
}
