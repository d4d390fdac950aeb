package maze

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateInvariants(t *testing.T) {
	sizes := []struct{ width, height int }{
		{5, 5}, {7, 7}, {9, 5}, {15, 11}, {39, 19}, {101, 101},
	}

	for _, size := range sizes {
		for seed := int64(0); seed < 25; seed++ {
			t.Run(fmt.Sprintf("%dx%d seed %d", size.width, size.height, seed), func(t *testing.T) {
				g, err := Generate(size.width, size.height, seed)
				require.NoError(t, err)
				require.NoError(t, g.Validate())

				exits := 0
				for row := 0; row < g.Height(); row++ {
					for col := 0; col < g.Width(); col++ {
						pos := CellPosition{Row: row, Col: col}
						if g.IsBorder(pos) {
							assert.Equal(t, Wall, g.State(pos), "border %v", pos)
						}
						if g.IsExit(pos) {
							exits++
						}
					}
				}
				assert.Equal(t, 1, exits)

				reachable := g.Reachable(g.Start())
				assert.True(t, reachable.Has(g.Exit()))
				for row := 0; row < g.Height(); row++ {
					for col := 0; col < g.Width(); col++ {
						pos := CellPosition{Row: row, Col: col}
						if g.IsPassable(pos) {
							assert.True(t, reachable.Has(pos), "unreachable %v", pos)
						}
					}
				}
			})
		}
	}
}

func TestGenerateDeterminism(t *testing.T) {
	a, err := Generate(39, 19, 42)
	require.NoError(t, err)
	b, err := Generate(39, 19, 42)
	require.NoError(t, err)

	assert.Equal(t, a.Rows(), b.Rows())
	assert.Equal(t, a.Exit(), b.Exit())
	assert.Equal(t, a.String(), b.String())

	c, err := Generate(39, 19, 43)
	require.NoError(t, err)
	assert.NotEqual(t, a.String(), c.String())
}

func TestGenerateDimensions(t *testing.T) {
	t.Run("Even sizes round down to odd", func(t *testing.T) {
		g, err := Generate(8, 10, 1)
		require.NoError(t, err)
		assert.Equal(t, 7, g.Width())
		assert.Equal(t, 9, g.Height())
		assert.Equal(t, CellPosition{Row: 7, Col: 5}, g.Exit())
	})

	t.Run("Exit sits one cell in from the far corner", func(t *testing.T) {
		g, err := Generate(7, 7, 42)
		require.NoError(t, err)
		assert.Equal(t, CellPosition{Row: 5, Col: 5}, g.Exit())
		assert.Equal(t, CellPosition{Row: 1, Col: 1}, g.Start())
	})

	for _, size := range []struct{ width, height int }{{3, 9}, {9, 4}, {0, 0}, {-5, 7}, {103, 9}} {
		t.Run(fmt.Sprintf("Reject %dx%d", size.width, size.height), func(t *testing.T) {
			_, err := Generate(size.width, size.height, 1)
			assert.ErrorIs(t, err, ErrInvalidDimension)
		})
	}
}

func TestGenerateWithConfig(t *testing.T) {
	t.Run("Zero loop ratio yields a perfect maze", func(t *testing.T) {
		g, err := GenerateWithConfig(Config{Width: 21, Height: 15, Seed: 7, ExitOffset: 1})
		require.NoError(t, err)

		// A spanning tree over V walkable cells has exactly V-1 adjacencies.
		cells, links := 0, 0
		for row := 0; row < g.Height(); row++ {
			for col := 0; col < g.Width(); col++ {
				pos := CellPosition{Row: row, Col: col}
				if !g.IsPassable(pos) {
					continue
				}
				cells++
				for _, n := range g.Neighbors(pos) {
					if n.Row > pos.Row || n.Col > pos.Col {
						links++
					}
				}
			}
		}
		assert.Equal(t, cells-1, links)
	})

	t.Run("Loops add openings", func(t *testing.T) {
		perfect, err := GenerateWithConfig(Config{Width: 21, Height: 15, Seed: 7, ExitOffset: 1})
		require.NoError(t, err)
		braided, err := GenerateWithConfig(Config{Width: 21, Height: 15, Seed: 7, LoopRatio: 0.5, ExitOffset: 1})
		require.NoError(t, err)
		assert.Greater(t, countPassable(braided), countPassable(perfect))
		assert.NoError(t, braided.Validate())
	})

	t.Run("Custom exit offset", func(t *testing.T) {
		g, err := GenerateWithConfig(Config{Width: 11, Height: 11, Seed: 3, LoopRatio: 0.1, ExitOffset: 3})
		require.NoError(t, err)
		assert.Equal(t, CellPosition{Row: 7, Col: 7}, g.Exit())
		assert.NoError(t, g.Validate())
	})

	for _, offset := range []int{0, 2, 11} {
		t.Run(fmt.Sprintf("Reject exit offset %d", offset), func(t *testing.T) {
			_, err := GenerateWithConfig(Config{Width: 11, Height: 11, ExitOffset: offset})
			assert.ErrorIs(t, err, ErrInvalidExitOffset)
		})
	}

	t.Run("Reject loop ratio", func(t *testing.T) {
		_, err := GenerateWithConfig(Config{Width: 11, Height: 11, LoopRatio: 1.5, ExitOffset: 1})
		assert.Error(t, err)
	})
}

func countPassable(g *Grid) int {
	n := 0
	for _, row := range g.Rows() {
		for _, cell := range row {
			if cell != Wall {
				n++
			}
		}
	}
	return n
}
