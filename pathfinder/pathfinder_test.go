package pathfinder

import (
	"fmt"
	"testing"

	"github.com/beka-birhanu/snowmaze/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bfsDistances computes distances from start with a plain slice-backed search over the
// grid rows, independent of the package under test.
func bfsDistances(g *maze.Grid, start maze.CellPosition) map[maze.CellPosition]int {
	rows := g.Rows()
	dist := map[maze.CellPosition]int{start: 0}
	queue := []maze.CellPosition{start}
	deltas := [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range deltas {
			n := maze.CellPosition{Row: cur.Row + d[0], Col: cur.Col + d[1]}
			if n.Row < 0 || n.Row >= len(rows) || n.Col < 0 || n.Col >= len(rows[0]) {
				continue
			}
			if rows[n.Row][n.Col] == maze.Wall {
				continue
			}
			if _, seen := dist[n]; !seen {
				dist[n] = dist[cur] + 1
				queue = append(queue, n)
			}
		}
	}
	return dist
}

func passableCells(g *maze.Grid) []maze.CellPosition {
	var cells []maze.CellPosition
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			pos := maze.CellPosition{Row: row, Col: col}
			if g.IsPassable(pos) {
				cells = append(cells, pos)
			}
		}
	}
	return cells
}

func walk(t *testing.T, g *maze.Grid, from maze.CellPosition, path []maze.CellPosition) maze.CellPosition {
	t.Helper()
	current := from
	for _, next := range path {
		dr, dc := next.Row-current.Row, next.Col-current.Col
		require.Equal(t, 1, abs(dr)+abs(dc), "non adjacent step %v -> %v", current, next)
		require.True(t, g.IsPassable(next), "step onto wall %v", next)
		current = next
	}
	return current
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestFindPathRoundTrip(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		t.Run(fmt.Sprintf("seed %d", seed), func(t *testing.T) {
			g, err := maze.Generate(15, 11, seed)
			require.NoError(t, err)

			cells := passableCells(g)
			for i, a := range cells {
				if i%3 != 0 {
					continue
				}
				want := bfsDistances(g, a)
				for j, b := range cells {
					if j%5 != 0 {
						continue
					}
					path := FindPath(g, a, b)
					assert.Equal(t, b, walk(t, g, a, path))
					assert.Len(t, path, want[b], "%v -> %v", a, b)

					d, ok := Distance(g, a, b)
					assert.True(t, ok)
					assert.Equal(t, want[b], d)
				}
			}
		})
	}
}

func TestFindPathEdgeCases(t *testing.T) {
	g, err := maze.FromStrings(
		"#######",
		"#S  #E#",
		"# # # #",
		"#   # #",
		"#######",
	)
	require.NoError(t, err)

	t.Run("Same cell yields empty path", func(t *testing.T) {
		assert.Empty(t, FindPath(g, g.Start(), g.Start()))
		d, ok := Distance(g, g.Start(), g.Start())
		assert.True(t, ok)
		assert.Zero(t, d)
	})

	t.Run("Unreachable goal yields empty path", func(t *testing.T) {
		assert.Empty(t, FindPath(g, g.Start(), g.Exit()))
		_, ok := Distance(g, g.Start(), g.Exit())
		assert.False(t, ok)
	})

	t.Run("Wall goal yields empty path", func(t *testing.T) {
		assert.Empty(t, FindPath(g, g.Start(), maze.CellPosition{Row: 2, Col: 2}))
	})

	t.Run("Out of bounds goal yields empty path", func(t *testing.T) {
		assert.Empty(t, FindPath(g, g.Start(), maze.CellPosition{Row: 40, Col: 40}))
	})

	t.Run("Ties break by search order", func(t *testing.T) {
		// Two equally short routes around the pillar; +col is expanded first.
		path := New(g).FindPath(maze.CellPosition{Row: 1, Col: 1}, maze.CellPosition{Row: 3, Col: 3})
		assert.Equal(t, []maze.CellPosition{
			{Row: 1, Col: 2}, {Row: 1, Col: 3}, {Row: 2, Col: 3}, {Row: 3, Col: 3},
		}, path)
	})

	t.Run("Exit cells are walkable", func(t *testing.T) {
		open, err := maze.FromStrings(
			"#####",
			"#S E#",
			"#####",
		)
		require.NoError(t, err)
		assert.Equal(t, []maze.CellPosition{{Row: 1, Col: 2}, {Row: 1, Col: 3}}, FindPath(open, open.Start(), open.Exit()))
	})
}
