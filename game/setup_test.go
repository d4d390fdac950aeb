package game

import (
	"testing"

	"github.com/beka-birhanu/snowmaze/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	a, err := ParseAction(" PickUp ")
	require.NoError(t, err)
	assert.Equal(t, PickUp, a)

	a, err = ParseAction("dig")
	require.NoError(t, err)
	assert.Equal(t, Dig, a)

	_, err = ParseAction("jump")
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestCornerStart(t *testing.T) {
	t.Run("Exit in the corner is skipped", func(t *testing.T) {
		g, err := maze.FromStrings(corridor...)
		require.NoError(t, err)
		pos, err := CornerStart(g)
		require.NoError(t, err)
		assert.Equal(t, maze.CellPosition{Row: 1, Col: 6}, pos)
	})

	t.Run("Only the start is open", func(t *testing.T) {
		g, err := maze.FromStrings(
			"#####",
			"#SE##",
			"#####",
		)
		require.NoError(t, err)
		_, err = CornerStart(g)
		assert.ErrorIs(t, err, ErrNoPursuerCell)
	})
}

func TestNewGame(t *testing.T) {
	setup := Setup{
		Maze: maze.Config{
			Width:      39,
			Height:     19,
			Seed:       3,
			LoopRatio:  maze.DefaultLoopRatio,
			ExitOffset: maze.DefaultExitOffset,
		},
		HeroDelay:    10,
		PursuerDelay: 20,
		IcePick:      true,
	}

	sim, err := NewGame(setup)
	require.NoError(t, err)
	g := sim.Grid()

	assert.Equal(t, g.Start(), sim.HeroPosition())
	assert.True(t, g.IsPassable(sim.PursuerPosition()))
	assert.False(t, g.IsExit(sim.PursuerPosition()))
	assert.NotEqual(t, sim.HeroPosition(), sim.PursuerPosition())
	assert.Equal(t, Running, sim.State())

	pick, onFloor := sim.IcePick().Position()
	assert.True(t, onFloor)
	assert.Equal(t, maze.Open, g.State(pick))

	again, err := NewGame(setup)
	require.NoError(t, err)
	assert.Equal(t, g.String(), again.Grid().String())
	assert.Equal(t, sim.PursuerPosition(), again.PursuerPosition())

	setup.Maze.Width = 2
	_, err = NewGame(setup)
	assert.ErrorIs(t, err, maze.ErrInvalidDimension)
}

func TestSnapshot(t *testing.T) {
	g, err := maze.FromStrings(corridor...)
	require.NoError(t, err)
	sim, err := New(g, g.Start(), maze.CellPosition{Row: 1, Col: 5}, 1, 100)
	require.NoError(t, err)

	snap := sim.Snapshot()
	assert.Equal(t, corridorRendered(), snap.Rows)
	assert.Equal(t, g.Start(), snap.Hero)
	assert.Equal(t, 4, snap.Distance)
	assert.Nil(t, snap.IcePick)
	assert.False(t, snap.Carrying)
	assert.Equal(t, Running, snap.State)

	sim.icePick = &IcePick{pos: maze.CellPosition{Row: 1, Col: 2}, onFloor: true}
	sim.Tick(maze.East)
	applied, err := sim.Apply(PickUp)
	require.NoError(t, err)
	assert.True(t, applied)

	snap = sim.Snapshot()
	assert.Nil(t, snap.IcePick)
	assert.True(t, snap.Carrying)
	assert.Equal(t, 1, snap.Ticks)
	assert.Equal(t, 3, snap.Distance)

	// Corridor walls above and below are all border, so digging finds nothing.
	applied, err = sim.Apply(Dig)
	require.NoError(t, err)
	assert.False(t, applied)

	_, err = sim.Apply(Action("jump"))
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func corridorRendered() []string {
	return []string{
		"#########",
		"#      E#",
		"#########",
	}
}
