package main

import (
	"strings"
	"testing"

	"github.com/beka-birhanu/snowmaze/config"
	"github.com/beka-birhanu/snowmaze/game"
	"github.com/beka-birhanu/snowmaze/maze"
	"github.com/gdamore/tcell/v2"
	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func char(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestKeyCommand(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		cmd  command
		dir  maze.Direction
	}{
		{"Arrow up", key(tcell.KeyUp), cmdMove, maze.North},
		{"Arrow left", key(tcell.KeyLeft), cmdMove, maze.West},
		{"W", char('w'), cmdMove, maze.North},
		{"S", char('s'), cmdMove, maze.South},
		{"D", char('d'), cmdMove, maze.East},
		{"A", char('a'), cmdMove, maze.West},
		{"Pick up", char('e'), cmdPickUp, maze.NoDirection},
		{"Dig", char(' '), cmdDig, maze.NoDirection},
		{"Restart", key(tcell.KeyEnter), cmdRestart, maze.NoDirection},
		{"Escape", key(tcell.KeyEscape), cmdQuit, maze.NoDirection},
		{"Q", char('q'), cmdQuit, maze.NoDirection},
		{"Unbound rune", char('z'), cmdNone, maze.NoDirection},
		{"Unbound key", key(tcell.KeyTab), cmdNone, maze.NoDirection},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, dir := keyCommand(tt.ev)
			assert.Equal(t, tt.cmd, cmd)
			assert.Equal(t, tt.dir, dir)
		})
	}
}

func TestLoadTranslations(t *testing.T) {
	en, err := loadTranslations("en")
	require.NoError(t, err)
	assert.Equal(t, "You escaped in 42 ticks! Press Enter for a new maze.", en.Get("ESCAPED", 42))

	ru, err := loadTranslations("ru")
	require.NoError(t, err)
	assert.Contains(t, ru.Get("CAPTURED", 7), "7")
	assert.NotEqual(t, en.Get("HELP"), ru.Get("HELP"))

	_, err = loadTranslations("xx")
	assert.Error(t, err)
}

func testConfig() config.GameConfig {
	cfg := config.DefaultGameConfig()
	cfg.Maze.Width, cfg.Maze.Height = 11, 9
	cfg.Hero.Delay, cfg.Pursuer.Delay = 1, 1000
	return cfg
}

func TestClient(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	defer screen.Fini()

	tr, err := loadTranslations("en")
	require.NoError(t, err)
	c, err := newClient(screen, testConfig(), tr, 5)
	require.NoError(t, err)

	t.Run("Draws the entities", func(t *testing.T) {
		c.draw()
		hero, pursuer := c.sim.HeroPosition(), c.sim.PursuerPosition()

		mainc, _, _, _ := screen.GetContent(hero.Col, hero.Row)
		assert.Equal(t, heroRune, mainc)
		mainc, _, _, _ = screen.GetContent(pursuer.Col, pursuer.Row)
		assert.Equal(t, pursuerRune, mainc)
		mainc, _, _, _ = screen.GetContent(0, 0)
		assert.Equal(t, '#', mainc)
	})

	t.Run("Input is held until the hero moves", func(t *testing.T) {
		start := c.sim.HeroPosition()
		next := c.sim.Grid().Neighbors(start)
		require.NotEmpty(t, next)

		var dir maze.Direction
		for _, d := range maze.SearchOrder {
			if start.Step(d) == next[0] {
				dir = d
			}
		}
		var ev *tcell.EventKey
		switch dir {
		case maze.East:
			ev = key(tcell.KeyRight)
		case maze.West:
			ev = key(tcell.KeyLeft)
		case maze.South:
			ev = key(tcell.KeyDown)
		default:
			ev = key(tcell.KeyUp)
		}

		assert.True(t, c.handleKey(ev))
		assert.Equal(t, dir, c.input)
		c.step()
		assert.Equal(t, next[0], c.sim.HeroPosition())
		assert.Equal(t, maze.NoDirection, c.input)
	})

	t.Run("Restart only after the game ends", func(t *testing.T) {
		assert.True(t, c.handleKey(key(tcell.KeyEnter)))
		assert.Equal(t, int64(5), c.seed)

		for i := 0; i < 200000 && !c.sim.State().Terminal(); i++ {
			c.step()
		}
		require.Equal(t, game.HeroCaptured, c.sim.State())
		assert.True(t, strings.HasPrefix(c.message, "The monster caught you"))

		assert.True(t, c.handleKey(key(tcell.KeyEnter)))
		assert.Equal(t, int64(6), c.seed)
		assert.Equal(t, game.Running, c.sim.State())
		assert.Zero(t, c.sim.Ticks())
	})

	t.Run("Quit", func(t *testing.T) {
		assert.False(t, c.handleKey(key(tcell.KeyEscape)))
	})
}

func TestRenderDump(t *testing.T) {
	g, err := maze.FromStrings(
		"#######",
		"#S    #",
		"#    E#",
		"#######",
	)
	require.NoError(t, err)
	sim, err := game.New(g, g.Start(), maze.CellPosition{Row: 2, Col: 4}, 1, 1)
	require.NoError(t, err)

	out := color.ClearCode(renderDump(sim.Snapshot()))
	assert.Equal(t, "#######\n#@    #\n#   ME#\n#######\n", out)
}
