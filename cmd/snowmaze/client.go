package main

import (
	"time"

	"github.com/beka-birhanu/snowmaze/config"
	"github.com/beka-birhanu/snowmaze/game"
	"github.com/beka-birhanu/snowmaze/maze"
	"github.com/gdamore/tcell/v2"
	"github.com/leonelquinteros/gotext"
)

type command int

const (
	cmdNone command = iota
	cmdMove
	cmdPickUp
	cmdDig
	cmdRestart
	cmdQuit
)

var (
	styleWall    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleExit    = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleHero    = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	stylePursuer = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleIcePick = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleText    = tcell.StyleDefault
)

// keyCommand maps a key press to a command and, for moves, its direction.
func keyCommand(ev *tcell.EventKey) (command, maze.Direction) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return cmdQuit, maze.NoDirection
	case tcell.KeyEnter:
		return cmdRestart, maze.NoDirection
	case tcell.KeyUp:
		return cmdMove, maze.North
	case tcell.KeyDown:
		return cmdMove, maze.South
	case tcell.KeyLeft:
		return cmdMove, maze.West
	case tcell.KeyRight:
		return cmdMove, maze.East
	case tcell.KeyRune:
	default:
		return cmdNone, maze.NoDirection
	}

	switch r := ev.Rune(); r {
	case 'q', 'Q':
		return cmdQuit, maze.NoDirection
	case 'e', 'E':
		return cmdPickUp, maze.NoDirection
	case ' ':
		return cmdDig, maze.NoDirection
	default:
		if d, err := maze.ParseDirection(string(r)); err == nil && d != maze.NoDirection {
			return cmdMove, d
		}
		return cmdNone, maze.NoDirection
	}
}

// client runs a local game on a terminal screen.
type client struct {
	screen  tcell.Screen
	cfg     config.GameConfig
	tr      *gotext.Po
	seed    int64
	sim     *game.Simulation
	input   maze.Direction
	message string
}

func newClient(screen tcell.Screen, cfg config.GameConfig, tr *gotext.Po, seed int64) (*client, error) {
	c := &client{screen: screen, cfg: cfg, tr: tr, seed: seed}
	if err := c.newGame(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *client) newGame() error {
	sim, err := game.NewGame(c.cfg.Setup(c.seed))
	if err != nil {
		return err
	}
	c.sim = sim
	c.input = maze.NoDirection
	c.message = c.tr.Get("HELP")
	return nil
}

// handleKey applies a key press and reports whether the client should keep running.
func (c *client) handleKey(ev *tcell.EventKey) bool {
	cmd, dir := keyCommand(ev)
	switch cmd {
	case cmdQuit:
		return false
	case cmdMove:
		c.input = dir
	case cmdPickUp:
		if c.sim.PickUpIcePick() {
			c.message = c.tr.Get("ICE_PICK_TAKEN")
		}
	case cmdDig:
		if _, ok := c.sim.UseIcePick(); ok {
			c.message = c.tr.Get("ICE_PICK_USED")
		} else if c.sim.IcePick() != nil && c.sim.IcePick().Carried() {
			c.message = c.tr.Get("NOTHING_TO_DIG")
		}
	case cmdRestart:
		if c.sim.State().Terminal() {
			c.seed++
			if err := c.newGame(); err != nil {
				return false
			}
		}
	}
	return true
}

// step advances the game by one tick. Input is held until the hero gets to move.
func (c *client) step() {
	if c.sim.State().Terminal() {
		return
	}
	switch c.sim.Tick(c.input) {
	case game.HeroEscaped:
		c.message = c.tr.Get("ESCAPED", c.sim.Ticks())
	case game.HeroCaptured:
		c.message = c.tr.Get("CAPTURED", c.sim.Ticks())
	}
	if c.sim.HeroTurn() {
		c.input = maze.NoDirection
	}
}

func (c *client) draw() {
	c.screen.Clear()
	snap := c.sim.Snapshot()

	for row, line := range snap.Rows {
		for col, ch := range []rune(line) {
			style := styleText
			switch ch {
			case '#':
				style = styleWall
			case 'E':
				style = styleExit
			}
			c.screen.SetContent(col, row, ch, nil, style)
		}
	}
	if snap.IcePick != nil {
		c.screen.SetContent(snap.IcePick.Col, snap.IcePick.Row, icePickRune, nil, styleIcePick)
	}
	c.screen.SetContent(snap.Pursuer.Col, snap.Pursuer.Row, pursuerRune, nil, stylePursuer)
	c.screen.SetContent(snap.Hero.Col, snap.Hero.Row, heroRune, nil, styleHero)

	line := len(snap.Rows) + 1
	c.drawText(0, line, c.tr.Get("STATUS", snap.Ticks, snap.Distance))
	if snap.Carrying {
		c.drawText(0, line+1, c.tr.Get("ICE_PICK_READY"))
	}
	c.drawText(0, line+2, c.message)

	c.screen.Show()
}

func (c *client) drawText(x, y int, text string) {
	for _, r := range text {
		c.screen.SetContent(x, y, r, nil, styleText)
		x++
	}
}

// run drives the game at the configured tick rate until the player quits.
func (c *client) run() {
	ticker := time.NewTicker(c.cfg.TickInterval())
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := c.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	c.draw()
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !c.handleKey(ev) {
					return
				}
			case *tcell.EventResize:
				c.screen.Sync()
			}
		case <-ticker.C:
			c.step()
			c.draw()
		}
	}
}
