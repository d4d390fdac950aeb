package main

import (
	"strings"

	"github.com/beka-birhanu/snowmaze/game"
	"github.com/gookit/color"
)

const (
	heroRune    = '@'
	pursuerRune = 'M'
	icePickRune = '!'
)

var (
	colorWall    = color.Style{color.FgGray}
	colorExit    = color.Style{color.FgGreen, color.OpBold}
	colorHero    = color.Style{color.FgCyan, color.OpBold}
	colorPursuer = color.Style{color.FgRed, color.OpBold}
	colorIcePick = color.Style{color.FgYellow}
)

// renderDump draws the snapshot as colored text, one line per maze row.
func renderDump(snap game.Snapshot) string {
	var b strings.Builder
	for row, line := range snap.Rows {
		for col, ch := range []rune(line) {
			switch {
			case row == snap.Hero.Row && col == snap.Hero.Col:
				b.WriteString(colorHero.Sprint(string(heroRune)))
			case row == snap.Pursuer.Row && col == snap.Pursuer.Col:
				b.WriteString(colorPursuer.Sprint(string(pursuerRune)))
			case snap.IcePick != nil && row == snap.IcePick.Row && col == snap.IcePick.Col:
				b.WriteString(colorIcePick.Sprint(string(icePickRune)))
			case ch == '#':
				b.WriteString(colorWall.Sprint(string(ch)))
			case ch == 'E':
				b.WriteString(colorExit.Sprint(string(ch)))
			default:
				b.WriteRune(ch)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
