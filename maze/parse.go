package maze

import (
	"errors"
	"fmt"
)

var ErrMalformedLayout = errors.New("malformed maze layout")

// FromStrings builds a grid from a hand-drawn layout, one string per row:
// '#' is a wall, ' ' or '.' is open floor, 'E' is the exit and 'S' marks an open start cell.
// The layout is not validated; call Validate when the invariants matter.
func FromStrings(rows ...string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrMalformedLayout
	}

	g, err := NewGrid(len(rows[0]), len(rows))
	if err != nil {
		return nil, err
	}

	for row, line := range rows {
		if len(line) != g.width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedLayout, row, len(line), g.width)
		}
		for col, ch := range line {
			pos := CellPosition{Row: row, Col: col}
			switch ch {
			case '#':
				g.set(pos, Wall)
			case ' ', '.':
				g.set(pos, Open)
			case 'S':
				g.set(pos, Open)
				g.start = pos
			case 'E':
				g.markExit(pos)
			default:
				return nil, fmt.Errorf("%w: unexpected %q at %v", ErrMalformedLayout, ch, pos)
			}
		}
	}
	return g, nil
}
